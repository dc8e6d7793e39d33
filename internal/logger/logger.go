// Package logger builds the slog logger used by the keypress CLI.
package logger

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"go.trai.ch/zerr"
)

// Options selects where and how much to log.
type Options struct {
	Level slog.Level
	// Writer receives human-readable text records. Defaults to os.Stderr.
	Writer io.Writer
	// File, if set, additionally receives JSON records, appended.
	File string
}

// Logger wraps a slog.Logger together with the resources it owns.
type Logger struct {
	*slog.Logger
	level   *slog.LevelVar
	closers []io.Closer
}

// New builds a logger fanning records out to a text handler and, when
// configured, a JSON file handler.
func New(opts Options) (*Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	level := new(slog.LevelVar)
	level.Set(opts.Level)

	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}
	var closers []io.Closer
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec // path is provided by user
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to open log file"), "path", opts.File)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		closers = append(closers, f)
	}

	return &Logger{
		Logger:  slog.New(slogmulti.Fanout(handlers...)),
		level:   level,
		closers: closers,
	}, nil
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		level:  new(slog.LevelVar),
	}
}

// SetLevel changes the minimum level of every handler.
func (l *Logger) SetLevel(lvl slog.Level) { l.level.Set(lvl) }

// Close releases the log file, if any.
func (l *Logger) Close() error {
	var first error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && first == nil {
			first = zerr.Wrap(err, "failed to close log file")
		}
	}
	l.closers = nil

	return first
}
