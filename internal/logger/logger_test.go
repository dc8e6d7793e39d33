package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypress/internal/logger"
)

func TestLogger_Text(t *testing.T) {
	buf := &bytes.Buffer{}
	lg, err := logger.New(logger.Options{Level: slog.LevelInfo, Writer: buf})
	require.NoError(t, err)
	defer func() { require.NoError(t, lg.Close()) }()

	lg.Debug("hidden")
	lg.Info("evaluated", "code", "029A", "length", 68)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=evaluated")
	assert.Contains(t, out, "code=029A")
	assert.Contains(t, out, "length=68")

	lg.SetLevel(slog.LevelDebug)
	lg.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestLogger_FileFanout(t *testing.T) {
	buf := &bytes.Buffer{}
	path := filepath.Join(t.TempDir(), "keypress.log")
	lg, err := logger.New(logger.Options{Level: slog.LevelInfo, Writer: buf, File: path})
	require.NoError(t, err)

	lg.Info("cache", "hits", 3)
	lg.Warn("slow", "depth", 25)
	require.NoError(t, lg.Close())

	assert.Contains(t, buf.String(), "msg=cache")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "cache", rec["msg"])
	assert.EqualValues(t, 3, rec["hits"])
}

func TestLogger_BadFile(t *testing.T) {
	_, err := logger.New(logger.Options{File: filepath.Join(t.TempDir(), "no", "such", "dir.log")})
	require.ErrorContains(t, err, "failed to open log file")
}

func TestDiscard(t *testing.T) {
	lg := logger.Discard()
	lg.Error("dropped")
	require.NoError(t, lg.Close())
}
