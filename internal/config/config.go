// Package config loads keypress settings from a YAML file, the environment
// and an optional .env file.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/keypress/complexity"
	"github.com/katalvlaran/keypress/keypad"
)

// Environment variables read by ApplyEnv.
const (
	EnvDepth    = "KEYPRESS_DEPTH"
	EnvStrategy = "KEYPRESS_STRATEGY"
	EnvLogLevel = "KEYPRESS_LOG_LEVEL"
	EnvLogFile  = "KEYPRESS_LOG_FILE"
)

// DefaultDepth is the number of directional layers between the human and
// the numeric robot in the reference setup.
const DefaultDepth = 2

// Config is the content of a keypress.yaml file.
type Config struct {
	Depth    int           `yaml:"depth"`
	Strategy string        `yaml:"strategy"`
	Codes    []string      `yaml:"codes"`
	Log      LogConfig     `yaml:"log"`
	Keypads  KeypadsConfig `yaml:"keypads"`
}

// LogConfig selects log verbosity and an optional JSON log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// KeypadsConfig optionally replaces the built-in layouts. Each entry is a
// row of keys; a space is a missing cell.
type KeypadsConfig struct {
	Numeric     []string `yaml:"numeric"`
	Directional []string `yaml:"directional"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Depth:    DefaultDepth,
		Strategy: complexity.StrategyEnumerate.String(),
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads the configuration at path on top of Default.
// A missing file is not an error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, zerr.With(err, "path", path)
	}

	return cfg, nil
}

// LoadDotEnv loads the given .env files (".env" when none) into the process
// environment. Variables already set are kept; missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return zerr.With(zerr.Wrap(err, "failed to load env file"), "path", f)
		}
	}

	return nil
}

// ApplyEnv overrides fields from KEYPRESS_* variables found by lookup
// (typically os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDepth); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid depth"), EnvDepth, v)
		}
		c.Depth = n
	}
	if v, ok := lookup(EnvStrategy); ok && v != "" {
		c.Strategy = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Log.File = v
	}

	return c.Validate()
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if c.Depth < 0 {
		return zerr.With(zerr.New("depth must be non-negative"), "depth", c.Depth)
	}
	if _, err := c.StrategyValue(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// StrategyValue returns the configured evaluation strategy.
func (c Config) StrategyValue() (complexity.Strategy, error) {
	if c.Strategy == "" {
		return complexity.StrategyEnumerate, nil
	}
	s, err := complexity.ParseStrategy(c.Strategy)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "invalid strategy"), "strategy", c.Strategy)
	}

	return s, nil
}

// LogLevel returns the configured slog level. Empty means info.
func (c Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "invalid log level"), "level", c.Log.Level)
	}

	return lvl, nil
}

// NumericKeypad returns the configured numeric layout, or the built-in one.
func (c Config) NumericKeypad() (*keypad.Graph, error) {
	return layout("numeric", c.Keypads.Numeric, keypad.Numeric)
}

// DirectionalKeypad returns the configured directional layout, or the
// built-in one.
func (c Config) DirectionalKeypad() (*keypad.Graph, error) {
	return layout("directional", c.Keypads.Directional, keypad.Directional)
}

func layout(name string, rows []string, builtin func() *keypad.Graph) (*keypad.Graph, error) {
	if len(rows) == 0 {
		return builtin(), nil
	}
	g, err := keypad.FromRows(name, rows)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid keypad layout"), "keypad", name)
	}

	return g, nil
}
