// Package config loads the YAML settings shared by tools built on this
// module and turns them into a logger and estimator options.
//
//	log:
//	  level: debug        # debug | info | warn | error
//	  format: json        # text | json
//	estimator:
//	  max_siblings: 12    # 0 disables the cap
//	  parallelism: 8
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/causal/effect"
)

// ErrInvalidConfig is returned by Validate and Load for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the YAML document.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Estimator EstimatorConfig `yaml:"estimator"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// EstimatorConfig mirrors the effect.Estimator options.
type EstimatorConfig struct {
	MaxSiblings int `yaml:"max_siblings"`
	Parallelism int `yaml:"parallelism"`
}

// DefaultConfig returns info-level text logging, a 16-sibling cap (65536
// candidate regressions) and 4 concurrent regressions.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Estimator: EstimatorConfig{
			MaxSiblings: 16,
			Parallelism: 4,
		},
	}
}

// Load reads path over DefaultConfig with strict field checking. An empty
// path returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err = decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: YAML syntax error: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Estimator.MaxSiblings < 0 {
		return fmt.Errorf("%w: estimator.max_siblings %d", ErrInvalidConfig, c.Estimator.MaxSiblings)
	}
	if c.Estimator.Parallelism < 1 {
		return fmt.Errorf("%w: estimator.parallelism %d", ErrInvalidConfig, c.Estimator.Parallelism)
	}

	return nil
}

// Logger builds the configured logger writing to w.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return NewLogger(c.Log.Level, c.Log.Format, w)
}

// EstimatorOptions returns the effect options for c, logging through logger.
func (c Config) EstimatorOptions(logger *slog.Logger) []effect.Option {
	return []effect.Option{
		effect.WithMaxSiblings(c.Estimator.MaxSiblings),
		effect.WithParallelism(c.Estimator.Parallelism),
		effect.WithLogger(logger),
	}
}

// NewLogger creates an isolated slog.Logger; the global logger is left
// alone. Unknown levels mean info and unknown formats mean text.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
