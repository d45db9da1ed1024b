package dispatch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables read by [LoadConfig]. They take precedence over the file.
const (
	EnvLogLevel = "DISPATCH_LOG_LEVEL"
	EnvNoColor  = "NO_COLOR"
)

// Config holds the application settings that are not command-line options.
type Config struct {
	// LogLevel is the minimum level of the application logger: debug, info, warn or error. The
	// --verbose and --debug options lower it for a single run.
	LogLevel string `yaml:"log_level"`
	// NoColor disables styled output.
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: slog.LevelWarn.String(),
	}
}

// LoadConfig reads a YAML config file and applies environment overrides. A missing file, or an
// empty path, yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvNoColor); v != "" {
		c.NoColor = true
	}
}

// Level parses LogLevel. An empty level is warn.
func (c *Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
