// Package config holds gkquad settings read from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/nvinhtan/chaospy/internal/quadrature"
)

// Config is the environment-level configuration. Command-line flags
// override these values where both exist.
type Config struct {
	// Family is the rule family used when a request does not name one.
	Family string `env:"GKQUAD_FAMILY" envDefault:"gk24"`

	// DB is the grid cache path. Empty disables caching.
	DB string `env:"GKQUAD_DB"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"GKQUAD_LOG_LEVEL" envDefault:"info"`

	// MaxPoints caps the size of built grids. Zero means no cap.
	MaxPoints int `env:"GKQUAD_MAX_POINTS" envDefault:"10000000"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the family, log level and point cap.
func (c Config) Validate() error {
	if _, err := quadrature.ParseFamily(c.Family); err != nil {
		return fmt.Errorf("GKQUAD_FAMILY: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.MaxPoints < 0 {
		return fmt.Errorf("GKQUAD_MAX_POINTS must not be negative, got %d", c.MaxPoints)
	}
	return nil
}

// DefaultFamily returns the configured family.
// Config must have passed Validate.
func (c Config) DefaultFamily() quadrature.Family {
	f, err := quadrature.ParseFamily(c.Family)
	if err != nil {
		return quadrature.DefaultFamily
	}
	return f
}

// Level maps LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("GKQUAD_LOG_LEVEL: unknown level %q", c.LogLevel)
}
