// Package config holds runtime settings read from the environment.
// Command-line flags are applied on top by the cli package.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jmylchreest/hueful/internal/colour"
	"github.com/jmylchreest/hueful/internal/logging"
	"github.com/jmylchreest/hueful/internal/seed"
)

// Environment variable names.
const (
	EnvColours     = "HUEFUL_COLOURS"
	EnvSeedMode    = "HUEFUL_SEED_MODE"
	EnvSeed        = "HUEFUL_SEED"
	EnvLogLevel    = "HUEFUL_LOG_LEVEL"
	EnvFormat      = "HUEFUL_FORMAT"
	EnvWheelRadius = "HUEFUL_WHEEL_RADIUS"
)

// Output formats understood by the extract and resample commands.
const (
	FormatText = "text"
	FormatHex  = "hex"
	FormatCSS  = "css"
	FormatJSON = "json"
)

// ValidFormats lists the accepted output formats.
func ValidFormats() []string {
	return []string{FormatText, FormatHex, FormatCSS, FormatJSON}
}

// Config is the resolved runtime configuration.
type Config struct {
	Colours     int
	Seed        seed.Config
	LogLevel    string
	Format      string
	WheelRadius float64
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Colours:     colour.DefaultColourCount,
		Seed:        seed.Config{Mode: seed.ModeContent},
		LogLevel:    "warn",
		Format:      FormatText,
		WheelRadius: 180,
	}
}

// FromEnv returns Default overlaid with any HUEFUL_* variables that are set.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvColours); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvColours, err)
		}
		cfg.Colours = n
	}

	if v, ok := lookup(EnvSeedMode); ok {
		mode, err := seed.ParseMode(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvSeedMode, err)
		}
		cfg.Seed.Mode = mode
	}

	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		cfg.Seed.Value = &n
		if _, modeSet := lookup(EnvSeedMode); !modeSet {
			cfg.Seed.Mode = seed.ModeManual
		}
	}

	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvFormat); ok {
		cfg.Format = strings.ToLower(strings.TrimSpace(v))
	}

	if v, ok := lookup(EnvWheelRadius); ok {
		r, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvWheelRadius, err)
		}
		cfg.WheelRadius = r
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration for values no command can use.
func (c Config) Validate() error {
	if err := (colour.ExtractorConfig{ColourCount: c.Colours}).Validate(); err != nil {
		return fmt.Errorf("invalid colour count: %w", err)
	}
	if c.Seed.Mode == seed.ModeManual && c.Seed.Value == nil {
		return fmt.Errorf("seed mode manual requires a seed value")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatHex, FormatCSS, FormatJSON:
	default:
		return fmt.Errorf("unsupported format: %s (supported: %s)", c.Format, strings.Join(ValidFormats(), ", "))
	}
	if c.WheelRadius <= 0 {
		return fmt.Errorf("wheel radius must be positive, got %g", c.WheelRadius)
	}
	return nil
}
