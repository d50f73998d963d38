package config

import (
	"testing"

	"github.com/jmylchreest/hueful/internal/seed"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
	if Default().Colours != 5 {
		t.Errorf("Default().Colours = %d, want 5", Default().Colours)
	}
}

func TestFromLookup(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(map[string]string{
		EnvColours:     " 8 ",
		EnvSeed:        "42",
		EnvLogLevel:    "debug",
		EnvFormat:      "CSS",
		EnvWheelRadius: "120.5",
	}))
	if err != nil {
		t.Fatalf("fromLookup() error = %v", err)
	}

	if cfg.Colours != 8 {
		t.Errorf("Colours = %d, want 8", cfg.Colours)
	}
	if cfg.Seed.Mode != seed.ModeManual || cfg.Seed.Value == nil || *cfg.Seed.Value != 42 {
		t.Errorf("Seed = %+v, want manual 42", cfg.Seed)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Format != FormatCSS {
		t.Errorf("Format = %q, want css", cfg.Format)
	}
	if cfg.WheelRadius != 120.5 {
		t.Errorf("WheelRadius = %v, want 120.5", cfg.WheelRadius)
	}
}

func TestFromLookupSeedValueKeepsExplicitMode(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(map[string]string{
		EnvSeedMode: "filepath",
		EnvSeed:     "7",
	}))
	if err != nil {
		t.Fatalf("fromLookup() error = %v", err)
	}
	if cfg.Seed.Mode != seed.ModeFilepath {
		t.Errorf("Seed.Mode = %s, want filepath", cfg.Seed.Mode)
	}
}

func TestFromLookupErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "colours not a number", env: map[string]string{EnvColours: "many"}},
		{name: "zero colours", env: map[string]string{EnvColours: "0"}},
		{name: "bad seed mode", env: map[string]string{EnvSeedMode: "dice"}},
		{name: "manual without seed", env: map[string]string{EnvSeedMode: "manual"}},
		{name: "bad seed", env: map[string]string{EnvSeed: "x"}},
		{name: "bad level", env: map[string]string{EnvLogLevel: "loud"}},
		{name: "bad format", env: map[string]string{EnvFormat: "yaml"}},
		{name: "negative radius", env: map[string]string{EnvWheelRadius: "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := fromLookup(lookupFrom(tt.env)); err == nil {
				t.Error("fromLookup() expected error")
			}
		})
	}
}
