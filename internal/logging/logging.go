// Package logging builds the structured logger shared by the CLI and core.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Name is the root logger name.
const Name = "hueful"

// Options configures the root logger.
type Options struct {
	// Level is an hclog level name (trace, debug, info, warn, error, off).
	// Empty means warn.
	Level string

	// Verbose forces debug level. Quiet forces error level and wins over Verbose.
	Verbose bool
	Quiet   bool

	// JSON switches to JSON lines.
	JSON bool

	// Output defaults to stderr.
	Output io.Writer
}

// ParseLevel converts a level name to an hclog level.
func ParseLevel(s string) (hclog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return hclog.Warn, nil
	}
	level := hclog.LevelFromString(s)
	if level == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("invalid log level: %s (valid: trace, debug, info, warn, error, off)", s)
	}
	return level, nil
}

// New creates the root logger.
func New(opts Options) (hclog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	switch {
	case opts.Quiet:
		level = hclog.Error
	case opts.Verbose && level > hclog.Debug:
		level = hclog.Debug
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	color := hclog.AutoColor
	if opts.JSON {
		color = hclog.ColorOff
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:        Name,
		Level:       level,
		Output:      output,
		JSONFormat:  opts.JSON,
		Color:       color,
		DisableTime: !opts.JSON,
	}), nil
}
