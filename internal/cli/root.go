// Package cli provides the command-line interface for hueful.
package cli

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/hueful/internal/colour"
	"github.com/jmylchreest/hueful/internal/config"
	"github.com/jmylchreest/hueful/internal/image"
	"github.com/jmylchreest/hueful/internal/logging"
	"github.com/jmylchreest/hueful/internal/seed"
	"github.com/jmylchreest/hueful/internal/session"
	"github.com/jmylchreest/hueful/internal/version"
)

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	cfg    config.Config
	logger hclog.Logger
	loader image.Loader

	verbose  bool
	quiet    bool
	jsonLogs bool
	logLevel string
}

// NewRootCmd builds the hueful command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		logger: hclog.NewNullLogger(),
		loader: image.NewSmartLoader(),
	}

	rootCmd := &cobra.Command{
		Use:   "hueful",
		Short: "Extract and describe colour palettes from images",
		Long: `hueful pulls a small palette of dominant colours out of an image with k-means
clustering, describes its mood (temperature, energy, contrast and an overall
vibe), and exports it as CSS custom properties or JSON.

Each colour is tied to a marker on the image. Move a marker with the resample
command to swap in the colour under it, or render the palette on a colour
wheel with the wheel command.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")
	flags.BoolVar(&a.jsonLogs, "json-logs", false, "write logs as JSON lines")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd(a))
	rootCmd.AddCommand(newResampleCmd(a))
	rootCmd.AddCommand(newWheelCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))

	return rootCmd
}

// setup resolves configuration from the environment and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Verbose: a.verbose,
		Quiet:   a.quiet,
		JSON:    a.jsonLogs,
		Output:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

// extractionFlags are shared by every command that extracts a palette.
type extractionFlags struct {
	colours  int
	seedMode string
	seed     int64
}

func (f *extractionFlags) register(fs *pflag.FlagSet) {
	fs.IntVarP(&f.colours, "colours", "c", colour.DefaultColourCount,
		fmt.Sprintf("number of colours to extract (1-%d)", colour.MaxColourCount))
	fs.StringVar(&f.seedMode, "seed-mode", string(seed.ModeContent),
		"seed mode (content, filepath, manual, random)")
	fs.Int64Var(&f.seed, "seed", 0, "seed value (implies --seed-mode manual)")
}

// apply overlays any flags the user set on cfg.
func (f *extractionFlags) apply(fs *pflag.FlagSet, cfg config.Config) (config.Config, error) {
	if fs.Changed("colours") {
		cfg.Colours = f.colours
	}
	if fs.Changed("seed-mode") {
		mode, err := seed.ParseMode(f.seedMode)
		if err != nil {
			return cfg, err
		}
		cfg.Seed.Mode = mode
	}
	if fs.Changed("seed") {
		v := f.seed
		cfg.Seed.Value = &v
		if !fs.Changed("seed-mode") {
			cfg.Seed.Mode = seed.ModeManual
		}
	}
	return cfg, cfg.Validate()
}

// openSession loads path, seeds a random source for it and runs one
// extraction.
func (a *app) openSession(ctx context.Context, path string, cfg config.Config) (*session.Session, session.Snapshot, error) {
	if err := image.ValidateImagePath(path); err != nil {
		return nil, session.Snapshot{}, fmt.Errorf("invalid image path: %w", err)
	}

	a.logger.Debug("loading image", "path", path)
	img, err := a.loader.Load(ctx, path)
	if err != nil {
		return nil, session.Snapshot{}, fmt.Errorf("failed to load image: %w", err)
	}

	s, err := seed.Calculate(img, path, cfg.Seed)
	if err != nil {
		return nil, session.Snapshot{}, fmt.Errorf("failed to calculate seed: %w", err)
	}
	a.logger.Debug("seed", "mode", cfg.Seed.Mode, "value", s)

	sess := session.New(
		colour.NewKMeansExtractor(a.logger.Named("kmeans")),
		seed.NewRand(s),
		session.Options{WheelRadius: cfg.WheelRadius, Logger: a.logger.Named("session")},
	)
	sess.Load(img)

	snap, err := sess.Extract(cfg.Colours)
	if err != nil {
		return nil, session.Snapshot{}, err
	}
	return sess, snap, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
