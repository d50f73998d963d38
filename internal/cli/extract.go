package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueful/internal/config"
)

// outputFlags control how a palette is printed.
type outputFlags struct {
	format  string
	output  string
	preview string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", config.FormatText, "output format (text, hex, css, json)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&o.preview, "preview", previewAuto, "show colour swatches (auto, always, never)")
}

// resolveFormat returns the flag value if set, otherwise the configured one.
func (o *outputFlags) resolveFormat(cmd *cobra.Command, cfg config.Config) (string, error) {
	format := cfg.Format
	if cmd.Flags().Changed("format") {
		format = o.format
	}
	cfg.Format = format
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return format, nil
}

func newExtractCmd(a *app) *cobra.Command {
	var (
		ef extractionFlags
		of outputFlags
	)

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract a colour palette from an image",
		Long: `Extract a palette of dominant colours from an image using k-means clustering
and describe its temperature, energy, contrast and overall vibe.

The image may be a local file or an HTTP(S) URL. Supported formats: JPEG,
PNG, GIF, WebP, TIFF and AVIF.

Examples:
  # Extract 5 colours (default) and show the analysis
  hueful extract wallpaper.jpg

  # Extract 8 colours as CSS custom properties
  hueful extract -c 8 -f css wallpaper.png

  # JSON array of hex codes, written to a file
  hueful extract -f json -o palette.json wallpaper.jpg

  # Same palette every run for a given seed
  hueful extract --seed 42 wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ef.apply(cmd.Flags(), a.cfg)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			format, err := of.resolveFormat(cmd, cfg)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			_, snap, err := a.openSession(cmd.Context(), args[0], cfg)
			if err != nil {
				return err
			}
			a.logger.Info("palette extracted", "colours", len(snap.Palette), "vibe", snap.Analysis.Vibe)

			return a.emit(cmd, &of, format, func(out *bytes.Buffer, preview bool) error {
				return writeSnapshot(out, snap, format, preview)
			})
		},
	}

	ef.register(cmd.Flags())
	of.register(cmd)
	return cmd
}

// emit renders through render and writes the result to --output or stdout.
// Swatches are never written to files.
func (a *app) emit(cmd *cobra.Command, of *outputFlags, format string, render func(*bytes.Buffer, bool) error) error {
	preview := false
	if of.output == "" {
		var err error
		preview, err = wantPreview(of.preview, cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := render(&buf, preview); err != nil {
		return err
	}

	if of.output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	a.logger.Debug("writing output", "path", of.output, "format", format)
	if err := os.WriteFile(of.output, buf.Bytes(), 0o644); err != nil { // #nosec G306 -- palette output is not sensitive
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
