package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueful/internal/colour"
	"github.com/jmylchreest/hueful/internal/render"
)

func newWheelCmd(a *app) *cobra.Command {
	var (
		ef       extractionFlags
		output   string
		size     int
		noLabels bool
	)

	cmd := &cobra.Command{
		Use:   "wheel <image>",
		Short: "Render the palette on a colour wheel",
		Long: `Extract a palette and draw it as a PNG colour wheel: each colour sits on the
wheel at the angle of its hue, joined to every other colour by a line.

Examples:
  hueful wheel wallpaper.jpg -o wheel.png
  hueful wheel -c 8 --size 600 --no-labels wallpaper.jpg -o wheel.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("--output is required")
			}

			cfg, err := ef.apply(cmd.Flags(), a.cfg)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			style := render.DefaultStyle()
			style.Labels = !noLabels
			radius := render.RadiusForSize(size, style)
			if radius <= 0 {
				return fmt.Errorf("size %d leaves no room for the wheel", size)
			}

			_, snap, err := a.openSession(cmd.Context(), args[0], cfg)
			if err != nil {
				return err
			}

			// The session's wheel uses the configured radius; the image needs
			// one sized to the canvas.
			w, err := colour.NewWheel(snap.Palette, radius)
			if err != nil {
				return err
			}
			img, err := render.Wheel(w, size, style)
			if err != nil {
				return fmt.Errorf("failed to render wheel: %w", err)
			}

			f, err := os.Create(output) // #nosec G304 -- user-chosen output path
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := render.EncodePNG(f, img); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			a.logger.Info("wheel written", "path", output, "colours", len(snap.Palette))
			return nil
		},
	}

	ef.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write")
	cmd.Flags().IntVar(&size, "size", 400, "image width and height in pixels")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "omit hex labels")
	return cmd
}
