package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueful/internal/image"
	"github.com/jmylchreest/hueful/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		ef extractionFlags
		of outputFlags
	)

	cmd := &cobra.Command{
		Use:   "watch <image>",
		Short: "Re-extract the palette whenever the image changes",
		Long: `Extract a palette, print it, then keep watching the image file and print a
fresh palette each time it is saved. Stop with Ctrl+C.

Examples:
  hueful watch wallpaper.png
  hueful watch -f css -o palette.css wallpaper.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if image.IsURL(path) {
				return fmt.Errorf("watch needs a local file, got URL %s", path)
			}

			cfg, err := ef.apply(cmd.Flags(), a.cfg)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			format, err := of.resolveFormat(cmd, cfg)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			refresh := func() error {
				_, snap, err := a.openSession(cmd.Context(), path, cfg)
				if err != nil {
					return err
				}
				return a.emit(cmd, &of, format, func(out *bytes.Buffer, preview bool) error {
					return writeSnapshot(out, snap, format, preview)
				})
			}

			if err := refresh(); err != nil {
				return err
			}

			w, err := watch.New(path, watch.Options{Logger: a.logger.Named("watch")})
			if err != nil {
				return err
			}
			return w.Run(cmd.Context(), refresh)
		},
	}

	ef.register(cmd.Flags())
	of.register(cmd)
	return cmd
}
