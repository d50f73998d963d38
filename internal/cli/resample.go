package cli

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueful/internal/colour"
	"github.com/jmylchreest/hueful/internal/config"
	"github.com/jmylchreest/hueful/internal/session"
)

// move is one requested marker move. Index is zero-based.
type move struct {
	Index int
	X, Y  int
}

// parseMove parses "x,y" or "n:x,y", where n is a one-based palette position.
// defaultIndex is used when n is omitted; it is one-based as well, and zero
// means no default.
func parseMove(s string, defaultIndex int) (move, error) {
	spec := strings.TrimSpace(s)
	index := defaultIndex

	if pos, coords, ok := strings.Cut(spec, ":"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(pos))
		if err != nil {
			return move{}, fmt.Errorf("invalid marker position %q: %w", pos, err)
		}
		index = n
		spec = coords
	}
	if index < 1 {
		return move{}, fmt.Errorf("marker position missing or below 1 in %q (use --index or n:x,y)", s)
	}

	xs, ys, ok := strings.Cut(spec, ",")
	if !ok {
		return move{}, fmt.Errorf("invalid point %q (want x,y)", spec)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return move{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return move{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}

	return move{Index: index - 1, X: x, Y: y}, nil
}

func newResampleCmd(a *app) *cobra.Command {
	var (
		ef    extractionFlags
		of    outputFlags
		index int
		at    []string
	)

	cmd := &cobra.Command{
		Use:   "resample <image>",
		Short: "Move palette markers and take the colour under them",
		Long: `Extract a palette, then move one or more colour markers to new pixel
positions. Each moved colour is replaced by the pixel under its marker; the
rest of the palette is left as extracted. Positions are one-based, matching
the # column of extract and the CSS variable names.

Examples:
  # Replace the second colour with the pixel at (120, 40)
  hueful resample --index 2 --at 120,40 wallpaper.jpg

  # Move two markers and print CSS
  hueful resample --at 1:10,10 --at 3:200,150 -f css wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(at) == 0 {
				return fmt.Errorf("at least one --at position is required")
			}
			moves := make([]move, 0, len(at))
			for _, s := range at {
				m, err := parseMove(s, index)
				if err != nil {
					return err
				}
				moves = append(moves, m)
			}

			cfg, err := ef.apply(cmd.Flags(), a.cfg)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			format, err := of.resolveFormat(cmd, cfg)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			sess, snap, err := a.openSession(cmd.Context(), args[0], cfg)
			if err != nil {
				return err
			}
			original := snap.Palette

			for _, m := range moves {
				snap, err = sess.Resample(m.Index, m.X, m.Y)
				if err != nil {
					return fmt.Errorf("failed to move marker %d to %d,%d: %w", m.Index+1, m.X, m.Y, err)
				}
			}

			return a.emit(cmd, &of, format, func(out *bytes.Buffer, preview bool) error {
				if format == config.FormatText {
					writeChanges(out, original, snap, preview)
				}
				return writeSnapshot(out, snap, format, preview)
			})
		},
	}

	ef.register(cmd.Flags())
	of.register(cmd)
	cmd.Flags().IntVarP(&index, "index", "i", 0, "palette position (1-based) for --at values without n:")
	cmd.Flags().StringArrayVar(&at, "at", nil, "marker move as x,y or n:x,y (repeatable)")
	return cmd
}

// writeChanges lists the palette entries that differ from the extraction.
func writeChanges(out *bytes.Buffer, before []colour.RGB, snap session.Snapshot, preview bool) {
	for i, c := range snap.Palette {
		if before[i] == c {
			continue
		}
		label := fmt.Sprintf("%d @ %d,%d (was %s)", i+1, snap.Markers[i].X, snap.Markers[i].Y, before[i].Hex())
		if preview {
			out.WriteString(colour.FormatColourWithLabel(c, label, 2))
		} else {
			out.WriteString(label + " " + c.Hex())
		}
		out.WriteString("\n")
	}
	out.WriteString("\n")
}
