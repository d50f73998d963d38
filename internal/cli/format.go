package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/hueful/internal/colour"
	"github.com/jmylchreest/hueful/internal/config"
	"github.com/jmylchreest/hueful/internal/session"
)

const swatchWidth = 9

// Preview modes for the --preview flag.
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

// wantPreview reports whether colour swatches should be printed to out.
func wantPreview(mode string, out io.Writer) (bool, error) {
	switch mode {
	case previewAlways:
		return true, nil
	case previewNever:
		return false, nil
	case previewAuto, "":
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", mode)
	}
}

// writeSnapshot renders snap to out in the given format.
func writeSnapshot(out io.Writer, snap session.Snapshot, format string, preview bool) error {
	var output string
	switch format {
	case config.FormatText:
		output = formatText(snap, preview)
	case config.FormatHex:
		output = formatHex(snap.Palette, preview)
	case config.FormatCSS:
		output = colour.ExportCSS(snap.Palette) + "\n"
	case config.FormatJSON:
		data, err := colour.ExportJSON(snap.Palette)
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		output = string(data) + "\n"
	default:
		return fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(config.ValidFormats(), ", "))
	}

	_, err := io.WriteString(out, output)
	return err
}

// formatHex prints one hex code per line, ready to paste.
func formatHex(colours []colour.RGB, preview bool) string {
	var b strings.Builder
	for _, c := range colours {
		if preview {
			b.WriteString(colour.FormatColourWithPreview(c, swatchWidth))
		} else {
			b.WriteString(c.Hex())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatText prints the palette as a table followed by its analysis.
func formatText(snap session.Snapshot, preview bool) string {
	headers := []string{"#", "Hex", "RGB", "HSL", "Marker"}
	if preview {
		headers = append([]string{""}, headers...)
	}
	table := NewTable(headers)

	for i, c := range snap.Palette {
		hsl := colour.RGBToHSL(c)
		row := []string{
			strconv.Itoa(i + 1),
			c.Hex(),
			c.String(),
			fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", hsl.H, hsl.S, hsl.L),
			"",
		}
		if i < len(snap.Markers) {
			row[4] = fmt.Sprintf("%d,%d", snap.Markers[i].X, snap.Markers[i].Y)
		}
		if preview {
			row = append([]string{colour.ColourPreviewWithText(c, c.Hex(), swatchWidth)}, row...)
		}
		table.AddRow(row)
	}

	var b strings.Builder
	b.WriteString(table.Render())
	b.WriteString("\n")
	b.WriteString(formatAnalysis(snap.Analysis))
	return b.String()
}

func formatAnalysis(a colour.Analysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Vibe:        %s\n", a.Vibe)
	fmt.Fprintf(&b, "Temperature: %s (average hue %.0f°)\n", a.Temperature, a.AverageHue)
	fmt.Fprintf(&b, "Energy:      %s (score %.1f)\n", a.Energy, a.EnergyScore)
	fmt.Fprintf(&b, "Contrast:    %s (lightness range %.1f%%)\n", a.Contrast, a.LightnessRange)
	return b.String()
}
