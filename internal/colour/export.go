package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExportCSS renders colours as CSS custom properties on :root, numbered from
// 1 in palette order. The result has no trailing newline.
func ExportCSS(colours []RGB) string {
	lines := make([]string, len(colours))
	for i, c := range colours {
		lines[i] = fmt.Sprintf("  --color-%d: %s;", i+1, c.Hex())
	}
	return ":root {\n" + strings.Join(lines, "\n") + "\n}"
}

// ExportJSON renders colours as a JSON array of hex strings indented with
// two spaces.
func ExportJSON(colours []RGB) ([]byte, error) {
	data, err := json.MarshalIndent(HexStrings(colours), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal palette: %w", err)
	}
	return data, nil
}

// CSS renders the palette as CSS custom properties.
func (p *Palette) CSS() string {
	return ExportCSS(p.Colours)
}

// JSON renders the palette as an indented JSON array of hex strings.
func (p *Palette) JSON() ([]byte, error) {
	return ExportJSON(p.Colours)
}
