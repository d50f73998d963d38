// Package colour provides palette extraction, colour-space conversion and
// palette analysis.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
)

// ErrInvalidInput is returned when an operation receives input it cannot work
// with: an empty pixel pool, an empty palette, a colour count below one or a
// coordinate outside the image. Callers match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color so an RGB can be drawn directly.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}.RGBA()
}

// ToRGB converts a color.Color to RGB, discarding alpha.
// Channels are taken un-premultiplied, the way a canvas reports pixel data.
func ToRGB(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// clampChannel rounds v to the nearest integer and clamps it to [0, 255].
func clampChannel(v float64) uint8 {
	switch {
	case v != v: // NaN
		return 0
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}

// Palette is an ordered, index-stable sequence of colours.
// After extraction it is only ever changed one index at a time via Replace.
type Palette struct {
	Colours []RGB
}

// NewPalette creates a new Palette holding a copy of the given colours.
func NewPalette(colours []RGB) *Palette {
	return &Palette{
		Colours: slices.Clone(colours),
	}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (RGB, error) {
	if index < 0 || index >= len(p.Colours) {
		return RGB{}, fmt.Errorf("index out of bounds: %d (palette has %d colours): %w", index, len(p.Colours), ErrInvalidInput)
	}
	return p.Colours[index], nil
}

// Replace swaps the colour at index for c. No other index is touched.
func (p *Palette) Replace(index int, c RGB) error {
	if index < 0 || index >= len(p.Colours) {
		return fmt.Errorf("index out of bounds: %d (palette has %d colours): %w", index, len(p.Colours), ErrInvalidInput)
	}
	p.Colours[index] = c
	return nil
}

// Clone returns an independent copy of the palette colours.
func (p *Palette) Clone() []RGB {
	return slices.Clone(p.Colours)
}

// ToHex converts the palette colours to hex strings.
// Returns a slice of hex color codes (e.g., ["#1a2b3c", "#4d5e6f"]).
func (p *Palette) ToHex() []string {
	return HexStrings(p.Colours)
}

// HexStrings converts colours to their hex form, preserving order.
func HexStrings(colours []RGB) []string {
	hexColours := make([]string, len(colours))
	for i, c := range colours {
		hexColours[i] = c.Hex()
	}
	return hexColours
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Colours))
	for i, c := range p.Colours {
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return result
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, RGB) bool) {
	return func(yield func(int, RGB) bool) {
		for i, c := range p.Colours {
			if !yield(i, c) {
				return
			}
		}
	}
}
