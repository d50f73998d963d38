// Package colour provides utility functions for color manipulation and analysis.
package colour

import (
	"math"
)

// HSL is a colour in HSL space.
// H is in degrees [0, 360), S and L are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// RGBToHSL converts RGB to HSL colour space.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l := (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	// Saturation.
	var s float64
	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	// Hue.
	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	return HSL{H: h * 60, S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL to RGB colour space, rounding each channel.
func HSLToRGB(c HSL) RGB {
	h := c.H
	s := c.S / 100
	l := c.L / 100

	if s == 0 {
		// Achromatic (grey).
		v := clampChannel(l * 255)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: clampChannel(hueToRGB(p, q, h+120) * 255),
		G: clampChannel(hueToRGB(p, q, h) * 255),
		B: clampChannel(hueToRGB(p, q, h-120) * 255),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	// Normalize t to 0-360 range.
	t = math.Mod(t, 360)
	if t < 0 {
		t += 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// relativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func relativeLuminance(rgb RGB) float64 {
	return 0.2126*gammaCorrect(float64(rgb.R)/255.0) +
		0.7152*gammaCorrect(float64(rgb.G)/255.0) +
		0.0722*gammaCorrect(float64(rgb.B)/255.0)
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
