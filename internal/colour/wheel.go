package colour

import (
	"fmt"
	"math"
)

const (
	// wheelPointRadius places palette points at this fraction of the wheel radius.
	wheelPointRadius = 0.75
	// wheelHubRadius is the fraction of the wheel covered by the central hub.
	wheelHubRadius = 0.5
	// Ring wedges are painted at fixed saturation and lightness.
	ringSaturation = 80
	ringLightness  = 60
)

// WheelPoint is a palette colour plotted on the wheel. X and Y are offsets
// from the wheel centre in screen orientation (y grows downwards), so hue 0
// sits straight up.
type WheelPoint struct {
	Colour RGB     `json:"colour"`
	Hue    float64 `json:"hue"`
	Angle  float64 `json:"angle"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// WheelSegment connects the points at indices From and To, with From < To.
type WheelSegment struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// RingWedge is a one-degree slice of the rainbow background. Start and End
// are screen angles in radians using the same orientation as WheelPoint.
type RingWedge struct {
	Hue    int     `json:"hue"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Colour RGB     `json:"colour"`
}

// Wheel is the geometry of the hue wheel for a palette. It holds no pixels;
// drawing is left to the presentation layer.
type Wheel struct {
	Radius      float64        `json:"radius"`
	InnerRadius float64        `json:"innerRadius"`
	Points      []WheelPoint   `json:"points"`
	Segments    []WheelSegment `json:"segments"`
	Ring        []RingWedge    `json:"-"`
}

// NewWheel maps every colour to a point on a ring at 0.75 × radius, at the
// angle of its hue, and lists every pair of points for connecting lines.
func NewWheel(colours []RGB, radius float64) (Wheel, error) {
	if radius <= 0 {
		return Wheel{}, fmt.Errorf("wheel radius must be positive, got %g: %w", radius, ErrInvalidInput)
	}

	w := Wheel{
		Radius:      radius,
		InnerRadius: radius * wheelHubRadius,
		Points:      make([]WheelPoint, len(colours)),
		Segments:    make([]WheelSegment, 0, len(colours)*(len(colours)-1)/2),
		Ring:        hueRing(),
	}

	r := radius * wheelPointRadius
	for i, c := range colours {
		hue := RGBToHSL(c).H
		angle := hueAngle(hue)
		w.Points[i] = WheelPoint{
			Colour: c,
			Hue:    hue,
			Angle:  angle,
			X:      r * math.Cos(angle),
			Y:      r * math.Sin(angle),
		}
	}

	for i := range colours {
		for j := i + 1; j < len(colours); j++ {
			w.Segments = append(w.Segments, WheelSegment{From: i, To: j})
		}
	}

	return w, nil
}

// hueAngle converts a hue in degrees to a screen angle with 0° pointing up.
func hueAngle(hue float64) float64 {
	return hue*math.Pi/180 - math.Pi/2
}

// hueRing builds the 360 wedges of the rainbow background.
func hueRing() []RingWedge {
	ring := make([]RingWedge, 360)
	for h := range ring {
		ring[h] = RingWedge{
			Hue:    h,
			Start:  hueAngle(float64(h - 1)),
			End:    hueAngle(float64(h)),
			Colour: HSLToRGB(HSL{H: float64(h), S: ringSaturation, L: ringLightness}),
		}
	}
	return ring
}
