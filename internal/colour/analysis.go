package colour

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Temperature describes whether a palette leans warm or cool.
type Temperature string

const (
	TemperatureWarm    Temperature = "Warm"
	TemperatureCool    Temperature = "Cool"
	TemperatureNeutral Temperature = "Neutral"
)

// Energy describes how saturated and how far from mid-lightness a palette is.
type Energy string

const (
	EnergySubdued  Energy = "Subdued"
	EnergyModerate Energy = "Moderate"
	EnergyVibrant  Energy = "Vibrant"
)

// Contrast describes the lightness spread of a palette.
type Contrast string

const (
	ContrastLow    Contrast = "Low"
	ContrastMedium Contrast = "Medium"
	ContrastHigh   Contrast = "High"
)

// Vibe is the single descriptive label chosen for a palette.
type Vibe string

const (
	VibeEnergetic  Vibe = "Energetic & Bold"
	VibeMysterious Vibe = "Calm & Mysterious"
	VibeAiry       Vibe = "Fresh & Airy"
	VibeMuted      Vibe = "Muted & Sophisticated"
	VibeDynamic    Vibe = "Dynamic & Striking"
	VibeBalanced   Vibe = "Balanced & Harmonious"
)

// Analysis holds the descriptors derived from a palette together with the
// metrics they were derived from.
type Analysis struct {
	Temperature Temperature `json:"temperature"`
	Energy      Energy      `json:"energy"`
	Contrast    Contrast    `json:"contrast"`
	Vibe        Vibe        `json:"vibe"`

	AverageHue        float64 `json:"averageHue"`
	AverageSaturation float64 `json:"averageSaturation"`
	AverageLightness  float64 `json:"averageLightness"`
	EnergyScore       float64 `json:"energyScore"`
	LightnessRange    float64 `json:"lightnessRange"`
}

// Analyse derives temperature, energy, contrast and vibe from colours.
//
// The average hue is an arithmetic mean of degrees, so palettes straddling
// 0°/360° average towards cyan.
func Analyse(colours []RGB) (Analysis, error) {
	if len(colours) == 0 {
		return Analysis{}, fmt.Errorf("cannot analyse an empty palette: %w", ErrInvalidInput)
	}

	hsl := lo.Map(colours, func(c RGB, _ int) HSL { return RGBToHSL(c) })
	n := float64(len(hsl))

	avgHue := lo.SumBy(hsl, func(c HSL) float64 { return c.H }) / n
	avgSat := lo.SumBy(hsl, func(c HSL) float64 { return c.S }) / n
	avgLight := lo.SumBy(hsl, func(c HSL) float64 { return c.L }) / n

	lightness := lo.Map(hsl, func(c HSL, _ int) float64 { return c.L })
	lightRange := lo.Max(lightness) - lo.Min(lightness)

	energyScore := avgSat*0.7 + math.Abs(avgLight-50)*0.3

	a := Analysis{
		Temperature:       classifyTemperature(avgHue),
		Energy:            classifyEnergy(energyScore),
		Contrast:          classifyContrast(lightRange),
		AverageHue:        avgHue,
		AverageSaturation: avgSat,
		AverageLightness:  avgLight,
		EnergyScore:       energyScore,
		LightnessRange:    lightRange,
	}
	a.Vibe = classifyVibe(a)
	return a, nil
}

func classifyTemperature(avgHue float64) Temperature {
	switch {
	case avgHue < 60 || avgHue > 300:
		return TemperatureWarm
	case avgHue > 150 && avgHue < 270:
		return TemperatureCool
	default:
		return TemperatureNeutral
	}
}

func classifyEnergy(score float64) Energy {
	switch {
	case score > 50:
		return EnergyVibrant
	case score > 30:
		return EnergyModerate
	default:
		return EnergySubdued
	}
}

func classifyContrast(lightRange float64) Contrast {
	switch {
	case lightRange > 60:
		return ContrastHigh
	case lightRange > 30:
		return ContrastMedium
	default:
		return ContrastLow
	}
}

// classifyVibe applies the vibe rules in priority order; the categories
// overlap so the first match wins.
func classifyVibe(a Analysis) Vibe {
	switch {
	case a.Temperature == TemperatureWarm && a.EnergyScore > 40:
		return VibeEnergetic
	case a.Temperature == TemperatureCool && a.AverageLightness < 40:
		return VibeMysterious
	case a.Temperature == TemperatureCool && a.AverageLightness > 60:
		return VibeAiry
	case a.AverageSaturation < 30:
		return VibeMuted
	case a.LightnessRange > 50:
		return VibeDynamic
	default:
		return VibeBalanced
	}
}
