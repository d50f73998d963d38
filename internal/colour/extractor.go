package colour

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/hashicorp/go-hclog"
)

// DefaultColourCount is the number of colours extracted when none is given.
const DefaultColourCount = 5

// MaxColourCount bounds the palette size accepted by ExtractorConfig.
const MaxColourCount = 64

// ColourSample is an extracted colour and the image position its marker is
// placed at. The position is cosmetic: it is picked at random inside the
// image and need not belong to the colour's cluster.
type ColourSample struct {
	Colour RGB `json:"colour"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

// Extractor defines the interface for colour extraction algorithms.
type Extractor interface {
	// Extract returns exactly count samples drawn from img. All random
	// choices come from rng.
	Extract(img image.Image, count int, rng *rand.Rand) ([]ColourSample, error)
}

// KMeansExtractor implements colour extraction using k-means clustering.
type KMeansExtractor struct {
	stride     int
	iterations int
	logger     hclog.Logger
}

// NewKMeansExtractor creates a new KMeansExtractor with default settings.
// A nil logger discards output.
func NewKMeansExtractor(logger hclog.Logger) *KMeansExtractor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &KMeansExtractor{
		stride:     DefaultSampleStride,
		iterations: DefaultIterations,
		logger:     logger,
	}
}

// Extract extracts colours from an image using k-means clustering.
func (e *KMeansExtractor) Extract(img image.Image, count int, rng *rand.Rand) ([]ColourSample, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil: %w", ErrInvalidInput)
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d: %w", count, ErrInvalidInput)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil: %w", ErrInvalidInput)
	}

	points := SamplePixels(img, e.stride)
	if len(points) == 0 {
		return nil, fmt.Errorf("no pixels found in image: %w", ErrInvalidInput)
	}

	bounds := img.Bounds()
	e.logger.Debug("sampled image", "width", bounds.Dx(), "height", bounds.Dy(), "samples", len(points), "stride", e.stride)

	clusters, err := KMeans(points, count, e.iterations, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to cluster pixels: %w", err)
	}

	samples := make([]ColourSample, len(clusters))
	for i, c := range clusters {
		samples[i] = ColourSample{
			Colour: c.Centroid.RGB(),
			X:      bounds.Min.X + rng.Intn(bounds.Dx()),
			Y:      bounds.Min.Y + rng.Intn(bounds.Dy()),
		}
		e.logger.Trace("cluster", "index", i, "colour", samples[i].Colour.Hex(), "members", len(c.Points))
	}

	e.logger.Debug("extracted palette", "colours", len(samples), "iterations", e.iterations)
	return samples, nil
}

// SampleAt reads the colour of the pixel at (x, y).
// The coordinate must lie inside the image bounds.
func SampleAt(img image.Image, x, y int) (RGB, error) {
	if img == nil {
		return RGB{}, fmt.Errorf("image cannot be nil: %w", ErrInvalidInput)
	}
	if !image.Pt(x, y).In(img.Bounds()) {
		return RGB{}, fmt.Errorf("point (%d, %d) is outside image bounds %v: %w", x, y, img.Bounds(), ErrInvalidInput)
	}
	return ToRGB(img.At(x, y)), nil
}

// Colours returns the colour of each sample, in order.
func Colours(samples []ColourSample) []RGB {
	colours := make([]RGB, len(samples))
	for i, s := range samples {
		colours[i] = s.Colour
	}
	return colours
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	ColourCount int
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		ColourCount: DefaultColourCount,
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if c.ColourCount < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d: %w", c.ColourCount, ErrInvalidInput)
	}
	if c.ColourCount > MaxColourCount {
		return fmt.Errorf("colour count too large: %d (maximum: %d): %w", c.ColourCount, MaxColourCount, ErrInvalidInput)
	}
	return nil
}
