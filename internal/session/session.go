// Package session holds the state of one interactive palette session: the
// loaded image, the extracted palette and the marker placed for each colour.
//
// The palette and marker list stay in lockstep: index i of one always refers
// to index i of the other. Every change returns a fresh Snapshot whose
// analysis and wheel geometry are derived from scratch.
package session

import (
	"fmt"
	"image"
	"math/rand"
	"slices"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/hueful/internal/colour"
)

// Marker is the image-space position of a palette entry's handle.
type Marker struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Snapshot is everything the presentation layer needs to draw the current
// state. It shares no memory with the session.
type Snapshot struct {
	Palette  []colour.RGB    `json:"palette"`
	Markers  []Marker        `json:"markers"`
	Analysis colour.Analysis `json:"analysis"`
	Wheel    colour.Wheel    `json:"wheel"`
}

// Options configures a Session.
type Options struct {
	// WheelRadius is the radius used for wheel geometry.
	WheelRadius float64
	Logger      hclog.Logger
}

// Session is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	extractor   colour.Extractor
	rng         *rand.Rand
	wheelRadius float64
	logger      hclog.Logger

	img     image.Image
	palette *colour.Palette
	markers []Marker
}

// New creates an empty session. The extractor and random source are used for
// every extraction.
func New(extractor colour.Extractor, rng *rand.Rand, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	radius := opts.WheelRadius
	if radius <= 0 {
		radius = 1
	}
	return &Session{
		extractor:   extractor,
		rng:         rng,
		wheelRadius: radius,
		logger:      logger,
	}
}

// Load replaces the source image and clears any palette taken from the
// previous one.
func (s *Session) Load(img image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.img = img
	s.palette = nil
	s.markers = nil
	if img != nil {
		s.logger.Debug("image loaded", "bounds", img.Bounds().String())
	}
}

// Reset drops the image, palette and markers.
func (s *Session) Reset() {
	s.Load(nil)
}

// Extract runs palette extraction on the loaded image, replacing the palette
// and markers wholesale.
func (s *Session) Extract(count int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.img == nil {
		return Snapshot{}, fmt.Errorf("no image loaded: %w", colour.ErrInvalidInput)
	}

	samples, err := s.extractor.Extract(s.img, count, s.rng)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to extract colours: %w", err)
	}

	s.palette = colour.NewPalette(colour.Colours(samples))
	s.markers = make([]Marker, len(samples))
	for i, sample := range samples {
		s.markers[i] = Marker{X: sample.X, Y: sample.Y}
	}

	s.logger.Debug("palette extracted", "colours", s.palette.Len())
	return s.snapshotLocked()
}

// Resample moves marker index to (x, y) and replaces the palette entry at
// index with the pixel found there. No other entry changes.
func (s *Session) Resample(index, x, y int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.palette == nil {
		return Snapshot{}, fmt.Errorf("no palette extracted: %w", colour.ErrInvalidInput)
	}
	if index < 0 || index >= s.palette.Len() {
		return Snapshot{}, fmt.Errorf("marker index %d out of range (palette has %d colours): %w", index, s.palette.Len(), colour.ErrInvalidInput)
	}

	c, err := colour.SampleAt(s.img, x, y)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to resample marker %d: %w", index, err)
	}
	if err := s.palette.Replace(index, c); err != nil {
		return Snapshot{}, err
	}
	s.markers[index] = Marker{X: x, Y: y}

	s.logger.Trace("marker resampled", "index", index, "x", x, "y", y, "colour", c.Hex())
	return s.snapshotLocked()
}

// Snapshot returns the current state.
func (s *Session) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Bounds returns the loaded image's bounds, or an empty rectangle.
func (s *Session) Bounds() image.Rectangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return image.Rectangle{}
	}
	return s.img.Bounds()
}

// Markers returns a copy of the marker positions.
func (s *Session) Markers() []Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.markers)
}

// ExportCSS renders the current palette as CSS custom properties.
func (s *Session) ExportCSS() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.palette == nil {
		return "", fmt.Errorf("no palette extracted: %w", colour.ErrInvalidInput)
	}
	return s.palette.CSS(), nil
}

// ExportJSON renders the current palette as a JSON array of hex strings.
func (s *Session) ExportJSON() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.palette == nil {
		return nil, fmt.Errorf("no palette extracted: %w", colour.ErrInvalidInput)
	}
	return s.palette.JSON()
}

func (s *Session) snapshotLocked() (Snapshot, error) {
	if s.palette == nil {
		return Snapshot{}, fmt.Errorf("no palette extracted: %w", colour.ErrInvalidInput)
	}

	colours := s.palette.Clone()
	analysis, err := colour.Analyse(colours)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to analyse palette: %w", err)
	}
	wheel, err := colour.NewWheel(colours, s.wheelRadius)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to build wheel: %w", err)
	}

	return Snapshot{
		Palette:  colours,
		Markers:  slices.Clone(s.markers),
		Analysis: analysis,
		Wheel:    wheel,
	}, nil
}
