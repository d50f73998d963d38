// Package seed derives the random seed used for palette extraction.
// A fixed seed makes centroid initialisation and marker placement repeatable.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"image"
	"math/rand"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Mode determines how the random seed is generated.
type Mode string

const (
	// ModeContent generates seed from image content hash (default, deterministic by content).
	ModeContent Mode = "content"
	// ModeFilepath generates seed from absolute file path hash (deterministic by path).
	ModeFilepath Mode = "filepath"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeRandom uses non-deterministic random seed (varies each run).
	ModeRandom Mode = "random"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode
	Value *int64 // only used by ModeManual
}

// Calculate determines the seed value based on the seed mode.
func Calculate(img image.Image, imagePath string, config Config) (int64, error) {
	switch config.Mode {
	case ModeContent:
		if img == nil {
			return 0, fmt.Errorf("image is required for content-based seed mode")
		}
		return ContentSeed(img), nil
	case ModeFilepath:
		if imagePath == "" {
			return 0, fmt.Errorf("image path is required for filepath-based seed mode")
		}
		return FilepathSeed(imagePath), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom:
		return RandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// NewRand returns a random source seeded with s.
func NewRand(s int64) *rand.Rand {
	return rand.New(rand.NewSource(s)) // #nosec G404 -- palette sampling, not security
}

// ContentSeed hashes the image dimensions and a grid of up to ~100x100
// pixels, so the same picture yields the same seed wherever it lives.
func ContentSeed(img image.Image) int64 {
	bounds := img.Bounds()
	hasher := sha256.New()

	var dims [8]byte
	binary.LittleEndian.PutUint32(dims[0:4], uint32(bounds.Dx())) // #nosec G115 -- image dimensions are non-negative
	binary.LittleEndian.PutUint32(dims[4:8], uint32(bounds.Dy())) // #nosec G115 -- image dimensions are non-negative
	hasher.Write(dims[:])

	step := max(bounds.Dx()/100, bounds.Dy()/100, 1)
	var px [4]byte
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			px[0], px[1], px[2], px[3] = byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8)
			hasher.Write(px[:])
		}
	}

	return hashToSeed(hasher.Sum(nil))
}

// FilepathSeed hashes the absolute form of imagePath. URLs are hashed as-is.
func FilepathSeed(imagePath string) int64 {
	key := imagePath
	if !isURL(imagePath) {
		if abs, err := filepath.Abs(imagePath); err == nil {
			key = abs
		}
	}
	sum := sha256.Sum256([]byte(key))
	return hashToSeed(sum[:])
}

// RandomSeed generates a non-deterministic random seed.
func RandomSeed() int64 {
	return time.Now().UnixNano()
}

func hashToSeed(hash []byte) int64 {
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- wrapping is fine for a seed
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeContent, ModeFilepath, ModeManual, ModeRandom}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: content, filepath, manual, random)", s)
}
