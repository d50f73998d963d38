package colour

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPalette(t *testing.T) {
	colours := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	}

	palette := NewPalette(colours)

	if palette == nil {
		t.Fatal("NewPalette returned nil")
	}

	if palette.Len() != 3 {
		t.Errorf("Expected palette length 3, got %d", palette.Len())
	}

	// The palette owns its own copy.
	colours[0] = RGB{}
	if palette.Colours[0] != (RGB{R: 255}) {
		t.Errorf("NewPalette did not copy input, got %+v", palette.Colours[0])
	}
}

func TestToRGB(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  RGB
	}{
		{
			name:  "red",
			color: color.RGBA{R: 255, G: 0, B: 0, A: 255},
			want:  RGB{R: 255, G: 0, B: 0},
		},
		{
			name:  "white",
			color: color.RGBA{R: 255, G: 255, B: 255, A: 255},
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:  "black",
			color: color.RGBA{R: 0, G: 0, B: 0, A: 255},
			want:  RGB{R: 0, G: 0, B: 0},
		},
		{
			name:  "translucent keeps straight channels",
			color: color.NRGBA{R: 200, G: 100, B: 50, A: 128},
			want:  RGB{R: 200, G: 100, B: 50},
		},
		{
			name:  "grey model",
			color: color.Gray{Y: 77},
			want:  RGB{R: 77, G: 77, B: 77},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToRGB(tt.color)
			if got != tt.want {
				t.Errorf("ToRGB() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "#ff0000"},
		{name: "green", rgb: RGB{R: 0, G: 255, B: 0}, want: "#00ff00"},
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}, want: "#000000"},
		{name: "zero padded", rgb: RGB{R: 1, G: 2, B: 15}, want: "#01020f"},
		{name: "grey", rgb: RGB{R: 128, G: 128, B: 128}, want: "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rgb.Hex()
			if got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	got := RGB{R: 12, G: 34, B: 56}.String()
	if got != "rgb(12, 34, 56)" {
		t.Errorf("String() = %s, want rgb(12, 34, 56)", got)
	}
}

func TestClampChannel(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{in: -20, want: 0},
		{in: 0.49, want: 0},
		{in: 0.5, want: 1},
		{in: 127.5, want: 128},
		{in: 254.6, want: 255},
		{in: 300, want: 255},
	}

	for _, tt := range tests {
		if got := clampChannel(tt.in); got != tt.want {
			t.Errorf("clampChannel(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPaletteReplace(t *testing.T) {
	palette := NewPalette([]RGB{
		{R: 10, G: 10, B: 10},
		{R: 20, G: 20, B: 20},
		{R: 30, G: 30, B: 30},
	})

	if err := palette.Replace(1, RGB{R: 200, G: 100, B: 0}); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	want := []RGB{
		{R: 10, G: 10, B: 10},
		{R: 200, G: 100, B: 0},
		{R: 30, G: 30, B: 30},
	}
	if diff := cmp.Diff(want, palette.Colours); diff != "" {
		t.Errorf("Replace() mismatch (-want +got):\n%s", diff)
	}

	for _, index := range []int{-1, 3} {
		if err := palette.Replace(index, RGB{}); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Replace(%d) error = %v, want ErrInvalidInput", index, err)
		}
	}
}

func TestPaletteGet(t *testing.T) {
	palette := NewPalette([]RGB{{R: 1}, {G: 2}})

	got, err := palette.Get(1)
	if err != nil {
		t.Fatalf("Get(1) error = %v", err)
	}
	if got != (RGB{G: 2}) {
		t.Errorf("Get(1) = %+v, want {G:2}", got)
	}

	if _, err := palette.Get(2); err == nil {
		t.Error("Get(2) expected error for out of bounds index")
	}
}

func TestPaletteToHex(t *testing.T) {
	palette := NewPalette([]RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	})

	want := []string{"#ff0000", "#00ff00", "#0000ff"}
	if diff := cmp.Diff(want, palette.ToHex()); diff != "" {
		t.Errorf("ToHex() mismatch (-want +got):\n%s", diff)
	}
}

func TestPaletteString(t *testing.T) {
	empty := NewPalette(nil)
	if got := empty.String(); got != "Empty palette" {
		t.Errorf("String() = %q, want %q", got, "Empty palette")
	}

	palette := NewPalette([]RGB{{R: 255}})
	got := palette.String()
	if !strings.Contains(got, "#ff0000") || !strings.Contains(got, "rgb(255, 0, 0)") {
		t.Errorf("String() = %q, missing colour details", got)
	}
}

func TestPaletteAll(t *testing.T) {
	palette := NewPalette([]RGB{{R: 1}, {R: 2}, {R: 3}})

	var seen []int
	palette.All()(func(i int, c RGB) bool {
		seen = append(seen, int(c.R))
		return i != 1
	})

	if diff := cmp.Diff([]int{1, 2}, seen); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}
