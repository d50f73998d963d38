// Package render draws palette wheel geometry into raster images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/vector"

	"github.com/jmylchreest/hueful/internal/colour"
)

// Style controls how a wheel is drawn.
type Style struct {
	Background color.Color
	Hub        color.Color
	Connector  color.Color
	// ConnectorWidth is the line width of point-to-point segments in pixels.
	ConnectorWidth float64
	// DotRadius is the radius of each palette dot in pixels.
	DotRadius float64
	DotOutline color.Color
	// Labels draws each colour's hex code beside its dot.
	Labels   bool
	FontSize float64
	// Margin is the gap between the ring and the image edge.
	Margin int
}

// DefaultStyle matches the classic dark wheel: a dark hub, translucent
// indigo connectors and white-ringed dots.
func DefaultStyle() Style {
	return Style{
		Background:     color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff},
		Hub:            color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff},
		Connector:      color.NRGBA{R: 102, G: 126, B: 234, A: 77},
		ConnectorWidth: 2,
		DotRadius:      8,
		DotOutline:     color.White,
		Labels:         true,
		FontSize:       12,
		Margin:         20,
	}
}

// RadiusForSize returns the wheel radius that fits a size x size image.
func RadiusForSize(size int, style Style) float64 {
	return float64(size)/2 - float64(style.Margin)
}

// Wheel draws w onto a new size x size image. The wheel's radius should come
// from RadiusForSize so the ring fits.
func Wheel(w colour.Wheel, size int, style Style) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %d", size)
	}
	if w.Radius <= 0 {
		return nil, fmt.Errorf("wheel radius must be positive, got %g", w.Radius)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)

	cx, cy := float64(size)/2, float64(size)/2

	for _, wedge := range w.Ring {
		z := vector.NewRasterizer(size, size)
		z.MoveTo(float32(cx), float32(cy))
		z.LineTo(float32(cx+w.Radius*math.Cos(wedge.Start)), float32(cy+w.Radius*math.Sin(wedge.Start)))
		z.LineTo(float32(cx+w.Radius*math.Cos(wedge.End)), float32(cy+w.Radius*math.Sin(wedge.End)))
		z.ClosePath()
		z.Draw(dst, dst.Bounds(), image.NewUniform(wedge.Colour), image.Point{})
	}

	fillCircle(dst, cx, cy, w.InnerRadius, style.Hub)

	for _, seg := range w.Segments {
		a, b := w.Points[seg.From], w.Points[seg.To]
		strokeLine(dst, cx+a.X, cy+a.Y, cx+b.X, cy+b.Y, style.ConnectorWidth, style.Connector)
	}

	for _, p := range w.Points {
		fillCircle(dst, cx+p.X, cy+p.Y, style.DotRadius+1, style.DotOutline)
		fillCircle(dst, cx+p.X, cy+p.Y, style.DotRadius-1, p.Colour)
	}

	if style.Labels && len(w.Points) > 0 {
		if err := drawLabels(dst, w, cx, cy, style); err != nil {
			return nil, err
		}
	}

	return dst, nil
}

// EncodePNG writes img as PNG.
func EncodePNG(out io.Writer, img image.Image) error {
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// fillCircle fills a circle approximated by a 64-sided polygon.
func fillCircle(dst *image.RGBA, cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	const sides = 64
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(cx+r), float32(cy))
	for i := 1; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / sides
		z.LineTo(float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a)))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// strokeLine draws a line of the given width as a filled quad.
func strokeLine(dst *image.RGBA, x0, y0, x1, y1, width float64, c color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2

	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(x0+nx), float32(y0+ny))
	z.LineTo(float32(x1+nx), float32(y1+ny))
	z.LineTo(float32(x1-nx), float32(y1-ny))
	z.LineTo(float32(x0-nx), float32(y0-ny))
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// drawLabels writes each point's hex code just outside its dot, on the side
// facing away from the centre.
func drawLabels(dst *image.RGBA, w colour.Wheel, cx, cy float64, style Style) error {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse label font: %w", err)
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(style.FontSize)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(style.DotOutline))
	ctx.SetHinting(font.HintingFull)

	face := truetype.NewFace(f, &truetype.Options{Size: style.FontSize, DPI: 72})
	defer face.Close()

	for _, p := range w.Points {
		label := p.Colour.Hex()
		width := font.MeasureString(face, label).Ceil()

		x := cx + p.X + style.DotRadius + 4
		if p.X < 0 {
			x = cx + p.X - style.DotRadius - 4 - float64(width)
		}
		y := cy + p.Y + style.FontSize/3

		if _, err := ctx.DrawString(label, freetype.Pt(int(x), int(y))); err != nil {
			return fmt.Errorf("failed to draw label %s: %w", label, err)
		}
	}
	return nil
}
