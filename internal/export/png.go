// Package export writes rendered grids to files and streams: PNG images,
// optionally framed with the surface's CSS border, and CSV stroke logs.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gridcanvas"
)

// PNGOptions controls how a surface is turned into a PNG.
type PNGOptions struct {
	// Framed composites the surface onto Background with its CSS border
	// drawn around it, as a page would display the element.
	Framed bool

	// Background is the page colour behind the surface when Framed is set.
	// Nil means transparent.
	Background color.Color

	// Scale resizes the result. Zero or one keeps the original size.
	Scale float64
}

// Image returns the surface pixels processed according to opts.
func Image(s *gridcanvas.Surface, opts PNGOptions) image.Image {
	img := s.Image()
	if opts.Framed {
		img = Frame(img, s.Border(), opts.Background)
	}
	if opts.Scale > 0 && opts.Scale != 1 {
		img = Scale(img, opts.Scale)
	}
	return img
}

// WritePNG encodes the surface as PNG according to opts.
func WritePNG(w io.Writer, s *gridcanvas.Surface, opts PNGOptions) error {
	return EncodeImage(w, Image(s, opts))
}

// EncodeImage writes img as PNG.
func EncodeImage(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// Frame places img on a background inside its border. A border that is not
// visible adds no margin. Every visible border style is drawn solid.
func Frame(img image.Image, b gridcanvas.Border, bg color.Color) *image.RGBA {
	bw := 0
	if b.Visible() {
		bw = b.Width
	}
	r := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, r.Dx()+2*bw, r.Dy()+2*bw))
	inner := image.Rect(bw, bw, bw+r.Dx(), bw+r.Dy())

	if bw > 0 {
		xdraw.Draw(out, out.Bounds(), image.NewUniform(b.Color), image.Point{}, xdraw.Src)
	}
	if bg != nil {
		xdraw.Draw(out, inner, image.NewUniform(bg), image.Point{}, xdraw.Src)
	} else {
		xdraw.Draw(out, inner, image.Transparent, image.Point{}, xdraw.Src)
	}
	xdraw.Draw(out, inner, img, r.Min, xdraw.Over)
	return out
}

// Scale resizes img by factor with nearest-neighbour sampling, which keeps
// 1px grid lines crisp. The result is at least 1x1.
func Scale(img image.Image, factor float64) *image.RGBA {
	r := img.Bounds()
	w := max(1, int(math.Round(float64(r.Dx())*factor)))
	h := max(1, int(math.Round(float64(r.Dy())*factor)))
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), img, r, xdraw.Src, nil)
	return out
}
