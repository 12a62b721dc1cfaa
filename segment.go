package gridcanvas

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Segment is a straight line in the current path, in surface pixels.
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Seg is shorthand for a Segment from (x0, y0) to (x1, y1).
func Seg(x0, y0, x1, y1 float64) Segment {
	return Segment{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Vertical reports whether the segment has constant x.
func (s Segment) Vertical() bool { return s.X0 == s.X1 && s.Y0 != s.Y1 }

// Horizontal reports whether the segment has constant y.
func (s Segment) Horizontal() bool { return s.Y0 == s.Y1 && s.X0 != s.X1 }

// StrokeRecord is one stroke call: the segments it rendered and the style
// that was in effect.
type StrokeRecord struct {
	Segments []Segment
	Style    StrokeStyle
}

// FillRecord is one filled rectangle.
type FillRecord struct {
	X, Y, W, H float64
	Color      gg.RGBA
}

// Bounds returns the pixel rectangle covered by the fill, rounded outward.
func (f FillRecord) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(f.X)), int(math.Floor(f.Y)),
		int(math.Ceil(f.X+f.W)), int(math.Ceil(f.Y+f.H)),
	)
}
