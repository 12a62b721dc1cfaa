package gridcanvas

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Default dimensions of a freshly created surface, matching an HTML canvas
// element with no width or height attributes.
const (
	DefaultSurfaceWidth  = 300
	DefaultSurfaceHeight = 150
)

// Surface is a drawing target with mutable pixel dimensions and one
// associated 2-D context. Pixels are rasterized by a gg software context.
//
// Surfaces are NOT safe for concurrent use.
type Surface struct {
	id     string
	width  int
	height int
	border Border

	dc  *gg.Context
	ctx *Context2D

	strokes []StrokeRecord
	fills   []FillRecord
	closed  bool
}

// NewSurface creates a transparent surface of the default size.
func NewSurface(id string) *Surface {
	s := &Surface{
		id:     id,
		width:  DefaultSurfaceWidth,
		height: DefaultSurfaceHeight,
		dc:     gg.NewContext(DefaultSurfaceWidth, DefaultSurfaceHeight),
	}
	s.ctx = newContext2D(s)
	return s
}

// ID returns the element identifier of the surface.
func (s *Surface) ID() string { return s.id }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// SetSize sets the pixel dimensions. Like assigning canvas.width or
// canvas.height, it always clears the pixels, the pending path, the stroke
// log and the context state, even when the size is unchanged.
func (s *Surface) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width != s.width || height != s.height {
		if err := s.dc.Resize(width, height); err != nil {
			return fmt.Errorf("gridcanvas: resize surface %q: %w", s.id, err)
		}
		s.width, s.height = width, height
	}
	s.dc.Clear()
	s.dc.ClearPath()
	s.strokes = nil
	s.fills = nil
	s.ctx.reset()
	return nil
}

// Border returns the CSS border of the surface element.
func (s *Surface) Border() Border { return s.border }

// SetBorder sets the CSS border of the surface element.
func (s *Surface) SetBorder(b Border) { s.border = b }

// SetBorderCSS parses and applies a CSS border shorthand such as
// "1px solid #000".
func (s *Surface) SetBorderCSS(css string) error {
	b, err := ParseBorder(css)
	if err != nil {
		return err
	}
	s.border = b
	return nil
}

// Context2D returns the surface's drawing context. The same context is
// returned on every call.
func (s *Surface) Context2D() *Context2D { return s.ctx }

// Strokes returns a copy of the stroke log since the last SetSize.
func (s *Surface) Strokes() []StrokeRecord {
	out := make([]StrokeRecord, len(s.strokes))
	for i, r := range s.strokes {
		out[i] = StrokeRecord{
			Segments: append([]Segment(nil), r.Segments...),
			Style:    r.Style,
		}
	}
	return out
}

// Segments returns every stroked segment since the last SetSize, in order.
func (s *Surface) Segments() []Segment {
	var out []Segment
	for _, r := range s.strokes {
		out = append(out, r.Segments...)
	}
	return out
}

// Fills returns a copy of the fill log since the last SetSize.
func (s *Surface) Fills() []FillRecord {
	return append([]FillRecord(nil), s.fills...)
}

// Image returns the current pixels as an RGBA image.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the current pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Close releases the rasterizer. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}
