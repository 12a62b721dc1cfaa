package gridcanvas

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Context2D is the canvas-like drawing context of a Surface. Path operations
// accumulate segments; Stroke renders all of them at once with the current
// style and records them in the surface's stroke log.
//
// Unlike gg.Context, Stroke does not consume the path. Call BeginPath to
// start a new one.
type Context2D struct {
	surface *Surface

	style StrokeStyle
	fill  gg.RGBA

	path           []Segment
	curX, curY     float64
	startX, startY float64
	hasCurrent     bool
}

func newContext2D(s *Surface) *Context2D {
	c := &Context2D{surface: s}
	c.reset()
	return c
}

// reset restores the initial drawing state and drops the pending path.
func (c *Context2D) reset() {
	c.style = DefaultStrokeStyle()
	c.fill = gg.Black
	c.path = nil
	c.hasCurrent = false
}

// Surface returns the surface the context draws on.
func (c *Context2D) Surface() *Surface { return c.surface }

// SetLineCap sets the cap used for line ends.
func (c *Context2D) SetLineCap(lineCap gg.LineCap) { c.style.Cap = lineCap }

// LineCap returns the current line cap.
func (c *Context2D) LineCap() gg.LineCap { return c.style.Cap }

// SetLineJoin sets the join used between connected segments.
func (c *Context2D) SetLineJoin(join gg.LineJoin) { c.style.Join = join }

// LineJoin returns the current line join.
func (c *Context2D) LineJoin() gg.LineJoin { return c.style.Join }

// SetLineWidth sets the stroke width. Non-positive and NaN values are
// ignored, as on a canvas.
func (c *Context2D) SetLineWidth(width float64) {
	if width > 0 {
		c.style.Width = width
	}
}

// LineWidth returns the current stroke width.
func (c *Context2D) LineWidth() float64 { return c.style.Width }

// SetStrokeStyle sets the stroke colour from a CSS colour string.
// On error the previous colour is kept.
func (c *Context2D) SetStrokeStyle(css string) error {
	col, err := ParseColor(css)
	if err != nil {
		return err
	}
	c.style.Color = col
	return nil
}

// SetStrokeColor sets the stroke colour directly.
func (c *Context2D) SetStrokeColor(col gg.RGBA) { c.style.Color = col }

// StrokeColor returns the current stroke colour.
func (c *Context2D) StrokeColor() gg.RGBA { return c.style.Color }

// SetFillStyle sets the fill colour from a CSS colour string.
func (c *Context2D) SetFillStyle(css string) error {
	col, err := ParseColor(css)
	if err != nil {
		return err
	}
	c.fill = col
	return nil
}

// SetFillColor sets the fill colour directly.
func (c *Context2D) SetFillColor(col gg.RGBA) { c.fill = col }

// FillColor returns the current fill colour.
func (c *Context2D) FillColor() gg.RGBA { return c.fill }

// Style returns the stroke style that the next Stroke would use.
func (c *Context2D) Style() StrokeStyle { return c.style }

// PendingSegments returns a copy of the segments in the current path.
func (c *Context2D) PendingSegments() []Segment {
	return append([]Segment(nil), c.path...)
}

// BeginPath discards the current path.
func (c *Context2D) BeginPath() {
	c.surface.dc.ClearPath()
	c.path = nil
	c.hasCurrent = false
}

// MoveTo starts a new subpath at (x, y).
func (c *Context2D) MoveTo(x, y float64) {
	c.surface.dc.MoveTo(x, y)
	c.curX, c.curY = x, y
	c.startX, c.startY = x, y
	c.hasCurrent = true
}

// LineTo adds a segment from the current point to (x, y). Without a current
// point it behaves as MoveTo.
func (c *Context2D) LineTo(x, y float64) {
	if !c.hasCurrent {
		c.MoveTo(x, y)
		return
	}
	c.surface.dc.LineTo(x, y)
	c.path = append(c.path, Seg(c.curX, c.curY, x, y))
	c.curX, c.curY = x, y
}

// ClosePath adds a segment back to the start of the current subpath.
func (c *Context2D) ClosePath() {
	if !c.hasCurrent {
		return
	}
	if c.curX != c.startX || c.curY != c.startY {
		c.path = append(c.path, Seg(c.curX, c.curY, c.startX, c.startY))
	}
	c.surface.dc.ClosePath()
	c.curX, c.curY = c.startX, c.startY
}

// Stroke renders every segment of the current path with the current style.
// The path is kept.
func (c *Context2D) Stroke() error {
	if len(c.path) == 0 {
		return nil
	}
	dc := c.surface.dc
	dc.SetLineCap(c.style.Cap)
	dc.SetLineJoin(c.style.Join)
	dc.SetLineWidth(c.style.Width)
	dc.SetColor(c.style.Color)
	if err := dc.StrokePreserve(); err != nil {
		return fmt.Errorf("gridcanvas: stroke %d segments: %w", len(c.path), err)
	}
	c.surface.strokes = append(c.surface.strokes, StrokeRecord{
		Segments: c.PendingSegments(),
		Style:    c.style,
	})
	return nil
}

// FillRect fills a rectangle with the fill colour. The current path is
// left untouched.
func (c *Context2D) FillRect(x, y, w, h float64) error {
	if w == 0 || h == 0 {
		return nil
	}
	dc := c.surface.dc
	dc.ClearPath()
	dc.DrawRectangle(x, y, w, h)
	dc.SetColor(c.fill)
	err := dc.Fill()
	c.restorePath()
	if err != nil {
		return fmt.Errorf("gridcanvas: fill rect: %w", err)
	}
	c.surface.fills = append(c.surface.fills, FillRecord{X: x, Y: y, W: w, H: h, Color: c.fill})
	return nil
}

// restorePath rebuilds the rasterizer path from the recorded segments.
func (c *Context2D) restorePath() {
	dc := c.surface.dc
	dc.ClearPath()
	for _, s := range c.path {
		dc.MoveTo(s.X0, s.Y0)
		dc.LineTo(s.X1, s.Y1)
	}
	if c.hasCurrent {
		dc.MoveTo(c.curX, c.curY)
	}
}
