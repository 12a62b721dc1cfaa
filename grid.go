package gridcanvas

import (
	"context"
	"fmt"
	"log/slog"
)

// Grid renders a square lattice of cells onto a surface. It owns the surface
// it was constructed against and a CellState with one flag per cell.
type Grid struct {
	surface *Surface
	opts    gridOptions
	border  Border
	state   *CellState
}

// NewGrid locates the surface in doc, sizes it, styles it and strokes the
// lattice once. With no options this is a 20x20 grid of 40px cells on an
// 800x800 surface identified by "game", drawn in 1px black lines with a
// "1px solid #000" border.
//
// A missing surface yields an error matching ErrSurfaceNotFound and nothing
// is drawn.
func NewGrid(doc *Document, opts ...Option) (*Grid, error) {
	o := defaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.cells <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCells, o.cells)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.width, o.height)
	}
	var border Border
	if o.border != "" {
		b, err := ParseBorder(o.border)
		if err != nil {
			return nil, err
		}
		border = b
	}

	s, err := doc.GetSurface(o.surfaceID)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		surface: s,
		opts:    o,
		border:  border,
		state:   NewCellState(o.cells, o.cells),
	}
	if err := g.Render(); err != nil {
		return nil, err
	}
	return g, nil
}

// Surface returns the surface the grid renders into.
func (g *Grid) Surface() *Surface { return g.surface }

// State returns the per-cell state. Changes take effect on the next Render.
func (g *Grid) State() *CellState { return g.state }

// Cells returns the number of cells along each side.
func (g *Grid) Cells() int { return g.opts.cells }

// CellWidth returns the pixel width of one cell.
func (g *Grid) CellWidth() float64 {
	return float64(g.surface.Width()) / float64(g.opts.cells)
}

// CellHeight returns the pixel height of one cell.
func (g *Grid) CellHeight() float64 {
	return float64(g.surface.Height()) / float64(g.opts.cells)
}

// CellSize returns surfaceHeight / cells. It equals CellWidth when the
// surface is square.
func (g *Grid) CellSize() float64 { return g.CellHeight() }

// Render performs one full drawing pass: resize (which clears), style, fill
// the cells that are on, then build the lattice path and stroke it once.
// Rendering twice yields the same pixels and the same stroke log.
func (g *Grid) Render() error {
	s := g.surface
	if err := s.SetSize(g.opts.width, g.opts.height); err != nil {
		return err
	}
	s.SetBorder(g.border)

	ctx := s.Context2D()
	ctx.SetLineCap(g.opts.stroke.Cap)
	ctx.SetLineJoin(g.opts.stroke.Join)
	ctx.SetStrokeColor(g.opts.stroke.Color)
	ctx.SetLineWidth(g.opts.stroke.Width)
	ctx.SetFillColor(g.opts.fill)

	if err := g.fillActive(ctx); err != nil {
		return err
	}

	width, height := float64(s.Width()), float64(s.Height())
	log := Logger()
	verbose := g.opts.verbose && log.Enabled(context.Background(), slog.LevelDebug)

	ctx.BeginPath()
	for i := 0; i <= g.opts.cells; i++ {
		x := float64(i*s.Width()) / float64(g.opts.cells)
		y := float64(i*s.Height()) / float64(g.opts.cells)

		ctx.MoveTo(x, 0)
		ctx.LineTo(x, height)
		ctx.MoveTo(0, y)
		ctx.LineTo(width, y)

		if verbose {
			log.Debug("grid line", "index", i, "x", x, "y", y)
		}
	}

	ctx.SetStrokeColor(g.opts.stroke.Color)
	if err := ctx.Stroke(); err != nil {
		return err
	}

	log.Info("grid rendered",
		"surface", s.ID(),
		"cells", g.opts.cells,
		"width", s.Width(),
		"height", s.Height(),
		"segments", len(ctx.PendingSegments()),
	)
	return nil
}

func (g *Grid) fillActive(ctx *Context2D) error {
	cw, ch := g.CellWidth(), g.CellHeight()
	for _, p := range g.state.Active() {
		if err := ctx.FillRect(float64(p.Col)*cw, float64(p.Row)*ch, cw, ch); err != nil {
			return err
		}
	}
	return nil
}
