package gridcanvas

import "github.com/gogpu/gg"

// Grid defaults.
const (
	// DefaultSurfaceID is the element identifier the grid renders into.
	DefaultSurfaceID = "game"

	// DefaultCells is the number of cells along each side.
	DefaultCells = 20

	// DefaultSize is the surface width and height in pixels.
	DefaultSize = 800
)

// DefaultFillColor is the colour used for cells that are on.
var DefaultFillColor = gg.Hex("#4a90d9")

// Option configures a Grid during creation.
//
// Example:
//
//	// The fixed 20x20 lattice on surface "game"
//	g, err := gridcanvas.NewGrid(doc)
//
//	// A 10x10 lattice on a 400x300 surface with line diagnostics
//	g, err := gridcanvas.NewGrid(doc,
//	    gridcanvas.WithCells(10),
//	    gridcanvas.WithSize(400, 300),
//	    gridcanvas.WithVerbose(true))
type Option func(*gridOptions)

type gridOptions struct {
	surfaceID string
	cells     int
	width     int
	height    int
	stroke    StrokeStyle
	fill      gg.RGBA
	border    string
	verbose   bool
}

func defaultGridOptions() gridOptions {
	return gridOptions{
		surfaceID: DefaultSurfaceID,
		cells:     DefaultCells,
		width:     DefaultSize,
		height:    DefaultSize,
		stroke:    GridStrokeStyle(),
		fill:      DefaultFillColor,
		border:    DefaultBorder,
	}
}

// WithSurfaceID selects the surface to render into.
func WithSurfaceID(id string) Option {
	return func(o *gridOptions) {
		o.surfaceID = id
	}
}

// WithCells sets the number of cells along each side.
func WithCells(n int) Option {
	return func(o *gridOptions) {
		o.cells = n
	}
}

// WithSize sets the surface pixel dimensions. Width and height may differ;
// vertical lines span the height and horizontal lines span the width.
func WithSize(width, height int) Option {
	return func(o *gridOptions) {
		o.width = width
		o.height = height
	}
}

// WithStrokeStyle sets the lattice line style.
func WithStrokeStyle(s StrokeStyle) Option {
	return func(o *gridOptions) {
		o.stroke = s
	}
}

// WithFillColor sets the colour of cells that are on.
func WithFillColor(c gg.RGBA) Option {
	return func(o *gridOptions) {
		o.fill = c
	}
}

// WithBorder sets the CSS border applied to the surface element.
// An empty string removes the border.
func WithBorder(css string) Option {
	return func(o *gridOptions) {
		o.border = css
	}
}

// WithVerbose logs every line coordinate at debug level while rendering.
func WithVerbose(on bool) Option {
	return func(o *gridOptions) {
		o.verbose = on
	}
}
