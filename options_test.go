package gridcanvas

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestDefaultGridOptions(t *testing.T) {
	o := defaultGridOptions()
	if o.surfaceID != "game" {
		t.Errorf("surfaceID = %q, want game", o.surfaceID)
	}
	if o.cells != 20 || o.width != 800 || o.height != 800 {
		t.Errorf("cells/size = %d %dx%d, want 20 800x800", o.cells, o.width, o.height)
	}
	if o.border != "1px solid #000" {
		t.Errorf("border = %q, want 1px solid #000", o.border)
	}
	if o.stroke != GridStrokeStyle() {
		t.Errorf("stroke = %+v, want GridStrokeStyle()", o.stroke)
	}
	if o.verbose {
		t.Error("verbose should default to false")
	}
}

func TestOptionsApply(t *testing.T) {
	o := defaultGridOptions()
	for _, opt := range []Option{
		WithSurfaceID("board"),
		WithCells(8),
		WithSize(640, 480),
		WithStrokeStyle(GridStrokeStyle().WithWidth(2).WithColor(gg.Red)),
		WithFillColor(gg.Blue),
		WithBorder(""),
		WithVerbose(true),
	} {
		opt(&o)
	}

	if o.surfaceID != "board" {
		t.Errorf("surfaceID = %q", o.surfaceID)
	}
	if o.cells != 8 || o.width != 640 || o.height != 480 {
		t.Errorf("cells/size = %d %dx%d", o.cells, o.width, o.height)
	}
	if o.stroke.Width != 2 || o.stroke.Color != gg.Red || o.stroke.Cap != gg.LineCapRound {
		t.Errorf("stroke = %+v", o.stroke)
	}
	if o.fill != gg.Blue {
		t.Errorf("fill = %v, want blue", o.fill)
	}
	if o.border != "" || !o.verbose {
		t.Errorf("border/verbose = %q/%v", o.border, o.verbose)
	}
}
