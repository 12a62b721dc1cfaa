package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"

	"github.com/gogpu/gridcanvas"
)

func newGrid(t *testing.T, opts ...gridcanvas.Option) *gridcanvas.Grid {
	t.Helper()
	doc := gridcanvas.NewDocument()
	if _, err := doc.CreateSurface(gridcanvas.DefaultSurfaceID); err != nil {
		t.Fatal(err)
	}
	g, err := gridcanvas.NewGrid(doc, opts...)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	t.Cleanup(func() { _ = g.Surface().Close() })
	return g
}

func TestWritePNG(t *testing.T) {
	g := newGrid(t)
	var buf bytes.Buffer
	if err := WritePNG(&buf, g.Surface(), PNGOptions{}); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 800, 800) {
		t.Errorf("bounds = %v, want 800x800", img.Bounds())
	}
}

func TestFrame(t *testing.T) {
	g := newGrid(t)
	img := Image(g.Surface(), PNGOptions{Framed: true, Background: color.White})

	if img.Bounds() != image.Rect(0, 0, 802, 802) {
		t.Fatalf("framed bounds = %v, want 802x802", img.Bounds())
	}
	// Border pixel is opaque black.
	if r, gr, b, a := img.At(0, 400).RGBA(); r != 0 || gr != 0 || b != 0 || a != 0xffff {
		t.Errorf("border pixel = %v,%v,%v,%v, want opaque black", r, gr, b, a)
	}
	// Cell centre shows the white background.
	if r, _, _, a := img.At(21, 21).RGBA(); r != 0xffff || a != 0xffff {
		t.Errorf("cell centre = r%v a%v, want opaque white", r, a)
	}
}

func TestFrameNoBorder(t *testing.T) {
	g := newGrid(t, gridcanvas.WithBorder(""))
	img := Frame(g.Surface().Image(), g.Surface().Border(), nil)
	if img.Bounds() != image.Rect(0, 0, 800, 800) {
		t.Errorf("bounds = %v, want no margin without a border", img.Bounds())
	}
}

func TestScale(t *testing.T) {
	g := newGrid(t)
	img := Image(g.Surface(), PNGOptions{Scale: 0.5})
	if img.Bounds() != image.Rect(0, 0, 400, 400) {
		t.Errorf("scaled bounds = %v, want 400x400", img.Bounds())
	}

	tiny := Scale(image.NewRGBA(image.Rect(0, 0, 10, 10)), 0.01)
	if tiny.Bounds() != image.Rect(0, 0, 1, 1) {
		t.Errorf("tiny bounds = %v, want 1x1", tiny.Bounds())
	}
}

func TestSegmentRecords(t *testing.T) {
	g := newGrid(t, gridcanvas.WithCells(2), gridcanvas.WithSize(80, 80))
	recs := SegmentRecords(g.Surface().Strokes())
	if len(recs) != 6 {
		t.Fatalf("len(records) = %d, want 6", len(recs))
	}
	want := SegmentRecord{
		Stroke: 0, Index: 2, Orientation: Vertical,
		X0: 40, Y0: 0, X1: 40, Y1: 80,
		Color: "#000000", LineWidth: 1,
	}
	if recs[2] != want {
		t.Errorf("records[2] = %+v, want %+v", recs[2], want)
	}
	if recs[3].Orientation != Horizontal {
		t.Errorf("records[3].Orientation = %q, want horizontal", recs[3].Orientation)
	}
	if orientation(gridcanvas.Seg(0, 0, 5, 5)) != Diagonal {
		t.Error("diagonal segment misclassified")
	}
}

func TestWriteSegmentsCSV(t *testing.T) {
	g := newGrid(t)
	var buf bytes.Buffer
	if err := WriteSegmentsCSV(&buf, g.Surface()); err != nil {
		t.Fatalf("WriteSegmentsCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 43 {
		t.Fatalf("got %d lines, want header + 42 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "stroke,index,orientation,x0,y0,x1,y1") {
		t.Errorf("header = %q", lines[0])
	}

	var back []SegmentRecord
	if err := gocsv.UnmarshalString(buf.String(), &back); err != nil {
		t.Fatalf("UnmarshalString: %v", err)
	}
	var vertical int
	for _, r := range back {
		if r.Orientation == Vertical {
			vertical++
		}
	}
	if vertical != 21 {
		t.Errorf("vertical rows = %d, want 21", vertical)
	}
}
