package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/gogpu/gridcanvas"
)

// SegmentRecord is one row of the stroke-log CSV.
type SegmentRecord struct {
	Stroke      int     `csv:"stroke"`
	Index       int     `csv:"index"`
	Orientation string  `csv:"orientation"`
	X0          float64 `csv:"x0"`
	Y0          float64 `csv:"y0"`
	X1          float64 `csv:"x1"`
	Y1          float64 `csv:"y1"`
	Color       string  `csv:"color"`
	LineWidth   float64 `csv:"line_width"`
}

// Orientation names used in SegmentRecord.
const (
	Vertical   = "vertical"
	Horizontal = "horizontal"
	Diagonal   = "diagonal"
)

func orientation(s gridcanvas.Segment) string {
	switch {
	case s.Vertical():
		return Vertical
	case s.Horizontal():
		return Horizontal
	}
	return Diagonal
}

// SegmentRecords flattens a stroke log into CSV rows, numbering strokes and
// segments from zero.
func SegmentRecords(strokes []gridcanvas.StrokeRecord) []SegmentRecord {
	var out []SegmentRecord
	for i, st := range strokes {
		color := gridcanvas.HexColor(st.Style.Color)
		for j, s := range st.Segments {
			out = append(out, SegmentRecord{
				Stroke:      i,
				Index:       j,
				Orientation: orientation(s),
				X0:          s.X0,
				Y0:          s.Y0,
				X1:          s.X1,
				Y1:          s.Y1,
				Color:       color,
				LineWidth:   st.Style.Width,
			})
		}
	}
	return out
}

// WriteSegmentsCSV writes the stroke log of s as CSV with a header row.
func WriteSegmentsCSV(w io.Writer, s *gridcanvas.Surface) error {
	return WriteRecordsCSV(w, SegmentRecords(s.Strokes()))
}

// WriteRecordsCSV writes records as CSV with a header row.
func WriteRecordsCSV(w io.Writer, records []SegmentRecord) error {
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("export: writing segments: %w", err)
	}
	return nil
}
