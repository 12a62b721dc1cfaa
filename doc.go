// Package gridcanvas draws a fixed-size square grid onto a drawing surface.
//
// # Overview
//
// A [Document] holds surfaces keyed by element identifier, the way an HTML
// document holds canvas elements. [NewGrid] looks up its surface (by default
// "game"), sizes it to 800x800, styles it and strokes a 20x20 lattice of
// 40px cells in 1px black lines with a "1px solid #000" border.
//
// Pixels are rasterized by the gg software renderer, so output is
// deterministic and needs no GPU or display.
//
// # Quick Start
//
//	doc := gridcanvas.NewDocument()
//	if _, err := doc.CreateSurface(gridcanvas.DefaultSurfaceID); err != nil {
//	    return err
//	}
//	g, err := gridcanvas.NewGrid(doc)
//	if err != nil {
//	    return err
//	}
//	f, _ := os.Create("grid.png")
//	defer f.Close()
//	return g.Surface().EncodePNG(f)
//
// # Stroke log
//
// Every Stroke call on a [Context2D] is recorded with its segments and style,
// so the rendered stroke set can be inspected or exported without reading
// pixels back. See [Surface.Strokes] and [Surface.Segments].
//
// # Cell state
//
// A grid carries a [CellState] with one flag per cell. Cells that are on are
// filled with the fill colour on the next [Grid.Render].
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package gridcanvas
