// Package termview draws a rendered grid as box-drawing characters in a
// terminal, scaling the surface onto whatever size the terminal has.
package termview

import (
	"context"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"github.com/gogpu/gridcanvas"
)

const (
	runeVertical   = '│'
	runeHorizontal = '─'
	runeCross      = '┼'
	runeCell       = '█'
)

const (
	maskVertical uint8 = 1 << iota
	maskHorizontal
)

// Preview shows one grid on a tcell screen.
type Preview struct {
	screen tcell.Screen
	grid   *gridcanvas.Grid

	lineStyle tcell.Style
	cellStyle tcell.Style
}

// New returns a preview of g on screen. The screen must already be
// initialized; the caller owns it and calls Fini.
func New(screen tcell.Screen, g *gridcanvas.Grid) *Preview {
	st := g.Surface().Context2D().Style()
	fill := g.Surface().Context2D().FillColor()
	return &Preview{
		screen:    screen,
		grid:      g,
		lineStyle: tcell.StyleDefault.Foreground(tcellColor(st.Color)),
		cellStyle: tcell.StyleDefault.Foreground(tcellColor(fill)),
	}
}

// tcellColor maps an opaque black to the terminal default so the lattice
// stays readable on dark backgrounds.
func tcellColor(c gg.RGBA) tcell.Color {
	if c.A == 0 || (c.R == 0 && c.G == 0 && c.B == 0) {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int32 {
	return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Draw renders the current stroke and cell state to the screen and shows it.
func (p *Preview) Draw() {
	p.screen.Clear()
	cols, rows := p.screen.Size()
	if cols < 2 || rows < 2 {
		p.screen.Show()
		return
	}

	s := p.grid.Surface()
	sw, sh := float64(s.Width()), float64(s.Height())
	col := func(x float64) int { return int(math.Round(x / sw * float64(cols-1))) }
	row := func(y float64) int { return int(math.Round(y / sh * float64(rows-1))) }

	cw, ch := p.grid.CellWidth(), p.grid.CellHeight()
	for _, pos := range p.grid.State().Active() {
		c0, c1 := col(float64(pos.Col)*cw), col(float64(pos.Col+1)*cw)
		r0, r1 := row(float64(pos.Row)*ch), row(float64(pos.Row+1)*ch)
		for y := r0 + 1; y < r1; y++ {
			for x := c0 + 1; x < c1; x++ {
				p.screen.SetContent(x, y, runeCell, nil, p.cellStyle)
			}
		}
	}

	mask := make([]uint8, cols*rows)
	for _, seg := range s.Segments() {
		switch {
		case seg.Vertical():
			x := col(seg.X0)
			for y := row(min(seg.Y0, seg.Y1)); y <= row(max(seg.Y0, seg.Y1)); y++ {
				mask[y*cols+x] |= maskVertical
			}
		case seg.Horizontal():
			y := row(seg.Y0)
			for x := col(min(seg.X0, seg.X1)); x <= col(max(seg.X0, seg.X1)); x++ {
				mask[y*cols+x] |= maskHorizontal
			}
		}
	}
	for i, m := range mask {
		var r rune
		switch m {
		case maskVertical:
			r = runeVertical
		case maskHorizontal:
			r = runeHorizontal
		case maskVertical | maskHorizontal:
			r = runeCross
		default:
			continue
		}
		p.screen.SetContent(i%cols, i/cols, r, nil, p.lineStyle)
	}
	p.screen.Show()
}

// Run draws the grid and redraws on resize until ctx is cancelled or the
// user presses q, Esc or Ctrl-C.
func (p *Preview) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go p.screen.ChannelEvents(events, quit)

	p.Draw()
	log := gridcanvas.Logger()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				p.screen.Sync()
				p.Draw()
				w, h := ev.Size()
				log.Debug("preview resized", "cols", w, "rows", h)
			case *tcell.EventKey:
				if quitKey(ev) {
					return nil
				}
			}
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
