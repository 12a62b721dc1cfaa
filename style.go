package gridcanvas

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// StrokeStyle is the line style in effect when a path is stroked.
type StrokeStyle struct {
	// Color is the stroke colour.
	Color gg.RGBA

	// Width is the line width in pixels.
	Width float64

	// Cap is the line cap style.
	Cap gg.LineCap

	// Join is the line join style.
	Join gg.LineJoin
}

// DefaultStrokeStyle returns the initial context style of a fresh surface:
// black, 1px, butt caps, miter joins.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Color: gg.Black,
		Width: 1,
		Cap:   gg.LineCapButt,
		Join:  gg.LineJoinMiter,
	}
}

// GridStrokeStyle returns the lattice style: black, 1px, round caps and joins.
func GridStrokeStyle() StrokeStyle {
	return DefaultStrokeStyle().WithCap(gg.LineCapRound).WithJoin(gg.LineJoinRound)
}

// WithColor returns a copy with the specified colour.
func (s StrokeStyle) WithColor(c gg.RGBA) StrokeStyle {
	s.Color = c
	return s
}

// WithWidth returns a copy with the specified width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// WithCap returns a copy with the specified cap style.
func (s StrokeStyle) WithCap(lineCap gg.LineCap) StrokeStyle {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy with the specified join style.
func (s StrokeStyle) WithJoin(join gg.LineJoin) StrokeStyle {
	s.Join = join
	return s
}

// namedColors is the subset of CSS colour keywords the grid is styled with.
var namedColors = map[string]gg.RGBA{
	"black":       gg.Black,
	"white":       gg.White,
	"red":         gg.Red,
	"lime":        gg.Green,
	"green":       gg.RGB(0, 128.0/255, 0),
	"blue":        gg.Blue,
	"yellow":      gg.Yellow,
	"cyan":        gg.Cyan,
	"aqua":        gg.Cyan,
	"magenta":     gg.Magenta,
	"fuchsia":     gg.Magenta,
	"gray":        gg.RGB(128.0/255, 128.0/255, 128.0/255),
	"grey":        gg.RGB(128.0/255, 128.0/255, 128.0/255),
	"silver":      gg.RGB(192.0/255, 192.0/255, 192.0/255),
	"navy":        gg.RGB(0, 0, 128.0/255),
	"transparent": gg.Transparent,
}

// ParseColor parses a CSS colour: a keyword such as "black" or a hex form
// ("#000", "#000000", "#0008", "#00000080").
func ParseColor(s string) (gg.RGBA, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[key]; ok {
		return c, nil
	}
	if !strings.HasPrefix(key, "#") {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := gg.ParseHex(key)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	return c, nil
}

// ParseLineCap parses a canvas lineCap value.
func ParseLineCap(s string) (gg.LineCap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "butt":
		return gg.LineCapButt, nil
	case "round":
		return gg.LineCapRound, nil
	case "square":
		return gg.LineCapSquare, nil
	}
	return gg.LineCapButt, fmt.Errorf("%w: line cap %q", ErrInvalidLineStyle, s)
}

// ParseLineJoin parses a canvas lineJoin value.
func ParseLineJoin(s string) (gg.LineJoin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "miter":
		return gg.LineJoinMiter, nil
	case "round":
		return gg.LineJoinRound, nil
	case "bevel":
		return gg.LineJoinBevel, nil
	}
	return gg.LineJoinMiter, fmt.Errorf("%w: line join %q", ErrInvalidLineStyle, s)
}

// Border is a CSS-level border around a surface element. It is not part of
// the drawn pixels; exporters may composite it around the image.
type Border struct {
	// Width is the border width in pixels. Zero means no border.
	Width int

	// Style is the CSS border-style keyword, e.g. "solid".
	Style string

	// Color is the parsed border colour.
	Color gg.RGBA

	// css is the shorthand the border was parsed from.
	css string
}

// DefaultBorder is the border applied to the grid surface.
const DefaultBorder = "1px solid #000"

var borderStyles = map[string]bool{
	"none": true, "hidden": true, "solid": true, "dotted": true, "dashed": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

// ParseBorder parses a CSS border shorthand such as "1px solid #000".
// Tokens may appear in any order; width must be given in px.
func ParseBorder(s string) (Border, error) {
	b := Border{Style: "none", Color: gg.Black, css: strings.TrimSpace(s)}
	fields := strings.Fields(b.css)
	if len(fields) == 0 {
		return Border{}, fmt.Errorf("%w: empty", ErrInvalidBorder)
	}
	for _, f := range fields {
		switch {
		case strings.HasSuffix(f, "px"):
			w, err := strconv.Atoi(strings.TrimSuffix(f, "px"))
			if err != nil || w < 0 {
				return Border{}, fmt.Errorf("%w: width %q", ErrInvalidBorder, f)
			}
			b.Width = w
		case borderStyles[strings.ToLower(f)]:
			b.Style = strings.ToLower(f)
		default:
			c, err := ParseColor(f)
			if err != nil {
				return Border{}, fmt.Errorf("%w: %v", ErrInvalidBorder, err)
			}
			b.Color = c
		}
	}
	return b, nil
}

// Visible reports whether the border draws anything.
func (b Border) Visible() bool {
	return b.Width > 0 && b.Style != "none" && b.Style != "hidden" && b.Color.A > 0
}

// String returns the CSS shorthand, e.g. "1px solid #000".
func (b Border) String() string {
	if b.css != "" {
		return b.css
	}
	if b.Width == 0 && b.Style == "" {
		return ""
	}
	return fmt.Sprintf("%dpx %s %s", b.Width, b.Style, HexColor(b.Color))
}

// HexColor formats c as "#rrggbb", or "#rrggbbaa" when not opaque.
func HexColor(c gg.RGBA) string {
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", channel8(c.R), channel8(c.G), channel8(c.B))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", channel8(c.R), channel8(c.G), channel8(c.B), channel8(c.A))
}

func channel8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
