package gridcanvas

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gg.RGBA
	}{
		{"black", gg.Black},
		{"BLACK", gg.Black},
		{" white ", gg.White},
		{"#000", gg.Black},
		{"#000000", gg.Black},
		{"#ff0000", gg.Red},
		{"#f00f", gg.Red},
		{"transparent", gg.Transparent},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "blackish", "#12", "#gggggg", "000"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) err = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestParseLineCapJoin(t *testing.T) {
	caps := map[string]gg.LineCap{
		"butt": gg.LineCapButt, "round": gg.LineCapRound, "Square": gg.LineCapSquare,
	}
	for in, want := range caps {
		got, err := ParseLineCap(in)
		if err != nil || got != want {
			t.Errorf("ParseLineCap(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	joins := map[string]gg.LineJoin{
		"miter": gg.LineJoinMiter, "round": gg.LineJoinRound, "bevel": gg.LineJoinBevel,
	}
	for in, want := range joins {
		got, err := ParseLineJoin(in)
		if err != nil || got != want {
			t.Errorf("ParseLineJoin(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseLineCap("pointy"); !errors.Is(err, ErrInvalidLineStyle) {
		t.Errorf("ParseLineCap(pointy) err = %v", err)
	}
	if _, err := ParseLineJoin("pointy"); !errors.Is(err, ErrInvalidLineStyle) {
		t.Errorf("ParseLineJoin(pointy) err = %v", err)
	}
}

func TestParseBorder(t *testing.T) {
	b, err := ParseBorder("1px solid #000")
	if err != nil {
		t.Fatalf("ParseBorder: %v", err)
	}
	if b.Width != 1 || b.Style != "solid" || b.Color != gg.Black {
		t.Errorf("border = %+v, want 1px solid black", b)
	}
	if b.String() != "1px solid #000" {
		t.Errorf("String() = %q, want the original shorthand", b.String())
	}
	if !b.Visible() {
		t.Error("Visible() = false for 1px solid")
	}

	b, err = ParseBorder("red dashed 3px")
	if err != nil {
		t.Fatalf("ParseBorder: %v", err)
	}
	if b.Width != 3 || b.Style != "dashed" || b.Color != gg.Red {
		t.Errorf("border = %+v, want 3px dashed red", b)
	}

	b, _ = ParseBorder("2px none")
	if b.Visible() {
		t.Error("border-style none should not be visible")
	}
}

func TestParseBorderInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "1xp solid", "-1px solid", "1px solid nope"} {
		if _, err := ParseBorder(in); !errors.Is(err, ErrInvalidBorder) {
			t.Errorf("ParseBorder(%q) err = %v, want ErrInvalidBorder", in, err)
		}
	}
}

func TestBorderStringBuilt(t *testing.T) {
	b := Border{Width: 2, Style: "solid", Color: gg.Red}
	if got := b.String(); got != "2px solid #ff0000" {
		t.Errorf("String() = %q, want 2px solid #ff0000", got)
	}
	if got := (Border{}).String(); got != "" {
		t.Errorf("zero Border String() = %q, want empty", got)
	}
}

func TestGridStrokeStyleDefaults(t *testing.T) {
	s := GridStrokeStyle()
	if s.Cap != gg.LineCapRound || s.Join != gg.LineJoinRound {
		t.Errorf("cap/join = %v/%v, want round/round", s.Cap, s.Join)
	}
	if s.Width != 1 || s.Color != gg.Black {
		t.Errorf("width/color = %v/%v, want 1/black", s.Width, s.Color)
	}
	d := DefaultStrokeStyle()
	if d.Cap != gg.LineCapButt || d.Join != gg.LineJoinMiter {
		t.Errorf("default cap/join = %v/%v, want butt/miter", d.Cap, d.Join)
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   gg.RGBA
		want string
	}{
		{gg.Black, "#000000"},
		{gg.Red, "#ff0000"},
		{gg.RGBA2(0, 0, 1, 0.5), "#0000ff80"},
	}
	for _, tt := range tests {
		if got := HexColor(tt.in); got != tt.want {
			t.Errorf("HexColor(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
