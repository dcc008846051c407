package canvas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColor is returned for colour names that neither the W3C/X11
// name table nor #rrggbb parsing recognises.
var ErrUnknownColor = errors.New("unknown color")

// Surface backgrounds. Graphs are drawn dark-on-light like a paper canvas.
var (
	paperColor = colorful.Color{R: 1, G: 1, B: 1}
	inkColor   = colorful.Color{}
)

// ResolveColor maps a colour name ("red", "black", "steelblue") or a
// "#rrggbb" string to an RGB colour.
func ResolveColor(name string) (colorful.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	tc := tcell.GetColor(name)
	if tc == tcell.ColorDefault {
		return colorful.Color{}, fmt.Errorf("%q: %w", name, ErrUnknownColor)
	}
	r, g, b := tc.RGB()
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}, nil
}

// ValidColor reports whether name resolves to a colour.
func ValidColor(name string) bool {
	_, err := ResolveColor(name)
	return err == nil
}

// resolveOrInk resolves name, falling back to black for unknown names.
func resolveOrInk(name string) colorful.Color {
	c, err := ResolveColor(name)
	if err != nil {
		return inkColor
	}
	return c
}

// TermStyle returns a terminal cell style drawing name on the paper
// background.
func TermStyle(name string) tcell.Style {
	fg := resolveOrInk(name)
	return paperStyle().Foreground(tcell.NewHexColor(hexValue(fg)))
}

// paperStyle is the style of an empty canvas cell.
func paperStyle() tcell.Style {
	return tcell.StyleDefault.
		Background(tcell.NewHexColor(hexValue(paperColor))).
		Foreground(tcell.NewHexColor(hexValue(inkColor)))
}

func hexValue(c colorful.Color) int32 {
	r, g, b := c.Clamped().RGB255()
	return int32(r)<<16 | int32(g)<<8 | int32(b)
}
