package termrender

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/grindlemire/go-parts/internal/layout"
)

// over composites a premultiplied color over dst. An invalid dst (the
// terminal default) counts as black.
func over(src layout.Color, dst tcell.Color) tcell.Color {
	if src.A == 0 {
		return dst
	}
	a := float64(src.A) / 255
	base := colorful.Color{}
	if dst.Valid() {
		r, g, b := dst.RGB()
		base = colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	}
	out := colorful.Color{
		R: float64(src.R)/255 + base.R*(1-a),
		G: float64(src.G)/255 + base.G*(1-a),
		B: float64(src.B)/255 + base.B*(1-a),
	}.Clamped()
	r, g, b := out.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// lit multiplies c by the average color of a map's corners.
func lit(c layout.Color, corners []layout.Color) layout.Color {
	if len(corners) == 0 {
		return c
	}
	var r, g, b, a int
	for _, k := range corners {
		r += int(k.R)
		g += int(k.G)
		b += int(k.B)
		a += int(k.A)
	}
	n := len(corners)
	return c.Multiply(layout.RGBA(uint8(r/n), uint8(g/n), uint8(b/n), uint8(a/n)))
}
