package layout

// Color is a straight (non-premultiplied) RGBA color.
type Color struct {
	R, G, B, A uint8
}

// White is the neutral color: full intensity, opaque.
var White = Color{R: 255, G: 255, B: 255, A: 255}

// RGBA creates a Color from its channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Multiply scales c by a color class: ((class+1) * c) >> 8 per channel.
func (c Color) Multiply(class Color) Color {
	return Color{
		R: mulChannel(class.R, c.R),
		G: mulChannel(class.G, c.G),
		B: mulChannel(class.B, c.B),
		A: mulChannel(class.A, c.A),
	}
}

func mulChannel(class, v uint8) uint8 {
	return uint8(((int(class) + 1) * int(v)) >> 8)
}

// Premultiplied returns the color with RGB scaled by alpha (channel * a / 255).
func (c Color) Premultiplied() Color {
	return Color{
		R: uint8(int(c.R) * int(c.A) / 255),
		G: uint8(int(c.G) * int(c.A) / 255),
		B: uint8(int(c.B) * int(c.A) / 255),
		A: c.A,
	}
}

// InterpColor interpolates each channel; pos is clamped to [0, 1] first.
func InterpColor(a, b Color, pos float64) Color {
	pos = ClampPos(pos)
	return Color{
		R: uint8(Interp(int(a.R), int(b.R), pos)),
		G: uint8(Interp(int(a.G), int(b.G), pos)),
		B: uint8(Interp(int(a.B), int(b.B), pos)),
		A: uint8(Interp(int(a.A), int(b.A), pos)),
	}
}
