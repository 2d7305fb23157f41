// Package transform implements the four-point projective maps the apply
// stage hands to render objects: zoom, 3D rotation, point lighting,
// perspective projection and the backface winding test.
package transform

import (
	"math"

	"github.com/grindlemire/go-parts/internal/layout"
)

// Point is one corner of a map.
type Point struct {
	X, Y, Z float64
	Color   layout.Color
}

// Map holds the four corners of a quad in clockwise order starting at the
// top-left corner.
type Map struct {
	Points [4]Point
	Smooth bool
	Alpha  bool
}

// FromRect populates a map from a rectangle at depth z with white corners.
func FromRect(r layout.Rect, z int) *Map {
	x0, y0 := float64(r.X), float64(r.Y)
	x1, y1 := float64(r.Right()), float64(r.Bottom())
	fz := float64(z)
	m := &Map{Smooth: true, Alpha: true}
	m.Points[0] = Point{X: x0, Y: y0, Z: fz, Color: layout.White}
	m.Points[1] = Point{X: x1, Y: y0, Z: fz, Color: layout.White}
	m.Points[2] = Point{X: x1, Y: y1, Z: fz, Color: layout.White}
	m.Points[3] = Point{X: x0, Y: y1, Z: fz, Color: layout.White}
	return m
}

// Zoom scales the corners around (cx, cy).
func (m *Map) Zoom(zx, zy, cx, cy float64) {
	if zx == 1 && zy == 1 {
		return
	}
	for i := range m.Points {
		p := &m.Points[i]
		p.X = cx + (p.X-cx)*zx
		p.Y = cy + (p.Y-cy)*zy
	}
}

// Rotate3D rotates the corners around (cx, cy, cz) by the given angles in
// degrees, applying Z, then Y, then X.
func (m *Map) Rotate3D(dx, dy, dz, cx, cy, cz float64) {
	rx := dx * math.Pi / 180
	ry := dy * math.Pi / 180
	rz := dz * math.Pi / 180
	for i := range m.Points {
		p := &m.Points[i]
		x, y, z := p.X-cx, p.Y-cy, p.Z-cz
		if rz != 0 {
			xx := x * math.Cos(rz)
			yy := x * math.Sin(rz)
			x = xx - y*math.Sin(rz)
			y = yy + y*math.Cos(rz)
		}
		if ry != 0 {
			xx := x * math.Cos(ry)
			zz := x * math.Sin(ry)
			x = xx - z*math.Sin(ry)
			z = zz + z*math.Cos(ry)
		}
		if rx != 0 {
			zz := z * math.Cos(rx)
			yy := z * math.Sin(rx)
			z = zz - y*math.Sin(rx)
			y = yy + y*math.Cos(rx)
		}
		p.X, p.Y, p.Z = x+cx, y+cy, z+cz
	}
}

// Light shades every corner by the angle between its surface normal and the
// direction to a point light. ambient is the color of an unlit surface.
func (m *Map) Light(lx, ly, lz float64, light, ambient layout.Color) {
	var shaded [4]layout.Color
	for i := range m.Points {
		p := m.Points[i]
		prev := m.Points[(i+3)%4]
		next := m.Points[(i+1)%4]

		x1, y1, z1 := prev.X-p.X, prev.Y-p.Y, prev.Z-p.Z
		x2, y2, z2 := next.X-p.X, next.Y-p.Y, next.Z-p.Z
		nx := y1*z2 - z1*y2
		ny := z1*x2 - x1*z2
		nz := x1*y2 - y1*x2
		if ln := math.Sqrt(nx*nx + ny*ny + nz*nz); ln != 0 {
			nx, ny, nz = nx/ln, ny/ln, nz/ln
		}

		vx, vy, vz := lx-p.X, ly-p.Y, lz-p.Z
		if ln := math.Sqrt(vx*vx + vy*vy + vz*vz); ln != 0 {
			vx, vy, vz = vx/ln, vy/ln, vz/ln
		}

		br := nx*vx + ny*vy + nz*vz
		if br < 0 {
			br = 0
		}
		mr := float64(ambient.R) + float64(int(light.R)-int(ambient.R))*br
		mg := float64(ambient.G) + float64(int(light.G)-int(ambient.G))*br
		mb := float64(ambient.B) + float64(int(light.B)-int(ambient.B))*br

		c := p.Color
		shaded[i] = layout.Color{
			R: uint8(float64(c.R) * mr / 255),
			G: uint8(float64(c.G) * mg / 255),
			B: uint8(float64(c.B) * mb / 255),
			A: c.A,
		}
	}
	for i := range m.Points {
		m.Points[i].Color = shaded[i]
	}
}

// Perspective projects the corners toward (px, py) with the z0 plane at
// focal distance foc. A non-positive focal length leaves the map unchanged.
func (m *Map) Perspective(px, py, z0, foc float64) {
	if foc <= 0 {
		return
	}
	for i := range m.Points {
		p := &m.Points[i]
		x, y := p.X-px, p.Y-py
		zz := (p.Z - z0) + foc
		if zz > 0 {
			x = x * foc / zz
			y = y * foc / zz
		}
		p.X, p.Y = px+x, py+y
	}
}

// Clockwise reports whether the projected corners wind clockwise in screen
// space, which is the front face of a quad built by [FromRect].
func (m *Map) Clockwise() bool {
	count := 0
	for i := range m.Points {
		a := m.Points[i]
		b := m.Points[(i+1)%4]
		c := m.Points[(i+2)%4]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if cross < 0 {
			count--
		} else if cross > 0 {
			count++
		}
	}
	return count > 0
}

// Bounds returns the integer bounding box of the projected corners.
func (m *Map) Bounds() layout.Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range m.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	x0, y0 := int(math.Floor(minX)), int(math.Floor(minY))
	return layout.Rect{X: x0, Y: y0, Width: int(math.Ceil(maxX)) - x0, Height: int(math.Ceil(maxY)) - y0}
}
