package layout

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Center returns the midpoint, rounded toward the top-left.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	width := right - x
	height := bottom - y

	if width <= 0 || height <= 0 {
		return Rect{}
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}

// KeepInside moves r (without resizing) so that it does not leave bounds on
// the axes in mask. The left/top edge wins when r is larger than bounds.
func (r Rect) KeepInside(bounds Rect, mask Axis) Rect {
	if mask.Has(AxisX) {
		if r.Right() > bounds.Right() {
			r.X = bounds.Right() - r.Width
		}
		if r.X < bounds.X {
			r.X = bounds.X
		}
	}
	if mask.Has(AxisY) {
		if r.Bottom() > bounds.Bottom() {
			r.Y = bounds.Bottom() - r.Height
		}
		if r.Y < bounds.Y {
			r.Y = bounds.Y
		}
	}
	return r
}

// InterpRect interpolates position and size independently.
func InterpRect(a, b Rect, pos float64) Rect {
	return Rect{
		X:      Interp(a.X, b.X, pos),
		Y:      Interp(a.Y, b.Y, pos),
		Width:  Interp(a.Width, b.Width, pos),
		Height: Interp(a.Height, b.Height, pos),
	}
}
