package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// Point3 is a point with depth, used by map centers, lights and perspective.
type Point3 struct {
	X, Y, Z int
}

// Size is a width/height pair.
type Size struct {
	Width, Height int
}

// Axis is a bitmask of the X and Y axes.
type Axis uint8

const (
	AxisNone Axis = 0
	AxisX    Axis = 1 << 0
	AxisY    Axis = 1 << 1
	AxisXY        = AxisX | AxisY
)

// Has reports whether every axis in other is set in a.
func (a Axis) Has(other Axis) bool {
	return a&other == other
}

// Intersects reports whether a and other share any axis.
func (a Axis) Intersects(other Axis) bool {
	return a&other != 0
}

func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "none"
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisXY:
		return "xy"
	default:
		return "invalid"
	}
}
