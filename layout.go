// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package parts

import "github.com/grindlemire/go-parts/internal/layout"

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Point represents an (X, Y) coordinate.
type Point = layout.Point

// Size represents a width/height pair.
type Size = layout.Size

// Edges represents values for four sides (top, right, bottom, left).
type Edges = layout.Edges

// Color is a straight RGBA color.
type Color = layout.Color

// White is the neutral color.
var White = layout.White

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// RGBA creates a Color from its channels.
func RGBA(r, g, b, a uint8) Color {
	return layout.RGBA(r, g, b, a)
}
