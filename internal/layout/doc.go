// Package layout holds the geometry primitives shared by the part solver.
//
// Rectangles are integer boxes in container-local pixels. The solver measures
// them between inclusive edges while confine and clip checks treat them as
// half-open boxes (see [Rect.Right]).
package layout
