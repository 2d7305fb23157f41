package layout

// Edges represents values for four sides of a box.
// Image borders use it for the unscaled slice widths.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

// InterpEdges interpolates each side independently.
func InterpEdges(a, b Edges, pos float64) Edges {
	return Edges{
		Top:    Interp(a.Top, b.Top, pos),
		Right:  Interp(a.Right, b.Right, pos),
		Bottom: Interp(a.Bottom, b.Bottom, pos),
		Left:   Interp(a.Left, b.Left, pos),
	}
}
