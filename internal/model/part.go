package model

import "math"

// DragDir is the drag direction of one axis: 0 disabled, 1 normal, -1 inverted.
type DragDir int8

const (
	DragOff      DragDir = 0
	DragNormal   DragDir = 1
	DragInverted DragDir = -1
)

// Dragable configures how a part follows drag values.
type Dragable struct {
	X       DragDir
	Y       DragDir
	StepX   int
	StepY   int
	CountX  int
	CountY  int
	Confine int
	Events  int
}

// Enabled reports whether the part can be dragged on any axis.
func (d Dragable) Enabled() bool {
	return d.X != DragOff || d.Y != DragOff
}

// Part is a named layout region of a collection.
type Part struct {
	ID       int
	Name     string
	Type     PartType
	Scale    bool
	ClipTo   int
	Dragable Dragable
	Default  *Description
	Others   []*Description
}

// NewPart creates a part with no references and no descriptions.
func NewPart(name string, typ PartType) *Part {
	return &Part{
		ID:       NoRef,
		Name:     name,
		Type:     typ,
		ClipTo:   NoRef,
		Dragable: Dragable{Confine: NoRef, Events: NoRef},
	}
}

// Descriptions calls fn for the default description followed by the others.
func (p *Part) Descriptions(fn func(*Description)) {
	if p.Default != nil {
		fn(p.Default)
	}
	for _, d := range p.Others {
		fn(d)
	}
}

// Lookup returns the description whose state name matches and whose value
// is nearest to value. The default description is a candidate like any
// other and is returned when nothing matches.
func (p *Part) Lookup(state string, value float64) *Description {
	var best *Description
	bestDist := math.Inf(1)
	p.Descriptions(func(d *Description) {
		if d.State != state {
			return
		}
		if dist := math.Abs(d.Value - value); dist < bestDist {
			best = d
			bestDist = dist
		}
	})
	if best == nil {
		return p.Default
	}
	return best
}
