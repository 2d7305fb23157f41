// model.go re-exports the collection model from internal/model.
package parts

import "github.com/grindlemire/go-parts/internal/model"

// NoRef marks an absent part reference.
const NoRef = model.NoRef

// Collection is a group of parts instantiated together.
type Collection = model.Collection

// Part is a named layout region of a collection.
type Part = model.Part

// Description is one state of a part.
type Description = model.Description

// Rel is one anchored corner of a part box.
type Rel = model.Rel

// PartType is the kind of a part.
type PartType = model.PartType

const (
	PartRectangle = model.PartRectangle
	PartImage     = model.PartImage
	PartText      = model.PartText
	PartTextblock = model.PartTextblock
	PartBox       = model.PartBox
	PartTable     = model.PartTable
	PartSwallow   = model.PartSwallow
	PartGroup     = model.PartGroup
	PartExternal  = model.PartExternal
	PartProxy     = model.PartProxy
	PartSpacer    = model.PartSpacer
)

// AspectPrefer selects which dimension yields to an aspect ratio.
type AspectPrefer = model.AspectPrefer

const (
	AspectNone       = model.AspectNone
	AspectVertical   = model.AspectVertical
	AspectHorizontal = model.AspectHorizontal
	AspectBoth       = model.AspectBoth
	AspectSource     = model.AspectSource
)

// Dragable configures how a part follows drag values.
type Dragable = model.Dragable

// DragDir is the drag direction of one axis.
type DragDir = model.DragDir

const (
	DragOff      = model.DragOff
	DragNormal   = model.DragNormal
	DragInverted = model.DragInverted
)

var (
	ErrNoDefaultDescription = model.ErrNoDefaultDescription
	ErrDuplicatePart        = model.ErrDuplicatePart
)

// NewPart creates a part with no references and no descriptions.
func NewPart(name string, typ PartType) *Part {
	return model.NewPart(name, typ)
}

// NewDescription returns a description covering the whole container.
func NewDescription(state string, value float64) *Description {
	return model.NewDescription(state, value)
}

// NewCollection assigns part ids in order and validates the collection.
func NewCollection(name string, parts []*Part) (*Collection, error) {
	return model.NewCollection(name, parts)
}
