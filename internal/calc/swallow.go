package calc

import (
	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

// AspectControl lets an embedding application override a description's
// aspect preference.
type AspectControl uint8

const (
	AspectControlDefault AspectControl = iota // keep the description's preference
	AspectControlNeither
	AspectControlHorizontal
	AspectControlVertical
	AspectControlBoth
)

func (a AspectControl) prefer() (model.AspectPrefer, bool) {
	switch a {
	case AspectControlNeither:
		return model.AspectNone, true
	case AspectControlHorizontal:
		return model.AspectHorizontal, true
	case AspectControlVertical:
		return model.AspectVertical, true
	case AspectControlBoth:
		return model.AspectBoth, true
	default:
		return 0, false
	}
}

// SwallowHints are size requests an embedding application makes for a part.
// Zero fields are unset. Min can only raise the description's minimum and
// Max can only lower its maximum.
type SwallowHints struct {
	Min        layout.Size
	Max        layout.Size
	AspectW    int
	AspectH    int
	AspectMode AspectControl
}

// SetSwallowHints replaces the size hints of a part.
func (c *Context) SetSwallowHints(id int, h SwallowHints) error {
	rp, err := c.realPart(id)
	if err != nil {
		return err
	}
	if rp.hints == h {
		return nil
	}
	rp.hints = h
	rp.invalidate = true
	c.MarkDirty()
	return nil
}

// SwallowHints returns the size hints of a part.
func (c *Context) SwallowHints(id int) (SwallowHints, error) {
	rp, err := c.realPart(id)
	if err != nil {
		return SwallowHints{}, err
	}
	return rp.hints, nil
}

// Swallow embeds obj into a part. The apply stage moves and shows
// it along with the part. A nil obj releases the current one.
func (c *Context) Swallow(id int, obj Object) error {
	rp, err := c.realPart(id)
	if err != nil {
		return err
	}
	rp.swallowed = obj
	rp.hasApplied = false
	rp.invalidate = true
	c.MarkDirty()
	return nil
}

// Swallowed returns the object embedded into a part, or nil.
func (c *Context) Swallowed(id int) Object {
	rp, err := c.realPart(id)
	if err != nil {
		return nil
	}
	return rp.swallowed
}
