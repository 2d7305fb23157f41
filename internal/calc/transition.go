package calc

import (
	"github.com/grindlemire/go-parts/internal/layout"
)

// SetState switches a part to the description nearest to (state, value),
// dropping any transition in progress.
func (c *Context) SetState(id int, state string, value float64) error {
	rp, err := c.realPart(id)
	if err != nil {
		return err
	}
	d := rp.part.Lookup(state, value)
	if rp.param2 == nil && rp.param1.desc == d {
		return nil
	}
	rp.param1 = c.resolve(d)
	rp.param2 = nil
	rp.pos = 0
	rp.chosen = d
	rp.invalidate = true
	c.MarkDirty()
	return nil
}

// BeginTransition starts interpolating a part from its current description
// toward the one nearest to (state, value), at position 0. A transition
// already in progress is ended first.
func (c *Context) BeginTransition(id int, state string, value float64) error {
	rp, err := c.realPart(id)
	if err != nil {
		return err
	}
	if rp.param2 != nil {
		c.endTransition(rp)
	}
	to := c.resolve(rp.part.Lookup(state, value))
	rp.param2 = &to
	rp.pos = 0
	rp.chosen = rp.param1.desc
	rp.invalidate = true
	c.MarkDirty()
	return nil
}

// SetTransitionPos moves a transitioning part to pos. Geometry follows pos
// as given so overshooting tweens can leave [0, 1]; colors stay clamped.
// While pos is above 0 the target description is the chosen one.
func (c *Context) SetTransitionPos(id int, pos float64) error {
	rp, err := c.realPart(id)
	if err != nil {
		return err
	}
	if rp.param2 == nil || rp.pos == pos {
		return nil
	}
	rp.pos = pos
	rp.chosen = rp.param1.desc
	if pos > 0 {
		rp.chosen = rp.param2.desc
	}
	rp.invalidate = true
	c.MarkDirty()
	return nil
}

// TransitionPos returns the position of a part and whether it is transitioning.
func (c *Context) TransitionPos(id int) (float64, bool, error) {
	rp, err := c.realPart(id)
	if err != nil {
		return 0, false, err
	}
	return rp.pos, rp.param2 != nil, nil
}

// EndTransition settles a transitioning part on its target description.
func (c *Context) EndTransition(id int) error {
	rp, err := c.realPart(id)
	if err != nil {
		return err
	}
	if rp.param2 == nil {
		return nil
	}
	c.endTransition(rp)
	c.MarkDirty()
	return nil
}

func (c *Context) endTransition(rp *realPart) {
	rp.param1 = *rp.param2
	rp.param1.stamp = 0
	rp.param2 = nil
	rp.pos = 0
	rp.chosen = rp.param1.desc
	rp.invalidate = true
}

// State returns the state name and value of the description a part shows.
func (c *Context) State(id int) (string, float64, error) {
	rp, err := c.realPart(id)
	if err != nil {
		return "", 0, err
	}
	return rp.chosen.State, rp.chosen.Value, nil
}

// Params returns the final parameters of a part, recalculating first if
// the container is dirty and not frozen.
func (c *Context) Params(id int) (CalcParams, error) {
	rp, err := c.realPart(id)
	if err != nil {
		return CalcParams{}, err
	}
	c.Recalc()
	return rp.final, nil
}

// PartGeometry returns the current box of a part relative to the container.
func (c *Context) PartGeometry(id int) (layout.Rect, error) {
	p, err := c.Params(id)
	if err != nil {
		return layout.Rect{}, err
	}
	return p.Rect, nil
}
