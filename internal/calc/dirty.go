package calc

import "go.uber.org/zap"

// MarkDirty signals that the container needs a recalculation pass.
// Requests arriving while a pass is running are deferred to the end of it.
func (c *Context) MarkDirty() {
	c.dirty = true
	if c.recalculating {
		c.pending = true
	}
}

// MarkPartDirty forces the part to be solved again on the next pass, even
// when the calc cache would otherwise reuse its previous result.
func (c *Context) MarkPartDirty(id int) error {
	rp, err := c.realPart(id)
	if err != nil {
		return err
	}
	rp.invalidate = true
	c.MarkDirty()
	return nil
}

// IsDirty reports whether a recalculation is outstanding.
func (c *Context) IsDirty() bool {
	return c.dirty
}

// Recalc runs a recalculation pass if the container is dirty and not frozen.
// A pass that dirties the container again, for instance from a render
// object callback, is followed by another one.
func (c *Context) Recalc() {
	if c.freeze > 0 {
		return
	}
	if c.recalculating {
		c.pending = true
		return
	}
	for round := 0; c.dirty; round++ {
		if round >= maxRecalcRounds {
			c.log.Warn("container kept dirtying itself during recalculation",
				zap.Int("rounds", round))
			break
		}
		c.dirty = false
		c.pending = false
		c.recalculating = true
		c.recalcAll()
		c.recalculating = false
	}
}

// ForceRecalc solves every part again regardless of the calc cache.
func (c *Context) ForceRecalc() {
	c.allPartChange = true
	c.MarkDirty()
	c.Recalc()
}

// Freeze suspends recalculation until the matching Thaw. Freezes nest.
// It returns the new freeze depth.
func (c *Context) Freeze() int {
	c.freeze++
	return c.freeze
}

// Thaw undoes one Freeze. When the last freeze is released, a recalculation
// requested while frozen runs immediately. It returns the new freeze depth.
func (c *Context) Thaw() int {
	if c.freeze == 0 {
		return 0
	}
	c.freeze--
	if c.freeze == 0 && c.dirty {
		c.Recalc()
	}
	return c.freeze
}

// Frozen reports whether recalculation is currently suspended.
func (c *Context) Frozen() bool {
	return c.freeze > 0
}
