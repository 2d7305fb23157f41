package calc

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-parts/internal/layout"
)

// minSizeLimit is the container size at which the min size search gives up.
const minSizeLimit = 4000

// MinSize returns the smallest container size at which no part is forced
// beyond its requested geometry.
func (c *Context) MinSize() layout.Size {
	return c.MinSizeRestricted(0, 0)
}

// MinSizeRestricted is MinSize with a lower bound on the result. It solves
// in calc-only mode, so render objects are left untouched; the real
// geometry is recalculated on the next Recalc.
//
// The search grows the box by the largest overflow seen so far until no
// part overflows. If that runs past the size limit, it is retried once
// growing by each round's own overflow, and then abandoned.
func (c *Context) MinSizeRestricted(minW, minH int) layout.Size {
	saved := c.box
	c.calcOnly = true
	defer func() {
		c.calcOnly = false
		c.box = saved
		c.allPartChange = true
		c.dirty = true
	}()

	w, h := max(minW, 0), max(minH, 0)
	var maxW, maxH int
	perRound := false
	for round := 0; ; round++ {
		c.box = layout.Rect{Width: w, Height: h}
		c.allPartChange = true
		c.recalcAll()

		var overW, overH int
		for i := range c.parts {
			rp := &c.parts[i]
			d := rp.chosen
			if !d.FixedW {
				overW = max(overW, rp.geom.Width-rp.req.Width)
			}
			if !d.FixedH {
				overH = max(overH, rp.geom.Height-rp.req.Height)
			}
		}
		if overW <= 0 && overH <= 0 {
			return layout.Size{Width: w, Height: h}
		}
		maxW, maxH = max(maxW, overW), max(maxH, overH)
		if overW > 0 {
			w += grow(perRound, overW, maxW)
		}
		if overH > 0 {
			h += grow(perRound, overH, maxH)
		}
		if w <= minSizeLimit && h <= minSizeLimit {
			continue
		}

		c.log.Warn("min size calculation exceeded limit",
			zap.Int("width", w), zap.Int("height", h),
			zap.Int("limit", minSizeLimit), zap.Int("rounds", round+1),
			zap.Bool("retry", !perRound))
		if perRound {
			return layout.Size{Width: min(w, minSizeLimit), Height: min(h, minSizeLimit)}
		}
		perRound = true
		w, h = max(minW, 0), max(minH, 0)
		maxW, maxH = 0, 0
	}
}

func grow(perRound bool, over, highest int) int {
	if perRound {
		return over
	}
	return highest
}
