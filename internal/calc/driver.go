package calc

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

// recalcAll is one full recalculation pass over the arena.
func (c *Context) recalcAll() {
	c.generation++
	for i := range c.parts {
		c.parts[i].calculated = layout.AxisNone
		c.parts[i].calculating = layout.AxisNone
	}
	for i := range c.parts {
		rp := &c.parts[i]
		if rp.calculated != layout.AxisXY {
			c.recalcPart(i, ^rp.calculated&layout.AxisXY)
		}
	}
	c.allPartChange = false
}

// recalcPart makes the geometry of part id valid for the axes in mask,
// recalculating everything it depends on first.
func (c *Context) recalcPart(id int, mask layout.Axis) {
	rp := &c.parts[id]
	if rp.calculated.Has(mask) {
		return
	}
	if rp.calculating.Intersects(mask) {
		c.reportCycle(id, mask)
		return
	}
	rp.calculating |= mask
	c.stack = append(c.stack, id)

	var depStamp uint64
	dep := func(ref int, m layout.Axis) {
		if ref == model.NoRef {
			return
		}
		c.recalcPart(ref, m)
		depStamp = max(depStamp, c.parts[ref].stamp)
	}

	slots := []*slot{&rp.param1}
	if rp.param2 != nil {
		slots = append(slots, rp.param2)
	}
	for _, s := range slots {
		if mask.Intersects(layout.AxisX) {
			dep(s.rel1X, layout.AxisX)
			dep(s.rel2X, layout.AxisX)
		}
		if mask.Intersects(layout.AxisY) {
			dep(s.rel1Y, layout.AxisY)
			dep(s.rel2Y, layout.AxisY)
		}
	}
	if rp.drag != nil {
		dep(rp.confine, mask)
	}
	dep(c.clipFor(rp), mask)
	if rp.part.Type == model.PartProxy {
		for _, s := range slots {
			dep(s.proxy, layout.AxisXY)
		}
	}
	if rp.chosen.Map.On {
		for _, s := range slots {
			dep(s.center, layout.AxisXY)
			dep(s.light, layout.AxisXY)
			dep(s.persp, layout.AxisXY)
		}
	}

	solved := false
	for _, s := range slots {
		if c.needsSolve(rp, s, depStamp) {
			s.params = c.solve(rp, s, rp.chosen, rp.pos)
			s.stamp = c.generation
			solved = true
		}
	}
	if solved {
		rp.stamp = c.generation
		var p2 *CalcParams
		if rp.param2 != nil {
			p2 = &rp.param2.params
		}
		rp.final = Blend(rp.param1.params, p2, rp.pos)
		rp.geom = rp.final.Rect
		rp.req = rp.final.Req
		rp.invalidate = false
	}

	rp.calculated |= mask
	rp.calculating &^= mask
	c.stack = c.stack[:len(c.stack)-1]

	if !c.calcOnly && rp.calculated == layout.AxisXY {
		c.apply(rp)
	}
}

// needsSolve decides whether a slot must be solved again. Without the calc
// cache every slot is solved on every pass.
func (c *Context) needsSolve(rp *realPart, s *slot, depStamp uint64) bool {
	if !c.calcCache || c.calcOnly {
		return true
	}
	return s.stamp == 0 || rp.invalidate || c.allPartChange || depStamp >= s.stamp
}

// reportCycle logs a circular dependency. The branch is abandoned and the
// dependent part keeps whatever geometry the cyclic part had.
func (c *Context) reportCycle(id int, mask layout.Axis) {
	rp := &c.parts[id]
	chain := make([]string, 0, len(c.stack)+1)
	start := len(c.stack)
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i] == id {
			start = i
			break
		}
	}
	for _, pid := range c.stack[start:] {
		chain = append(chain, c.parts[pid].part.Name)
	}
	chain = append(chain, rp.part.Name)

	fields := append(c.partFields(rp),
		zap.Strings("chain", chain),
		zap.Stringer("calculating", rp.calculating),
		zap.Stringer("requested", mask))
	c.log.Warn("circular dependency while calculating part", fields...)
}
