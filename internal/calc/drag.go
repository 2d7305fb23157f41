package calc

import (
	"fmt"

	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

// vec is a pair of per-axis fractions or offsets.
type vec struct {
	X, Y float64
}

// dragState is the runtime drag state of a dragable part. Values are stored
// in layout direction: an inverted axis keeps 1 - value.
type dragState struct {
	val  vec
	size vec // zero keeps the solved size
	step vec
	page vec
	tmpX int
	tmpY int
}

func newDragState() *dragState {
	return &dragState{}
}

// dragPlace moves a dragable part to its drag position. Confined parts
// travel inside the confine box; others are shifted by the transient offset.
func (c *Context) dragPlace(rp *realPart, ev eval, lim limits) eval {
	ds := rp.drag
	if ds == nil {
		return ev
	}
	dr := rp.part.Dragable
	if rp.confine == model.NoRef {
		if dr.X != model.DragOff {
			ev.x = float64(quantize(layout.Round(ev.x)+ds.tmpX, dr.StepX, dr.CountX, layout.Round(ev.w)))
		}
		if dr.Y != model.DragOff {
			ev.y = float64(quantize(layout.Round(ev.y)+ds.tmpY, dr.StepY, dr.CountY, layout.Round(ev.h)))
		}
		return ev
	}

	cf := c.parts[rp.confine].geom
	var mask layout.Axis
	if dr.X != model.DragOff {
		mask |= layout.AxisX
		ev.x, ev.w = dragAxis(cf.X, cf.Width, ev.w, ds.val.X, ds.size.X, ds.tmpX, lim.minW, lim.maxW, dr.StepX, dr.CountX)
	}
	if dr.Y != model.DragOff {
		mask |= layout.AxisY
		ev.y, ev.h = dragAxis(cf.Y, cf.Height, ev.h, ds.val.Y, ds.size.Y, ds.tmpY, lim.minH, lim.maxH, dr.StepY, dr.CountY)
	}
	r := ev.rect().KeepInside(cf, mask)
	ev.x, ev.y = float64(r.X), float64(r.Y)
	return ev
}

// dragAxis places one axis inside a confine span starting at origin.
func dragAxis(origin, span int, size, val, dragSize float64, tmp, minSize, maxSize, step, count int) (float64, float64) {
	if dragSize > 0 {
		size = dragSize * float64(span)
		if size < float64(minSize) {
			size = float64(minSize)
		}
		if maxSize >= 0 && size > float64(maxSize) {
			size = float64(maxSize)
		}
	}
	travel := float64(span) - size
	off := quantize(layout.Round(val*travel)+tmp, step, count, layout.Round(travel))
	return float64(origin + off), size
}

// quantize snaps v down to a multiple of step, or of span/count when no
// step is configured.
func quantize(v, step, count, span int) int {
	if step <= 0 && count > 0 {
		step = span / count
	}
	if step <= 0 {
		return v
	}
	q := v / step * step
	if v < 0 && q != v {
		q -= step
	}
	return q
}

func (c *Context) dragPart(id int) (*realPart, error) {
	rp, err := c.realPart(id)
	if err != nil {
		return nil, err
	}
	if rp.drag == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotDragable, rp.part.Name)
	}
	return rp, nil
}

// orient converts between user and layout direction of a drag value.
func orient(dir model.DragDir, v float64) float64 {
	if dir == model.DragInverted {
		return 1 - v
	}
	return v
}

func (c *Context) dragChanged(rp *realPart) {
	rp.invalidate = true
	c.MarkDirty()
	c.Recalc()
}

// DragValueSet moves a dragable part to the fractions x and y of its travel
// range. Values are clamped to [0, 1].
func (c *Context) DragValueSet(id int, x, y float64) error {
	rp, err := c.dragPart(id)
	if err != nil {
		return err
	}
	dr := rp.part.Dragable
	v := vec{
		X: orient(dr.X, layout.ClampPos(x)),
		Y: orient(dr.Y, layout.ClampPos(y)),
	}
	if v == rp.drag.val {
		return nil
	}
	rp.drag.val = v
	c.dragChanged(rp)
	return nil
}

// DragValue returns the drag value of a part in user direction.
func (c *Context) DragValue(id int) (float64, float64, error) {
	rp, err := c.dragPart(id)
	if err != nil {
		return 0, 0, err
	}
	dr := rp.part.Dragable
	return orient(dr.X, rp.drag.val.X), orient(dr.Y, rp.drag.val.Y), nil
}

// DragSizeSet sets the size of a confined dragable part as fractions of the
// confine box. Values are clamped to [0, 1]; zero keeps the solved size.
func (c *Context) DragSizeSet(id int, w, h float64) error {
	rp, err := c.dragPart(id)
	if err != nil {
		return err
	}
	s := vec{X: layout.ClampPos(w), Y: layout.ClampPos(h)}
	if s == rp.drag.size {
		return nil
	}
	rp.drag.size = s
	c.dragChanged(rp)
	return nil
}

// DragSize returns the drag size fractions of a part.
func (c *Context) DragSize(id int) (float64, float64, error) {
	rp, err := c.dragPart(id)
	if err != nil {
		return 0, 0, err
	}
	return rp.drag.size.X, rp.drag.size.Y, nil
}

// DragStepSet sets the increment used by DragStep.
func (c *Context) DragStepSet(id int, x, y float64) error {
	rp, err := c.dragPart(id)
	if err != nil {
		return err
	}
	rp.drag.step = vec{X: layout.ClampPos(x), Y: layout.ClampPos(y)}
	return nil
}

// DragStep moves the part by dx and dy drag steps.
func (c *Context) DragStep(id int, dx, dy float64) error {
	rp, err := c.dragPart(id)
	if err != nil {
		return err
	}
	return c.dragBy(id, rp, dx*rp.drag.step.X, dy*rp.drag.step.Y)
}

// DragPageSet sets the increment used by DragPage.
func (c *Context) DragPageSet(id int, x, y float64) error {
	rp, err := c.dragPart(id)
	if err != nil {
		return err
	}
	rp.drag.page = vec{X: layout.ClampPos(x), Y: layout.ClampPos(y)}
	return nil
}

// DragPage moves the part by dx and dy drag pages.
func (c *Context) DragPage(id int, dx, dy float64) error {
	rp, err := c.dragPart(id)
	if err != nil {
		return err
	}
	return c.dragBy(id, rp, dx*rp.drag.page.X, dy*rp.drag.page.Y)
}

func (c *Context) dragBy(id int, rp *realPart, dx, dy float64) error {
	dr := rp.part.Dragable
	x := orient(dr.X, rp.drag.val.X) + dx
	y := orient(dr.Y, rp.drag.val.Y) + dy
	return c.DragValueSet(id, x, y)
}

// DragOffsetSet sets a transient pixel offset, as applied while a pointer
// is dragging the part. It is added to the position derived from the
// drag value until DragCommit.
func (c *Context) DragOffsetSet(id int, dx, dy int) error {
	rp, err := c.dragPart(id)
	if err != nil {
		return err
	}
	if rp.drag.tmpX == dx && rp.drag.tmpY == dy {
		return nil
	}
	rp.drag.tmpX, rp.drag.tmpY = dx, dy
	c.dragChanged(rp)
	return nil
}

// DragCommit folds the transient offset of a confined part into its drag
// value, derived from where the part currently sits in the confine box.
// Unconfined parts have no value to fold into and simply drop the offset.
func (c *Context) DragCommit(id int) error {
	rp, err := c.dragPart(id)
	if err != nil {
		return err
	}
	if c.dirty {
		c.Recalc()
	}
	if rp.confine != model.NoRef {
		cf := c.parts[rp.confine].geom
		g := rp.geom
		dr := rp.part.Dragable
		if dr.X != model.DragOff {
			rp.drag.val.X = travelFraction(g.X-cf.X, cf.Width-g.Width)
		}
		if dr.Y != model.DragOff {
			rp.drag.val.Y = travelFraction(g.Y-cf.Y, cf.Height-g.Height)
		}
	}
	rp.drag.tmpX, rp.drag.tmpY = 0, 0
	c.dragChanged(rp)
	return nil
}

// travelFraction is off/travel in [0, 1], 0 when there is no room to travel.
func travelFraction(off, travel int) float64 {
	if travel <= 0 {
		return 0
	}
	return layout.ClampPos(float64(off) / float64(travel))
}
