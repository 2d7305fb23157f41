package calc

import (
	"math"

	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

// eval is the floating point box the solver stages refine.
type eval struct {
	x, y, w, h float64
}

func (e eval) rect() layout.Rect {
	return layout.Rect{
		X:      layout.Round(e.x),
		Y:      layout.Round(e.y),
		Width:  layout.Round(e.w),
		Height: layout.Round(e.h),
	}
}

// limits are the effective size bounds of one solve. A negative max is unbounded.
type limits struct {
	minW, minH int
	maxW, maxH int
}

// normalize raises each bounded max to at least its min.
func (l *limits) normalize() {
	if l.maxW >= 0 && l.maxW < l.minW {
		l.maxW = l.minW
	}
	if l.maxH >= 0 && l.maxH < l.minH {
		l.maxH = l.minH
	}
}

// solve computes the parameters of one description. It reads the current
// geometry of the parts s refers to and otherwise only touches text objects
// to measure them.
func (c *Context) solve(rp *realPart, s *slot, chosen *model.Description, pos float64) CalcParams {
	d := s.desc
	p := CalcParams{Type: rp.part.Type}

	lim := c.minMax(rp, d)
	ev := c.relative(s)
	p.Req = ev.rect()
	ev = c.aspect(rp, d, ev, lim, pos)
	ev = step(d, ev)
	c.intrinsic(rp, d, chosen, ev, &lim, pos)
	ev = clampMin(d, ev, lim)
	ev = clampMax(d, ev, lim)
	ev = c.dragPlace(rp, ev, lim)

	p.Rect = ev.rect()
	p.Visible = d.Visible
	p.Smooth = d.Fill.Smooth
	c.fill(rp, s, &p, pos)
	c.colors(d, &p)
	c.typeParams(rp, d, &p)
	p.Map = c.mapParams(s, chosen, p.Rect)
	return p
}

// scaleFor returns the scale factor for a part: the context scale if the
// part opted into scaling, 1 otherwise.
func (c *Context) scaleFor(p *model.Part) float64 {
	if p.Scale {
		return c.scale
	}
	return 1
}

func scaleInt(v int, sc float64) int {
	if sc == 1 {
		return v
	}
	return int(math.Round(float64(v) * sc))
}

// minMax resolves the effective size bounds. Swallow hints raise the min
// and lower the max; a max below min is raised to min.
func (c *Context) minMax(rp *realPart, d *model.Description) limits {
	sc := c.scaleFor(rp.part)
	h := rp.hints
	lim := limits{
		minW: scaleInt(d.Min.Width, sc),
		minH: scaleInt(d.Min.Height, sc),
		maxW: scaleMax(d.Max.Width, sc),
		maxH: scaleMax(d.Max.Height, sc),
	}
	lim.minW = max(lim.minW, h.Min.Width)
	lim.minH = max(lim.minH, h.Min.Height)
	if h.Max.Width > 0 && (lim.maxW < 0 || h.Max.Width < lim.maxW) {
		lim.maxW = h.Max.Width
	}
	if h.Max.Height > 0 && (lim.maxH < 0 || h.Max.Height < lim.maxH) {
		lim.maxH = h.Max.Height
	}
	lim.normalize()
	return lim
}

func scaleMax(v int, sc float64) int {
	if v <= 0 {
		return v
	}
	return max(scaleInt(v, sc), 1)
}

// relative positions both corners from their anchors. The bottom-right
// corner is inclusive, so the size is rel2 - rel1 + 1.
func (c *Context) relative(s *slot) eval {
	d := s.desc
	x1 := c.edge(d.Rel1.OffsetX, d.Rel1.RelativeX, s.rel1X, layout.AxisX)
	y1 := c.edge(d.Rel1.OffsetY, d.Rel1.RelativeY, s.rel1Y, layout.AxisY)
	x2 := c.edge(d.Rel2.OffsetX, d.Rel2.RelativeX, s.rel2X, layout.AxisX)
	y2 := c.edge(d.Rel2.OffsetY, d.Rel2.RelativeY, s.rel2Y, layout.AxisY)
	return eval{x: x1, y: y1, w: x2 - x1 + 1, h: y2 - y1 + 1}
}

// edge evaluates offset + origin + relative*size along one axis of an
// anchor part, or of the container when there is none.
func (c *Context) edge(offset int, relative float64, to int, axis layout.Axis) float64 {
	var origin, size int
	switch {
	case to != model.NoRef && axis == layout.AxisX:
		g := c.parts[to].geom
		origin, size = g.X, g.Width
	case to != model.NoRef:
		g := c.parts[to].geom
		origin, size = g.Y, g.Height
	case axis == layout.AxisX:
		size = c.box.Width
	default:
		size = c.box.Height
	}
	return float64(offset) + float64(origin) + relative*float64(size)
}

// step floors each dimension to a multiple of the description's step,
// giving up the remainder on the side opposite to the alignment.
func step(d *model.Description, ev eval) eval {
	if d.StepX > 0 {
		nw := float64(d.StepX * (int(ev.w) / d.StepX))
		if ev.w > nw {
			ev.x += d.AlignX * (ev.w - nw)
			ev.w = nw
		}
	}
	if d.StepY > 0 {
		nh := float64(d.StepY * (int(ev.h) / d.StepY))
		if ev.h > nh {
			ev.y += d.AlignY * (ev.h - nh)
			ev.h = nh
		}
	}
	return ev
}

// clampMin grows the box to the minimum size, keeping the alignment point fixed.
func clampMin(d *model.Description, ev eval, lim limits) eval {
	if lim.minW >= 0 && ev.w < float64(lim.minW) {
		ev.x += d.AlignX * (ev.w - float64(lim.minW))
		ev.w = float64(lim.minW)
	}
	if lim.minH >= 0 && ev.h < float64(lim.minH) {
		ev.y += d.AlignY * (ev.h - float64(lim.minH))
		ev.h = float64(lim.minH)
	}
	return ev
}

// clampMax shrinks the box to the maximum size, keeping the alignment point fixed.
func clampMax(d *model.Description, ev eval, lim limits) eval {
	lim.normalize()
	if lim.maxW >= 0 && ev.w > float64(lim.maxW) {
		ev.x += d.AlignX * (ev.w - float64(lim.maxW))
		ev.w = float64(lim.maxW)
	}
	if lim.maxH >= 0 && ev.h > float64(lim.maxH) {
		ev.y += d.AlignY * (ev.h - float64(lim.maxH))
		ev.h = float64(lim.maxH)
	}
	return ev
}

// colorClass looks up the class named by d, if any.
func (c *Context) colorClass(d *model.Description) (ColorClass, bool) {
	if d.ColorClass == "" {
		return ColorClass{}, false
	}
	cc, ok := c.colorClasses[d.ColorClass]
	return cc, ok
}

// colors applies the description's color class, if it exists.
func (c *Context) colors(d *model.Description, p *CalcParams) {
	p.Color = d.Color
	if cc, ok := c.colorClass(d); ok {
		p.Color = d.Color.Multiply(cc.Color)
	}
}

// typeParams fills the fields only one part type uses.
func (c *Context) typeParams(rp *realPart, d *model.Description, p *CalcParams) {
	sc := c.scaleFor(rp.part)
	switch rp.part.Type {
	case model.PartImage:
		p.Image = ImageParams{Border: d.Image.Border, ScaleBy: d.Image.BorderScaleBy}
	case model.PartText, model.PartTextblock:
		p.Text = TextParams{
			Size:     scaleInt(d.Text.Size, sc),
			AlignX:   d.Text.AlignX,
			AlignY:   d.Text.AlignY,
			Ellipsis: d.Text.Ellipsis,
			Color2:   d.Color2,
			Color3:   d.Color3,
		}
		if cc, ok := c.colorClass(d); ok {
			p.Text.Color2 = d.Color2.Multiply(cc.Color2)
			p.Text.Color3 = d.Color3.Multiply(cc.Color3)
		}
	case model.PartBox, model.PartTable:
		p.Box = BoxParams{
			Layout:      d.Box.Layout,
			AlignX:      d.Box.AlignX,
			AlignY:      d.Box.AlignY,
			PaddingX:    scaleInt(d.Box.PaddingX, sc),
			PaddingY:    scaleInt(d.Box.PaddingY, sc),
			Homogeneous: d.Box.Homogeneous,
		}
	case model.PartRectangle, model.PartSwallow, model.PartGroup, model.PartExternal,
		model.PartProxy, model.PartSpacer:
	}
}
