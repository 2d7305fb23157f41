package calc

import (
	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

// mapParams solves the 3D map of a slot, or returns nil when the chosen
// description does not enable one. Center, light and perspective parts are
// already calculated when this runs.
func (c *Context) mapParams(s *slot, chosen *model.Description, r layout.Rect) *MapParams {
	if !chosen.Map.On {
		return nil
	}
	m := s.desc.Map
	mp := &MapParams{
		RotX:  m.RotX,
		RotY:  m.RotY,
		RotZ:  m.RotZ,
		ZoomX: m.ZoomX,
		ZoomY: m.ZoomY,
	}

	center := r
	if s.center != model.NoRef {
		center = c.parts[s.center].geom
	}
	cp := center.Center()
	mp.Center = layout.Point3{X: cp.X, Y: cp.Y}

	if s.light != model.NoRef {
		lp := &c.parts[s.light]
		zplane, _ := depth(lp)
		lc := lp.geom.Center()
		mp.Lighted = true
		mp.Light = layout.Point3{X: lc.X, Y: lc.Y, Z: zplane}
		mp.LightColor, mp.Ambient = lightColors(lp)
	}

	if s.persp != model.NoRef {
		pp := &c.parts[s.persp]
		zplane, focal := depth(pp)
		pc := pp.geom.Center()
		mp.PerspOn = true
		mp.Persp = layout.Point3{X: pc.X, Y: pc.Y, Z: zplane}
		mp.Focal = focal
	} else if m.PerspOn {
		mp.PerspFallback = true
	}
	return mp
}

// depth returns the z plane and focal distance of a light or perspective
// part, interpolated by its transition position.
func depth(rp *realPart) (int, int) {
	p1 := rp.param1.desc.Persp
	if rp.param2 == nil {
		return p1.ZPlane, p1.Focal
	}
	p2 := rp.param2.desc.Persp
	return layout.Interp(p1.ZPlane, p2.ZPlane, rp.pos), layout.Interp(p1.Focal, p2.Focal, rp.pos)
}

// lightColors returns the light color (color) and ambient color (color2)
// of a light part.
func lightColors(rp *realPart) (layout.Color, layout.Color) {
	d1 := rp.param1.desc
	if rp.param2 == nil {
		return d1.Color, d1.Color2
	}
	d2 := rp.param2.desc
	return layout.InterpColor(d1.Color, d2.Color, rp.pos), layout.InterpColor(d1.Color2, d2.Color2, rp.pos)
}
