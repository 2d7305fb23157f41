package calc

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
	"github.com/grindlemire/go-parts/internal/transform"
)

// apply pushes the final parameters of rp to its render object and to the
// object it swallows. Parts whose applied state did not change since the
// last apply are skipped.
func (c *Context) apply(rp *realPart) {
	if rp.object == nil && rp.swallowed == nil {
		return
	}
	p := &rp.final
	frame := model.NoRef
	if rp.part.Type == model.PartImage {
		frame = c.imageFrame(rp, rp.pos)
	}
	var text *TextState
	if rp.part.Type.IsTextual() {
		ts := c.appliedText(rp)
		text = &ts
	}

	fp := c.fingerprint(rp, frame, text)
	if rp.hasApplied && rp.applied == fp {
		return
	}
	rp.applied, rp.hasApplied = fp, true

	g := p.Rect.Translate(c.box.X, c.box.Y)
	if sw := rp.swallowed; sw != nil {
		sw.SetGeometry(g)
		sw.SetVisible(p.Visible)
	}
	obj := rp.object
	if obj == nil {
		return
	}
	obj.SetGeometry(g)
	obj.SetColor(p.Color.Premultiplied())
	obj.SetVisible(p.Visible)

	switch rp.part.Type {
	case model.PartImage:
		if o, ok := obj.(ImageObject); ok {
			c.applyImage(rp, o, frame)
		}
	case model.PartText, model.PartTextblock:
		if o, ok := obj.(TextObject); ok {
			o.SetText(*text)
		}
	case model.PartProxy:
		if o, ok := obj.(ProxyObject); ok {
			o.SetSource(c.proxySource(rp))
			o.SetFill(p.Fill)
		}
	case model.PartBox, model.PartTable:
		if o, ok := obj.(ContainerObject); ok {
			o.SetBoxLayout(p.Box)
		}
	case model.PartRectangle, model.PartSwallow, model.PartGroup, model.PartExternal,
		model.PartSpacer:
	}

	if o, ok := obj.(Clippable); ok {
		var clip Object
		if id := c.clipFor(rp); id != model.NoRef {
			clip = c.parts[id].object
		}
		o.SetClip(clip)
	}
	c.applyMap(rp, obj, g)
}

func (c *Context) applyImage(rp *realPart, o ImageObject, frame int) {
	if err := o.SetImage(frame); err != nil {
		c.log.Warn("setting image failed",
			append(c.partFields(rp), zap.Int("image", frame), zap.Error(err))...)
		_ = o.SetImage(model.NoRef)
	}
	o.SetFill(rp.final.Fill)
	o.SetBorder(rp.final.Image.Border, rp.final.Image.ScaleBy)
}

// appliedText is the text of the chosen description with the interpolated
// text parameters.
func (c *Context) appliedText(rp *realPart) TextState {
	ts := c.textState(rp, rp.chosen)
	t := rp.final.Text
	ts.Size = t.Size
	ts.AlignX, ts.AlignY = t.AlignX, t.AlignY
	ts.Ellipsis = t.Ellipsis
	ts.Color2, ts.Color3 = t.Color2, t.Color3
	return ts
}

func (c *Context) proxySource(rp *realPart) Object {
	src := proxySourceID(rp)
	if src == model.NoRef {
		return nil
	}
	return c.parts[src].object
}

// proxySourceID is the part a proxy mirrors; the source switches halfway
// through a transition.
func proxySourceID(rp *realPart) int {
	if rp.param2 != nil && rp.pos >= 0.5 {
		return rp.param2.proxy
	}
	return rp.param1.proxy
}

// fallbackPerspective is the container perspective, or the engine default.
func (c *Context) fallbackPerspective() *Perspective {
	if c.persp != nil {
		return c.persp
	}
	return c.defaultPersp
}

// applyMap builds the four-point transform of a mapped part: zoom and
// rotation around the center, then lighting, then perspective. g is the
// part box in canvas coordinates.
func (c *Context) applyMap(rp *realPart, obj Object, g layout.Rect) {
	mo, ok := obj.(Mappable)
	if !ok {
		return
	}
	mp := rp.final.Map
	if mp == nil {
		if rp.mapped {
			mo.SetMap(nil)
			rp.mapped = false
		}
		return
	}

	ox, oy := float64(c.box.X), float64(c.box.Y)
	cx, cy, cz := float64(mp.Center.X)+ox, float64(mp.Center.Y)+oy, float64(mp.Center.Z)
	m := transform.FromRect(g, 0)
	m.Zoom(mp.ZoomX, mp.ZoomY, cx, cy)
	m.Rotate3D(mp.RotX, mp.RotY, mp.RotZ, cx, cy, cz)
	if mp.Lighted {
		m.Light(float64(mp.Light.X)+ox, float64(mp.Light.Y)+oy, float64(mp.Light.Z), mp.LightColor, mp.Ambient)
	}
	switch {
	case mp.PerspOn:
		m.Perspective(float64(mp.Persp.X)+ox, float64(mp.Persp.Y)+oy, float64(mp.Persp.Z), float64(mp.Focal))
	case mp.PerspFallback:
		if pp := c.fallbackPerspective(); pp != nil {
			m.Perspective(float64(pp.X), float64(pp.Y), float64(pp.Z0), float64(pp.Focal))
		}
	}
	m.Smooth = rp.chosen.Map.Smooth
	m.Alpha = rp.chosen.Map.Alpha

	if rp.chosen.Map.Backcull && !m.Clockwise() {
		obj.SetVisible(false)
	}
	mo.SetMap(m)
	rp.mapped = true
}
