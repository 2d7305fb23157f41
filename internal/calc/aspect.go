package calc

import "github.com/grindlemire/go-parts/internal/model"

// aspect enforces the aspect ratio bounds of d. The box is moved by the
// alignment fraction of whatever size it gave up or gained.
func (c *Context) aspect(rp *realPart, d *model.Description, ev eval, lim limits, pos float64) eval {
	amin, amax := d.Aspect.Min, d.Aspect.Max
	prefer := d.Aspect.Prefer

	if prefer == model.AspectSource && rp.part.Type == model.PartImage {
		if sz, ok := c.imageNaturalSize(rp, pos); ok && sz.Width > 0 && sz.Height > 0 {
			amin = float64(sz.Width) / float64(sz.Height)
			amax = amin
		}
	}
	if rp.hints.AspectW > 0 && rp.hints.AspectH > 0 {
		amin = float64(rp.hints.AspectW) / float64(rp.hints.AspectH)
		amax = amin
	}
	// A zero bound leaves that side open.
	if amin <= 0 && amax <= 0 {
		return ev
	}
	if p, ok := rp.hints.AspectMode.prefer(); ok {
		prefer = p
	}

	var ratio float64
	if ev.h > 0 {
		ratio = ev.w / ev.h
	}
	var target float64
	switch {
	case amax > 0 && ratio > amax:
		target = amax
	case amin > 0 && ratio < amin:
		target = amin
	default:
		return ev
	}

	newW, newH := ev.w, ev.h
	switch prefer {
	case model.AspectNone:
		// Shrink whichever dimension is too long.
		if ratio > target {
			newW = target * ev.h
		} else {
			newH = ev.w / target
		}
	case model.AspectVertical:
		newW = target * ev.h
		newW = clampF(newW, lim.minW, lim.maxW)
	case model.AspectHorizontal:
		newH = ev.w / target
		newH = clampF(newH, lim.minH, lim.maxH)
	case model.AspectBoth, model.AspectSource:
		// Keep the dimension that fits and derive the other one so the
		// result stays inside the evaluated box.
		if target*ev.h <= ev.w {
			newW, newH = target*ev.h, ev.h
		} else {
			newW, newH = ev.w, ev.w/target
		}
		if lim.maxW >= 0 && newW > float64(lim.maxW) {
			newW = float64(lim.maxW)
			newH = newW / target
		}
		if lim.maxH >= 0 && newH > float64(lim.maxH) {
			newH = float64(lim.maxH)
			newW = newH * target
		}
		if newW < float64(lim.minW) {
			newW = float64(lim.minW)
			newH = newW / target
		}
		if newH < float64(lim.minH) {
			newH = float64(lim.minH)
			newW = newH * target
		}
	}

	ev.x += (ev.w - newW) * d.AlignX
	ev.y += (ev.h - newH) * d.AlignY
	ev.w, ev.h = newW, newH
	return ev
}

// clampF clamps v to [lo, hi]; a negative hi is unbounded and lo wins over hi.
func clampF(v float64, lo, hi int) float64 {
	if hi >= 0 && v > float64(hi) {
		v = float64(hi)
	}
	if v < float64(lo) {
		v = float64(lo)
	}
	return v
}
