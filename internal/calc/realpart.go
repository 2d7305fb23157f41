package calc

import (
	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

// slot is one interpolation state of a real part: a description with its
// references resolved against the arena, plus the last solve of it.
type slot struct {
	desc *model.Description

	rel1X, rel1Y int
	rel2X, rel2Y int
	clip         int
	center       int
	light        int
	persp        int
	proxy        int

	stamp  uint64 // generation of the last solve, 0 if never solved
	params CalcParams
}

// realPart is the runtime instance of a part.
type realPart struct {
	part      *model.Part
	object    Object
	swallowed Object

	param1 slot
	param2 *slot
	chosen *model.Description
	pos    float64

	confine int

	geom  layout.Rect
	req   layout.Rect
	final CalcParams

	calculated  layout.Axis
	calculating layout.Axis
	stamp       uint64
	invalidate  bool

	drag  *dragState
	hints SwallowHints

	applied    uint64
	hasApplied bool
	mapped     bool
}

// resolve builds a slot for d, replacing references to parts that do not
// exist with model.NoRef.
func (c *Context) resolve(d *model.Description) slot {
	ref := func(id int) int {
		if c.coll.ValidRef(id) {
			return id
		}
		return model.NoRef
	}
	return slot{
		desc:   d,
		rel1X:  ref(d.Rel1.ToX),
		rel1Y:  ref(d.Rel1.ToY),
		rel2X:  ref(d.Rel2.ToX),
		rel2Y:  ref(d.Rel2.ToY),
		clip:   ref(d.ClipTo),
		center: ref(d.Map.Center),
		light:  ref(d.Map.Light),
		persp:  ref(d.Map.Persp),
		proxy:  ref(d.ProxySrc),
	}
}

// clipFor returns the clipper of a part: the description's clip_to when
// set, otherwise the part's.
func (c *Context) clipFor(rp *realPart) int {
	if rp.param1.clip != model.NoRef {
		return rp.param1.clip
	}
	if c.coll.ValidRef(rp.part.ClipTo) {
		return rp.part.ClipTo
	}
	return model.NoRef
}
