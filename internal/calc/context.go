package calc

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

var (
	// ErrUnknownPart is returned for part ids or names outside the collection.
	ErrUnknownPart = errors.New("unknown part")
	// ErrNotDragable is returned by drag operations on parts that cannot be dragged.
	ErrNotDragable = errors.New("part is not dragable")
)

// maxRecalcRounds bounds how many times a single Recalc call re-runs a pass
// because the previous pass made the container dirty again.
const maxRecalcRounds = 8

// Context is the layout context of one instantiated collection.
type Context struct {
	id       string
	coll     *model.Collection
	renderer Renderer
	log      *zap.Logger

	parts []realPart
	box   layout.Rect

	scale        float64
	calcCache    bool
	persp        *Perspective
	defaultPersp *Perspective
	colorClasses map[string]ColorClass

	generation    uint64
	freeze        int
	dirty         bool
	pending       bool
	recalculating bool
	calcOnly      bool
	allPartChange bool

	stack []int
	fp    []byte
}

// New instantiates coll. The renderer may be nil, in which case the context
// only computes geometry.
func New(coll *model.Collection, r Renderer, opts ...Option) (*Context, error) {
	c := &Context{
		id:           uuid.NewString(),
		renderer:     r,
		log:          zap.NewNop(),
		scale:        1,
		colorClasses: make(map[string]ColorClass),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.log = c.log.With(zap.String("instance", c.id))
	if err := c.Load(coll); err != nil {
		return nil, err
	}
	return c, nil
}

// Load (re)creates every real part from coll. All runtime state such as
// transitions, drag values and swallowed objects is reset.
func (c *Context) Load(coll *model.Collection) error {
	if coll == nil {
		return fmt.Errorf("nil collection")
	}
	if err := coll.Validate(); err != nil {
		return fmt.Errorf("loading collection: %w", err)
	}
	c.coll = coll
	c.log = c.log.With(zap.String("collection", coll.Name))
	for _, ref := range coll.DanglingRefs() {
		c.log.Warn("dangling part reference treated as none",
			zap.String("part", ref.Part),
			zap.String("description", ref.Description),
			zap.Float64("value", ref.Value),
			zap.String("field", ref.Field),
			zap.Int("ref", ref.Ref))
	}

	c.parts = make([]realPart, len(coll.Parts))
	for i, p := range coll.Parts {
		rp := &c.parts[i]
		rp.part = p
		rp.param1 = c.resolve(p.Default)
		rp.chosen = p.Default
		rp.confine = model.NoRef
		if p.Dragable.Enabled() {
			rp.drag = newDragState()
			if coll.ValidRef(p.Dragable.Confine) {
				rp.confine = p.Dragable.Confine
			}
		}
		if c.renderer != nil {
			rp.object = c.renderer.NewObject(p)
		}
	}
	c.allPartChange = true
	c.dirty = true
	return nil
}

// ID returns the unique id of this context, used in diagnostics.
func (c *Context) ID() string {
	return c.id
}

// Collection returns the collection this context was loaded from.
func (c *Context) Collection() *model.Collection {
	return c.coll
}

// PartID resolves a part name to its id.
func (c *Context) PartID(name string) (int, error) {
	id, ok := c.coll.PartID(name)
	if !ok {
		return model.NoRef, fmt.Errorf("%w: %q", ErrUnknownPart, name)
	}
	return id, nil
}

func (c *Context) realPart(id int) (*realPart, error) {
	if id < 0 || id >= len(c.parts) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownPart, id)
	}
	return &c.parts[id], nil
}

// Object returns the render object of a part, or nil.
func (c *Context) Object(id int) Object {
	rp, err := c.realPart(id)
	if err != nil {
		return nil
	}
	return rp.object
}

// Geometry returns the container box.
func (c *Context) Geometry() layout.Rect {
	return c.box
}

// SetGeometry moves and resizes the container.
func (c *Context) SetGeometry(r layout.Rect) {
	if r == c.box {
		return
	}
	c.box = r
	c.allPartChange = true
	c.MarkDirty()
}

// Resize changes the container size, keeping its position.
func (c *Context) Resize(w, h int) {
	c.SetGeometry(layout.Rect{X: c.box.X, Y: c.box.Y, Width: w, Height: h})
}

// Move changes the container position, keeping its size.
func (c *Context) Move(x, y int) {
	c.SetGeometry(layout.Rect{X: x, Y: y, Width: c.box.Width, Height: c.box.Height})
}

// Scale returns the UI scale factor.
func (c *Context) Scale() float64 {
	return c.scale
}

// SetScale changes the UI scale factor. Non-positive values are ignored.
func (c *Context) SetScale(scale float64) {
	if scale <= 0 || scale == c.scale {
		return
	}
	c.scale = scale
	c.allPartChange = true
	c.MarkDirty()
}

// SetPerspective sets the container perspective. nil removes it.
func (c *Context) SetPerspective(p *Perspective) {
	c.persp = p
	c.allPartChange = true
	c.MarkDirty()
}

// SetColorClass defines or replaces a color class.
func (c *Context) SetColorClass(name string, cc ColorClass) {
	c.colorClasses[name] = cc
	c.allPartChange = true
	c.MarkDirty()
}

// DeleteColorClass removes a color class; descriptions using it fall back
// to their own colors.
func (c *Context) DeleteColorClass(name string) {
	if _, ok := c.colorClasses[name]; !ok {
		return
	}
	delete(c.colorClasses, name)
	c.allPartChange = true
	c.MarkDirty()
}

// partFields identifies a part in diagnostics.
func (c *Context) partFields(rp *realPart) []zap.Field {
	fields := []zap.Field{zap.String("part", rp.part.Name)}
	if rp.chosen != nil {
		fields = append(fields,
			zap.String("description", rp.chosen.State),
			zap.Float64("value", rp.chosen.Value))
	}
	return fields
}
