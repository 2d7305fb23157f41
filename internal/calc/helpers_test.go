package calc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
	"github.com/grindlemire/go-parts/internal/transform"
)

// fakeObject records what the apply stage pushes. It implements every
// optional render interface; the engine picks by part type.
type fakeObject struct {
	name string

	geom    layout.Rect
	color   layout.Color
	visible bool
	fill    FillParams
	image   int
	border  layout.Edges
	text    TextState
	box     BoxParams
	source  Object
	clip    Object
	m       *transform.Map

	geomCalls int
	measures  int

	images  map[int]layout.Size
	minSize layout.Size

	onGeometry func(r layout.Rect)
}

func (o *fakeObject) SetGeometry(r layout.Rect) {
	o.geom = r
	o.geomCalls++
	if o.onGeometry != nil {
		o.onGeometry(r)
	}
}

func (o *fakeObject) SetColor(c layout.Color) { o.color = c }
func (o *fakeObject) SetVisible(v bool)       { o.visible = v }
func (o *fakeObject) SetFill(f FillParams)    { o.fill = f }

func (o *fakeObject) ImageSize(id int) (layout.Size, error) {
	sz, ok := o.images[id]
	if !ok {
		return layout.Size{}, fmt.Errorf("no image %d", id)
	}
	return sz, nil
}

func (o *fakeObject) SetImage(id int) error {
	if _, ok := o.images[id]; !ok && id != model.NoRef {
		return fmt.Errorf("no image %d", id)
	}
	o.image = id
	return nil
}

func (o *fakeObject) SetBorder(b layout.Edges, _ float64) { o.border = b }

// MeasureText treats every rune as one unit wide and each line as one high.
func (o *fakeObject) MeasureText(t TextState, wrap int) (layout.Size, error) {
	o.measures++
	n := len([]rune(t.Text))
	if wrap > 0 && n > wrap {
		return layout.Size{Width: wrap, Height: (n + wrap - 1) / wrap}, nil
	}
	return layout.Size{Width: n, Height: 1}, nil
}

func (o *fakeObject) SetText(t TextState)      { o.text = t }
func (o *fakeObject) MinSize() layout.Size     { return o.minSize }
func (o *fakeObject) SetBoxLayout(b BoxParams) { o.box = b }
func (o *fakeObject) SetSource(src Object)     { o.source = src }
func (o *fakeObject) SetMap(m *transform.Map)  { o.m = m }
func (o *fakeObject) SetClip(clip Object)      { o.clip = clip }

type fakeRenderer struct {
	objects map[string]*fakeObject
	setup   func(o *fakeObject)
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{objects: make(map[string]*fakeObject)}
}

func (r *fakeRenderer) NewObject(p *model.Part) Object {
	o := &fakeObject{name: p.Name, image: model.NoRef}
	if r.setup != nil {
		r.setup(o)
	}
	r.objects[p.Name] = o
	return o
}

type descMod func(d *model.Description)

func newTestPart(name string, typ model.PartType, mods ...descMod) *model.Part {
	p := model.NewPart(name, typ)
	p.Default = model.NewDescription("default", 0)
	for _, m := range mods {
		m(p.Default)
	}
	return p
}

func withState(p *model.Part, state string, value float64, mods ...descMod) *model.Part {
	d := model.NewDescription(state, value)
	for _, m := range mods {
		m(d)
	}
	p.Others = append(p.Others, d)
	return p
}

// collapsed makes rel2 coincide with rel1 so the anchors request a 0x0 box.
func collapsed(d *model.Description) {
	d.Rel2.RelativeX, d.Rel2.RelativeY = 0, 0
}

func topLeft(d *model.Description) {
	d.AlignX, d.AlignY = 0, 0
}

func maxSize(w, h int) descMod {
	return func(d *model.Description) { d.Max = layout.Size{Width: w, Height: h} }
}

func minSize(w, h int) descMod {
	return func(d *model.Description) { d.Min = layout.Size{Width: w, Height: h} }
}

func newTestContext(t *testing.T, parts []*model.Part, opts ...Option) (*Context, *fakeRenderer) {
	t.Helper()
	coll, err := model.NewCollection("test", parts)
	require.NoError(t, err)
	r := newFakeRenderer()
	opts = append([]Option{WithGeometry(layout.NewRect(0, 0, 100, 100))}, opts...)
	c, err := New(coll, r, opts...)
	require.NoError(t, err)
	return c, r
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.WarnLevel)
	return zap.New(core), logs
}

func geometry(t *testing.T, c *Context, name string) layout.Rect {
	t.Helper()
	id, err := c.PartID(name)
	require.NoError(t, err)
	r, err := c.PartGeometry(id)
	require.NoError(t, err)
	return r
}
