package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

func TestSolve_Geometry(t *testing.T) {
	type tc struct {
		box    layout.Rect
		mods   []descMod
		hints  *SwallowHints
		scale  float64
		scaled bool
		want   layout.Rect
	}

	tests := map[string]tc{
		"default description covers the container": {
			box:  layout.NewRect(0, 0, 100, 50),
			want: layout.NewRect(0, 0, 100, 50),
		},
		"inclusive edges add one pixel": {
			box: layout.NewRect(0, 0, 100, 100),
			mods: []descMod{func(d *model.Description) {
				d.Rel1.OffsetX = 10
				d.Rel2.RelativeX, d.Rel2.OffsetX = 0, 19
			}},
			want: layout.NewRect(10, 0, 10, 100),
		},
		"max shrinks around the alignment point": {
			box:  layout.NewRect(0, 0, 100, 100),
			mods: []descMod{maxSize(20, 20)},
			want: layout.NewRect(40, 40, 20, 20),
		},
		"min grows a collapsed box": {
			box:  layout.NewRect(0, 0, 100, 100),
			mods: []descMod{collapsed, topLeft, minSize(30, 10)},
			want: layout.NewRect(0, 0, 30, 10),
		},
		"max below min is raised to min": {
			box:  layout.NewRect(0, 0, 100, 100),
			mods: []descMod{minSize(50, 50), maxSize(20, 20)},
			want: layout.NewRect(25, 25, 50, 50),
		},
		"step floors the size": {
			box:  layout.NewRect(0, 0, 100, 100),
			mods: []descMod{func(d *model.Description) { d.StepX = 30 }},
			want: layout.NewRect(5, 0, 90, 100),
		},
		"aspect prefer both fits inside": {
			box: layout.NewRect(0, 0, 100, 50),
			mods: []descMod{func(d *model.Description) {
				d.Aspect = model.Aspect{Min: 1, Max: 1, Prefer: model.AspectBoth}
			}},
			want: layout.NewRect(25, 0, 50, 50),
		},
		"aspect prefer vertical derives width": {
			box: layout.NewRect(0, 0, 100, 50),
			mods: []descMod{func(d *model.Description) {
				d.Aspect = model.Aspect{Min: 1, Max: 1, Prefer: model.AspectVertical}
			}},
			want: layout.NewRect(25, 0, 50, 50),
		},
		"aspect prefer horizontal derives height": {
			box: layout.NewRect(0, 0, 100, 50),
			mods: []descMod{func(d *model.Description) {
				d.Aspect = model.Aspect{Min: 1, Max: 1, Prefer: model.AspectHorizontal}
			}},
			want: layout.NewRect(0, -25, 100, 100),
		},
		"aspect within range is left alone": {
			box: layout.NewRect(0, 0, 100, 50),
			mods: []descMod{func(d *model.Description) {
				d.Aspect = model.Aspect{Min: 1, Max: 3, Prefer: model.AspectBoth}
			}},
			want: layout.NewRect(0, 0, 100, 50),
		},
		"aspect max alone narrows a wide box": {
			box: layout.NewRect(0, 0, 400, 100),
			mods: []descMod{topLeft, func(d *model.Description) {
				d.Aspect = model.Aspect{Max: 2, Prefer: model.AspectBoth}
			}},
			want: layout.NewRect(0, 0, 200, 100),
		},
		"aspect min alone flattens a tall box": {
			box: layout.NewRect(0, 0, 50, 100),
			mods: []descMod{topLeft, func(d *model.Description) {
				d.Aspect = model.Aspect{Min: 1, Prefer: model.AspectBoth}
			}},
			want: layout.NewRect(0, 0, 50, 50),
		},
		"aspect prefer none shrinks the long width": {
			box: layout.NewRect(0, 0, 200, 50),
			mods: []descMod{func(d *model.Description) {
				d.Aspect = model.Aspect{Min: 2, Max: 2, Prefer: model.AspectNone}
			}},
			want: layout.NewRect(50, 0, 100, 50),
		},
		"aspect prefer none shrinks the long height": {
			box: layout.NewRect(0, 0, 50, 100),
			mods: []descMod{topLeft, func(d *model.Description) {
				d.Aspect = model.Aspect{Min: 1, Prefer: model.AspectNone}
			}},
			want: layout.NewRect(0, 0, 50, 50),
		},
		"swallow max lowers the description max": {
			box:   layout.NewRect(0, 0, 100, 100),
			hints: &SwallowHints{Max: layout.Size{Width: 40, Height: 40}},
			want:  layout.NewRect(30, 30, 40, 40),
		},
		"swallow aspect with control overrides the description": {
			box:   layout.NewRect(0, 0, 100, 100),
			hints: &SwallowHints{AspectW: 2, AspectH: 1, AspectMode: AspectControlBoth},
			want:  layout.NewRect(0, 25, 100, 50),
		},
		"scaled part scales its min": {
			box:    layout.NewRect(0, 0, 100, 100),
			mods:   []descMod{collapsed, topLeft, minSize(10, 5)},
			scale:  2,
			scaled: true,
			want:   layout.NewRect(0, 0, 20, 10),
		},
		"unscaled part ignores the scale": {
			box:   layout.NewRect(0, 0, 100, 100),
			mods:  []descMod{collapsed, topLeft, minSize(10, 5)},
			scale: 2,
			want:  layout.NewRect(0, 0, 10, 5),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := newTestPart("p", model.PartRectangle, tt.mods...)
			p.Scale = tt.scaled
			opts := []Option{WithGeometry(tt.box)}
			if tt.scale > 0 {
				opts = append(opts, WithScale(tt.scale))
			}
			c, _ := newTestContext(t, []*model.Part{p}, opts...)
			if tt.hints != nil {
				require.NoError(t, c.SetSwallowHints(0, *tt.hints))
			}
			assert.Equal(t, tt.want, geometry(t, c, "p"))
		})
	}
}

func TestSolve_RelativeAnchors(t *testing.T) {
	// below depends on parts listed after it.
	below := newTestPart("below", model.PartRectangle, func(d *model.Description) {
		d.Rel1.ToY = 2
		d.Rel1.RelativeY = 0.5
		d.Rel2.ToX = 1
	})
	left := newTestPart("left", model.PartRectangle, func(d *model.Description) {
		d.Rel2.RelativeX = 0.5
	})
	right := newTestPart("right", model.PartRectangle, func(d *model.Description) {
		d.Rel1.ToX = 1
		d.Rel1.RelativeX = 1
	})
	c, _ := newTestContext(t, []*model.Part{below, left, right})

	assert.Equal(t, layout.NewRect(0, 0, 50, 100), geometry(t, c, "left"))
	assert.Equal(t, layout.NewRect(50, 0, 50, 100), geometry(t, c, "right"))
	assert.Equal(t, layout.NewRect(0, 50, 50, 50), geometry(t, c, "below"))
}

func TestSolve_ReqIsAnchorGeometry(t *testing.T) {
	p := newTestPart("p", model.PartRectangle, maxSize(20, 20))
	c, _ := newTestContext(t, []*model.Part{p})

	params, err := c.Params(0)
	require.NoError(t, err)
	assert.Equal(t, layout.NewRect(0, 0, 100, 100), params.Req)
	assert.Equal(t, layout.NewRect(40, 40, 20, 20), params.Rect)
}

func TestSolve_TextIntrinsicSize(t *testing.T) {
	type tc struct {
		text model.Text
		box  layout.Rect
		mods []descMod
		want layout.Rect
	}

	tests := map[string]tc{
		"min from text grows a collapsed box": {
			text: model.Text{Text: "hello world", MinX: true, MinY: true},
			box:  layout.NewRect(0, 0, 100, 100),
			mods: []descMod{collapsed, topLeft},
			want: layout.NewRect(0, 0, 11, 1),
		},
		"max from text shrinks the box": {
			text: model.Text{Text: "hello", MaxX: true, MaxY: true},
			box:  layout.NewRect(0, 0, 100, 100),
			mods: []descMod{topLeft},
			want: layout.NewRect(0, 0, 5, 1),
		},
		"wrapped text grows in height only": {
			text: model.Text{Text: "0123456789abcdefghij", Wrap: true, MinY: true},
			box:  layout.NewRect(0, 0, 10, 0),
			mods: []descMod{topLeft, func(d *model.Description) { d.Rel2.RelativeY = 0 }},
			want: layout.NewRect(0, 0, 10, 2),
		},
		"no text flags leaves the anchors alone": {
			text: model.Text{Text: "hello"},
			box:  layout.NewRect(0, 0, 100, 100),
			want: layout.NewRect(0, 0, 100, 100),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mods := append([]descMod{func(d *model.Description) {
				ta := d.Text
				d.Text = tt.text
				d.Text.AlignX, d.Text.AlignY, d.Text.Ellipsis = ta.AlignX, ta.AlignY, ta.Ellipsis
			}}, tt.mods...)
			p := newTestPart("label", model.PartText, mods...)
			c, r := newTestContext(t, []*model.Part{p}, WithGeometry(tt.box))

			assert.Equal(t, tt.want, geometry(t, c, "label"))
			assert.Equal(t, tt.text.Text, r.objects["label"].text.Text)
		})
	}
}

func TestSolve_ContainerMinSize(t *testing.T) {
	p := newTestPart("box", model.PartBox, collapsed, topLeft, func(d *model.Description) {
		d.Box.MinH = true
		d.Box.MinV = true
	})
	coll, err := model.NewCollection("test", []*model.Part{p})
	require.NoError(t, err)
	r := newFakeRenderer()
	r.setup = func(o *fakeObject) { o.minSize = layout.Size{Width: 12, Height: 7} }
	c, err := New(coll, r, WithGeometry(layout.NewRect(0, 0, 100, 100)))
	require.NoError(t, err)

	assert.Equal(t, layout.NewRect(0, 0, 12, 7), geometry(t, c, "box"))
}

func TestSolve_ImageLimitsAndFill(t *testing.T) {
	p := newTestPart("img", model.PartImage, topLeft, func(d *model.Description) {
		d.Image.ID = 1
		d.Image.MaxLimit = true
		d.Fill.Type = model.FillTile
		d.Fill.RelX, d.Fill.RelY = 0.5, 1
	})
	coll, err := model.NewCollection("test", []*model.Part{p})
	require.NoError(t, err)
	r := newFakeRenderer()
	r.setup = func(o *fakeObject) { o.images = map[int]layout.Size{1: {Width: 32, Height: 16}} }
	c, err := New(coll, r, WithGeometry(layout.NewRect(0, 0, 100, 100)))
	require.NoError(t, err)

	params, err := c.Params(0)
	require.NoError(t, err)
	assert.Equal(t, layout.NewRect(0, 0, 32, 16), params.Rect)
	assert.Equal(t, FillParams{Rect: layout.NewRect(0, 0, 16, 16), Smooth: true, Tile: true}, params.Fill)
	assert.Equal(t, 1, r.objects["img"].image)
}

func TestSolve_AspectSourceUsesImageRatio(t *testing.T) {
	p := newTestPart("img", model.PartImage, func(d *model.Description) {
		d.Image.ID = 1
		d.Aspect = model.Aspect{Prefer: model.AspectSource}
	})
	coll, err := model.NewCollection("test", []*model.Part{p})
	require.NoError(t, err)
	r := newFakeRenderer()
	r.setup = func(o *fakeObject) { o.images = map[int]layout.Size{1: {Width: 40, Height: 20}} }
	c, err := New(coll, r, WithGeometry(layout.NewRect(0, 0, 100, 100)))
	require.NoError(t, err)

	assert.Equal(t, layout.NewRect(0, 25, 100, 50), geometry(t, c, "img"))
}

func TestSolve_ColorClass(t *testing.T) {
	p := newTestPart("p", model.PartRectangle, func(d *model.Description) {
		d.ColorClass = "accent"
	})
	c, r := newTestContext(t, []*model.Part{p},
		WithColorClass("accent", ColorClass{Color: layout.RGBA(128, 128, 128, 255)}))

	params, err := c.Params(0)
	require.NoError(t, err)
	assert.Equal(t, layout.RGBA(128, 128, 128, 255), params.Color)

	c.DeleteColorClass("accent")
	params, err = c.Params(0)
	require.NoError(t, err)
	assert.Equal(t, layout.White, params.Color)
	assert.Equal(t, layout.White, r.objects["p"].color)
}
