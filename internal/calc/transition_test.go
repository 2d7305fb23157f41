package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

func TestTransition_Lifecycle(t *testing.T) {
	p := withState(newTestPart("p", model.PartRectangle), "small", 0, maxSize(20, 20), func(d *model.Description) {
		d.Visible = false
	})
	c, r := newTestContext(t, []*model.Part{p})
	obj := func() *fakeObject { return r.objects["p"] }

	require.NoError(t, c.BeginTransition(0, "small", 0))
	assert.Equal(t, layout.NewRect(0, 0, 100, 100), geometry(t, c, "p"))
	assert.True(t, obj().visible)

	require.NoError(t, c.SetTransitionPos(0, 0.5))
	assert.Equal(t, layout.NewRect(20, 20, 60, 60), geometry(t, c, "p"))
	assert.True(t, obj().visible)
	state, _, err := c.State(0)
	require.NoError(t, err)
	assert.Equal(t, "small", state)

	require.NoError(t, c.SetTransitionPos(0, 1))
	assert.Equal(t, layout.NewRect(40, 40, 20, 20), geometry(t, c, "p"))
	assert.False(t, obj().visible)

	require.NoError(t, c.EndTransition(0))
	pos, transitioning, err := c.TransitionPos(0)
	require.NoError(t, err)
	assert.False(t, transitioning)
	assert.Zero(t, pos)
	assert.Equal(t, layout.NewRect(40, 40, 20, 20), geometry(t, c, "p"))

	require.NoError(t, c.SetState(0, "default", 0))
	assert.Equal(t, layout.NewRect(0, 0, 100, 100), geometry(t, c, "p"))
	assert.True(t, obj().visible)
}

func TestTransition_LookupNearestValue(t *testing.T) {
	p := newTestPart("p", model.PartRectangle)
	withState(p, "open", 0, maxSize(10, 10))
	withState(p, "open", 1, maxSize(30, 30))
	c, _ := newTestContext(t, []*model.Part{p})

	type tc struct {
		state string
		value float64
		want  int
	}

	tests := map[string]tc{
		"exact value":           {state: "open", value: 1, want: 30},
		"nearest value":         {state: "open", value: 0.3, want: 10},
		"unknown falls back":    {state: "closed", value: 0, want: 100},
		"default is selectable": {state: "default", value: 5, want: 100},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, c.SetState(0, tt.state, tt.value))
			assert.Equal(t, tt.want, geometry(t, c, "p").Width)
		})
	}
}

func TestTransition_ImageTweenFrames(t *testing.T) {
	p := newTestPart("img", model.PartImage, func(d *model.Description) { d.Image.ID = 1 })
	withState(p, "on", 0, func(d *model.Description) {
		d.Image.ID = 5
		d.Image.Tweens = []int{2, 3, 4}
	})
	coll, err := model.NewCollection("test", []*model.Part{p})
	require.NoError(t, err)
	r := newFakeRenderer()
	r.setup = func(o *fakeObject) {
		o.images = map[int]layout.Size{}
		for i := 1; i <= 5; i++ {
			o.images[i] = layout.Size{Width: 8, Height: 8}
		}
	}
	c, err := New(coll, r, WithGeometry(layout.NewRect(0, 0, 100, 100)))
	require.NoError(t, err)
	require.NoError(t, c.BeginTransition(0, "on", 0))

	type tc struct {
		pos  float64
		want int
	}

	tests := map[string]tc{
		"start shows the from image": {pos: 0, want: 1},
		"first tween":                {pos: 0.25, want: 2},
		"middle tween":               {pos: 0.5, want: 3},
		"last tween":                 {pos: 0.8, want: 4},
		"end shows the to image":     {pos: 1, want: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, c.SetTransitionPos(0, tt.pos))
			c.Recalc()
			assert.Equal(t, tt.want, r.objects["img"].image)
		})
	}
}

func TestTransition_MissingImageFallsBack(t *testing.T) {
	p := newTestPart("img", model.PartImage, func(d *model.Description) { d.Image.ID = 9 })
	log, logs := observedLogger()
	c, r := newTestContext(t, []*model.Part{p}, WithLogger(log))

	c.Recalc()
	assert.Equal(t, model.NoRef, r.objects["img"].image)
	assert.Equal(t, 1, logs.FilterMessage("setting image failed").Len())
}
