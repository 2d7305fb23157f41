package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

// newDragContext builds a 100x100 confine part and a 20x20 knob dragable
// inside it.
func newDragContext(t *testing.T, dr model.Dragable) (*Context, int) {
	t.Helper()
	confine := newTestPart("confine", model.PartRectangle)
	knob := newTestPart("knob", model.PartRectangle, maxSize(20, 20))
	knob.Dragable = dr
	c, _ := newTestContext(t, []*model.Part{confine, knob})
	return c, 1
}

func TestDrag_ConfinedValue(t *testing.T) {
	type tc struct {
		dir   model.DragDir
		step  int
		count int
		value float64
		wantX int
	}

	tests := map[string]tc{
		"half way":          {dir: model.DragNormal, value: 0.5, wantX: 40},
		"start":             {dir: model.DragNormal, value: 0, wantX: 0},
		"end":               {dir: model.DragNormal, value: 1, wantX: 80},
		"clamped above one": {dir: model.DragNormal, value: 3, wantX: 80},
		"inverted axis":     {dir: model.DragInverted, value: 0.25, wantX: 60},
		"step quantizes":    {dir: model.DragNormal, step: 10, value: 0.55, wantX: 40},
		"count quantizes":   {dir: model.DragNormal, count: 4, value: 0.6, wantX: 40},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, knob := newDragContext(t, model.Dragable{
				X: tt.dir, StepX: tt.step, CountX: tt.count,
				Confine: 0, Events: model.NoRef,
			})
			require.NoError(t, c.DragValueSet(knob, tt.value, 0))

			g := geometry(t, c, "knob")
			assert.Equal(t, tt.wantX, g.X)
			assert.Equal(t, 40, g.Y, "y is not dragable and keeps its solved position")
			assert.Equal(t, 20, g.Width)
		})
	}
}

func TestDrag_ValueRoundTrip(t *testing.T) {
	c, knob := newDragContext(t, model.Dragable{
		X: model.DragInverted, Y: model.DragNormal, Confine: 0, Events: model.NoRef,
	})
	require.NoError(t, c.DragValueSet(knob, 0.25, 0.75))
	x, y, err := c.DragValue(knob)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, x, 1e-9)
	assert.InDelta(t, 0.75, y, 1e-9)
	assert.Equal(t, layout.NewRect(60, 60, 20, 20), geometry(t, c, "knob"))
}

func TestDrag_StepAndPage(t *testing.T) {
	c, knob := newDragContext(t, model.Dragable{X: model.DragNormal, Confine: 0, Events: model.NoRef})
	require.NoError(t, c.DragValueSet(knob, 0.5, 0))
	require.NoError(t, c.DragStepSet(knob, 0.1, 0))
	require.NoError(t, c.DragPageSet(knob, 0.5, 0))

	require.NoError(t, c.DragStep(knob, 2, 0))
	x, _, err := c.DragValue(knob)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, x, 1e-9)
	assert.Equal(t, 56, geometry(t, c, "knob").X)

	require.NoError(t, c.DragPage(knob, -1, 0))
	x, _, err = c.DragValue(knob)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, x, 1e-9)

	require.NoError(t, c.DragPage(knob, -1, 0))
	x, _, err = c.DragValue(knob)
	require.NoError(t, err)
	assert.Zero(t, x)
}

func TestDrag_Size(t *testing.T) {
	c, knob := newDragContext(t, model.Dragable{X: model.DragNormal, Confine: 0, Events: model.NoRef})
	require.NoError(t, c.DragSizeSet(knob, 0.5, 0))
	require.NoError(t, c.DragValueSet(knob, 1, 0))

	// The drag size is still bounded by the 20 pixel max.
	g := geometry(t, c, "knob")
	assert.Equal(t, 20, g.Width)
	assert.Equal(t, 80, g.X)

	w, h, err := c.DragSize(knob)
	require.NoError(t, err)
	assert.Equal(t, 0.5, w)
	assert.Zero(t, h)
}

func TestDrag_OffsetAndCommit(t *testing.T) {
	c, knob := newDragContext(t, model.Dragable{X: model.DragNormal, Confine: 0, Events: model.NoRef})
	require.NoError(t, c.DragValueSet(knob, 0.5, 0))

	require.NoError(t, c.DragOffsetSet(knob, 7, 0))
	assert.Equal(t, 47, geometry(t, c, "knob").X)

	require.NoError(t, c.DragOffsetSet(knob, 500, 0))
	assert.Equal(t, 80, geometry(t, c, "knob").X, "offset is kept inside the confine box")

	require.NoError(t, c.DragOffsetSet(knob, 7, 0))
	require.NoError(t, c.DragCommit(knob))
	x, _, err := c.DragValue(knob)
	require.NoError(t, err)
	assert.InDelta(t, 47.0/80.0, x, 1e-9)
	assert.Equal(t, 47, geometry(t, c, "knob").X)
}

func TestDrag_ZeroTravelConfine(t *testing.T) {
	confine := newTestPart("confine", model.PartRectangle, maxSize(20, 20))
	knob := newTestPart("knob", model.PartRectangle, maxSize(20, 20))
	knob.Dragable = model.Dragable{X: model.DragNormal, Confine: 0, Events: model.NoRef}
	c, _ := newTestContext(t, []*model.Part{confine, knob})

	require.NoError(t, c.DragValueSet(1, 0.7, 0))
	assert.Equal(t, 40, geometry(t, c, "knob").X)
	require.NoError(t, c.DragCommit(1))
	x, _, err := c.DragValue(1)
	require.NoError(t, err)
	assert.Zero(t, x)
}

func TestDrag_Unconfined(t *testing.T) {
	knob := newTestPart("knob", model.PartRectangle, maxSize(20, 20))
	knob.Dragable = model.Dragable{X: model.DragNormal, StepX: 5, Confine: model.NoRef, Events: model.NoRef}
	c, _ := newTestContext(t, []*model.Part{knob})

	require.NoError(t, c.DragOffsetSet(0, 13, 0))
	assert.Equal(t, 50, geometry(t, c, "knob").X)
	require.NoError(t, c.DragOffsetSet(0, -12, 0))
	assert.Equal(t, 25, geometry(t, c, "knob").X)
}

func TestDrag_NotDragable(t *testing.T) {
	c, _ := newDragContext(t, model.Dragable{X: model.DragNormal, Confine: 0, Events: model.NoRef})

	assert.ErrorIs(t, c.DragValueSet(0, 0.5, 0.5), ErrNotDragable)
	_, _, err := c.DragValue(0)
	assert.ErrorIs(t, err, ErrNotDragable)
	assert.ErrorIs(t, c.DragStep(5, 1, 1), ErrUnknownPart)
}
