package termrender

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-parts/internal/calc"
	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

var testImages = []Image{
	{Size: layout.Size{Width: 2, Height: 1}, Glyph: '#'},
	{Size: layout.Size{Width: 2, Height: 1}, Glyph: '%'},
}

func newScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func part(name string, typ model.PartType, mod func(d *model.Description)) *model.Part {
	p := model.NewPart(name, typ)
	p.Default = model.NewDescription("default", 0)
	if mod != nil {
		mod(p.Default)
	}
	return p
}

// at anchors a description to a fixed box in the container.
func at(x, y, w, h int) func(d *model.Description) {
	return func(d *model.Description) {
		d.Rel1 = model.Rel{OffsetX: x, OffsetY: y, ToX: model.NoRef, ToY: model.NoRef}
		d.Rel2 = model.Rel{OffsetX: x + w - 1, OffsetY: y + h - 1, ToX: model.NoRef, ToY: model.NoRef}
	}
}

func with(mods ...func(d *model.Description)) func(d *model.Description) {
	return func(d *model.Description) {
		for _, m := range mods {
			m(d)
		}
	}
}

func colored(c layout.Color) func(d *model.Description) {
	return func(d *model.Description) { d.Color = c }
}

func render(t *testing.T, w, h int, parts ...*model.Part) (tcell.Screen, *calc.Context, *Renderer) {
	t.Helper()
	screen := newScreen(t, w, h)
	coll, err := model.NewCollection("test", parts)
	require.NoError(t, err)
	r := New(screen, testImages)
	c, err := calc.New(coll, r, calc.WithGeometry(layout.NewRect(0, 0, w, h)))
	require.NoError(t, err)
	c.Recalc()
	r.Draw()
	return screen, c, r
}

func cell(s tcell.Screen, x, y int) (rune, tcell.Color, tcell.Color) {
	ch, _, style, _ := s.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return ch, fg, bg
}

func TestDraw_RectAndText(t *testing.T) {
	blue := layout.RGBA(0, 0, 255, 255)
	bg := part("bg", model.PartRectangle, colored(blue))
	label := part("label", model.PartText, func(d *model.Description) {
		d.Text.Text = "Hi"
	})

	s, _, _ := render(t, 10, 3, bg, label)

	ch, _, back := cell(s, 0, 0)
	assert.Equal(t, ' ', ch)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), back)

	ch, fg, back := cell(s, 4, 1)
	assert.Equal(t, 'H', ch)
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), back)

	ch, _, _ = cell(s, 5, 1)
	assert.Equal(t, 'i', ch)
}

func TestDraw_AlphaBlend(t *testing.T) {
	base := part("base", model.PartRectangle, colored(layout.RGBA(0, 0, 0, 255)))
	veil := part("veil", model.PartRectangle, with(at(0, 0, 2, 1), colored(layout.RGBA(255, 0, 0, 128))))

	s, _, _ := render(t, 4, 1, base, veil)

	_, _, back := cell(s, 1, 0)
	assert.Equal(t, tcell.NewRGBColor(128, 0, 0), back)
	_, _, back = cell(s, 2, 0)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), back)
}

func TestDraw_ImageAndVisibility(t *testing.T) {
	shown := part("shown", model.PartImage, with(at(0, 0, 3, 2), func(d *model.Description) {
		d.Image.ID = 0
	}))
	hidden := part("hidden", model.PartImage, with(at(0, 2, 3, 1), func(d *model.Description) {
		d.Image.ID = 1
		d.Visible = false
	}))

	s, _, _ := render(t, 3, 3, shown, hidden)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			ch, _, _ := cell(s, x, y)
			assert.Equal(t, '#', ch, "cell %d,%d", x, y)
		}
	}
	ch, _, _ := cell(s, 1, 2)
	assert.Equal(t, ' ', ch)
}

func TestDraw_ImageBorder(t *testing.T) {
	framed := part("framed", model.PartImage, with(at(0, 0, 4, 3), func(d *model.Description) {
		d.Image.ID = 1
		d.Image.Border = layout.EdgeTRBL(1, 1, 1, 1)
	}))

	s, _, _ := render(t, 4, 3, framed)

	want := []string{
		"┌──┐",
		"│%%│",
		"└──┘",
	}
	for y, row := range want {
		for x, r := range []rune(row) {
			ch, _, _ := cell(s, x, y)
			assert.Equal(t, r, ch, "cell %d,%d", x, y)
		}
	}
}

func TestDraw_Clip(t *testing.T) {
	window := part("window", model.PartRectangle, with(at(0, 0, 2, 1), colored(layout.RGBA(0, 0, 0, 0))))
	label := part("label", model.PartText, with(at(0, 0, 6, 1), func(d *model.Description) {
		d.Text.Text = "abcdef"
		d.Text.AlignX = 0
	}))
	label.ClipTo = 0

	s, _, _ := render(t, 6, 1, window, label)

	got := make([]rune, 6)
	for x := range got {
		got[x], _, _ = cell(s, x, 0)
	}
	assert.Equal(t, "ab    ", string(got))
}

func TestDraw_Proxy(t *testing.T) {
	src := part("src", model.PartImage, with(at(0, 0, 2, 1), func(d *model.Description) {
		d.Image.ID = 1
	}))
	mirror := part("mirror", model.PartProxy, with(at(0, 1, 2, 1), func(d *model.Description) {
		d.ProxySrc = 0
	}))

	s, _, _ := render(t, 2, 2, src, mirror)

	ch, _, _ := cell(s, 0, 1)
	assert.Equal(t, '%', ch)
	ch, _, _ = cell(s, 1, 1)
	assert.Equal(t, '%', ch)
}

func TestDraw_Swallow(t *testing.T) {
	slot := part("slot", model.PartSwallow, at(1, 0, 2, 1))

	s, c, r := render(t, 4, 1, slot)
	obj := r.NewSwallowObject("embedded", layout.RGBA(0, 255, 0, 255))
	require.NoError(t, c.Swallow(0, obj))
	c.Recalc()
	r.Draw()

	_, _, back := cell(s, 0, 0)
	assert.NotEqual(t, tcell.NewRGBColor(0, 255, 0), back)
	_, _, back = cell(s, 1, 0)
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), back)
	_, _, back = cell(s, 2, 0)
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), back)
}

func TestNewObject_Types(t *testing.T) {
	r := New(newScreen(t, 1, 1), testImages)

	type tc struct {
		typ     model.PartType
		wantNil bool
		check   func(t *testing.T, o calc.Object)
	}

	tests := map[string]tc{
		"rectangle": {typ: model.PartRectangle},
		"image": {typ: model.PartImage, check: func(t *testing.T, o calc.Object) {
			img, ok := o.(calc.ImageObject)
			require.True(t, ok)
			sz, err := img.ImageSize(0)
			require.NoError(t, err)
			assert.Equal(t, layout.Size{Width: 2, Height: 1}, sz)
			_, err = img.ImageSize(5)
			assert.Error(t, err)
			assert.Error(t, img.SetImage(5))
			assert.NoError(t, img.SetImage(model.NoRef))
		}},
		"text": {typ: model.PartText, check: func(t *testing.T, o calc.Object) {
			_, ok := o.(calc.TextObject)
			assert.True(t, ok)
		}},
		"table": {typ: model.PartTable, check: func(t *testing.T, o calc.Object) {
			_, ok := o.(calc.ContainerObject)
			assert.True(t, ok)
		}},
		"proxy": {typ: model.PartProxy, check: func(t *testing.T, o calc.Object) {
			_, ok := o.(calc.ProxyObject)
			assert.True(t, ok)
		}},
		"swallow": {typ: model.PartSwallow, wantNil: true},
		"spacer":  {typ: model.PartSpacer, wantNil: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			o := r.NewObject(model.NewPart(name, tt.typ))
			if tt.wantNil {
				assert.Nil(t, o)
				return
			}
			require.NotNil(t, o)
			_, mappable := o.(calc.Mappable)
			assert.True(t, mappable)
			_, clippable := o.(calc.Clippable)
			assert.True(t, clippable)
			if tt.check != nil {
				tt.check(t, o)
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	label := part("label", model.PartText, with(at(0, 1, 5, 1), func(d *model.Description) {
		d.Text.Text = "日本"
		d.Text.AlignX = 0
	}))

	_, _, r := render(t, 5, 2, label)

	assert.Equal(t, []string{"", "日本"}, r.Snapshot())
}

func TestHeadless(t *testing.T) {
	coll, err := model.NewCollection("test", []*model.Part{
		part("label", model.PartText, func(d *model.Description) {
			d.Text.Text = "wide"
			d.Text.MinX = true
		}),
	})
	require.NoError(t, err)

	r := New(nil, nil)
	c, err := calc.New(coll, r, calc.WithGeometry(layout.NewRect(0, 0, 2, 1)))
	require.NoError(t, err)

	g, err := c.PartGeometry(0)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width)
	r.Draw()
	r.Show()
	assert.Nil(t, r.Snapshot())
}
