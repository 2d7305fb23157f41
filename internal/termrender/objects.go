package termrender

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-parts/internal/calc"
	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
	"github.com/grindlemire/go-parts/internal/transform"
)

type drawable interface {
	calc.Object
	common() *base
	draw(r *Renderer, area layout.Rect, color layout.Color, clip layout.Rect)
}

// base carries the state every object shares.
type base struct {
	name    string
	geom    layout.Rect
	color   layout.Color
	visible bool
	clip    drawable
	m       *transform.Map
}

func newBase(name string) base {
	return base{name: name}
}

func (b *base) common() *base             { return b }
func (b *base) SetGeometry(r layout.Rect) { b.geom = r }
func (b *base) SetColor(c layout.Color)   { b.color = c }
func (b *base) SetVisible(visible bool)   { b.visible = visible }
func (b *base) SetMap(m *transform.Map)   { b.m = m }
func (b *base) Geometry() layout.Rect     { return b.geom }
func (b *base) Color() layout.Color       { return b.color }
func (b *base) Visible() bool             { return b.visible }
func (b *base) Name() string              { return b.name }

// SetClip implements calc.Clippable. Objects from another backend are ignored.
func (b *base) SetClip(clip calc.Object) {
	d, _ := clip.(drawable)
	b.clip = d
}

// area is the painted region and color: the mapped quad's bounds with the
// corner lighting applied, or the plain geometry.
func (b *base) area() (layout.Rect, layout.Color) {
	if b.m == nil {
		return b.geom, b.color
	}
	corners := make([]layout.Color, 0, len(b.m.Points))
	for _, p := range b.m.Points {
		corners = append(corners, p.Color)
	}
	return b.m.Bounds(), lit(b.color, corners)
}

// clipRect intersects the areas of the clipper chain.
func (b *base) clipRect() layout.Rect {
	r := layout.NewRect(-1<<29, -1<<29, 1<<30, 1<<30)
	c := b.clip
	for depth := 0; c != nil && depth < maxClipDepth; depth++ {
		cb := c.common()
		if cb == b {
			break
		}
		area, _ := cb.area()
		r = r.Intersect(area)
		c = cb.clip
	}
	return r
}

type rectObject struct {
	base
}

func (o *rectObject) draw(r *Renderer, area layout.Rect, color layout.Color, clip layout.Rect) {
	r.fillBackground(area, clip, color)
}

type boxObject struct {
	base
	box     calc.BoxParams
	minSize layout.Size
}

// MinSize implements calc.ContainerObject. Terminal boxes pack no children;
// the size set by SetMinSize stands in for them.
func (o *boxObject) MinSize() layout.Size          { return o.minSize }
func (o *boxObject) SetMinSize(s layout.Size)      { o.minSize = s }
func (o *boxObject) SetBoxLayout(b calc.BoxParams) { o.box = b }

func (o *boxObject) draw(r *Renderer, area layout.Rect, color layout.Color, clip layout.Rect) {
	r.fillBackground(area, clip, color)
}

type imageObject struct {
	base
	images  []Image
	id      int
	fill    calc.FillParams
	border  layout.Edges
	scaleBy float64
}

// ImageSize implements calc.ImageObject.
func (o *imageObject) ImageSize(id int) (layout.Size, error) {
	if id < 0 || id >= len(o.images) {
		return layout.Size{}, fmt.Errorf("image %d: no such image", id)
	}
	return o.images[id].Size, nil
}

// SetImage implements calc.ImageObject.
func (o *imageObject) SetImage(id int) error {
	if id != model.NoRef && (id < 0 || id >= len(o.images)) {
		return fmt.Errorf("image %d: no such image", id)
	}
	o.id = id
	return nil
}

func (o *imageObject) SetFill(f calc.FillParams) { o.fill = f }

func (o *imageObject) SetBorder(border layout.Edges, scaleBy float64) {
	o.border = border
	o.scaleBy = scaleBy
}

// fillArea is the part of area covered by image content.
func (o *imageObject) fillArea(area layout.Rect) layout.Rect {
	f := o.fill.Rect
	if o.fill.Tile || f.IsEmpty() {
		return area
	}
	return f.Translate(area.X, area.Y).Intersect(area)
}

func (o *imageObject) glyph() (rune, bool) {
	if o.id == model.NoRef {
		return 0, false
	}
	return o.images[o.id].Glyph, true
}

func (o *imageObject) draw(r *Renderer, area layout.Rect, color layout.Color, clip layout.Rect) {
	ch, ok := o.glyph()
	if !ok {
		return
	}
	r.fillGlyph(o.fillArea(area), clip, ch, color)
	if !o.border.IsZero() {
		drawFrame(r, area, o.border, color, clip)
	}
}

// drawFrame outlines the sides of area that have a border slice.
func drawFrame(r *Renderer, area layout.Rect, e layout.Edges, color layout.Color, clip layout.Rect) {
	if area.Width < 2 || area.Height < 2 {
		return
	}
	x0, y0 := area.X, area.Y
	x1, y1 := area.Right()-1, area.Bottom()-1
	for x := x0 + 1; x < x1; x++ {
		if e.Top > 0 {
			r.put(x, y0, '─', color, clip)
		}
		if e.Bottom > 0 {
			r.put(x, y1, '─', color, clip)
		}
	}
	for y := y0 + 1; y < y1; y++ {
		if e.Left > 0 {
			r.put(x0, y, '│', color, clip)
		}
		if e.Right > 0 {
			r.put(x1, y, '│', color, clip)
		}
	}
	if e.Top > 0 && e.Left > 0 {
		r.put(x0, y0, '┌', color, clip)
	}
	if e.Top > 0 && e.Right > 0 {
		r.put(x1, y0, '┐', color, clip)
	}
	if e.Bottom > 0 && e.Left > 0 {
		r.put(x0, y1, '└', color, clip)
	}
	if e.Bottom > 0 && e.Right > 0 {
		r.put(x1, y1, '┘', color, clip)
	}
}

type textObject struct {
	base
	text calc.TextState
}

// MeasureText implements calc.TextObject. Sizes are in cells.
func (o *textObject) MeasureText(t calc.TextState, wrapWidth int) (layout.Size, error) {
	return measure(t, wrapWidth), nil
}

func (o *textObject) SetText(t calc.TextState) { o.text = t }

func (o *textObject) draw(r *Renderer, area layout.Rect, color layout.Color, clip layout.Rect) {
	t := o.text
	ls := lines(t.Text, t.Wrap, area.Width)
	clip = clip.Intersect(area)
	y := area.Y + layout.Round(float64(area.Height-len(ls))*t.AlignY)
	for i, l := range ls {
		l = fit(l, area.Width, t.Ellipsis)
		w := runewidth.StringWidth(l)
		x := area.X + layout.Round(float64(area.Width-w)*t.AlignX)
		for _, ch := range l {
			r.put(x, y+i, ch, color, clip)
			x += runewidth.RuneWidth(ch)
		}
	}
}

type proxyObject struct {
	base
	src  drawable
	fill calc.FillParams
}

// SetSource implements calc.ProxyObject. Other proxies and objects from
// another backend leave the proxy empty.
func (o *proxyObject) SetSource(src calc.Object) {
	o.src = nil
	if _, nested := src.(*proxyObject); nested {
		return
	}
	if d, ok := src.(drawable); ok {
		o.src = d
	}
}

func (o *proxyObject) SetFill(f calc.FillParams) { o.fill = f }

func (o *proxyObject) draw(r *Renderer, area layout.Rect, color layout.Color, clip layout.Rect) {
	if o.src == nil {
		return
	}
	if f := o.fill.Rect; !o.fill.Tile && !f.IsEmpty() {
		area = f.Translate(area.X, area.Y).Intersect(area)
	}
	o.src.draw(r, area, color, clip)
}
