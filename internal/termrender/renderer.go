package termrender

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/go-parts/internal/calc"
	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

// maxClipDepth bounds how far a chain of clippers is followed.
const maxClipDepth = 16

// Image is an image the backend can show: its natural size in cells and
// the glyph its area is filled with.
type Image struct {
	Size  layout.Size
	Glyph rune
}

// Renderer creates terminal objects for parts and paints them.
type Renderer struct {
	screen  tcell.Screen
	images  []Image
	objects []drawable
}

// New creates a renderer drawing to screen. A nil screen gives a headless
// renderer that only measures; Draw and Show do nothing.
func New(screen tcell.Screen, images []Image) *Renderer {
	return &Renderer{screen: screen, images: images}
}

// NewObject implements calc.Renderer. Spacers and embedding parts have
// nothing of their own to draw and get no object.
func (r *Renderer) NewObject(p *model.Part) calc.Object {
	var o drawable
	switch p.Type {
	case model.PartRectangle:
		o = &rectObject{base: newBase(p.Name)}
	case model.PartImage:
		o = &imageObject{base: newBase(p.Name), images: r.images, id: model.NoRef}
	case model.PartText, model.PartTextblock:
		o = &textObject{base: newBase(p.Name)}
	case model.PartBox, model.PartTable:
		o = &boxObject{base: newBase(p.Name)}
	case model.PartProxy:
		o = &proxyObject{base: newBase(p.Name)}
	case model.PartSwallow, model.PartGroup, model.PartExternal, model.PartSpacer:
		return nil
	default:
		panic(fmt.Sprintf("unhandled part type %v", p.Type))
	}
	r.objects = append(r.objects, o)
	return o
}

// NewSwallowObject creates a plain filled object that can be swallowed
// into a part. It is painted after the objects created before it.
func (r *Renderer) NewSwallowObject(name string, color layout.Color) calc.Object {
	o := &rectObject{base: newBase(name)}
	o.color = color.Premultiplied()
	r.objects = append(r.objects, o)
	return o
}

// Snapshot returns the screen contents as lines of text with trailing
// blanks removed.
func (r *Renderer) Snapshot() []string {
	if r.screen == nil {
		return nil
	}
	w, h := r.screen.Size()
	out := make([]string, 0, h)
	for y := 0; y < h; y++ {
		var line []rune
		for x := 0; x < w; {
			mainc, _, _, width := r.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			line = append(line, mainc)
			x += max(width, 1)
		}
		out = append(out, strings.TrimRight(string(line), " "))
	}
	return out
}

// Reset forgets every object, for reuse with a reloaded context.
func (r *Renderer) Reset() {
	r.objects = nil
}

// Draw clears the screen and paints every visible object.
func (r *Renderer) Draw() {
	if r.screen == nil {
		return
	}
	r.screen.Clear()
	w, h := r.screen.Size()
	screen := layout.NewRect(0, 0, w, h)
	for _, o := range r.objects {
		b := o.common()
		if !b.visible {
			continue
		}
		area, color := b.area()
		clip := screen.Intersect(b.clipRect())
		o.draw(r, area, color, clip)
	}
}

// Show flushes the painted cells to the terminal.
func (r *Renderer) Show() {
	if r.screen != nil {
		r.screen.Show()
	}
}

// fillBackground composites color over the background of every cell in
// area, keeping the cell's content.
func (r *Renderer) fillBackground(area, clip layout.Rect, color layout.Color) {
	cells := area.Intersect(clip)
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			mainc, combc, style, _ := r.screen.GetContent(x, y)
			_, bg, _ := style.Decompose()
			r.screen.SetContent(x, y, mainc, combc, style.Background(over(color, bg)))
		}
	}
}

// put writes ch at (x, y) in color, keeping the cell's background.
func (r *Renderer) put(x, y int, ch rune, color layout.Color, clip layout.Rect) {
	if !clip.Contains(x, y) {
		return
	}
	_, _, style, _ := r.screen.GetContent(x, y)
	fg, bg, attr := style.Decompose()
	fg = over(color, bg)
	r.screen.SetContent(x, y, ch, nil, tcell.StyleDefault.Foreground(fg).Background(bg).Attributes(attr))
}

func (r *Renderer) fillGlyph(area, clip layout.Rect, ch rune, color layout.Color) {
	cells := area.Intersect(clip)
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			r.put(x, y, ch, color, clip)
		}
	}
}
