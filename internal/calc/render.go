package calc

import (
	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
	"github.com/grindlemire/go-parts/internal/transform"
)

// Renderer creates the render object backing each part. It may return nil
// for parts that have nothing to draw.
type Renderer interface {
	NewObject(p *model.Part) Object
}

// Object is the render-side counterpart of a real part.
type Object interface {
	SetGeometry(r layout.Rect)
	// SetColor receives a premultiplied color.
	SetColor(c layout.Color)
	SetVisible(visible bool)
}

// Filler is implemented by objects that draw image content into a fill rectangle.
type Filler interface {
	SetFill(f FillParams)
}

// ImageObject is an object that displays one image out of a set.
type ImageObject interface {
	Object
	Filler
	// ImageSize reports the natural pixel size of an image id.
	ImageSize(id int) (layout.Size, error)
	// SetImage selects the displayed image. model.NoRef clears it.
	SetImage(id int) error
	SetBorder(border layout.Edges, scaleBy float64)
}

// TextObject is an object that shapes and displays text.
type TextObject interface {
	Object
	// MeasureText applies the text attributes and returns the natural size
	// of the content. A wrapWidth <= 0 disables wrapping.
	MeasureText(t TextState, wrapWidth int) (layout.Size, error)
	SetText(t TextState)
}

// ContainerObject is a box or table object packing child objects.
type ContainerObject interface {
	Object
	// MinSize is the size the packed children need.
	MinSize() layout.Size
	SetBoxLayout(b BoxParams)
}

// ProxyObject mirrors another part's object.
type ProxyObject interface {
	Object
	Filler
	SetSource(src Object)
}

// Mappable objects accept a four-point transform. A nil map removes it.
type Mappable interface {
	SetMap(m *transform.Map)
}

// Clippable objects can be clipped by another object.
type Clippable interface {
	SetClip(clip Object)
}

// TextState is everything a text object needs to lay out its content.
type TextState struct {
	Text     string
	Font     string
	Style    string
	Size     int
	Wrap     bool
	AlignX   float64
	AlignY   float64
	Ellipsis float64
	Color2   layout.Color
	Color3   layout.Color
}
