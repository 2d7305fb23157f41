package model

import "github.com/grindlemire/go-parts/internal/layout"

// Rel is one anchored corner of a part box. rel1 is the top-left corner and
// rel2 the bottom-right one; each axis may anchor to a different part.
type Rel struct {
	RelativeX float64
	RelativeY float64
	OffsetX   int
	OffsetY   int
	ToX       int
	ToY       int
}

// Aspect bounds the width/height ratio of a part.
type Aspect struct {
	Min    float64
	Max    float64
	Prefer AspectPrefer
}

// Fill describes the image fill rectangle relative to the solved box, or to
// the image's natural size when tiling.
type Fill struct {
	Type    FillType
	Smooth  bool
	PosRelX float64
	PosRelY float64
	PosAbsX int
	PosAbsY int
	RelX    float64
	RelY    float64
	AbsX    int
	AbsY    int
}

// Image holds image-specific description fields.
type Image struct {
	ID            int
	Tweens        []int
	Border        layout.Edges
	BorderScaleBy float64
	MinLimit      bool // use the image's natural size as minimum
	MaxLimit      bool // use the image's natural size as maximum
}

// Text holds text and textblock description fields.
type Text struct {
	Text     string
	Font     string
	Style    string
	Size     int
	Wrap     bool
	MinX     bool
	MinY     bool
	MaxX     bool
	MaxY     bool
	AlignX   float64
	AlignY   float64
	Ellipsis float64 // < 0 disables ellipsis
}

// Box holds box and table description fields.
type Box struct {
	Layout      string
	AlignX      float64
	AlignY      float64
	PaddingX    int
	PaddingY    int
	MinH        bool
	MinV        bool
	Homogeneous Homogeneous
}

// Map enables a 3D transform of the part's four corners.
type Map struct {
	On       bool
	Center   int
	Light    int
	Persp    int
	PerspOn  bool // fall back to container or engine perspective without a Persp part
	Backcull bool
	Smooth   bool
	Alpha    bool
	RotX     float64
	RotY     float64
	RotZ     float64
	ZoomX    float64
	ZoomY    float64
}

// Persp is the depth information a part contributes when it is used as a
// light or perspective source.
type Persp struct {
	ZPlane int
	Focal  int
}

// Description is one state of a part. It is immutable once loaded.
type Description struct {
	State      string
	Value      float64
	Visible    bool
	AlignX     float64
	AlignY     float64
	FixedW     bool
	FixedH     bool
	Min        layout.Size
	Max        layout.Size // negative means unbounded
	StepX      int
	StepY      int
	Aspect     Aspect
	Rel1       Rel
	Rel2       Rel
	Color      layout.Color
	Color2     layout.Color
	Color3     layout.Color
	ColorClass string
	ClipTo     int
	Map        Map
	Persp      Persp
	Image      Image
	Fill       Fill
	Text       Text
	Box        Box
	ProxySrc   int
}

// NewDescription returns a description with the defaults every loader
// starts from: a visible box covering the whole container.
func NewDescription(state string, value float64) *Description {
	return &Description{
		State:   state,
		Value:   value,
		Visible: true,
		AlignX:  0.5,
		AlignY:  0.5,
		Max:     layout.Size{Width: -1, Height: -1},
		Rel1:    Rel{ToX: NoRef, ToY: NoRef},
		Rel2:    Rel{RelativeX: 1, RelativeY: 1, OffsetX: -1, OffsetY: -1, ToX: NoRef, ToY: NoRef},
		Color:   layout.White,
		Color2:  layout.White,
		Color3:  layout.White,
		ClipTo:  NoRef,
		Map: Map{
			Center: NoRef,
			Light:  NoRef,
			Persp:  NoRef,
			Smooth: true,
			Alpha:  true,
			ZoomX:  1,
			ZoomY:  1,
		},
		Persp: Persp{Focal: 1000},
		Image: Image{ID: NoRef, BorderScaleBy: 1},
		Fill: Fill{
			Smooth: true,
			RelX:   1,
			RelY:   1,
		},
		Text:     Text{AlignX: 0.5, AlignY: 0.5, Ellipsis: -1},
		Box:      Box{AlignX: 0.5, AlignY: 0.5},
		ProxySrc: NoRef,
	}
}

// Refs calls fn for every part reference in the description with a label
// naming the field. Used for validation and dependency reporting.
func (d *Description) Refs(fn func(field string, id int)) {
	fn("rel1.to_x", d.Rel1.ToX)
	fn("rel1.to_y", d.Rel1.ToY)
	fn("rel2.to_x", d.Rel2.ToX)
	fn("rel2.to_y", d.Rel2.ToY)
	fn("clip_to", d.ClipTo)
	fn("map.center", d.Map.Center)
	fn("map.light", d.Map.Light)
	fn("map.perspective", d.Map.Persp)
	fn("proxy.source", d.ProxySrc)
}
