package calc

import (
	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

// CalcParams is the result of solving one description, or of blending two.
// Only the sub-struct matching Type carries data.
type CalcParams struct {
	Type    model.PartType
	Rect    layout.Rect
	Req     layout.Rect // geometry from anchors alone, before aspect and clamps
	Visible bool
	Smooth  bool
	Color   layout.Color
	Fill    FillParams
	Image   ImageParams
	Text    TextParams
	Box     BoxParams
	Map     *MapParams
}

// FillParams is the image fill rectangle relative to the part box.
type FillParams struct {
	Rect   layout.Rect
	Smooth bool
	Tile   bool
}

// ImageParams holds the solved image border.
type ImageParams struct {
	Border  layout.Edges
	ScaleBy float64
}

// TextParams holds the solved, interpolatable text fields.
type TextParams struct {
	Size     int
	AlignX   float64
	AlignY   float64
	Ellipsis float64
	Color2   layout.Color
	Color3   layout.Color
}

// BoxParams is passed through to box and table objects.
type BoxParams struct {
	Layout      string
	AlignX      float64
	AlignY      float64
	PaddingX    int
	PaddingY    int
	Homogeneous model.Homogeneous
}

// MapParams is the solved 3D transform of a mapped part, in container-local
// coordinates.
type MapParams struct {
	Center layout.Point3
	RotX   float64
	RotY   float64
	RotZ   float64
	ZoomX  float64
	ZoomY  float64

	Lighted    bool
	Light      layout.Point3
	LightColor layout.Color
	Ambient    layout.Color

	PerspOn bool // Persp and Focal come from a perspective part
	Persp   layout.Point3
	Focal   int
	// PerspFallback asks for the container or engine perspective when no
	// perspective part is set.
	PerspFallback bool
}
