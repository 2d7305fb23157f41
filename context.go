// context.go re-exports the layout engine from internal/calc.
package parts

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-parts/internal/calc"
)

// Context is the layout context of one instantiated collection.
type Context = calc.Context

// Option configures a Context.
type Option = calc.Option

// CalcParams are the final parameters of a part after a recalculation.
type CalcParams = calc.CalcParams

// Perspective is a projection point and focal distance.
type Perspective = calc.Perspective

// ColorClass is a named set of colors multiplied into descriptions.
type ColorClass = calc.ColorClass

// SwallowHints are size requests for a swallow part.
type SwallowHints = calc.SwallowHints

// AspectControl overrides a description's aspect preference.
type AspectControl = calc.AspectControl

const (
	AspectControlDefault    = calc.AspectControlDefault
	AspectControlNeither    = calc.AspectControlNeither
	AspectControlHorizontal = calc.AspectControlHorizontal
	AspectControlVertical   = calc.AspectControlVertical
	AspectControlBoth       = calc.AspectControlBoth
)

// Render object interfaces implemented by backends.
type (
	Renderer        = calc.Renderer
	Object          = calc.Object
	ImageObject     = calc.ImageObject
	TextObject      = calc.TextObject
	ContainerObject = calc.ContainerObject
	ProxyObject     = calc.ProxyObject
	Mappable        = calc.Mappable
	Clippable       = calc.Clippable
	TextState       = calc.TextState
)

// Tween maps elapsed transition time to a description position.
type Tween = calc.Tween

const (
	TweenLinear           = calc.TweenLinear
	TweenSinusoidal       = calc.TweenSinusoidal
	TweenAccelerate       = calc.TweenAccelerate
	TweenDecelerate       = calc.TweenDecelerate
	TweenSinusoidalFactor = calc.TweenSinusoidalFactor
	TweenAccelerateFactor = calc.TweenAccelerateFactor
	TweenDecelerateFactor = calc.TweenDecelerateFactor
)

var (
	ErrUnknownPart = calc.ErrUnknownPart
	ErrNotDragable = calc.ErrNotDragable
)

// New instantiates coll. The renderer may be nil.
func New(coll *Collection, r Renderer, opts ...Option) (*Context, error) {
	return calc.New(coll, r, opts...)
}

// TweenPos returns the position at elapsed fraction t.
func TweenPos(mode Tween, t, factor float64) float64 {
	return calc.TweenPos(mode, t, factor)
}

// ParseTween parses a tween name.
func ParseTween(s string) (Tween, error) {
	return calc.ParseTween(s)
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return calc.WithLogger(l)
}

// WithScale sets the UI scale applied to parts that opt into scaling.
func WithScale(scale float64) Option {
	return calc.WithScale(scale)
}

// WithCalcCache enables reusing solves whose dependencies did not change.
func WithCalcCache(enabled bool) Option {
	return calc.WithCalcCache(enabled)
}

// WithDefaultPerspective sets the engine-wide fallback perspective.
func WithDefaultPerspective(p Perspective) Option {
	return calc.WithDefaultPerspective(p)
}

// WithGeometry sets the initial container box.
func WithGeometry(r Rect) Option {
	return calc.WithGeometry(r)
}

// WithColorClass registers a color class.
func WithColorClass(name string, cc ColorClass) Option {
	return calc.WithColorClass(name, cc)
}
