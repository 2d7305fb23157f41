package calc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/grindlemire/go-parts/internal/layout"
)

// Perspective is a projection point in canvas coordinates and a focal distance.
type Perspective struct {
	X, Y  int
	Z0    int
	Focal int
}

// ColorClass is a named set of colors multiplied into descriptions that
// reference it.
type ColorClass struct {
	Color  layout.Color
	Color2 layout.Color
	Color3 layout.Color
}

// Option is a functional option for configuring a Context.
type Option func(*Context) error

// WithLogger sets the logger used for diagnostics. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		c.log = l
		return nil
	}
}

// WithScale sets the UI scale applied to parts that opt into scaling.
func WithScale(scale float64) Option {
	return func(c *Context) error {
		if scale <= 0 {
			return fmt.Errorf("scale must be positive, got %v", scale)
		}
		c.scale = scale
		return nil
	}
}

// WithCalcCache enables skipping the solve of descriptions whose
// dependencies have not changed since the last pass.
func WithCalcCache(enabled bool) Option {
	return func(c *Context) error {
		c.calcCache = enabled
		return nil
	}
}

// WithDefaultPerspective sets the perspective used by mapped parts that ask
// for one when neither the part nor the container provides it.
func WithDefaultPerspective(p Perspective) Option {
	return func(c *Context) error {
		c.defaultPersp = &p
		return nil
	}
}

// WithGeometry sets the initial container box.
func WithGeometry(r layout.Rect) Option {
	return func(c *Context) error {
		if r.Width < 0 || r.Height < 0 {
			return fmt.Errorf("container size must not be negative, got %dx%d", r.Width, r.Height)
		}
		c.box = r
		return nil
	}
}

// WithColorClass registers a color class.
func WithColorClass(name string, cc ColorClass) Option {
	return func(c *Context) error {
		c.colorClasses[name] = cc
		return nil
	}
}
