package calc

import (
	"fmt"
	"math"
	"strings"

	"github.com/grindlemire/go-parts/internal/layout"
)

// Tween maps the elapsed fraction of a transition to a description position.
type Tween uint8

const (
	TweenLinear Tween = iota
	TweenSinusoidal
	TweenAccelerate
	TweenDecelerate
	TweenSinusoidalFactor
	TweenAccelerateFactor
	TweenDecelerateFactor
)

var tweenNames = [...]string{
	TweenLinear:           "linear",
	TweenSinusoidal:       "sinusoidal",
	TweenAccelerate:       "accelerate",
	TweenDecelerate:       "decelerate",
	TweenSinusoidalFactor: "sinusoidal_factor",
	TweenAccelerateFactor: "accelerate_factor",
	TweenDecelerateFactor: "decelerate_factor",
}

func (t Tween) String() string {
	if int(t) < len(tweenNames) {
		return tweenNames[t]
	}
	return fmt.Sprintf("Tween(%d)", t)
}

// ParseTween is the inverse of Tween.String. It is case insensitive.
func ParseTween(s string) (Tween, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range tweenNames {
		if name == s {
			return Tween(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tween %q", s)
}

// TweenPos returns the position at elapsed fraction t, clamped to [0, 1].
// The factor variants apply their curve factor times; a fractional factor
// blends the last application with the identity.
func TweenPos(mode Tween, t, factor float64) float64 {
	t = layout.ClampPos(t)
	switch mode {
	case TweenSinusoidal:
		return sinusoidal(t)
	case TweenAccelerate:
		return accelerate(t)
	case TweenDecelerate:
		return decelerate(t)
	case TweenSinusoidalFactor:
		return factored(sinusoidal, t, factor)
	case TweenAccelerateFactor:
		return factored(accelerate, t, factor)
	case TweenDecelerateFactor:
		return factored(decelerate, t, factor)
	default:
		return t
	}
}

func sinusoidal(t float64) float64 {
	return (1 - math.Cos(t*math.Pi)) / 2
}

func accelerate(t float64) float64 {
	return 1 - math.Cos(t*math.Pi/2)
}

func decelerate(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

func factored(curve func(float64) float64, t, factor float64) float64 {
	if factor <= 0 || math.IsNaN(factor) {
		return t
	}
	whole := int(factor)
	for range whole {
		t = curve(t)
	}
	if frac := factor - float64(whole); frac > 0 {
		t += (curve(t) - t) * frac
	}
	return t
}
