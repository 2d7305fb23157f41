package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-parts/internal/layout"
)

// Color is a layout color written either as a hex string ("#rgb",
// "#rrggbb", "#rrggbbaa") or as a [r, g, b, a] sequence.
type Color layout.Color

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		v, err := ParseColor(n.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*c = Color(v)
		return nil
	case yaml.SequenceNode:
		var ch []uint8
		if err := n.Decode(&ch); err != nil {
			return err
		}
		if len(ch) != 3 && len(ch) != 4 {
			return fmt.Errorf("line %d: color needs 3 or 4 channels, got %d", n.Line, len(ch))
		}
		v := layout.RGBA(ch[0], ch[1], ch[2], 255)
		if len(ch) == 4 {
			v.A = ch[3]
		}
		*c = Color(v)
		return nil
	default:
		return fmt.Errorf("line %d: color must be a string or a sequence", n.Line)
	}
}

// ParseColor parses a hex color. A trailing byte pair on an eight digit
// color is the alpha channel; otherwise the color is opaque.
func ParseColor(s string) (layout.Color, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return layout.Color{}, fmt.Errorf("invalid alpha in color %q", s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	cc, err := colorful.Hex(s)
	if err != nil {
		return layout.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := cc.RGB255()
	return layout.RGBA(r, g, b, alpha), nil
}
