package termrender

import (
	"testing"

	"github.com/grindlemire/go-parts/internal/calc"
	"github.com/grindlemire/go-parts/internal/layout"
)

func TestMeasure(t *testing.T) {
	type tc struct {
		text  string
		wrap  bool
		width int
		want  layout.Size
	}

	tests := map[string]tc{
		"empty":           {text: "", want: layout.Size{}},
		"single line":     {text: "hello", want: layout.Size{Width: 5, Height: 1}},
		"newlines":        {text: "a\nbcd", want: layout.Size{Width: 3, Height: 2}},
		"wide runes":      {text: "日本", want: layout.Size{Width: 4, Height: 1}},
		"wrap words":      {text: "aa bb cc", wrap: true, width: 5, want: layout.Size{Width: 5, Height: 2}},
		"wrap long word":  {text: "abcdefg", wrap: true, width: 3, want: layout.Size{Width: 3, Height: 3}},
		"wrap disabled":   {text: "aa bb cc", width: 5, want: layout.Size{Width: 8, Height: 1}},
		"wrap zero width": {text: "aa bb", wrap: true, want: layout.Size{Width: 5, Height: 1}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := measure(calc.TextState{Text: tt.text, Wrap: tt.wrap}, tt.width)
			if got != tt.want {
				t.Errorf("measure() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFit(t *testing.T) {
	type tc struct {
		line  string
		width int
		pos   float64
		want  string
	}

	tests := map[string]tc{
		"fits":        {line: "abc", width: 5, pos: 1, want: "abc"},
		"cut right":   {line: "hello world", width: 5, pos: 1, want: "hell…"},
		"cut left":    {line: "hello world", width: 5, pos: 0, want: "…orld"},
		"no ellipsis": {line: "hello world", width: 5, pos: -1, want: "hello world"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := fit(tt.line, tt.width, tt.pos); got != tt.want {
				t.Errorf("fit() = %q, want %q", got, tt.want)
			}
		})
	}
}
