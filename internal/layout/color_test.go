package layout

import "testing"

func TestColor_Multiply(t *testing.T) {
	type tc struct {
		color    Color
		class    Color
		expected Color
	}

	tests := map[string]tc{
		"white class is identity": {
			color:    RGBA(10, 128, 255, 200),
			class:    White,
			expected: RGBA(10, 128, 255, 200),
		},
		"half class": {
			color:    White,
			class:    RGBA(127, 127, 127, 255),
			expected: RGBA(127, 127, 127, 255),
		},
		"zero class keeps almost nothing": {
			color:    White,
			class:    RGBA(0, 0, 0, 0),
			expected: RGBA(0, 0, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.color.Multiply(tt.class); got != tt.expected {
				t.Errorf("Multiply() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestColor_Premultiplied(t *testing.T) {
	type tc struct {
		color    Color
		expected Color
	}

	tests := map[string]tc{
		"opaque is unchanged":  {color: RGBA(10, 20, 30, 255), expected: RGBA(10, 20, 30, 255)},
		"transparent is black": {color: RGBA(10, 20, 30, 0), expected: RGBA(0, 0, 0, 0)},
		"half alpha":           {color: RGBA(255, 100, 0, 128), expected: RGBA(128, 50, 0, 128)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.color.Premultiplied(); got != tt.expected {
				t.Errorf("Premultiplied() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestInterpColor_ClampsPos(t *testing.T) {
	a, b := RGBA(0, 0, 0, 0), RGBA(200, 100, 50, 255)
	if got := InterpColor(a, b, 1.7); got != b {
		t.Errorf("InterpColor(pos > 1) = %+v, want %+v", got, b)
	}
	if got := InterpColor(a, b, -3); got != a {
		t.Errorf("InterpColor(pos < 0) = %+v, want %+v", got, a)
	}
}
