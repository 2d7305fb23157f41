package termrender

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-parts/internal/calc"
	"github.com/grindlemire/go-parts/internal/layout"
)

const ellipsis = "…"

// lines splits text into display lines. With wrap set and width > 0,
// words are wrapped greedily and words longer than width are broken.
func lines(text string, wrap bool, width int) []string {
	if text == "" {
		return nil
	}
	paras := strings.Split(text, "\n")
	if !wrap || width <= 0 {
		return paras
	}
	var out []string
	for _, p := range paras {
		out = append(out, wrapLine(p, width)...)
	}
	return out
}

func wrapLine(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var out []string
	var cur strings.Builder
	curW := 0
	flush := func() {
		out = append(out, cur.String())
		cur.Reset()
		curW = 0
	}
	for _, w := range words {
		for runewidth.StringWidth(w) > width {
			if curW > 0 {
				flush()
			}
			head := runewidth.Truncate(w, width, "")
			if head == "" {
				// a single rune wider than the line
				head = string([]rune(w)[:1])
			}
			out = append(out, head)
			w = w[len(head):]
		}
		ww := runewidth.StringWidth(w)
		if ww == 0 {
			continue
		}
		if curW > 0 && curW+1+ww > width {
			flush()
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(w)
		curW += ww
	}
	if curW > 0 {
		flush()
	}
	return out
}

// measure returns the natural cell size of t.
func measure(t calc.TextState, wrapWidth int) layout.Size {
	ls := lines(t.Text, t.Wrap, wrapWidth)
	var sz layout.Size
	for _, l := range ls {
		sz.Width = max(sz.Width, runewidth.StringWidth(l))
	}
	sz.Height = len(ls)
	return sz
}

// fit shortens a line that does not fit width. The ellipsis position in
// [0, 1] selects which end is cut; negative disables the ellipsis and the
// line is cut at the right edge of the cells instead.
func fit(line string, width int, pos float64) string {
	if runewidth.StringWidth(line) <= width || pos < 0 {
		return line
	}
	if pos < 0.5 {
		// keep the tail
		rs := []rune(line)
		tail := ""
		for i := len(rs) - 1; i >= 0; i-- {
			next := string(rs[i:])
			if runewidth.StringWidth(next)+runewidth.StringWidth(ellipsis) > width {
				break
			}
			tail = next
		}
		return ellipsis + tail
	}
	return runewidth.Truncate(line, width, ellipsis)
}
