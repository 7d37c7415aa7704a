package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// fitWidth forces every line of s to exactly width columns (ANSI-aware),
// truncating with an ellipsis or padding with spaces.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		w := xansi.StringWidth(ln)
		if w > width {
			if width == 1 {
				ln = xansi.Cut(ln, 0, 1)
			} else {
				ln = xansi.Cut(ln, 0, width-1) + "…"
			}
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}

// centerIn pads s on the left so it sits in the middle of width columns.
func centerIn(s string, width int) string {
	w := xansi.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

func blockWidth(s string) int {
	widest := 0
	for _, ln := range strings.Split(s, "\n") {
		if w := xansi.StringWidth(ln); w > widest {
			widest = w
		}
	}
	return widest
}
