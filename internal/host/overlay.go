package host

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlay draws fg over bg with its top-left cell at (x, y). Parts of fg that
// fall outside bg or beyond width columns are clipped; a width <= 0 clips at
// the widest bg line.
func overlay(bg, fg string, x, y, width int) string {
	bgLines := strings.Split(bg, "\n")
	if width <= 0 {
		for _, l := range bgLines {
			width = max(width, ansi.StringWidth(l))
		}
	}

	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}

		fw := ansi.StringWidth(line)
		from, to := max(0, -x), min(fw, width-x)
		if from >= to {
			continue
		}
		seg := ansi.Cut(line, from, to)
		col := x + from
		segW := to - from

		bgLine := bgLines[row]
		bw := ansi.StringWidth(bgLine)
		if bw < col {
			bgLine += strings.Repeat(" ", col-bw)
			bw = col
		}

		left := ansi.Cut(bgLine, 0, col)
		var right string
		if col+segW < bw {
			right = ansi.Cut(bgLine, col+segW, bw)
		}
		bgLines[row] = left + seg + right
	}
	return strings.Join(bgLines, "\n")
}
