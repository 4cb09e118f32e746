package linebreak

import (
	"math"
	"strings"

	"github.com/labelpress/labelpress/backend/font"
)

// Align pads the lines with leading spaces according to align. Lines that
// fill the block are not changed. Left aligned lines lose their leading
// whitespace.
func Align(lines []Line, blockWidth float64, align Alignment, m font.Metrics) []Line {
	ret := make([]Line, len(lines))
	spaceWidth := m.Width(" ")
	for i, l := range lines {
		ret[i] = l
		if align == AlignLeft {
			trimmed := strings.TrimLeft(l.Text, " \t")
			if trimmed != l.Text {
				ret[i].Text = trimmed
				ret[i].Width = m.Width(trimmed)
			}
			continue
		}
		if l.Text == "" || l.Width >= blockWidth || spaceWidth <= 0 {
			continue
		}
		var n int
		switch align {
		case AlignCenter:
			n = int(math.Floor((blockWidth - l.Width) / (2 * spaceWidth)))
		case AlignRight:
			n = int(math.Floor((blockWidth - l.Width) / spaceWidth))
		}
		if n <= 0 {
			continue
		}
		ret[i].Text = strings.Repeat(" ", n) + l.Text
		ret[i].Width = l.Width + float64(n)*spaceWidth
	}
	return ret
}
