package linebreak

import (
	"strings"
	"unicode/utf8"

	"github.com/labelpress/labelpress/backend/font"
	"github.com/labelpress/labelpress/backend/lang"
)

// rebalance pulls the first fragment of the next line's first word up to a
// line that uses less than two thirds of the block width. Lines of different
// paragraphs are never combined.
func rebalance(lines []Line, blockWidth float64, m font.Metrics, hyph Hyphenator) []Line {
	if len(lines) < 2 {
		return lines
	}
	ret := make([]Line, len(lines))
	copy(ret, lines)
	twoThirds := blockWidth * 2 / 3
	for i := 0; i < len(ret)-1; i++ {
		cur, next := &ret[i], &ret[i+1]
		if cur.Paragraph != next.Paragraph || cur.Text == "" || next.Text == "" {
			continue
		}
		if strings.HasSuffix(cur.Text, "-") || m.Width(strings.TrimLeft(cur.Text, " ")) >= twoThirds {
			continue
		}
		words := strings.Fields(next.Text)
		first := words[0]
		if utf8.RuneCountInString(first) < lang.MinHyphenateLength || strings.Contains(first, "-") {
			continue
		}
		frags := hyph.Fragments(first)
		if len(frags) < 2 {
			continue
		}
		candidate := cur.Text + " " + frags[0] + "-"
		width := m.Width(candidate)
		if width > blockWidth {
			continue
		}
		cur.Text, cur.Width = candidate, width
		rest := append([]string{strings.Join(frags[1:], "")}, words[1:]...)
		next.Text = strings.Join(rest, " ")
		next.Width = m.Width(next.Text)
	}
	return ret
}
