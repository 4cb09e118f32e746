package linebreak

import (
	"strings"
	"unicode/utf8"

	"github.com/labelpress/labelpress/backend/font"
	"github.com/labelpress/labelpress/backend/lang"
)

type wrapper struct {
	metrics   font.Metrics
	width     float64
	hyph      Hyphenator
	hyphenate bool
}

func (w *wrapper) fits(s string) bool {
	return w.metrics.Width(s) <= w.width
}

// wrapParagraph fills lines greedily with whole words. Words wider than the
// block are split at hyphenation points or, as a last resort, between
// characters.
func (w *wrapper) wrapParagraph(words []string) []string {
	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if w.fits(candidate) {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if w.fits(word) {
			current = word
			continue
		}
		var full []string
		full, current = w.splitWord(word)
		lines = append(lines, full...)
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitWord breaks a word that is wider than the block. It returns the
// completed lines and the last piece, which stays open for the following
// words.
func (w *wrapper) splitWord(word string) ([]string, string) {
	if !w.hyphenate || utf8.RuneCountInString(word) < lang.MinHyphenateLength {
		return w.splitChars(word)
	}
	frags := w.hyph.Fragments(word)
	if len(frags) < 2 {
		return w.splitChars(word)
	}
	var lines []string
	merged := ""
	for i, frag := range frags {
		if i == len(frags)-1 {
			if w.fits(merged + frag) {
				return lines, merged + frag
			}
			if merged != "" {
				lines = append(lines, merged+"-")
			}
			if w.fits(frag) {
				return lines, frag
			}
			more, rest := w.splitChars(frag)
			return append(lines, more...), rest
		}
		if w.fits(merged + frag + "-") {
			merged += frag
			continue
		}
		if merged != "" {
			lines = append(lines, merged+"-")
			merged = ""
		}
		if w.fits(frag + "-") {
			merged = frag
			continue
		}
		// Not even a single fragment fits, split the rest of the word.
		more, rest := w.splitChars(strings.Join(frags[i:], ""))
		return append(lines, more...), rest
	}
	return lines, merged
}

// splitChars puts as many runes on a line as fit, at least one.
func (w *wrapper) splitChars(s string) ([]string, string) {
	var lines []string
	var cur strings.Builder
	for _, r := range s {
		if cur.Len() > 0 && !w.fits(cur.String()+string(r)) {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		cur.WriteRune(r)
	}
	return lines, cur.String()
}
