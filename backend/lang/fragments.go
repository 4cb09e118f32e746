package lang

import (
	"unicode/utf8"
)

const (
	// MinHyphenateLength is the shortest word (in runes) that gets split.
	MinHyphenateLength = 5
	minRemainder       = 3
)

func hasVowel(s string) bool {
	for _, r := range s {
		if isVowel(r) {
			return true
		}
	}
	return false
}

// Fragments splits word at its hyphenation points. The fragments concatenate
// to word. Fragments without a vowel are merged into a neighbour and no
// break leaves fewer than three runes for the rest of the word. Words that
// cannot be split are returned as the only element.
func (l *Lang) Fragments(word string) []string {
	runes := []rune(word)
	if len(runes) < MinHyphenateLength {
		return []string{word}
	}
	var parts []string
	start := 0
	for _, pos := range l.Hyphenate(word) {
		if pos <= start || pos >= len(runes) {
			continue
		}
		parts = append(parts, string(runes[start:pos]))
		start = pos
	}
	parts = append(parts, string(runes[start:]))
	parts = mergeVowelless(parts)
	if len(parts) < 2 {
		return []string{word}
	}

	var ret []string
	remaining := len(runes)
	cur := ""
	for i, p := range parts {
		cur += p
		remaining -= utf8.RuneCountInString(p)
		if i < len(parts)-1 && remaining >= minRemainder {
			ret = append(ret, cur)
			cur = ""
		}
	}
	if cur != "" {
		ret = append(ret, cur)
	}
	if len(ret) < 2 {
		return []string{word}
	}
	return ret
}

func mergeVowelless(parts []string) []string {
	ret := make([]string, 0, len(parts))
	carry := ""
	for _, p := range parts {
		p = carry + p
		carry = ""
		if !hasVowel(p) {
			carry = p
			continue
		}
		ret = append(ret, p)
	}
	if carry != "" {
		if len(ret) == 0 {
			return []string{carry}
		}
		ret[len(ret)-1] += carry
	}
	return ret
}
