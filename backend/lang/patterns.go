package lang

import (
	"strings"
)

//go:generate go run github.com/labelpress/labelpress/helper --out hyphenationpatterns.go genpatterns

// vowels of the languages with built-in patterns.
const vowels = "аеёиоуыэюяaeiouy"

// hyphenmins holds the TeX \lefthyphenmin and \righthyphenmin of the
// built-in languages. Languages not listed use 2 and 2.
var hyphenmins = map[string][2]int{
	"en": {2, 3},
	"ru": {2, 2},
}

func builtinPatterns(code string) (string, bool) {
	src, ok := hyphenationpatterns[code]
	return src, ok
}

// isVowel reports whether r is a vowel in any built-in language.
func isVowel(r rune) bool {
	lr := []rune(strings.ToLower(string(r)))
	if len(lr) != 1 {
		return false
	}
	return strings.ContainsRune(vowels, lr[0])
}
