package lang

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/labelpress/labelpress/backend/bag"
)

func TestGetLanguage(t *testing.T) {
	ls := NewLanguages("")
	testdata := []struct {
		req  string
		want string
	}{
		{"ru", "ru"},
		{"ru_RU", "ru"},
		{"ru-RU", "ru"},
		{"en", "en"},
		{"en_US", "en"},
	}
	for _, tc := range testdata {
		l, err := ls.GetLanguage(tc.req)
		if err != nil {
			t.Fatalf("GetLanguage(%q) error %v", tc.req, err)
		}
		if l.Name != tc.want {
			t.Errorf("GetLanguage(%q).Name = %q, want %q", tc.req, l.Name, tc.want)
		}
	}
	a, _ := ls.GetLanguage("ru")
	b, _ := ls.GetLanguage("ru_RU")
	if a != b {
		t.Errorf("GetLanguage() does not cache languages")
	}
}

func TestGetLanguageError(t *testing.T) {
	ls := NewLanguages("")
	if _, err := ls.GetLanguage("de"); !errors.Is(err, bag.ErrResourceUnavailable) {
		t.Errorf("GetLanguage(de) err = %v, want ErrResourceUnavailable", err)
	}
	if _, err := ls.GetLanguage("not a language"); !errors.Is(err, bag.ErrInvalidInput) {
		t.Errorf("GetLanguage(not a language) err = %v, want ErrInvalidInput", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hyph-de.pat.txt"), []byte("1ba\n1be\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ls := NewLanguages("")
	if err := ls.LoadDir(dir); err != nil {
		t.Fatal(err)
	}
	l, err := ls.GetLanguage("de_DE")
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "de" {
		t.Errorf("l.Name = %q, want de", l.Name)
	}
}

func TestFragmentsShortWords(t *testing.T) {
	ls := NewLanguages("")
	ru, err := ls.GetLanguage("ru")
	if err != nil {
		t.Fatal(err)
	}
	for _, word := range []string{"", "дом", "мама", "тест"} {
		got := ru.Fragments(word)
		if len(got) != 1 || got[0] != word {
			t.Errorf("Fragments(%q) = %q, want [%q]", word, got, word)
		}
	}
}

func TestFragments(t *testing.T) {
	ls := NewLanguages("")
	testdata := []struct {
		lang string
		word string
	}{
		{"ru", "программирование"},
		{"ru", "Перевозчик"},
		{"ru", "информация"},
		{"en", "computer"},
		{"en", "information"},
	}
	for _, tc := range testdata {
		l, err := ls.GetLanguage(tc.lang)
		if err != nil {
			t.Fatal(err)
		}
		got := l.Fragments(tc.word)
		if len(got) < 2 {
			t.Errorf("Fragments(%q) = %q, want at least two fragments", tc.word, got)
			continue
		}
		if joined := strings.Join(got, ""); joined != tc.word {
			t.Errorf("Fragments(%q) joined = %q, want %q", tc.word, joined, tc.word)
		}
		rest := utf8.RuneCountInString(tc.word)
		for i, frag := range got {
			if !hasVowel(frag) {
				t.Errorf("Fragments(%q)[%d] = %q has no vowel", tc.word, i, frag)
			}
			rest -= utf8.RuneCountInString(frag)
			if i < len(got)-1 && rest < minRemainder {
				t.Errorf("Fragments(%q)[%d] = %q leaves %d runes", tc.word, i, frag, rest)
			}
		}
	}
}

func TestMergeVowelless(t *testing.T) {
	testdata := []struct {
		parts []string
		want  []string
	}{
		{[]string{"ст", "ра", "на"}, []string{"стра", "на"}},
		{[]string{"ко", "нц"}, []string{"конц"}},
		{[]string{"бр"}, []string{"бр"}},
		{[]string{"a", "b", "c"}, []string{"abc"}},
		{[]string{"x", "ya", "b"}, []string{"xyab"}},
	}
	for _, tc := range testdata {
		got := mergeVowelless(tc.parts)
		if strings.Join(got, "|") != strings.Join(tc.want, "|") {
			t.Errorf("mergeVowelless(%q) = %q, want %q", tc.parts, got, tc.want)
		}
	}
}

func TestFragmentsBuiltinPatterns(t *testing.T) {
	ls := NewLanguages("")
	testdata := []struct {
		lang string
		word string
		want string
	}{
		{"ru", "программирование", "про|грам|ми|ро|ва|ние"},
		{"ru", "текста", "тек|ста"},
		{"ru", "тестирования", "те|сти|ро|ва|ния"},
		{"ru", "информация", "ин|фор|ма|ция"},
		{"ru", "Перевозчик", "Пе|ре|воз|чик"},
		{"en", "developers", "de|vel|op|ers"},
		{"en", "hyphenation", "hy|phen|a|tion"},
		{"en", "printer", "printer"},
	}
	for _, tc := range testdata {
		l, err := ls.GetLanguage(tc.lang)
		if err != nil {
			t.Fatal(err)
		}
		if got := strings.Join(l.Fragments(tc.word), "|"); got != tc.want {
			t.Errorf("Fragments(%q) = %q, want %q", tc.word, got, tc.want)
		}
	}
}

func TestHyphenmins(t *testing.T) {
	ls := NewLanguages("")
	en, err := ls.GetLanguage("en")
	if err != nil {
		t.Fatal(err)
	}
	if en.Lefthyphenmin != 2 || en.Righthyphenmin != 3 {
		t.Errorf("en hyphenmins = %d/%d, want 2/3", en.Lefthyphenmin, en.Righthyphenmin)
	}
	// "ers" is the shortest tail English allows
	got := en.Hyphenate("developers")
	if len(got) == 0 || got[len(got)-1] != 7 {
		t.Errorf("Hyphenate(developers) = %v, want last break at 7", got)
	}
}
