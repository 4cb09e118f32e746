package linebreak

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/labelpress/labelpress/backend/bag"
	"github.com/labelpress/labelpress/backend/font"
	"github.com/labelpress/labelpress/backend/lang"
)

// monoMetrics gives every rune the width 1.
type monoMetrics struct{}

func (monoMetrics) Width(s string) float64         { return float64(utf8.RuneCountInString(s)) }
func (monoMetrics) LineHeight() float64            { return 12 }
func (monoMetrics) FontMetrics() *font.FontMetrics { return nil }
func (monoMetrics) Fallback() bool                 { return true }

type fakeHyphenator map[string][]string

func (f fakeHyphenator) Fragments(word string) []string {
	if frags, ok := f[word]; ok {
		return frags
	}
	return []string{word}
}

func texts(lines []Line) []string {
	ret := make([]string, len(lines))
	for i, l := range lines {
		ret[i] = l.Text
	}
	return ret
}

func breakMono(t *testing.T, text string, width float64, hyph Hyphenator) []Line {
	t.Helper()
	lines, err := breakText(context.Background(), text, monoMetrics{}, width, hyph != nil, hyph)
	if err != nil {
		t.Fatalf("breakText(%q) error %v", text, err)
	}
	return lines
}

func TestWrapGreedy(t *testing.T) {
	testdata := []struct {
		text  string
		width float64
		want  []string
	}{
		{"aa bb cc", 5, []string{"aa bb", "cc"}},
		{"aa   bb\tcc", 8, []string{"aa bb cc"}},
		{"aaaaa bb", 5, []string{"aaaaa", "bb"}},
		{"aa bbbbbbb", 5, []string{"aa", "bbbbb", "bb"}},
	}
	for _, tc := range testdata {
		got := texts(breakMono(t, tc.text, tc.width, nil))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("breakText(%q, %v) mismatch (-want +got):\n%s", tc.text, tc.width, diff)
		}
	}
}

func TestSplitWordHyphenated(t *testing.T) {
	hyph := fakeHyphenator{"abcdefghij": {"abc", "def", "ghij"}}
	testdata := []struct {
		text  string
		width float64
		want  []string
	}{
		{"abcdefghij", 5, []string{"abc-", "def-", "ghij"}},
		{"abcdefghij", 8, []string{"abcdef-", "ghij"}},
		{"abcdefghij x", 8, []string{"abcdef-", "ghij x"}},
		// fragments do not fit, the rest of the word is split by characters
		{"abcdefghij", 3, []string{"abc", "def", "ghi", "j"}},
	}
	for _, tc := range testdata {
		got := texts(breakMono(t, tc.text, tc.width, hyph))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("breakText(%q, %v) mismatch (-want +got):\n%s", tc.text, tc.width, diff)
		}
	}
}

func TestSplitRemainderOnly(t *testing.T) {
	// The first fragment fits, the second does not: only the remaining
	// part is split by characters.
	hyph := fakeHyphenator{"abcdefghijkl": {"ab", "cdefghij", "kl"}}
	got := texts(breakMono(t, "abcdefghijkl", 4, hyph))
	want := []string{"ab-", "cdef", "ghij", "kl"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCharacterSplitKeepsEveryRune(t *testing.T) {
	word := strings.Repeat("абвгд", 8)
	frags := []string{}
	for i := 0; i < 8; i++ {
		frags = append(frags, "абвгд")
	}
	hyph := fakeHyphenator{word: frags}
	lines := breakMono(t, word, 3, hyph)
	if len(lines) < 2 {
		t.Fatalf("len(lines) = %d, want several lines", len(lines))
	}
	total := 0
	for _, l := range lines {
		n := utf8.RuneCountInString(l.Text)
		if n == 0 || n > 3 {
			t.Errorf("line %q has %d runes, want 1..3", l.Text, n)
		}
		total += n
	}
	if total != 40 {
		t.Errorf("total runes = %d, want 40", total)
	}
}

func TestTermination(t *testing.T) {
	lines := breakMono(t, "ab cde", 0.5, nil)
	want := []string{"a", "b", "c", "d", "e"}
	if diff := cmp.Diff(want, texts(lines)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParagraphs(t *testing.T) {
	testdata := []struct {
		text string
		want []Line
	}{
		{"", nil},
		{"a\n\nb", []Line{{"a", 1, 0}, {"", 0, 1}, {"b", 1, 2}}},
		{"a b\r\nc", []Line{{"a b", 3, 0}, {"c", 1, 1}}},
		{"a\n", []Line{{"a", 1, 0}, {"", 0, 1}}},
	}
	for _, tc := range testdata {
		got := breakMono(t, tc.text, 10, nil)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("breakText(%q) mismatch (-want +got):\n%s", tc.text, diff)
		}
	}
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := breakText(ctx, "a b", monoMetrics{}, 10, false, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRebalance(t *testing.T) {
	hyph := fakeHyphenator{"cdefghijkl": {"cde", "fghijkl"}}
	lines := breakMono(t, "ab cdefghijkl", 10, nil)
	if diff := cmp.Diff([]string{"ab", "cdefghijkl"}, texts(lines)); diff != "" {
		t.Fatalf("greedy mismatch (-want +got):\n%s", diff)
	}
	got := rebalance(lines, 10, monoMetrics{}, hyph)
	want := []Line{{"ab cde-", 7, 0}, {"fghijkl", 7, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rebalance mismatch (-want +got):\n%s", diff)
	}
	// the input is not modified
	if lines[0].Text != "ab" {
		t.Errorf("rebalance modified its input")
	}
}

func TestRebalanceSkips(t *testing.T) {
	hyph := fakeHyphenator{"cdefghijkl": {"cde", "fghijkl"}, "cdef": {"cd", "ef"}}
	testdata := []struct {
		name  string
		lines []Line
	}{
		{"paragraph boundary", []Line{{"ab", 2, 0}, {"cdefghijkl", 10, 1}}},
		{"long line", []Line{{"abcdefg", 7, 0}, {"cdefghijkl", 10, 0}}},
		{"hyphen at end", []Line{{"ab-", 3, 0}, {"cdefghijkl", 10, 0}}},
		{"short word", []Line{{"ab", 2, 0}, {"cdef x", 6, 0}}},
		{"no room", []Line{{"abcde", 5, 0}, {"cdefghijkl", 10, 0}}},
	}
	for _, tc := range testdata {
		width := 10.0
		if tc.name == "no room" {
			width = 9
		}
		got := rebalance(tc.lines, width, monoMetrics{}, hyph)
		if diff := cmp.Diff(tc.lines, got); diff != "" {
			t.Errorf("%s: rebalance changed lines (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestBalancePolicy(t *testing.T) {
	testdata := []struct {
		in   string
		want BalancePolicy
	}{
		{"", BalanceWithoutHyphenation},
		{"always", BalanceAlways},
		{"Never", BalanceNever},
	}
	for _, tc := range testdata {
		got, err := ParseBalancePolicy(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("ParseBalancePolicy(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
	if _, err := ParseBalancePolicy("sometimes"); !errors.Is(err, bag.ErrInvalidInput) {
		t.Errorf("ParseBalancePolicy(sometimes) err = %v, want ErrInvalidInput", err)
	}
}

func TestAlign(t *testing.T) {
	lines := []Line{{"abcd", 4, 0}, {"abcdefghij", 10, 0}, {"", 0, 1}}
	testdata := []struct {
		align Alignment
		want  []string
	}{
		{AlignLeft, []string{"abcd", "abcdefghij", ""}},
		{AlignCenter, []string{"   abcd", "abcdefghij", ""}},
		{AlignRight, []string{"      abcd", "abcdefghij", ""}},
	}
	for _, tc := range testdata {
		got := Align(lines, 10, tc.align, monoMetrics{})
		if diff := cmp.Diff(tc.want, texts(got)); diff != "" {
			t.Errorf("Align(%s) mismatch (-want +got):\n%s", tc.align, diff)
		}
		for _, l := range got {
			if l.Width > 10 {
				t.Errorf("Align(%s) line %q width %v exceeds block", tc.align, l.Text, l.Width)
			}
		}
	}
	got := Align([]Line{{"  ab", 4, 0}}, 10, AlignLeft, monoMetrics{})
	if got[0].Text != "ab" || got[0].Width != 2 {
		t.Errorf("Align(left) = %+v, want trimmed line", got[0])
	}
}

func TestParseAlignment(t *testing.T) {
	testdata := []struct {
		in   string
		want Alignment
	}{
		{"left", AlignLeft},
		{"center", AlignCenter},
		{"Right", AlignRight},
		{"justify", AlignLeft},
	}
	for _, tc := range testdata {
		if got := ParseAlignment(tc.in); got != tc.want {
			t.Errorf("ParseAlignment(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func normalizeWords(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func joinLines(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(strings.TrimSuffix(strings.TrimSpace(l.Text), "-"))
	}
	return normalizeWords(b.String())
}

func TestLayoutFallback(t *testing.T) {
	b := New(nil, lang.NewLanguages(""))
	text := "Пример длинного текста для тестирования"
	for _, width := range []float64{200, 70.9, 40} {
		res, err := b.Layout(context.Background(), Request{
			Text:       text,
			FontSize:   12,
			FontFamily: "Arial",
			BlockWidth: width,
			Hyphenate:  true,
		})
		if err != nil {
			t.Fatal(err)
		}
		if !res.Fallback || res.FontMetrics != nil {
			t.Errorf("width %v: Fallback = %t, want fallback metrics", width, res.Fallback)
		}
		if want := 12 * 1.2; math.Abs(res.LineHeight-want) > 1e-9 {
			t.Errorf("width %v: LineHeight = %v, want %v", width, res.LineHeight, want)
		}
		if len(res.Lines) < 2 {
			t.Errorf("width %v: got %d lines, want at least 2", width, len(res.Lines))
		}
		for _, l := range res.Lines {
			if l.Width > width && utf8.RuneCountInString(l.Text) > 1 {
				t.Errorf("width %v: line %q is %v wide", width, l.Text, l.Width)
			}
		}
		if got, want := joinLines(res.Lines), normalizeWords(text); got != want {
			t.Errorf("width %v: lines cover %q, want %q", width, got, want)
		}
		// wrapping the output again keeps the text
		again, err := b.Layout(context.Background(), Request{
			Text:       strings.Join(res.Texts(), " "),
			FontSize:   12,
			BlockWidth: width,
			Hyphenate:  true,
		})
		if err != nil {
			t.Fatal(err)
		}
		if got, want := normalizeWords(strings.ReplaceAll(strings.Join(again.Texts(), ""), "-", "")), normalizeWords(text); got != want {
			t.Errorf("width %v: re-wrap covers %q, want %q", width, got, want)
		}
	}
}

func TestLayoutFaceMetrics(t *testing.T) {
	fonts := font.NewRegistry("")
	if err := fonts.LoadIncludedFonts(); err != nil {
		t.Fatal(err)
	}
	b := New(fonts, lang.NewLanguages(""))
	text := "The quick brown fox jumps over the lazy dog while the printer feeds another label"
	for _, width := range []float64{300, 120, 61.5, 25} {
		res, err := b.Layout(context.Background(), Request{
			Text:       text,
			FontSize:   10,
			FontFamily: "Go",
			BlockWidth: width,
			Hyphenate:  true,
			Language:   "en",
		})
		if err != nil {
			t.Fatal(err)
		}
		if res.Fallback || res.FontMetrics == nil {
			t.Fatalf("width %v: Fallback = %t, want face metrics", width, res.Fallback)
		}
		if len(res.Lines) < 2 {
			t.Errorf("width %v: got %d lines, want at least 2", width, len(res.Lines))
		}
		for _, l := range res.Lines {
			if l.Width > width+1e-9 && utf8.RuneCountInString(l.Text) > 1 {
				t.Errorf("width %v: line %q is %v wide", width, l.Text, l.Width)
			}
		}
		if got, want := joinLines(res.Lines), normalizeWords(text); got != want {
			t.Errorf("width %v: lines cover %q, want %q", width, got, want)
		}
	}
}

func TestLayoutHyphenates(t *testing.T) {
	b := New(nil, lang.NewLanguages(""))
	res, err := b.Layout(context.Background(), Request{
		Text:       "программирование",
		FontSize:   12,
		BlockWidth: 50,
		Hyphenate:  true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Lines) < 2 {
		t.Fatalf("got %q, want a split word", res.Texts())
	}
	if !strings.HasSuffix(res.Lines[0].Text, "-") {
		t.Errorf("first line %q does not end with a hyphen", res.Lines[0].Text)
	}
	if got := joinLines(res.Lines); got != "программирование" {
		t.Errorf("lines cover %q", got)
	}
}

func TestLayoutInvalid(t *testing.T) {
	b := New(nil, nil)
	for _, req := range []Request{
		{Text: "a", FontSize: 0, BlockWidth: 10},
		{Text: "a", FontSize: 10, BlockWidth: -1},
	} {
		if _, err := b.Layout(context.Background(), req); !errors.Is(err, bag.ErrInvalidInput) {
			t.Errorf("Layout(%+v) err = %v, want ErrInvalidInput", req, err)
		}
	}
}

func TestLayoutBalancePolicies(t *testing.T) {
	// "ab" uses less than two thirds of the block and the next line starts
	// with a long word.
	text := "ab программирование"
	req := Request{Text: text, FontSize: 10, BlockWidth: 80, Hyphenate: false}
	for _, tc := range []struct {
		policy   BalancePolicy
		balanced bool
	}{
		{BalanceNever, false},
		{BalanceWithoutHyphenation, true},
		{BalanceAlways, true},
	} {
		b := New(nil, lang.NewLanguages(""))
		b.Balance = tc.policy
		res, err := b.Layout(context.Background(), req)
		if err != nil {
			t.Fatal(err)
		}
		got := res.Lines[0].Text != "ab"
		if got != tc.balanced {
			t.Errorf("policy %d: first line %q, balanced = %t, want %t", tc.policy, res.Lines[0].Text, got, tc.balanced)
		}
	}
	// with hyphenation on, only BalanceAlways rebalances
	req.Hyphenate = true
	b := New(nil, lang.NewLanguages(""))
	res, err := b.Layout(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if res.Lines[0].Text != "ab" {
		t.Errorf("default policy with hyphenation: first line %q, want %q", res.Lines[0].Text, "ab")
	}
}
