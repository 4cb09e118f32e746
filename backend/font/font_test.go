package font

import (
	"errors"
	"math"
	"testing"

	"github.com/labelpress/labelpress/backend/bag"
)

func TestGetFontSource(t *testing.T) {
	regular := &FontSource{Name: "regular"}
	bold := &FontSource{Name: "bold"}
	ff := &FontFamily{}
	if err := ff.AddMember(regular, FontWeight400, FontStyleNormal); err != nil {
		t.Fatal(err)
	}
	if err := ff.AddMember(bold, FontWeight700, FontStyleNormal); err != nil {
		t.Fatal(err)
	}
	testdata := []struct {
		weight FontWeight
		style  FontStyle
		want   *FontSource
	}{
		{FontWeight400, FontStyleNormal, regular},
		{FontWeight400, FontStyleItalic, regular},
		{FontWeight700, FontStyleItalic, bold},
		{FontWeight900, FontStyleNormal, bold},
		{FontWeight300, FontStyleNormal, regular},
	}
	for _, td := range testdata {
		got, err := ff.GetFontSource(td.weight, td.style)
		if err != nil {
			t.Fatal(err)
		}
		if got != td.want {
			t.Errorf("GetFontSource(%s, %s) = %s, want %s", td.weight, td.style, got, td.want)
		}
	}
	if _, err := (&FontFamily{}).GetFontSource(FontWeight400, FontStyleNormal); !errors.Is(err, ErrEmptyFF) {
		t.Errorf("GetFontSource() on empty family = %v, want ErrEmptyFF", err)
	}
}

func TestResolveFontWeight(t *testing.T) {
	testdata := []struct {
		in   string
		want FontWeight
	}{
		{"", FontWeight400},
		{"normal", FontWeight400},
		{"Bold", FontWeight700},
		{"600", FontWeight(600)},
		{"heavy", FontWeight900},
		{"fat", FontWeight400},
	}
	for _, td := range testdata {
		if got := ResolveFontWeight(td.in); got != td.want {
			t.Errorf("ResolveFontWeight(%q) = %d, want %d", td.in, got, td.want)
		}
	}
}

func TestRelativeWidth(t *testing.T) {
	testdata := []struct {
		r            rune
		bold, italic bool
		want         float64
	}{
		{'а', false, false, 0.45},
		{'Щ', false, false, 0.85},
		{'a', false, false, 0.5},
		{'€', false, false, unknownWidth},
		{'ж', true, false, 0.65 * boldMultiplier},
		{'ж', true, true, 0.65 * boldMultiplier * italicMultiplier},
	}
	for _, td := range testdata {
		if got := RelativeWidth(td.r, td.bold, td.italic); math.Abs(got-td.want) > 1e-9 {
			t.Errorf("RelativeWidth(%q, %t, %t) = %v, want %v", td.r, td.bold, td.italic, got, td.want)
		}
	}
}

func TestFallbackMetrics(t *testing.T) {
	m := NewFallbackMetrics(10, false, false)
	if got, want := m.Width("аж"), 11.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Width() = %v, want %v", got, want)
	}
	if got := m.LineHeight(); math.Abs(got-12) > 1e-9 {
		t.Errorf("LineHeight() = %v, want 12", got)
	}
	if !m.Fallback() || m.FontMetrics() != nil {
		t.Errorf("fallback metrics not marked as fallback")
	}
}

func TestResolveNotFound(t *testing.T) {
	r := NewRegistry(t.TempDir())
	_, err := r.Resolve("Nonexistent", false, false)
	if !errors.Is(err, ErrFontNotFound) {
		t.Errorf("Resolve() error = %v, want ErrFontNotFound", err)
	}
	if !errors.Is(err, bag.ErrResourceUnavailable) {
		t.Errorf("ErrFontNotFound does not wrap ErrResourceUnavailable")
	}
	if m := NewMetrics(r, "Nonexistent", false, false, 12); !m.Fallback() {
		t.Errorf("NewMetrics() for unknown family is not a fallback")
	}
}

func TestReferenceFamilyWithoutFiles(t *testing.T) {
	r := NewRegistry(t.TempDir())
	if err := r.LoadReferenceFamilies(); err != nil {
		t.Fatal(err)
	}
	if r.FindFontFamily("arial") == nil {
		t.Fatal("family Arial not registered")
	}
	_, err := r.Resolve("Arial", true, false)
	if !errors.Is(err, bag.ErrResourceUnavailable) {
		t.Errorf("Resolve(Arial) without font file = %v, want ErrResourceUnavailable", err)
	}
	if m := NewMetrics(r, "Arial", true, false, 12); !m.Fallback() {
		t.Errorf("NewMetrics() without font file is not a fallback")
	}
}

func TestIncludedFonts(t *testing.T) {
	r := NewRegistry("")
	if err := r.LoadIncludedFonts(); err != nil {
		t.Fatal(err)
	}
	face, err := r.Resolve("Go", true, true)
	if err != nil {
		t.Fatal(err)
	}
	again, err := r.Resolve("go", true, true)
	if err != nil {
		t.Fatal(err)
	}
	if face != again {
		t.Errorf("Resolve() did not return the cached face")
	}
	m := NewMetrics(r, "Go", false, false, 12)
	if m.Fallback() {
		t.Fatal("metrics of the Go font are marked as fallback")
	}
	if w := m.Width("Мёд"); w <= 0 {
		t.Errorf("Width(Мёд) = %v, want > 0", w)
	}
	if m.Width("ШШШ") <= m.Width("Ш") {
		t.Errorf("Width() does not grow with the text")
	}
	if lh := m.LineHeight(); lh <= 12 {
		t.Errorf("LineHeight() = %v, want > font size", lh)
	}
	if fm := m.FontMetrics(); fm == nil || fm.Ascender <= 0 {
		t.Errorf("FontMetrics() = %v, want positive ascender", fm)
	}
}

func TestStyleKey(t *testing.T) {
	if got, want := StyleKey("Arial", true, true), "Arial Bold Italic"; got != want {
		t.Errorf("StyleKey() = %q, want %q", got, want)
	}
}
