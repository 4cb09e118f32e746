package font

import (
	"errors"
	"math"

	"github.com/labelpress/labelpress/backend/bag"
)

// FontMetrics holds the vertical metrics of a face scaled to points.
type FontMetrics struct {
	Ascender  float64 `json:"ascender"`
	Descender float64 `json:"descender"`
	LineGap   float64 `json:"lineGap"`
}

// Metrics measures text at one size and style. Widths and heights are in
// points.
type Metrics interface {
	Width(s string) float64
	LineHeight() float64
	FontMetrics() *FontMetrics
	Fallback() bool
}

// lineSpacing is the factor between the font box and the line height.
const lineSpacing = 1.2

// A Resolver finds the face for a family name and style.
type Resolver interface {
	Resolve(family string, bold, italic bool) (*Face, error)
}

// NewMetrics resolves the face for family once and returns metrics for the
// given size. If no face can be resolved, the fallback width table is used
// for the whole lifetime of the returned object.
func NewMetrics(res Resolver, family string, bold, italic bool, size float64) Metrics {
	if res == nil {
		return NewFallbackMetrics(size, bold, italic)
	}
	face, err := res.Resolve(family, bold, italic)
	if err != nil {
		if errors.Is(err, ErrFontNotFound) {
			bag.Logger.Warnf("Font %q not found, using width table", StyleKey(family, bold, italic))
		} else {
			bag.Logger.Warnf("Cannot load font %q (%s), using width table", StyleKey(family, bold, italic), err)
		}
		return NewFallbackMetrics(size, bold, italic)
	}
	return NewFaceMetrics(face, size)
}

type faceMetrics struct {
	face *Face
	size float64
}

// NewFaceMetrics returns metrics backed by the advances of face.
func NewFaceMetrics(face *Face, size float64) Metrics {
	return faceMetrics{face: face, size: size}
}

func (m faceMetrics) Width(s string) float64 {
	upem := float64(m.face.UnitsPerEM)
	total := 0.0
	for _, r := range s {
		if adv, ok := m.face.Advance(r); ok {
			total += adv / upem * m.size
		} else {
			total += m.size * unknownWidth
		}
	}
	return total
}

func (m faceMetrics) LineHeight() float64 {
	upem := float64(m.face.UnitsPerEM)
	ascent := m.face.Ascender / upem * m.size
	descent := math.Abs(m.face.Descender) / upem * m.size
	return (ascent + descent) * lineSpacing
}

func (m faceMetrics) FontMetrics() *FontMetrics {
	upem := float64(m.face.UnitsPerEM)
	return &FontMetrics{
		Ascender:  m.face.Ascender / upem * m.size,
		Descender: m.face.Descender / upem * m.size,
		LineGap:   m.face.LineGap / upem * m.size,
	}
}

func (m faceMetrics) Fallback() bool { return false }

type fallbackMetrics struct {
	size   float64
	bold   bool
	italic bool
}

// NewFallbackMetrics returns metrics computed from the static width table.
func NewFallbackMetrics(size float64, bold, italic bool) Metrics {
	return fallbackMetrics{size: size, bold: bold, italic: italic}
}

func (m fallbackMetrics) Width(s string) float64 {
	total := 0.0
	for _, r := range s {
		total += RelativeWidth(r, m.bold, m.italic) * m.size
	}
	return total
}

func (m fallbackMetrics) LineHeight() float64 {
	return m.size * lineSpacing
}

func (m fallbackMetrics) FontMetrics() *FontMetrics { return nil }

func (m fallbackMetrics) Fallback() bool { return true }
