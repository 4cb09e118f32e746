// Package linebreak wraps text runs into lines that fit a block width.
//
// All widths are in points. One point equals one pixel of the design
// canvas, so the block width of a text element is its canvas width.
package linebreak

import (
	"context"
	"fmt"
	"strings"

	"github.com/labelpress/labelpress/backend/bag"
	"github.com/labelpress/labelpress/backend/font"
	"github.com/labelpress/labelpress/backend/lang"
	"golang.org/x/text/unicode/norm"
)

// Alignment is the horizontal alignment of the lines in a block.
type Alignment int

const (
	// AlignLeft is the default alignment.
	AlignLeft Alignment = iota
	// AlignCenter pads lines with spaces to center them.
	AlignCenter
	// AlignRight pads lines with spaces to move them to the right edge.
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment returns the alignment for the canvas names "left",
// "center" and "right". Unknown values are left aligned.
func ParseAlignment(s string) Alignment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre", "middle":
		return AlignCenter
	case "right":
		return AlignRight
	}
	return AlignLeft
}

// BalancePolicy decides when short lines take a fragment of the first word
// of the following line.
type BalancePolicy int

const (
	// BalanceWithoutHyphenation rebalances only when hyphenation is switched
	// off for the text run.
	BalanceWithoutHyphenation BalancePolicy = iota
	// BalanceAlways rebalances every text run.
	BalanceAlways
	// BalanceNever leaves the greedy result untouched.
	BalanceNever
)

// ParseBalancePolicy maps configuration values to a policy.
func ParseBalancePolicy(s string) (BalancePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "without-hyphenation", "default":
		return BalanceWithoutHyphenation, nil
	case "always":
		return BalanceAlways, nil
	case "never", "off":
		return BalanceNever, nil
	}
	return BalanceWithoutHyphenation, bag.Invalidf("unknown balance policy %q", s)
}

// Request is a text run to be broken into lines.
type Request struct {
	Text       string    `json:"text"`
	FontSize   float64   `json:"fontSize"`
	FontFamily string    `json:"fontFamily"`
	Bold       bool      `json:"bold"`
	Italic     bool      `json:"italic"`
	Align      Alignment `json:"-"`
	BlockWidth float64   `json:"blockWidth"`
	Hyphenate  bool      `json:"hyphenate"`
	Language   string    `json:"language,omitempty"`
}

// Line is one output line. Paragraph is the index of the newline separated
// paragraph the line belongs to.
type Line struct {
	Text      string  `json:"text"`
	Width     float64 `json:"width"`
	Paragraph int     `json:"paragraph"`
}

// Result is the outcome of a Layout call.
type Result struct {
	Lines       []Line            `json:"lines"`
	LineHeight  float64           `json:"lineHeight"`
	FontSize    float64           `json:"fontSize"`
	BlockWidth  float64           `json:"blockWidth"`
	Hyphenate   bool              `json:"hyphenate"`
	FontMetrics *font.FontMetrics `json:"fontMetrics"`
	Fallback    bool              `json:"fallback"`
}

// Texts returns the text of each line.
func (r *Result) Texts() []string {
	ret := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		ret[i] = l.Text
	}
	return ret
}

// Hyphenator splits a word into fragments at its hyphenation points.
type Hyphenator interface {
	Fragments(word string) []string
}

// Breaker holds the resources shared by all layout calls.
type Breaker struct {
	Fonts     font.Resolver
	Languages *lang.Languages
	// Language is used for requests without a language.
	Language string
	Balance  BalancePolicy
}

// New returns a Breaker for Russian text with the default balance policy.
func New(fonts font.Resolver, languages *lang.Languages) *Breaker {
	return &Breaker{
		Fonts:     fonts,
		Languages: languages,
		Language:  "ru",
		Balance:   BalanceWithoutHyphenation,
	}
}

func (b *Breaker) hyphenator(name string) Hyphenator {
	if b.Languages == nil {
		return nil
	}
	if name == "" {
		name = b.Language
	}
	l, err := b.Languages.GetLanguage(name)
	if err != nil {
		bag.Logger.Warnf("No hyphenation for %q: %s", name, err)
		return nil
	}
	return l
}

// Layout breaks the text of req into lines. The font is resolved once; when
// it cannot be loaded, the static width table is used and the result is
// marked as fallback.
func (b *Breaker) Layout(ctx context.Context, req Request) (*Result, error) {
	if req.FontSize <= 0 {
		return nil, bag.Invalidf("font size must be positive, got %v", req.FontSize)
	}
	if req.BlockWidth <= 0 {
		return nil, bag.Invalidf("block width must be positive, got %v", req.BlockWidth)
	}
	m := font.NewMetrics(b.Fonts, req.FontFamily, req.Bold, req.Italic, req.FontSize)
	balance := b.Balance == BalanceAlways || (b.Balance == BalanceWithoutHyphenation && !req.Hyphenate)
	var hyph Hyphenator
	if req.Hyphenate || balance {
		hyph = b.hyphenator(req.Language)
	}
	lines, err := breakText(ctx, req.Text, m, req.BlockWidth, req.Hyphenate, hyph)
	if err != nil {
		return nil, err
	}
	if balance && hyph != nil {
		lines = rebalance(lines, req.BlockWidth, m, hyph)
	}
	lines = Align(lines, req.BlockWidth, req.Align, m)
	bag.Logger.Debugf("Layout %d lines, block width %.2f, size %.1f, fallback %t", len(lines), req.BlockWidth, req.FontSize, m.Fallback())
	return &Result{
		Lines:       lines,
		LineHeight:  m.LineHeight(),
		FontSize:    req.FontSize,
		BlockWidth:  req.BlockWidth,
		Hyphenate:   req.Hyphenate,
		FontMetrics: m.FontMetrics(),
		Fallback:    m.Fallback(),
	}, nil
}

// breakText splits text into paragraphs and wraps each of them. An empty
// paragraph yields a blank line.
func breakText(ctx context.Context, text string, m font.Metrics, blockWidth float64, hyphenate bool, hyph Hyphenator) ([]Line, error) {
	text = norm.NFC.String(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil, nil
	}
	w := &wrapper{metrics: m, width: blockWidth, hyph: hyph, hyphenate: hyphenate && hyph != nil}
	var lines []Line
	for i, para := range strings.Split(text, "\n") {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("layout canceled: %w", err)
		}
		texts := w.wrapParagraph(strings.Fields(para))
		if len(texts) == 0 {
			lines = append(lines, Line{Paragraph: i})
			continue
		}
		for _, t := range texts {
			lines = append(lines, Line{Text: t, Width: m.Width(t), Paragraph: i})
		}
	}
	return lines, nil
}
