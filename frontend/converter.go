// Package frontend turns label layouts into device command lists.
package frontend

import (
	"context"
	"fmt"
	"math"

	"github.com/labelpress/labelpress/backend/bag"
	"github.com/labelpress/labelpress/backend/command"
	"github.com/labelpress/labelpress/backend/linebreak"
)

// DefaultPixelScale is the number of dots per canvas pixel: the canvas
// works at 72 px per inch.
const DefaultPixelScale = float64(bag.DefaultDPI) / bag.PointsPerInch

// defaultFontSize is used for text elements without a font size.
const defaultFontSize = 16

// Converter holds the settings for converting layouts of one printer.
type Converter struct {
	DPI int
	// ScaleX and ScaleY are the dots per canvas pixel.
	ScaleX float64
	ScaleY float64
	// Protocol selects the command dialect, "sdk" or "label".
	Protocol string
	// Hyphenate is used for text elements that do not say otherwise.
	Hyphenate bool
	Breaker   *linebreak.Breaker
	Settings  PrintSettings
}

// NewConverter returns a converter for a 203 dpi printer that speaks the
// named-parameter protocol.
func NewConverter(breaker *linebreak.Breaker) *Converter {
	return &Converter{
		DPI:       bag.DefaultDPI,
		ScaleX:    DefaultPixelScale,
		ScaleY:    DefaultPixelScale,
		Protocol:  command.ProtocolSDK,
		Hyphenate: true,
		Breaker:   breaker,
		Settings:  DefaultPrintSettings(),
	}
}

// MMToDots converts millimeters to dots.
func (c *Converter) MMToDots(mm float64) bag.Dots {
	return bag.MMToDots(mm, c.DPI)
}

// DotsToMM converts dots to millimeters.
func (c *Converter) DotsToMM(d bag.Dots) float64 {
	return bag.DotsToMM(d, c.DPI)
}

// PixelsToDotsX converts a horizontal canvas length to dots.
func (c *Converter) PixelsToDotsX(px float64) int {
	return int(math.Round(px * c.ScaleX))
}

// PixelsToDotsY converts a vertical canvas length to dots.
func (c *Converter) PixelsToDotsY(px float64) int {
	return int(math.Round(px * c.ScaleY))
}

func (c *Converter) hyphenate(e *Element) bool {
	if e.Hyphenate != nil {
		return *e.Hyphenate
	}
	return c.Hyphenate
}

// ExpandText returns a copy of doc where every text element is replaced by
// one element per wrapped line. Line i is placed at top + i × line height;
// alignment is applied as leading spaces. Blank lines take up space but
// produce no element.
func (c *Converter) ExpandText(ctx context.Context, doc *Document) (*Document, error) {
	ret := doc.Clone()
	objects := ret.Objects
	ret.Objects = make([]Element, 0, len(objects))
	for i := range objects {
		e := &objects[i]
		if !e.IsText() || e.expanded {
			ret.Objects = append(ret.Objects, *e)
			continue
		}
		lines, err := c.expandElement(ctx, e)
		if err != nil {
			return nil, err
		}
		ret.Objects = append(ret.Objects, lines...)
	}
	return ret, nil
}

func (c *Converter) expandElement(ctx context.Context, e *Element) ([]Element, error) {
	res, err := c.layoutElement(ctx, e)
	if err != nil {
		return nil, err
	}
	var ret []Element
	for i, l := range res.Lines {
		if l.Text == "" {
			continue
		}
		le := *e
		le.Text = l.Text
		le.Top = e.Top + float64(i)*res.LineHeight
		le.TextAlign = linebreak.AlignLeft.String()
		le.expanded = true
		ret = append(ret, le)
	}
	return ret, nil
}

// layoutElement runs the line breaker for a text element. The block width
// is the element's canvas width, the font size its canvas height.
func (c *Converter) layoutElement(ctx context.Context, e *Element) (*linebreak.Result, error) {
	if c.Breaker == nil {
		return nil, fmt.Errorf("converter has no line breaker")
	}
	size := e.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	width := e.Width * e.scaleX()
	align := linebreak.ParseAlignment(e.TextAlign)
	if width <= 0 {
		width = math.MaxFloat32
		align = linebreak.AlignLeft
	}
	res, err := c.Breaker.Layout(ctx, linebreak.Request{
		Text:       e.Text,
		FontSize:   size * e.scaleY(),
		FontFamily: e.FontFamily,
		Bold:       e.FontWeight.Bold(),
		Italic:     e.Italic(),
		Align:      align,
		BlockWidth: width,
		Hyphenate:  c.hyphenate(e),
		Language:   e.Language,
	})
	if err != nil {
		return nil, fmt.Errorf("text element at %v,%v: %w", e.Left, e.Top, err)
	}
	return res, nil
}
