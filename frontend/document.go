package frontend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/labelpress/labelpress/backend/bag"
	"github.com/labelpress/labelpress/backend/font"
)

// Element types of the design canvas.
const (
	TypeTextbox = "textbox"
	TypeText    = "text"
	TypeIText   = "i-text"
	TypeImage   = "image"
	TypeBarcode = "barcode"
	TypeQRCode  = "qrcode"
	TypeRect    = "rect"
)

// FontWeight is the canvas font weight. The canvas writes either a keyword
// ("bold") or a number (700).
type FontWeight string

// UnmarshalJSON accepts strings and numbers.
func (fw *FontWeight) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*fw = FontWeight(s)
		return nil
	}
	if string(data) == "null" {
		*fw = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("font weight: %w", err)
	}
	*fw = FontWeight(n.String())
	return nil
}

// Bold reports whether the weight is 600 or heavier.
func (fw FontWeight) Bold() bool {
	return font.ResolveFontWeight(string(fw)) >= 600
}

// Element is one object of a label layout. Positions and sizes are in canvas
// pixels; ScaleX and ScaleY are the canvas scale factors of the object.
type Element struct {
	Type        string     `json:"type"`
	Left        float64    `json:"left"`
	Top         float64    `json:"top"`
	Width       float64    `json:"width,omitempty"`
	Height      float64    `json:"height,omitempty"`
	ScaleX      float64    `json:"scaleX,omitempty"`
	ScaleY      float64    `json:"scaleY,omitempty"`
	Angle       float64    `json:"angle,omitempty"`
	Text        string     `json:"text,omitempty"`
	FontSize    float64    `json:"fontSize,omitempty"`
	FontFamily  string     `json:"fontFamily,omitempty"`
	FontWeight  FontWeight `json:"fontWeight,omitempty"`
	FontStyle   string     `json:"fontStyle,omitempty"`
	TextAlign   string     `json:"textAlign,omitempty"`
	Underline   bool       `json:"underline,omitempty"`
	Hyphenate   *bool      `json:"hyphenate,omitempty"`
	Language    string     `json:"language,omitempty"`
	Stroke      string     `json:"stroke,omitempty"`
	StrokeWidth float64    `json:"strokeWidth,omitempty"`
	Fill        string     `json:"fill,omitempty"`
	Src         string     `json:"src,omitempty"`
	Symbology   string     `json:"symbology,omitempty"`
	Data        string     `json:"data,omitempty"`
	ShowText    *bool      `json:"showText,omitempty"`
	ECCLevel    string     `json:"eccLevel,omitempty"`
	ModuleSize  int        `json:"moduleSize,omitempty"`

	// expanded marks a single line produced by ExpandText.
	expanded bool
}

// IsText reports whether the element is one of the canvas text types.
func (e *Element) IsText() bool {
	switch e.Type {
	case TypeTextbox, TypeText, TypeIText:
		return true
	}
	return false
}

func (e *Element) scaleX() float64 {
	if e.ScaleX == 0 {
		return 1
	}
	return e.ScaleX
}

func (e *Element) scaleY() float64 {
	if e.ScaleY == 0 {
		return 1
	}
	return e.ScaleY
}

// Italic reports whether the element uses an italic or oblique style.
func (e *Element) Italic() bool {
	s := strings.ToLower(e.FontStyle)
	return s == "italic" || s == "oblique"
}

// Document is a label layout as saved by the editor.
type Document struct {
	WidthMM   float64   `json:"widthMM"`
	HeightMM  float64   `json:"heightMM"`
	Objects   []Element `json:"objects"`
	CreatedAt string    `json:"createdAt,omitempty"`
}

// ParseDocument decodes a layout document.
func ParseDocument(data []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: layout: %s", bag.ErrInvalidInput, err)
	}
	return doc, nil
}

// Validate checks the label dimensions.
func (d *Document) Validate() error {
	if d == nil {
		return bag.Invalidf("no layout given")
	}
	if d.WidthMM <= 0 || d.HeightMM <= 0 {
		return bag.Invalidf("layout needs positive widthMM and heightMM, got %v×%v", d.WidthMM, d.HeightMM)
	}
	return nil
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	c := *d
	c.Objects = make([]Element, len(d.Objects))
	copy(c.Objects, d.Objects)
	for i := range c.Objects {
		if b := d.Objects[i].Hyphenate; b != nil {
			v := *b
			c.Objects[i].Hyphenate = &v
		}
		if b := d.Objects[i].ShowText; b != nil {
			v := *b
			c.Objects[i].ShowText = &v
		}
	}
	return &c
}
