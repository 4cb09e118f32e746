// Package barcode renders barcodes and QR codes as PNG images for the label
// editor preview.
package barcode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/codabar"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/code93"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/twooffive"
	"github.com/kortschak/qr"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/labelpress/labelpress/backend/bag"
)

// Symbology names accepted in Request.BCID.
const (
	EAN13           = "ean13"
	EAN8            = "ean8"
	UPCA            = "upca"
	Code128         = "code128"
	Code39          = "code39"
	Code93          = "code93"
	Codabar         = "codabar"
	Interleaved2of5 = "interleaved2of5"
	QRCode          = "qrcode"
)

const (
	defaultHeight = 50
	defaultScale  = 2
	quietModules  = 10
	qrQuiet       = 4
	textGap       = 2

	// MaxScale and MaxHeight bound Request.Width and Request.Height.
	MaxScale  = 32
	MaxHeight = 1000
	// maxCanvas bounds each side of the rendered image.
	maxCanvas = 4096
)

// Request describes one image. Height is the bar height in pixels, Width
// the width of a single module in pixels.
type Request struct {
	BCID        string
	Text        string
	IncludeText bool
	Height      int
	Width       int
}

// CheckDigit returns the mod 10 check digit of the numeric string digits.
// Weights alternate 3, 1, ... starting at the rightmost digit.
func CheckDigit(digits string) int {
	sum := 0
	weight := 3
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		weight = 4 - weight
	}
	return (10 - sum%10) % 10
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// withCheckDigit appends the check digit to a payload of n digits or
// verifies the last digit of a payload of n+1 digits.
func withCheckDigit(symbology, text string, n int) (string, error) {
	if !isDigits(text) {
		return "", bag.Invalidf("%s needs digits only, got %q", symbology, text)
	}
	switch len(text) {
	case n:
		return fmt.Sprintf("%s%d", text, CheckDigit(text)), nil
	case n + 1:
		want := CheckDigit(text[:n])
		if got := int(text[n] - '0'); got != want {
			return "", bag.Invalidf("%s check digit of %q is %d, want %d", symbology, text, got, want)
		}
		return text, nil
	}
	return "", bag.Invalidf("%s needs %d or %d digits, got %d", symbology, n, n+1, len(text))
}

// Normalize checks text for the symbology and returns the payload that is
// actually encoded. EAN and UPC payloads get their check digit.
func Normalize(bcid, text string) (string, error) {
	switch strings.ToLower(bcid) {
	case EAN13:
		return withCheckDigit("EAN-13", text, 12)
	case EAN8:
		return withCheckDigit("EAN-8", text, 7)
	case UPCA:
		return withCheckDigit("UPC-A", text, 11)
	case Codabar:
		upper := strings.ToUpper(text)
		if upper == "" || !strings.ContainsAny(upper[:1], "ABCD") {
			return "A" + text + "A", nil
		}
		return upper, nil
	case Interleaved2of5:
		if len(text)%2 == 1 {
			return "0" + text, nil
		}
		return text, nil
	case Code128, Code39, Code93, QRCode:
		if text == "" {
			return "", bag.Invalidf("%s needs data", bcid)
		}
		return text, nil
	}
	return "", bag.Invalidf("unknown barcode type %q", bcid)
}

func encode1D(bcid, payload string) (bc.Barcode, error) {
	switch bcid {
	case EAN13, EAN8:
		return ean.Encode(payload)
	case UPCA:
		return ean.Encode("0" + payload)
	case Code128:
		return code128.Encode(payload)
	case Code39:
		return code39.Encode(payload, false, true)
	case Code93:
		return code93.Encode(payload, true, true)
	case Codabar:
		return codabar.Encode(payload)
	case Interleaved2of5:
		return twooffive.Encode(payload, true)
	}
	return nil, bag.Invalidf("unknown barcode type %q", bcid)
}

// Render returns the PNG image for req.
func Render(req Request) ([]byte, error) {
	bcid := strings.ToLower(req.BCID)
	if req.Width < 0 || req.Width > MaxScale {
		return nil, bag.Invalidf("module width %d out of range 1..%d", req.Width, MaxScale)
	}
	if req.Height < 0 || req.Height > MaxHeight {
		return nil, bag.Invalidf("bar height %d out of range 1..%d", req.Height, MaxHeight)
	}
	payload, err := Normalize(bcid, req.Text)
	if err != nil {
		return nil, err
	}
	scale := req.Width
	if scale <= 0 {
		scale = defaultScale
	}
	var img image.Image
	if bcid == QRCode {
		img, err = renderQR(payload, scale)
	} else {
		height := req.Height
		if height <= 0 {
			height = defaultHeight
		}
		hri := ""
		if req.IncludeText {
			hri = payload
		}
		img, err = render1D(bcid, payload, scale, height, hri)
	}
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode barcode png: %w", err)
	}
	bag.Logger.Debugf("Rendered %s %q (%v)", bcid, payload, img.Bounds().Size())
	return buf.Bytes(), nil
}

func whiteCanvas(w, h int) (*image.RGBA, error) {
	if w > maxCanvas || h > maxCanvas {
		return nil, bag.Invalidf("barcode image %d×%d exceeds %d pixels", w, h, maxCanvas)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img, nil
}

func render1D(bcid, payload string, scale, height int, hri string) (image.Image, error) {
	code, err := encode1D(bcid, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", bag.ErrInvalidInput, bcid, err)
	}
	modules := code.Bounds().Dx()
	face := basicfont.Face7x13
	quiet := quietModules * scale
	w, h := modules*scale+2*quiet, height
	if hri != "" {
		h += textGap + face.Height
	}
	img, err := whiteCanvas(w, h)
	if err != nil {
		return nil, err
	}
	scaled, err := bc.Scale(code, modules*scale, height)
	if err != nil {
		return nil, fmt.Errorf("scale %s: %w", bcid, err)
	}
	draw.Draw(img, image.Rect(quiet, 0, quiet+modules*scale, height), scaled, image.Point{}, draw.Src)
	if hri != "" {
		d := &font.Drawer{Dst: img, Src: image.Black, Face: face}
		tw := d.MeasureString(hri).Ceil()
		d.Dot = fixed.P((w-tw)/2, height+textGap+face.Ascent)
		d.DrawString(hri)
	}
	return img, nil
}

func renderQR(payload string, scale int) (image.Image, error) {
	code, err := qr.Encode(payload, qr.M)
	if err != nil {
		return nil, fmt.Errorf("%w: qrcode: %s", bag.ErrInvalidInput, err)
	}
	side := (code.Size + 2*qrQuiet) * scale
	img, err := whiteCanvas(side, side)
	if err != nil {
		return nil, err
	}
	black := image.NewUniform(color.Black)
	for y := 0; y < code.Size; y++ {
		for x := 0; x < code.Size; x++ {
			if !code.Black(x, y) {
				continue
			}
			r := image.Rect(x*scale, y*scale, (x+1)*scale, (y+1)*scale).Add(image.Pt(qrQuiet*scale, qrQuiet*scale))
			draw.Draw(img, r, black, image.Point{}, draw.Src)
		}
	}
	return img, nil
}
