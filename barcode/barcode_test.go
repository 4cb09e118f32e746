package barcode

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/labelpress/labelpress/backend/bag"
)

func TestNormalize(t *testing.T) {
	testdata := []struct {
		bcid string
		text string
		want string
	}{
		{EAN13, "123456789012", "1234567890128"},
		{EAN13, "1234567890128", "1234567890128"},
		{EAN13, "460123456789", "4601234567893"},
		{EAN8, "5512345", "55123457"},
		{UPCA, "03600029145", "036000291452"},
		{"EAN13", "400638133393", "4006381333931"},
		{Codabar, "12345", "A12345A"},
		{Interleaved2of5, "123", "0123"},
		{Code128, "Мёд-1", "Мёд-1"},
	}
	for _, td := range testdata {
		got, err := Normalize(td.bcid, td.text)
		if err != nil {
			t.Errorf("Normalize(%s, %q) error: %s", td.bcid, td.text, err)
			continue
		}
		if got != td.want {
			t.Errorf("Normalize(%s, %q) = %q, want %q", td.bcid, td.text, got, td.want)
		}
	}
}

func TestNormalizeInvalid(t *testing.T) {
	testdata := []struct {
		bcid string
		text string
	}{
		{EAN13, "1234567890123"},
		{EAN13, "12345678901"},
		{EAN13, "12345678901a"},
		{EAN8, "55123450"},
		{UPCA, "0360002914"},
		{Code128, ""},
		{"pdf417", "x"},
	}
	for _, td := range testdata {
		if _, err := Normalize(td.bcid, td.text); !errors.Is(err, bag.ErrInvalidInput) {
			t.Errorf("Normalize(%s, %q) error = %v, want ErrInvalidInput", td.bcid, td.text, err)
		}
	}
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("result is not a png: %s", err)
	}
	return img
}

func TestRender1D(t *testing.T) {
	plain, err := Render(Request{BCID: EAN13, Text: "123456789012", Height: 40, Width: 2})
	if err != nil {
		t.Fatal(err)
	}
	img := decode(t, plain)
	if got, want := img.Bounds().Dx(), 95*2+2*quietModules*2; got != want {
		t.Errorf("EAN-13 width = %d, want %d", got, want)
	}
	if got := img.Bounds().Dy(); got != 40 {
		t.Errorf("EAN-13 height = %d, want 40", got)
	}

	withText, err := Render(Request{BCID: EAN13, Text: "123456789012", Height: 40, Width: 2, IncludeText: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := decode(t, withText).Bounds().Dy(); got <= 40 {
		t.Errorf("height with text = %d, want more than 40", got)
	}

	for _, bcid := range []string{EAN8, UPCA, Code128, Code39, Code93, Codabar, Interleaved2of5} {
		text := map[string]string{EAN8: "5512345", UPCA: "03600029145"}[bcid]
		if text == "" {
			text = "123456"
		}
		data, err := Render(Request{BCID: bcid, Text: text})
		if err != nil {
			t.Errorf("Render(%s) error: %s", bcid, err)
			continue
		}
		if decode(t, data).Bounds().Dy() != defaultHeight {
			t.Errorf("Render(%s) does not use the default height", bcid)
		}
	}
}

func TestRenderQR(t *testing.T) {
	data, err := Render(Request{BCID: QRCode, Text: "https://example.com/товар/42", Width: 3})
	if err != nil {
		t.Fatal(err)
	}
	b := decode(t, data).Bounds()
	if b.Dx() != b.Dy() {
		t.Errorf("QR image is not square: %v", b)
	}
	if b.Dx()%3 != 0 || b.Dx() < (21+2*qrQuiet)*3 {
		t.Errorf("QR image size %d does not match the module size", b.Dx())
	}
}

func TestRenderRejectsChecksum(t *testing.T) {
	_, err := Render(Request{BCID: EAN13, Text: "1234567890123"})
	if !errors.Is(err, bag.ErrInvalidInput) {
		t.Errorf("Render() error = %v, want ErrInvalidInput", err)
	}
}

func TestRenderSizeLimits(t *testing.T) {
	long := strings.Repeat("A", 100)
	for _, req := range []Request{
		{BCID: QRCode, Text: "A", Width: 1 << 40},
		{BCID: QRCode, Text: "A", Width: -1},
		{BCID: EAN13, Text: "123456789012", Width: MaxScale + 1},
		{BCID: EAN13, Text: "123456789012", Height: -5},
		{BCID: EAN13, Text: "123456789012", Height: MaxHeight + 1},
		{BCID: Code128, Text: long, Width: MaxScale},
	} {
		if _, err := Render(req); !errors.Is(err, bag.ErrInvalidInput) {
			t.Errorf("Render(%s, width %d, height %d) error = %v, want ErrInvalidInput", req.BCID, req.Width, req.Height, err)
		}
	}
	data, err := Render(Request{BCID: QRCode, Text: "A", Width: MaxScale})
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Dx(); got != (21+2*qrQuiet)*MaxScale {
		t.Errorf("QR width = %d, want %d", got, (21+2*qrQuiet)*MaxScale)
	}
}
