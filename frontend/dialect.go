package frontend

import (
	"github.com/labelpress/labelpress/backend/bag"
	"github.com/labelpress/labelpress/backend/command"
)

type textArgs struct {
	text       string
	x, y       int
	heightDots int
	family     string
	bold       bool
	italic     bool
	underline  bool
	rotation   int
	align      int
}

type barcodeArgs struct {
	data       string
	x, y       int
	symbology  string
	heightDots int
	rotation   int
	showText   bool
}

type qrArgs struct {
	data       string
	x, y       int
	moduleSize int
	ecc        int
	rotation   int
}

// A dialect builds the commands of one bridge protocol. The encoding of the
// finished list is chosen separately by the dispatcher.
type dialect interface {
	preamble(widthDots, heightDots bag.Dots, s PrintSettings) []command.Command
	text(t textArgs) command.Command
	block(x, y, w, h, thickness int, color string) command.Command
	barcode(b barcodeArgs) (command.Command, error)
	qrcode(q qrArgs) command.Command
	bitmap(data string, x, y, width int) command.Command
}

const (
	narrowBar = 2
	wideBar   = 5
)

// sdkDialect is the named-parameter protocol with device fonts.
type sdkDialect struct{}

func (sdkDialect) preamble(width, height bag.Dots, s PrintSettings) []command.Command {
	gap := int(float64(height)*s.GapPercent + 0.5)
	return []command.Command{
		command.New(command.ClearBuffer),
		command.New(command.SetWidth, command.Arg("width", int(width))),
		command.New(command.SetLength,
			command.Arg("labelLength", int(height)),
			command.Arg("gapLength", gap),
			command.Arg("mediaType", s.MediaType),
			command.Arg("offset", 0)),
		command.New(command.SetOrientation, command.Arg("direction", s.Orientation)),
		command.New(command.SetSpeed, command.Arg("speed", s.Speed)),
		command.New(command.SetDensity, command.Arg("density", s.Density)),
		command.New(command.SetMargin, command.Arg("h", s.MarginH), command.Arg("v", s.MarginV)),
	}
}

func (sdkDialect) text(t textArgs) command.Command {
	fontType := DeviceFont(t.heightDots)
	enlarge := t.heightDots / deviceFontHeights[fontType]
	if enlarge < 1 {
		enlarge = 1
	}
	bold := 0
	if t.bold {
		bold = 1
	}
	return command.New(command.DrawDeviceFont,
		command.Arg("text", t.text),
		command.Arg("x", t.x),
		command.Arg("y", t.y),
		command.Arg("fontType", fontType),
		command.Arg("widthEnlarge", enlarge),
		command.Arg("heightEnlarge", enlarge),
		command.Arg("rotation", t.rotation),
		command.Arg("invert", 0),
		command.Arg("bold", bold),
		command.Arg("alignment", t.align))
}

func (sdkDialect) block(x, y, w, h, thickness int, color string) command.Command {
	return command.New(command.DrawBlock,
		command.Arg("x", x),
		command.Arg("y", y),
		command.Arg("width", w),
		command.Arg("height", h),
		command.Arg("lineWidth", thickness),
		command.Arg("color", color))
}

func (sdkDialect) barcode(b barcodeArgs) (command.Command, error) {
	symbol, err := lookupSymbology(sdkSymbologies, b.symbology)
	if err != nil {
		return command.Command{}, err
	}
	hri := 0
	if b.showText {
		hri = 3
	}
	return command.New(command.Draw1DBarcode,
		command.Arg("data", b.data),
		command.Arg("x", b.x),
		command.Arg("y", b.y),
		command.Arg("symbol", symbol),
		command.Arg("narrowbar", narrowBar),
		command.Arg("widebar", wideBar),
		command.Arg("height", b.heightDots),
		command.Arg("rotation", b.rotation),
		command.Arg("hriPosition", hri)), nil
}

func (sdkDialect) qrcode(q qrArgs) command.Command {
	return command.New(command.DrawQRCode,
		command.Arg("data", q.data),
		command.Arg("x", q.x),
		command.Arg("y", q.y),
		command.Arg("model", 1),
		command.Arg("alignment", 0),
		command.Arg("moduleSize", q.moduleSize),
		command.Arg("eccLevel", q.ecc))
}

func (sdkDialect) bitmap(data string, x, y, width int) command.Command {
	return command.New(command.DrawBitmap,
		command.Arg("data", data),
		command.Arg("x", x),
		command.Arg("y", y),
		command.Arg("width", width),
		command.Arg("dither", 0))
}

// labelDialect is the positional protocol with TrueType text. The printer
// keeps its own media settings, so the preamble only sets the width.
type labelDialect struct{}

func (labelDialect) preamble(width, height bag.Dots, s PrintSettings) []command.Command {
	return []command.Command{
		command.New(command.ClearBuffer),
		command.New(command.SetWidth, command.Arg("width", int(width))),
	}
}

func (labelDialect) text(t textArgs) command.Command {
	family := t.family
	if family == "" {
		family = "Arial"
	}
	return command.New(command.DrawTrueType,
		command.Arg("text", t.text),
		command.Arg("x", t.x),
		command.Arg("y", t.y),
		command.Arg("fontname", family),
		command.Arg("fontsize", t.heightDots),
		command.Arg("rotation", t.rotation),
		command.Arg("italic", t.italic),
		command.Arg("bold", t.bold),
		command.Arg("underline", t.underline),
		command.Arg("compression", false))
}

func (labelDialect) block(x, y, w, h, thickness int, color string) command.Command {
	return command.New(command.DrawBlock,
		command.Arg("startX", x),
		command.Arg("startY", y),
		command.Arg("endX", x+w),
		command.Arg("endY", y+h),
		command.Arg("option", "B"),
		command.Arg("thickness", thickness))
}

func (labelDialect) barcode(b barcodeArgs) (command.Command, error) {
	symbol, err := lookupSymbology(labelSymbologies, b.symbology)
	if err != nil {
		return command.Command{}, err
	}
	hri := 0
	if b.showText {
		hri = 1
	}
	return command.New(command.Draw1DBarcode,
		command.Arg("data", b.data),
		command.Arg("x", b.x),
		command.Arg("y", b.y),
		command.Arg("symbol", symbol),
		command.Arg("narrowbar", narrowBar),
		command.Arg("widebar", wideBar),
		command.Arg("height", b.heightDots),
		command.Arg("rotation", b.rotation),
		command.Arg("hri", hri),
		command.Arg("quietZone", 0)), nil
}

func (labelDialect) qrcode(q qrArgs) command.Command {
	return command.New(command.DrawQRCode,
		command.Arg("data", q.data),
		command.Arg("x", q.x),
		command.Arg("y", q.y),
		command.Arg("model", 2),
		command.Arg("eccLevel", q.ecc),
		command.Arg("size", q.moduleSize),
		command.Arg("rotation", q.rotation))
}

func (labelDialect) bitmap(data string, x, y, width int) command.Command {
	return command.New(command.DrawBitmap,
		command.Arg("data", data),
		command.Arg("x", x),
		command.Arg("y", y),
		command.Arg("width", width),
		command.Arg("dither", 0))
}
