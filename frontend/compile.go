package frontend

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/labelpress/labelpress/backend/bag"
	"github.com/labelpress/labelpress/backend/color"
	"github.com/labelpress/labelpress/backend/command"
)

const (
	defaultBarcodeHeight = 80
	defaultModuleSize    = 5
)

// Skip describes a layout element that did not produce a command.
type Skip struct {
	Index  int    `json:"index"`
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

func (s Skip) String() string {
	return fmt.Sprintf("element %d (%s): %s", s.Index, s.Type, s.Reason)
}

func (c *Converter) dialect() (dialect, error) {
	switch strings.ToLower(c.Protocol) {
	case "", command.ProtocolSDK:
		return sdkDialect{}, nil
	case command.ProtocolLabel:
		return labelDialect{}, nil
	}
	return nil, bag.Invalidf("unknown printer protocol %q", c.Protocol)
}

// Compile converts doc into a print job. Text elements are wrapped first.
// Elements that cannot be converted are reported as skips; they never
// abort the job. The job id is left for the dispatcher.
func (c *Converter) Compile(ctx context.Context, doc *Document, settings PrintSettings) (*command.Job, []Skip, error) {
	if err := doc.Validate(); err != nil {
		return nil, nil, err
	}
	d, err := c.dialect()
	if err != nil {
		return nil, nil, err
	}
	width, height := c.MMToDots(doc.WidthMM), c.MMToDots(doc.HeightMM)
	bag.Logger.Debugf("Compile label %v×%v mm (%s×%s), %d elements", doc.WidthMM, doc.HeightMM, width, height, len(doc.Objects))

	job := &command.Job{}
	job.Commands = append(job.Commands, d.preamble(width, height, settings)...)
	var skips []Skip
	skip := func(i int, e *Element, err error) {
		s := Skip{Index: i, Type: e.Type, Reason: err.Error()}
		bag.Logger.Warnf("Skip %s", s)
		skips = append(skips, s)
	}
	for i := range doc.Objects {
		e := doc.Objects[i]
		elements := []Element{e}
		if e.IsText() && !e.expanded {
			res, err := c.expandElement(ctx, &e)
			if err != nil {
				if ctx.Err() != nil {
					return nil, nil, err
				}
				skip(i, &e, err)
				continue
			}
			if len(res) == 0 {
				skip(i, &e, fmt.Errorf("%w: empty text", bag.ErrElementConversion))
				continue
			}
			elements = res
		}
		for j := range elements {
			cmd, err := c.convertElement(d, &elements[j])
			if err != nil {
				skip(i, &e, err)
				continue
			}
			job.Commands = append(job.Commands, cmd)
		}
	}
	job.Commands = append(job.Commands, command.New(command.PrintBuffer))
	return job, skips, nil
}

func textAlignment(e *Element) int {
	if e.expanded {
		return 0
	}
	switch strings.ToLower(e.TextAlign) {
	case "center":
		return 1
	case "right":
		return 2
	}
	return 0
}

func (c *Converter) convertElement(d dialect, e *Element) (command.Command, error) {
	x, y := c.PixelsToDotsX(e.Left), c.PixelsToDotsY(e.Top)
	switch {
	case e.IsText():
		if strings.TrimSpace(e.Text) == "" {
			return command.Command{}, fmt.Errorf("%w: empty text", bag.ErrElementConversion)
		}
		size := e.FontSize
		if size <= 0 {
			size = defaultFontSize
		}
		return d.text(textArgs{
			text:       e.Text,
			x:          x,
			y:          y,
			heightDots: c.PixelsToDotsY(size * e.scaleY()),
			family:     e.FontFamily,
			bold:       e.FontWeight.Bold(),
			italic:     e.Italic(),
			underline:  e.Underline,
			rotation:   rotation(e.Angle),
			align:      textAlignment(e),
		}), nil
	case e.Type == TypeRect:
		w, h := c.PixelsToDotsX(e.Width*e.scaleX()), c.PixelsToDotsY(e.Height*e.scaleY())
		if w <= 0 || h <= 0 {
			return command.Command{}, fmt.Errorf("%w: rectangle without size", bag.ErrElementConversion)
		}
		thickness := c.PixelsToDotsX(e.StrokeWidth)
		if thickness < 1 {
			thickness = 1
		}
		stroke, err := color.Parse(e.Stroke)
		if err != nil {
			return command.Command{}, fmt.Errorf("%w: %v", bag.ErrElementConversion, err)
		}
		if stroke.Transparent() {
			return command.Command{}, fmt.Errorf("%w: rectangle stroke %s is transparent", bag.ErrElementConversion, stroke)
		}
		return d.block(x, y, w, h, thickness, stroke.Hex()), nil
	case e.Type == TypeBarcode:
		if e.Data == "" {
			return command.Command{}, fmt.Errorf("%w: barcode without data", bag.ErrElementConversion)
		}
		h := c.PixelsToDotsY(e.Height * e.scaleY())
		if h <= 0 {
			h = defaultBarcodeHeight
		}
		cmd, err := d.barcode(barcodeArgs{
			data:       e.Data,
			x:          x,
			y:          y,
			symbology:  e.Symbology,
			heightDots: h,
			rotation:   rotation(e.Angle),
			showText:   e.ShowText == nil || *e.ShowText,
		})
		if err != nil {
			return command.Command{}, fmt.Errorf("%w: %s", bag.ErrElementConversion, err)
		}
		return cmd, nil
	case e.Type == TypeQRCode:
		if e.Data == "" {
			return command.Command{}, fmt.Errorf("%w: QR code without data", bag.ErrElementConversion)
		}
		size := e.ModuleSize
		if size <= 0 {
			size = defaultModuleSize
		}
		return d.qrcode(qrArgs{
			data:       e.Data,
			x:          x,
			y:          y,
			moduleSize: size,
			ecc:        ECCLevel(e.ECCLevel),
			rotation:   rotation(e.Angle),
		}), nil
	case e.Type == TypeImage:
		if wf := e.Width * e.scaleX() * c.ScaleX; math.IsNaN(wf) || wf < 0 || wf > maxBitmapDots {
			return command.Command{}, fmt.Errorf("%w: image width %g px out of range", bag.ErrElementConversion, e.Width)
		}
		w := c.PixelsToDotsX(e.Width * e.scaleX())
		data, err := bitmapData(e.Src, w)
		if err != nil {
			return command.Command{}, err
		}
		return d.bitmap(data, x, y, w), nil
	}
	return command.Command{}, fmt.Errorf("%w: unsupported element type %q", bag.ErrElementConversion, e.Type)
}
