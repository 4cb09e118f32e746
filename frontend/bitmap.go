package frontend

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // gif data urls
	_ "image/jpeg" // jpeg data urls
	"image/png"
	"strings"

	"github.com/labelpress/labelpress/backend/bag"
	_ "golang.org/x/image/bmp" // bmp data urls
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // webp data urls
)

// decodeDataURL returns the image of a "data:image/...;base64," URL.
func decodeDataURL(src string) (image.Image, error) {
	if !strings.HasPrefix(src, "data:") {
		return nil, fmt.Errorf("%w: image has no embedded data", bag.ErrElementConversion)
	}
	comma := strings.IndexByte(src, ',')
	if comma < 0 || !strings.HasSuffix(src[:comma], ";base64") {
		return nil, fmt.Errorf("%w: image data is not base64 encoded", bag.ErrElementConversion)
	}
	data, err := base64.StdEncoding.DecodeString(src[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("%w: image data: %s", bag.ErrElementConversion, err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %s", bag.ErrElementConversion, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxSourcePixels {
		return nil, fmt.Errorf("%w: image of %d×%d pixels is too large", bag.ErrElementConversion, cfg.Width, cfg.Height)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %s", bag.ErrElementConversion, err)
	}
	return img, nil
}

// maxBitmapDots bounds both sides of a bitmap sent to the printer. It is
// far beyond any label the printer can feed.
const maxBitmapDots = 4096

// maxSourcePixels bounds the embedded image before it is decoded.
const maxSourcePixels = 1 << 24

// bitmapSize returns the target size for an image of size src scaled to
// widthDots. A zero width keeps the source width.
func bitmapSize(src image.Point, widthDots int) (image.Point, error) {
	if widthDots < 0 {
		return image.Point{}, fmt.Errorf("%w: negative image width %d", bag.ErrElementConversion, widthDots)
	}
	if widthDots == 0 {
		widthDots = src.X
	}
	if widthDots > maxBitmapDots {
		return image.Point{}, fmt.Errorf("%w: image width %d dots exceeds %d", bag.ErrElementConversion, widthDots, maxBitmapDots)
	}
	heightDots := int(int64(src.Y) * int64(widthDots) / int64(src.X))
	if heightDots < 1 {
		heightDots = 1
	}
	if heightDots > maxBitmapDots {
		return image.Point{}, fmt.Errorf("%w: image height %d dots exceeds %d", bag.ErrElementConversion, heightDots, maxBitmapDots)
	}
	return image.Pt(widthDots, heightDots), nil
}

// scaleBitmap scales img to size and flattens transparent areas onto white.
func scaleBitmap(img image.Image, size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// bitmapData converts an embedded image to a PNG data URL of the given
// width in dots.
func bitmapData(src string, widthDots int) (string, error) {
	img, err := decodeDataURL(src)
	if err != nil {
		return "", err
	}
	if img.Bounds().Empty() {
		return "", fmt.Errorf("%w: empty image", bag.ErrElementConversion)
	}
	size, err := bitmapSize(img.Bounds().Size(), widthDots)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaleBitmap(img, size)); err != nil {
		return "", fmt.Errorf("%w: encode png: %s", bag.ErrElementConversion, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
