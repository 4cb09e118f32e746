package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/labelpress/labelpress/backend/bag"
)

// Color is an sRGB color as the design canvas describes it. A is the opacity
// from 0 to 1.
type Color struct {
	R uint8
	G uint8
	B uint8
	A float64
}

func (col Color) String() string {
	alphaStr := strconv.FormatFloat(col.A, 'f', -1, 64)
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", col.R, col.G, col.B, alphaStr)
}

// Hex returns the color as #rrggbb, dropping the opacity.
func (col Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", col.R, col.G, col.B)
}

// Transparent reports whether the color leaves no mark.
func (col Color) Transparent() bool {
	return col.A <= 0
}

var (
	// Black is the default stroke color.
	Black = Color{A: 1}

	namedColors = map[string]Color{
		"black":       {0, 0, 0, 1},
		"white":       {255, 255, 255, 1},
		"transparent": {0, 0, 0, 0},
		"gray":        {128, 128, 128, 1},
		"grey":        {128, 128, 128, 1},
		"darkgray":    {169, 169, 169, 1},
		"darkgrey":    {169, 169, 169, 1},
		"dimgray":     {105, 105, 105, 1},
		"dimgrey":     {105, 105, 105, 1},
		"lightgray":   {211, 211, 211, 1},
		"lightgrey":   {211, 211, 211, 1},
		"silver":      {192, 192, 192, 1},
		"red":         {255, 0, 0, 1},
		"darkred":     {139, 0, 0, 1},
		"maroon":      {128, 0, 0, 1},
		"green":       {0, 128, 0, 1},
		"darkgreen":   {0, 100, 0, 1},
		"lime":        {0, 255, 0, 1},
		"blue":        {0, 0, 255, 1},
		"darkblue":    {0, 0, 139, 1},
		"navy":        {0, 0, 128, 1},
		"yellow":      {255, 255, 0, 1},
		"orange":      {255, 165, 0, 1},
		"purple":      {128, 0, 128, 1},
		"teal":        {0, 128, 128, 1},
		"olive":       {128, 128, 0, 1},
		"aqua":        {0, 255, 255, 1},
		"cyan":        {0, 255, 255, 1},
		"fuchsia":     {255, 0, 255, 1},
		"magenta":     {255, 0, 255, 1},
	}

	rgbmatcher = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*([0-9.]+)\s*)?\)$`)
)

// Parse reads a color name, a #rgb / #rrggbb / #rrggbbaa value or an
// rgb()/rgba() expression. The empty string is black.
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Black, nil
	}
	if col, ok := namedColors[s]; ok {
		return col, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if strings.HasPrefix(s, "rgb") {
		m := rgbmatcher.FindStringSubmatch(s)
		if m == nil {
			return Color{}, bag.Invalidf("cannot parse color %q", s)
		}
		col := Color{A: 1}
		for i, dst := range []*uint8{&col.R, &col.G, &col.B} {
			v, err := strconv.Atoi(m[i+1])
			if err != nil || v > 255 {
				return Color{}, bag.Invalidf("color component out of range in %q", s)
			}
			*dst = uint8(v)
		}
		if m[4] != "" {
			a, err := strconv.ParseFloat(m[4], 64)
			if err != nil {
				return Color{}, bag.Invalidf("cannot parse opacity in %q", s)
			}
			col.A = math.Min(a, 1)
		}
		return col, nil
	}
	return Color{}, bag.Invalidf("unknown color %q", s)
}

func parseHex(s string) (Color, error) {
	digits := s[1:]
	switch len(digits) {
	case 3:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6, 8:
	default:
		return Color{}, bag.Invalidf("cannot parse color %q", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, bag.Invalidf("cannot parse color %q", s)
	}
	col := Color{A: 1}
	if len(digits) == 8 {
		col.A = math.Round(100*float64(v&0xff)/255) / 100
		v >>= 8
	}
	col.R, col.G, col.B = uint8(v>>16), uint8(v>>8), uint8(v)
	return col, nil
}
