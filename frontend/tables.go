package frontend

import (
	"math"
	"strings"

	"github.com/labelpress/labelpress/backend/bag"
)

// deviceFontHeights are the character heights in dots of the built-in
// printer fonts, indexed by font type.
var deviceFontHeights = []int{15, 20, 25, 30, 38, 50}

// DeviceFont returns the built-in font whose height is closest to
// heightDots. Ties go to the smaller font.
func DeviceFont(heightDots int) int {
	best := 0
	for i, h := range deviceFontHeights {
		if abs(h-heightDots) < abs(deviceFontHeights[best]-heightDots) {
			best = i
		}
	}
	return best
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// canonicalSymbology normalises the names used by the editor and the
// barcode service: "EAN-13", "ean13" and "EAN_13" are the same.
func canonicalSymbology(name string) string {
	s := strings.ToUpper(name)
	s = strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	switch s {
	case "":
		return "CODE128"
	case "UPCA":
		return "UPC_A"
	case "UPCE":
		return "UPC_E"
	case "I2OF5", "INTERLEAVED2OF5", "ITF14":
		return "ITF"
	case "GS1128", "EAN128":
		return "UCC128"
	}
	return s
}

// Symbology numbers of the named-parameter protocol.
var sdkSymbologies = map[string]int{
	"UPC_A":   0,
	"UPC_E":   1,
	"EAN8":    2,
	"EAN13":   3,
	"CODE39":  4,
	"ITF":     5,
	"CODABAR": 6,
	"CODE93":  7,
	"CODE128": 8,
}

// Symbology numbers of the positional protocol.
var labelSymbologies = map[string]int{
	"CODE39":  0,
	"CODE128": 1,
	"ITF":     2,
	"CODABAR": 3,
	"CODE93":  4,
	"UPC_A":   5,
	"UPC_E":   6,
	"EAN13":   7,
	"EAN8":    8,
	"UCC128":  9,
}

func lookupSymbology(table map[string]int, name string) (int, error) {
	code, ok := table[canonicalSymbology(name)]
	if !ok {
		return 0, bag.Invalidf("unsupported barcode symbology %q", name)
	}
	return code, nil
}

var eccLevels = map[string]int{"L": 7, "M": 15, "Q": 25, "H": 30}

// ECCLevel returns the error correction percentage for the level letter.
// Unknown levels are M.
func ECCLevel(level string) int {
	if v, ok := eccLevels[strings.ToUpper(strings.TrimSpace(level))]; ok {
		return v
	}
	return eccLevels["M"]
}

// rotation maps a canvas angle to the device rotation code 0-3 (0°, 90°,
// 180°, 270° clockwise).
func rotation(angle float64) int {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return int(math.Round(a/90)) % 4
}
