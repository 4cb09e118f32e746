package bag

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	unitRE *regexp.Regexp
	// ErrConversion signals an error in unit conversion
	ErrConversion = errors.New("Conversion error")
)

func init() {
	unitRE = regexp.MustCompile(`^\s*([-+]?[0-9]*\.?[0-9]+)\s*(mm|cm|in|pt|px|dots|dot|m)\s*$`)
}

const (
	// DefaultDPI is the resolution of the XD3-40d class printers.
	DefaultDPI = 203
	// MMPerInch is the number of millimeters in one inch.
	MMPerInch = 25.4
	// PointsPerInch is the DTP point convention used by the design canvas.
	PointsPerInch = 72
)

// Dots is a length in printer dots. One dot is one addressable unit of the
// print head.
type Dots int

func (d Dots) String() string {
	return fmt.Sprintf("%ddot", int(d))
}

// MMToDots converts millimeters to dots at the given resolution.
func MMToDots(mm float64, dpi int) Dots {
	return Dots(math.Round(mm / MMPerInch * float64(dpi)))
}

// DotsToMM converts dots back to millimeters.
func DotsToMM(d Dots, dpi int) float64 {
	return float64(d) * MMPerInch / float64(dpi)
}

// ParseLength returns the length in millimeters. Unit can be a string like
// "58mm" or "2in". The units which are interpreted are mm, cm, m, in, pt,
// px (canvas pixel, 1/72 in) and dot. A (wrapped) ErrConversion is returned
// in case of an error.
func ParseLength(unit string, dpi int) (float64, error) {
	unit = strings.ToLower(unit)
	m := unitRE.FindStringSubmatch(unit)
	if len(m) != 3 {
		return 0, fmt.Errorf("%w: cannot parse %q", ErrConversion, unit)
	}
	l, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w parse float %s", ErrConversion, m[1])
	}
	switch m[2] {
	case "mm":
		return l, nil
	case "cm":
		return l * 10, nil
	case "m":
		return l * 1000, nil
	case "in":
		return l * MMPerInch, nil
	case "pt", "px":
		return l / PointsPerInch * MMPerInch, nil
	case "dot", "dots":
		if dpi <= 0 {
			return 0, fmt.Errorf("%w: resolution %d", ErrConversion, dpi)
		}
		return DotsToMM(Dots(l), dpi), nil
	default:
		return 0, ErrConversion
	}
}
