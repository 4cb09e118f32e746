package bag

import (
	"errors"
	"math"
	"testing"
)

func TestUnits(t *testing.T) {
	testdata := []struct {
		unit string
		want float64
	}{
		{"58mm", 58},
		{"5.8cm", 58},
		{"1in", 25.4},
		{"72pt", 25.4},
		{"72px", 25.4},
		{"203dot", 25.4},
		{" 40 mm ", 40},
	}
	for _, tc := range testdata {
		got, err := ParseLength(tc.unit, DefaultDPI)
		if err != nil {
			t.Errorf("ParseLength(%q) unexpected error %v", tc.unit, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ParseLength(%q) = %f, want %f", tc.unit, got, tc.want)
		}
	}
}

func TestUnitsError(t *testing.T) {
	for _, unit := range []string{"", "mm", "12furlong", "1.2.3mm"} {
		if _, err := ParseLength(unit, DefaultDPI); !errors.Is(err, ErrConversion) {
			t.Errorf("ParseLength(%q) error = %v, want ErrConversion", unit, err)
		}
	}
}

func TestMMToDots(t *testing.T) {
	testdata := []struct {
		mm   float64
		want Dots
	}{
		{58, 464},
		{40, 320},
		{25.4, 203},
		{0, 0},
	}
	for _, tc := range testdata {
		if got := MMToDots(tc.mm, DefaultDPI); got != tc.want {
			t.Errorf("MMToDots(%v) = %d, want %d", tc.mm, got, tc.want)
		}
	}
}

func TestDotsRoundTrip(t *testing.T) {
	oneDot := MMPerInch / DefaultDPI
	for _, mm := range []float64{10, 25, 50, 58, 100, 150} {
		got := DotsToMM(MMToDots(mm, DefaultDPI), DefaultDPI)
		if math.Abs(got-mm) > oneDot {
			t.Errorf("DotsToMM(MMToDots(%v)) = %v, off by more than one dot", mm, got)
		}
	}
}

func TestProtocolError(t *testing.T) {
	var err error = &ProtocolError{StatusCode: 503, Body: "busy"}
	var pe *ProtocolError
	if !errors.As(err, &pe) {
		t.Fatal("errors.As failed")
	}
	if want, got := "printer responded with status 503: busy", err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err := Invalidf("bad %s", "name"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Invalidf() = %v, want ErrInvalidInput", err)
	}
}
