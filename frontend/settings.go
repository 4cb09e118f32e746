package frontend

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/labelpress/labelpress/backend/bag"
)

// PrintSettings are the media and quality settings sent with each label.
// Margins are in dots.
type PrintSettings struct {
	Speed       int     `json:"speed" yaml:"speed"`
	Density     int     `json:"density" yaml:"density"`
	Orientation string  `json:"orientation" yaml:"orientation"`
	MarginH     int     `json:"marginH" yaml:"marginH"`
	MarginV     int     `json:"marginV" yaml:"marginV"`
	GapPercent  float64 `json:"gapPercent" yaml:"gapPercent"`
	MediaType   string  `json:"mediaType" yaml:"mediaType"`
}

// DefaultPrintSettings returns the settings used when a request does not
// override them.
func DefaultPrintSettings() PrintSettings {
	return PrintSettings{
		Speed:       4,
		Density:     12,
		Orientation: "T",
		MarginH:     10,
		MarginV:     10,
		GapPercent:  0.1,
		MediaType:   "G",
	}
}

// Merge returns s with every field present in the JSON object raw replaced.
func (s PrintSettings) Merge(raw json.RawMessage) (PrintSettings, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("%w: print settings: %s", bag.ErrInvalidInput, err)
	}
	return s, nil
}

// Set changes a single setting by its JSON name, for example from a
// command line "density=15".
func (s *PrintSettings) Set(key, value string) error {
	atoi := func() (int, error) {
		i, err := strconv.Atoi(value)
		if err != nil {
			return 0, bag.Invalidf("print setting %s: %q is not a number", key, value)
		}
		return i, nil
	}
	var err error
	switch key {
	case "speed":
		s.Speed, err = atoi()
	case "density":
		s.Density, err = atoi()
	case "marginH":
		s.MarginH, err = atoi()
	case "marginV":
		s.MarginV, err = atoi()
	case "orientation":
		s.Orientation = strings.ToUpper(value)
	case "mediaType":
		s.MediaType = strings.ToUpper(value)
	case "gapPercent":
		s.GapPercent, err = strconv.ParseFloat(value, 64)
		if err != nil {
			err = bag.Invalidf("print setting gapPercent: %q is not a number", value)
		}
	default:
		err = bag.Invalidf("unknown print setting %q", key)
	}
	return err
}
