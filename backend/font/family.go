package font

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/labelpress/labelpress/backend/bag"
)

var (
	// ErrFontNotFound is returned when no family or file matches a request.
	ErrFontNotFound = fmt.Errorf("%w: font not found", bag.ErrResourceUnavailable)
	// ErrEmptyFF is returned when requesting a font from an empty font family.
	ErrEmptyFF = fmt.Errorf("no face defined in the font family yet")
	// ErrUnfulfilledFamilyRequest is returned when the GetFontSource method
	// cannot find the requested member or a substitute.
	ErrUnfulfilledFamilyRequest = fmt.Errorf("the font family does not have the requested member")
)

// FontWeight is the type which represents different font weights.
type FontWeight int

func (fw FontWeight) String() string {
	switch fw {
	case 300:
		return "Light"
	case 400:
		return "Normal"
	case 700:
		return "Bold"
	case 900:
		return "Black"
	default:
		return fmt.Sprintf("fontweight %d", fw)
	}
}

const (
	// FontWeight300 is commonly named “Light”.
	FontWeight300 FontWeight = 300
	// FontWeight400 is commonly named “Normal”.
	FontWeight400 FontWeight = 400
	// FontWeight700 is commonly named “Bold”.
	FontWeight700 FontWeight = 700
	// FontWeight900 is commonly named “Black”.
	FontWeight900 FontWeight = 900
)

// FontStyle is the type which represents upright and italic faces.
type FontStyle int

func (fs FontStyle) String() string {
	switch fs {
	case FontStyleNormal:
		return "normal"
	case FontStyleItalic:
		return "italic"
	default:
		return "???"
	}
}

const (
	// FontStyleNormal is an upright font.
	FontStyleNormal FontStyle = iota
	// FontStyleItalic is an italicized font.
	FontStyleItalic
)

// StyleKey combines the family name with the style, for example "Arial Bold
// Italic".
func StyleKey(family string, bold, italic bool) string {
	key := family
	if bold {
		key += " Bold"
	}
	if italic {
		key += " Italic"
	}
	return key
}

// FontSource defines a mapping of name to a font file or to in memory data.
type FontSource struct {
	Name   string
	Source string
	Data   []byte
}

func (fs *FontSource) String() string {
	name := fs.Name
	if name == "" {
		name = "-"
	}
	return fmt.Sprintf("%s->%s", name, fs.Source)
}

// FontFamily is a struct that keeps fonts with different weights and styles
// together.
type FontFamily struct {
	ID           int
	Name         string
	familyMember map[FontWeight]map[FontStyle]*FontSource
}

// AddMember adds a member to the font family.
func (ff *FontFamily) AddMember(fontsource *FontSource, weight FontWeight, style FontStyle) error {
	bag.Logger.Debugf("add member to ff (id %d) weight %s, style %s", ff.ID, weight, style)
	if fontsource == nil {
		return fmt.Errorf("Font source is nil")
	}
	if ff.familyMember == nil {
		ff.familyMember = make(map[FontWeight]map[FontStyle]*FontSource)
	}
	if ff.familyMember[weight] == nil {
		ff.familyMember[weight] = make(map[FontStyle]*FontSource)
	}
	ff.familyMember[weight][style] = fontsource
	return nil
}

// GetFontSource tries to get the face closest to the requested face. A
// missing bold weight falls back to the nearest lighter weight, a missing
// italic style to the upright member of the same weight.
func (ff *FontFamily) GetFontSource(weight FontWeight, style FontStyle) (*FontSource, error) {
	if ff == nil {
		return nil, fmt.Errorf("no font family specified")
	}
	if ff.familyMember == nil {
		return nil, ErrEmptyFF
	}
	if ff.familyMember[weight] == nil {
		found := false
		if weight > 500 {
			for i := weight; i < 1000 && !found; i++ {
				if ff.familyMember[i] != nil {
					weight, found = i, true
				}
			}
		}
		for i := weight; i > 0 && !found; i-- {
			if ff.familyMember[i] != nil {
				weight, found = i, true
			}
		}
		for i := weight; i < 1000 && !found; i++ {
			if ff.familyMember[i] != nil {
				weight, found = i, true
			}
		}
		if !found {
			return nil, ErrUnfulfilledFamilyRequest
		}
	}
	ffMemberWeight := ff.familyMember[weight]
	if fs := ffMemberWeight[style]; fs != nil {
		return fs, nil
	}
	keys := []string{}
	for k := range ffMemberWeight {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	bag.Logger.Debugf("Style %s not found in font family %s. Known styles for weight %s are %s", style, ff.Name, weight, strings.Join(keys, ", "))
	if fs := ffMemberWeight[FontStyleNormal]; fs != nil {
		return fs, nil
	}
	return nil, ErrUnfulfilledFamilyRequest
}

// ResolveFontWeight returns a FontWeight based on the string fw as used by
// the design canvas ("bold", "normal", "700").
func ResolveFontWeight(fw string) FontWeight {
	switch strings.ToLower(strings.TrimSpace(fw)) {
	case "", "normal", "regular":
		return FontWeight400
	case "light":
		return FontWeight300
	case "bold", "bolder", "semi bold", "demi bold":
		return FontWeight700
	case "black", "heavy", "extra bold", "ultra bold":
		return FontWeight900
	}
	i, err := strconv.Atoi(fw)
	if err != nil {
		bag.Logger.Errorf("resolve font weight: cannot convert %s to int", fw)
		return FontWeight400
	}
	return FontWeight(i)
}

// Registry holds the font families known to the process and caches loaded
// faces. It is safe for concurrent use.
type Registry struct {
	dir      string
	mu       sync.Mutex
	families map[string]*FontFamily
	faces    map[string]*Face
}

// NewRegistry returns a registry that resolves relative font file names
// against dir.
func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:      dir,
		families: make(map[string]*FontFamily),
		faces:    make(map[string]*Face),
	}
}

// NewFontFamily creates a new font family for bundling fonts.
func (r *Registry) NewFontFamily(name string) *FontFamily {
	r.mu.Lock()
	defer r.mu.Unlock()
	bag.Logger.Debugf("Define font family %q (id %d)", name, len(r.families))
	ff := &FontFamily{
		ID:   len(r.families),
		Name: name,
	}
	r.families[strings.ToLower(name)] = ff
	return ff
}

// FindFontFamily returns the font family with the given name or nil if there
// is no font family with this name.
func (r *Registry) FindFontFamily(name string) *FontFamily {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.families[strings.ToLower(name)]
}

// Families returns the sorted names of all registered families.
func (r *Registry) Families() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ret := make([]string, 0, len(r.families))
	for _, ff := range r.families {
		ret = append(ret, ff.Name)
	}
	sort.Strings(ret)
	return ret
}

func isFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

// Resolve implements Resolver. A family name ending in .ttf or .otf is taken
// as a file name.
func (r *Registry) Resolve(family string, bold, italic bool) (*Face, error) {
	if isFontFile(family) {
		return r.loadFace(&FontSource{Name: family, Source: family})
	}
	ff := r.FindFontFamily(family)
	if ff == nil {
		return nil, fmt.Errorf("%w: family %q", ErrFontNotFound, family)
	}
	weight, style := FontWeight400, FontStyleNormal
	if bold {
		weight = FontWeight700
	}
	if italic {
		style = FontStyleItalic
	}
	fs, err := ff.GetFontSource(weight, style)
	if err != nil {
		if errors.Is(err, ErrUnfulfilledFamilyRequest) || errors.Is(err, ErrEmptyFF) {
			return nil, fmt.Errorf("%w: %s (%s)", ErrFontNotFound, StyleKey(family, bold, italic), err)
		}
		return nil, err
	}
	return r.loadFace(fs)
}

func (r *Registry) loadFace(fs *FontSource) (*Face, error) {
	key := fs.Source
	if fs.Data == nil && key != "" && !filepath.IsAbs(key) && r.dir != "" {
		key = filepath.Join(r.dir, key)
	}
	if key == "" {
		key = fs.Name
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if face, ok := r.faces[key]; ok {
		return face, nil
	}
	var face *Face
	var err error
	if fs.Data != nil {
		face, err = NewFaceFromData(key, fs.Data)
	} else {
		face, err = LoadFace(key)
	}
	if err != nil {
		return nil, err
	}
	r.faces[key] = face
	return face, nil
}
