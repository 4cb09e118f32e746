package font

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

type member struct {
	weight FontWeight
	style  FontStyle
	file   string
}

// referenceFamilies maps the families offered by the label editor to the
// usual Windows/Adobe file names. The files are looked up in the font
// directory; missing files make the layout fall back to the width table.
var referenceFamilies = map[string][]member{
	"Arial": {
		{FontWeight400, FontStyleNormal, "ARIAL.TTF"},
		{FontWeight700, FontStyleNormal, "ARIALBD.TTF"},
		{FontWeight400, FontStyleItalic, "ARIALI.TTF"},
		{FontWeight700, FontStyleItalic, "ARIALBI.TTF"},
	},
	"Arial Narrow": {
		{FontWeight400, FontStyleNormal, "ARIALN.TTF"},
		{FontWeight700, FontStyleNormal, "ARIALNB.TTF"},
		{FontWeight400, FontStyleItalic, "ARIALNI.TTF"},
		{FontWeight700, FontStyleItalic, "ARIALNBI.TTF"},
	},
	"Arial Black": {
		{FontWeight400, FontStyleNormal, "ARIBLK.TTF"},
	},
	"Courier New": {
		{FontWeight400, FontStyleNormal, "COUR.TTF"},
		{FontWeight700, FontStyleNormal, "COURBD.TTF"},
		{FontWeight400, FontStyleItalic, "COURI.TTF"},
		{FontWeight700, FontStyleItalic, "COURBI.TTF"},
	},
	"Georgia": {
		{FontWeight400, FontStyleNormal, "GEORGIA.TTF"},
		{FontWeight700, FontStyleNormal, "GEORGIAB.TTF"},
		{FontWeight400, FontStyleItalic, "GEORGIAI.TTF"},
		{FontWeight700, FontStyleItalic, "GEORGIAZ.TTF"},
	},
	"Helvetica": {
		{FontWeight400, FontStyleNormal, "helvetica_regular.otf"},
		{FontWeight700, FontStyleNormal, "helvetica_bold.otf"},
		{FontWeight400, FontStyleItalic, "helvetica_oblique.otf"},
		{FontWeight700, FontStyleItalic, "helvetica_boldoblique.otf"},
	},
	"Helvetica Light": {
		{FontWeight400, FontStyleNormal, "helvetica_light.otf"},
		{FontWeight400, FontStyleItalic, "helvetica_lightoblique.otf"},
	},
	"Helvetica Cyrillic": {
		{FontWeight400, FontStyleItalic, "helvetica_cyr_oblique.ttf"},
		{FontWeight700, FontStyleItalic, "helvetica_cyr_boldoblique.ttf"},
	},
	"Times New Roman": {
		{FontWeight400, FontStyleNormal, "TIMES.TTF"},
		{FontWeight700, FontStyleNormal, "TIMESBD.TTF"},
		{FontWeight400, FontStyleItalic, "TIMESI.TTF"},
		{FontWeight700, FontStyleItalic, "TIMESBI.TTF"},
	},
	"Verdana": {
		{FontWeight400, FontStyleNormal, "VERDANA.TTF"},
		{FontWeight700, FontStyleNormal, "VERDANAB.TTF"},
		{FontWeight400, FontStyleItalic, "VERDANAI.TTF"},
		{FontWeight700, FontStyleItalic, "VERDANAZ.TTF"},
	},
}

// LoadReferenceFamilies registers the file based families of the label
// editor. Font files are read lazily on first use.
func (r *Registry) LoadReferenceFamilies() error {
	for name, members := range referenceFamilies {
		ff := r.NewFontFamily(name)
		for _, m := range members {
			if err := ff.AddMember(&FontSource{Name: name, Source: m.file}, m.weight, m.style); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadIncludedFonts creates the font family "Go" from the fonts compiled into
// the binary. It always resolves, even without a font directory.
func (r *Registry) LoadIncludedFonts() error {
	var err error
	gofamily := r.NewFontFamily("Go")
	if err = gofamily.AddMember(&FontSource{Data: goregular.TTF, Name: "Go Regular"}, FontWeight400, FontStyleNormal); err != nil {
		return err
	}
	if err = gofamily.AddMember(&FontSource{Data: gobold.TTF, Name: "Go Bold"}, FontWeight700, FontStyleNormal); err != nil {
		return err
	}
	if err = gofamily.AddMember(&FontSource{Data: goitalic.TTF, Name: "Go Italic"}, FontWeight400, FontStyleItalic); err != nil {
		return err
	}
	if err = gofamily.AddMember(&FontSource{Data: gobolditalic.TTF, Name: "Go Bold Italic"}, FontWeight700, FontStyleItalic); err != nil {
		return err
	}
	return nil
}

// AddFamilyFile adds a single file to a family, creating the family if
// needed. It is used for families from the configuration file.
func (r *Registry) AddFamilyFile(family string, bold, italic bool, file string) error {
	ff := r.FindFontFamily(family)
	if ff == nil {
		ff = r.NewFontFamily(family)
	}
	weight, style := FontWeight400, FontStyleNormal
	if bold {
		weight = FontWeight700
	}
	if italic {
		style = FontStyleItalic
	}
	return ff.AddMember(&FontSource{Name: StyleKey(family, bold, italic), Source: file}, weight, style)
}
