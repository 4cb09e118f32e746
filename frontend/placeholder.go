package frontend

import (
	"regexp"
	"strings"

	"github.com/labelpress/labelpress/backend/bag"
)

// placeholderRE matches {{name}} where name is a letter or underscore
// followed by letters, digits and underscores.
var placeholderRE = regexp.MustCompile(`\{\{([\p{L}_][\p{L}\p{N}_]*)\}\}`)

func substitute(s string, values map[string]string) string {
	if !strings.Contains(s, "{{") {
		return s
	}
	return placeholderRE.ReplaceAllStringFunc(s, func(m string) string {
		if v, ok := values[m[2:len(m)-2]]; ok {
			return v
		}
		return m
	})
}

// ReplacePlaceholders returns a copy of doc where every {{name}} in text,
// barcode data and QR data is replaced by values[name]. Unknown names stay
// as they are.
func ReplacePlaceholders(doc *Document, values map[string]string) *Document {
	c := doc.Clone()
	for i := range c.Objects {
		e := &c.Objects[i]
		e.Text = substitute(e.Text, values)
		e.Data = substitute(e.Data, values)
	}
	bag.Logger.Debugf("Replaced placeholders with %d values", len(values))
	return c
}
