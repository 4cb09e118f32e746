package font

// Relative glyph widths (fraction of the font size) used when no font file
// can be loaded. The values approximate a regular sans serif face.
var cyrillicWidths = map[rune]float64{
	'а': 0.45, 'б': 0.45, 'в': 0.45, 'г': 0.35, 'д': 0.45, 'е': 0.45, 'ё': 0.45,
	'ж': 0.65, 'з': 0.45, 'и': 0.45, 'й': 0.45, 'к': 0.45, 'л': 0.45, 'м': 0.65,
	'н': 0.45, 'о': 0.45, 'п': 0.45, 'р': 0.45, 'с': 0.45, 'т': 0.45, 'у': 0.45,
	'ф': 0.65, 'х': 0.45, 'ц': 0.45, 'ч': 0.45, 'ш': 0.65, 'щ': 0.65, 'ъ': 0.45,
	'ы': 0.65, 'ь': 0.45, 'э': 0.45, 'ю': 0.65, 'я': 0.45,
	'А': 0.6, 'Б': 0.6, 'В': 0.6, 'Г': 0.5, 'Д': 0.65, 'Е': 0.6, 'Ё': 0.6,
	'Ж': 0.8, 'З': 0.6, 'И': 0.65, 'Й': 0.65, 'К': 0.6, 'Л': 0.65, 'М': 0.8,
	'Н': 0.65, 'О': 0.65, 'П': 0.65, 'Р': 0.6, 'С': 0.6, 'Т': 0.6, 'У': 0.6,
	'Ф': 0.8, 'Х': 0.6, 'Ц': 0.65, 'Ч': 0.6, 'Ш': 0.8, 'Щ': 0.85, 'Ъ': 0.65,
	'Ы': 0.75, 'Ь': 0.6, 'Э': 0.6, 'Ю': 0.85, 'Я': 0.6,
	'-': 0.3,
}

var latinWidths = map[rune]float64{
	'a': 0.5, 'b': 0.55, 'c': 0.45, 'd': 0.55, 'e': 0.5, 'f': 0.3,
	'g': 0.55, 'h': 0.55, 'i': 0.25, 'j': 0.25, 'k': 0.5, 'l': 0.25,
	'm': 0.85, 'n': 0.55, 'o': 0.55, 'p': 0.55, 'q': 0.55, 'r': 0.35,
	's': 0.45, 't': 0.3, 'u': 0.55, 'v': 0.5, 'w': 0.75, 'x': 0.5,
	'y': 0.5, 'z': 0.45,
	'A': 0.65, 'B': 0.65, 'C': 0.7, 'D': 0.7, 'E': 0.6, 'F': 0.55,
	'G': 0.75, 'H': 0.7, 'I': 0.25, 'J': 0.5, 'K': 0.65, 'L': 0.55,
	'M': 0.85, 'N': 0.7, 'O': 0.75, 'P': 0.6, 'Q': 0.75, 'R': 0.65,
	'S': 0.6, 'T': 0.6, 'U': 0.7, 'V': 0.65, 'W': 0.95, 'X': 0.65,
	'Y': 0.65, 'Z': 0.6,
	'0': 0.55, '1': 0.35, '2': 0.55, '3': 0.55, '4': 0.55, '5': 0.55,
	'6': 0.55, '7': 0.55, '8': 0.55, '9': 0.55,
	'.': 0.25, ',': 0.25, '!': 0.25, '?': 0.45, ':': 0.25, ';': 0.25,
	'_': 0.45, '(': 0.3, ')': 0.3, '[': 0.3, ']': 0.3,
	'{': 0.3, '}': 0.3, '<': 0.45, '>': 0.45, '=': 0.45, '+': 0.45,
	'*': 0.35, '/': 0.25, '\\': 0.25, '|': 0.15, '@': 0.8, '#': 0.55,
	'$': 0.55, '%': 0.85, '^': 0.45, '&': 0.65, '~': 0.45, '`': 0.25,
	'"': 0.35, '\'': 0.15, ' ': 0.25,
}

const (
	unknownWidth     = 0.5
	boldMultiplier   = 1.2
	italicMultiplier = 1.1
)

// RelativeWidth returns the fallback width of r as a fraction of the font
// size.
func RelativeWidth(r rune, bold, italic bool) float64 {
	w, ok := cyrillicWidths[r]
	if !ok {
		w, ok = latinWidths[r]
	}
	if !ok {
		w = unknownWidth
	}
	if bold {
		w *= boldMultiplier
	}
	if italic {
		w *= italicMultiplier
	}
	return w
}
