package lang

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/labelpress/labelpress/backend/bag"
	"github.com/speedata/hyphenation"
	"golang.org/x/text/language"
)

var (
	nextid chan int
)

func genIntegerSequence(nextid chan int) {
	i := int(0)
	for {
		nextid <- i
		i++
	}
}

func init() {
	nextid = make(chan int)
	go genIntegerSequence(nextid)
}

// Lang represents a language for hyphenation
type Lang struct {
	ID             int
	Lefthyphenmin  int
	Righthyphenmin int
	Name           string
	mu             sync.Mutex
	lang           *hyphenation.Lang
}

// NewFromReader reads Liang patterns (one pattern per line) from r.
func NewFromReader(r io.Reader) (*Lang, error) {
	hl, err := hyphenation.New(r)
	if err != nil {
		return nil, err
	}
	l := &Lang{lang: hl, ID: <-nextid, Lefthyphenmin: 2, Righthyphenmin: 2}
	return l, nil
}

// Load loads the hyphenation patterns with the given file name
func Load(fn string) (*Lang, error) {
	r, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", bag.ErrResourceUnavailable, err)
	}
	defer r.Close()
	bag.Logger.Debugf("Load hyphenation patterns %s", fn)
	l, err := NewFromReader(r)
	if err != nil {
		return nil, err
	}
	l.Name = strings.TrimSuffix(filepath.Base(fn), ".pat.txt")
	return l, nil
}

func setHyphenmins(l *Lang) {
	if hm, ok := hyphenmins[l.Name]; ok {
		l.Lefthyphenmin, l.Righthyphenmin = hm[0], hm[1]
	}
}

// Hyphenate returns the rune positions after which the word may be broken.
func (l *Lang) Hyphenate(word string) []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	// the engine keeps Leftmin+1 runes at the start of a word
	l.lang.Leftmin = l.Lefthyphenmin - 1
	l.lang.Rightmin = l.Righthyphenmin
	return l.lang.Hyphenate(strings.ToLower(word))
}

// Languages holds the hyphenation languages of the process. Languages are
// created on first use from a pattern directory or from the built-in rules.
type Languages struct {
	dir   string
	mu    sync.Mutex
	langs map[string]*Lang
}

// NewLanguages returns a language cache that prefers TeX pattern files
// (hyph-<code>.pat.txt) in dir over the built-in patterns. dir may be empty.
func NewLanguages(dir string) *Languages {
	return &Languages{dir: dir, langs: make(map[string]*Lang)}
}

// baseLanguage returns the ISO 639 code for tags like "ru", "ru_RU" or
// "en-US".
func baseLanguage(langname string) (string, error) {
	tag, err := language.Parse(strings.ReplaceAll(langname, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: language %q: %s", bag.ErrInvalidInput, langname, err)
	}
	base, _ := tag.Base()
	return base.String(), nil
}

// GetLanguage returns the language object for langname.
func (ls *Languages) GetLanguage(langname string) (*Lang, error) {
	code, err := baseLanguage(langname)
	if err != nil {
		return nil, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if l, ok := ls.langs[code]; ok {
		return l, nil
	}
	var l *Lang
	if ls.dir != "" {
		fn := filepath.Join(ls.dir, "hyph-"+code+".pat.txt")
		if _, err := os.Stat(fn); err == nil {
			if l, err = Load(fn); err != nil {
				return nil, err
			}
		}
	}
	if l == nil {
		src, ok := builtinPatterns(code)
		if !ok {
			return nil, fmt.Errorf("%w: language %q not found", bag.ErrResourceUnavailable, langname)
		}
		bag.Logger.Debugf("Load language %s from memory", code)
		if l, err = NewFromReader(strings.NewReader(src)); err != nil {
			return nil, err
		}
	}
	l.Name = code
	setHyphenmins(l)
	ls.langs[code] = l
	return l, nil
}

// LoadDir loads every hyph-*.pat.txt file in dir into the cache, replacing
// languages loaded before.
func (ls *Languages) LoadDir(dir string) error {
	matches, err := filepath.Glob(filepath.Join(dir, "hyph-*.pat.txt"))
	if err != nil {
		return err
	}
	for _, fn := range matches {
		l, err := Load(fn)
		if err != nil {
			return err
		}
		code, err := baseLanguage(strings.TrimPrefix(l.Name, "hyph-"))
		if err != nil {
			bag.Logger.Warnf("Skip pattern file %s: %s", fn, err)
			continue
		}
		l.Name = code
		setHyphenmins(l)
		ls.mu.Lock()
		ls.langs[code] = l
		ls.mu.Unlock()
	}
	return nil
}
