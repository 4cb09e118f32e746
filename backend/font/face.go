package font

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/labelpress/labelpress/backend/bag"
	"github.com/speedata/textlayout/fonts"
	"github.com/speedata/textlayout/fonts/truetype"
	"github.com/speedata/textlayout/harfbuzz"
)

var (
	ids chan int
)

func genIntegerSequence(ids chan int) {
	i := int(0)
	for {
		ids <- i
		i++
	}
}

func init() {
	ids = make(chan int)
	go genIntegerSequence(ids)
}

// metricsFace is the part of a parsed font the metrics provider needs.
type metricsFace interface {
	HorizontalAdvance(gid fonts.GID) float32
	FontHExtents() (fonts.FontExtents, bool)
}

// Face represents a font file with no specific size. To get the dimensions
// of a text, create a Metrics object with a given size.
type Face struct {
	FaceID     int
	UnitsPerEM int32
	Ascender   float64
	Descender  float64
	LineGap    float64
	filename   string
	face       metricsFace
	cmap       fonts.Cmap
	mu         sync.Mutex
	advances   map[rune]float64
}

func fillFaceObject(id string, fnt harfbuzz.Face) (*Face, error) {
	mf, ok := fnt.(metricsFace)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no horizontal metrics", bag.ErrResourceUnavailable, id)
	}
	cm, _ := fnt.Cmap()
	if cm == nil {
		return nil, fmt.Errorf("%w: %s has no cmap", bag.ErrResourceUnavailable, id)
	}
	upem := fnt.Upem()
	if upem == 0 {
		return nil, fmt.Errorf("%w: %s has zero units per em", bag.ErrResourceUnavailable, id)
	}
	face := &Face{
		FaceID:     <-ids,
		UnitsPerEM: int32(upem),
		filename:   id,
		face:       mf,
		cmap:       cm,
		advances:   make(map[rune]float64),
	}
	if ext, ok := mf.FontHExtents(); ok {
		face.Ascender = float64(ext.Ascender)
		face.Descender = float64(ext.Descender)
		face.LineGap = float64(ext.LineGap)
	} else {
		// Without extents assume the usual 0.8/0.2 em split.
		face.Ascender = float64(upem) * 0.8
		face.Descender = -float64(upem) * 0.2
	}
	return face, nil
}

// NewFaceFromData returns a Face object which is a representation of a font
// file. The first parameter (id) should be the file name of the font, but can
// be any string.
func NewFaceFromData(id string, data []byte) (*Face, error) {
	r := bytes.NewReader(data)
	fnt, err := truetype.Load(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", bag.ErrResourceUnavailable, id, err)
	}
	if len(fnt) == 0 {
		return nil, fmt.Errorf("%w: %s contains no faces", bag.ErrResourceUnavailable, id)
	}
	return fillFaceObject(id, fnt[0])
}

// LoadFace reads a TrueType or OpenType file from the disc.
func LoadFace(filename string) (*Face, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", bag.ErrResourceUnavailable, err)
	}
	bag.Logger.Debugf("Load font %s", filename)
	return NewFaceFromData(filename, data)
}

// Filename returns the id the face was loaded with.
func (face *Face) Filename() string {
	return face.filename
}

// Advance returns the horizontal advance of r in font units and false if the
// font has no glyph for r.
func (face *Face) Advance(r rune) (float64, bool) {
	face.mu.Lock()
	defer face.mu.Unlock()
	if adv, ok := face.advances[r]; ok {
		return adv, adv >= 0
	}
	gid, ok := face.cmap.Lookup(r)
	if !ok || gid == 0 {
		face.advances[r] = -1
		return 0, false
	}
	adv := float64(face.face.HorizontalAdvance(gid))
	face.advances[r] = adv
	return adv, true
}
