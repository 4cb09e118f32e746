package frontend

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labelpress/labelpress/backend/bag"
	"github.com/labelpress/labelpress/backend/command"
	"github.com/labelpress/labelpress/backend/font"
	"github.com/labelpress/labelpress/backend/lang"
	"github.com/labelpress/labelpress/backend/linebreak"
)

func newTestConverter() *Converter {
	return NewConverter(linebreak.New(nil, lang.NewLanguages("")))
}

func param(t *testing.T, c command.Command, name string) interface{} {
	t.Helper()
	v, ok := c.Param(name)
	if !ok {
		t.Fatalf("%s has no parameter %q", c.Name, name)
	}
	return v
}

func TestReplacePlaceholders(t *testing.T) {
	doc := &Document{
		WidthMM:  58,
		HeightMM: 40,
		Objects: []Element{
			{Type: TypeTextbox, Text: "Мёд {{sort}}"},
			{Type: TypeBarcode, Data: "{{code}}"},
			{Type: TypeText, Text: "{{missing}} остаётся"},
			{Type: TypeText, Text: "{{ code }} {{any text}} {{1st}}"},
			{Type: TypeQRCode, Data: "{{сорт_2}}{{{code}}}"},
		},
	}
	values := map[string]string{
		"sort":     "Липовый",
		"code":     "4600000000000",
		" code ":   "x",
		"any text": "x",
		"1st":      "x",
		"сорт_2":   "липа",
	}
	got := ReplacePlaceholders(doc, values)
	want := []string{
		"Мёд Липовый",
		"4600000000000",
		"{{missing}} остаётся",
		"{{ code }} {{any text}} {{1st}}",
		"липа{4600000000000}",
	}
	texts := []string{got.Objects[0].Text, got.Objects[1].Data, got.Objects[2].Text, got.Objects[3].Text, got.Objects[4].Data}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Errorf("ReplacePlaceholders() mismatch (-want +got):\n%s", diff)
	}
	if doc.Objects[0].Text != "Мёд {{sort}}" {
		t.Errorf("original document changed: %q", doc.Objects[0].Text)
	}
}

func TestCompilePreamble(t *testing.T) {
	testdata := []struct {
		protocol string
		want     []string
	}{
		{command.ProtocolSDK, []string{
			command.ClearBuffer, command.SetWidth, command.SetLength, command.SetOrientation,
			command.SetSpeed, command.SetDensity, command.SetMargin, command.PrintBuffer,
		}},
		{command.ProtocolLabel, []string{command.ClearBuffer, command.SetWidth, command.PrintBuffer}},
	}
	for _, td := range testdata {
		c := newTestConverter()
		c.Protocol = td.protocol
		job, skips, err := c.Compile(context.Background(), &Document{WidthMM: 58, HeightMM: 40}, DefaultPrintSettings())
		if err != nil {
			t.Fatalf("Compile(%s) error: %s", td.protocol, err)
		}
		if len(skips) != 0 {
			t.Errorf("Compile(%s) skips = %v, want none", td.protocol, skips)
		}
		if diff := cmp.Diff(td.want, job.Names()); diff != "" {
			t.Errorf("Compile(%s) mismatch (-want +got):\n%s", td.protocol, diff)
		}
		if got := param(t, job.Commands[1], "width"); got != 464 {
			t.Errorf("Compile(%s) width = %v, want 464", td.protocol, got)
		}
	}
}

func TestCompileSDKLength(t *testing.T) {
	c := newTestConverter()
	job, _, err := c.Compile(context.Background(), &Document{WidthMM: 58, HeightMM: 40}, DefaultPrintSettings())
	if err != nil {
		t.Fatal(err)
	}
	setLength := job.Commands[2]
	if got := param(t, setLength, "labelLength"); got != 320 {
		t.Errorf("labelLength = %v, want 320", got)
	}
	if got := param(t, setLength, "gapLength"); got != 32 {
		t.Errorf("gapLength = %v, want 32", got)
	}
	if got := param(t, setLength, "mediaType"); got != "G" {
		t.Errorf("mediaType = %v, want G", got)
	}
}

func TestCompileInvalid(t *testing.T) {
	c := newTestConverter()
	for _, doc := range []*Document{nil, {HeightMM: 40}, {WidthMM: 58, HeightMM: -1}} {
		_, _, err := c.Compile(context.Background(), doc, DefaultPrintSettings())
		if !errors.Is(err, bag.ErrInvalidInput) {
			t.Errorf("Compile(%v) error = %v, want ErrInvalidInput", doc, err)
		}
	}
	c.Protocol = "zpl"
	_, _, err := c.Compile(context.Background(), &Document{WidthMM: 58, HeightMM: 40}, DefaultPrintSettings())
	if !errors.Is(err, bag.ErrInvalidInput) {
		t.Errorf("Compile() with unknown protocol error = %v, want ErrInvalidInput", err)
	}
}

func TestCompileSkips(t *testing.T) {
	c := newTestConverter()
	doc := &Document{
		WidthMM:  58,
		HeightMM: 40,
		Objects: []Element{
			{Type: "circle"},
			{Type: TypeImage, Src: "https://example.com/logo.png", Width: 50},
			{Type: TypeBarcode, Data: "123", Symbology: "PDF417"},
			{Type: TypeBarcode, Data: "012345678905", Symbology: "UPC-A"},
			{Type: TypeTextbox, Text: "  "},
			{Type: TypeQRCode},
		},
	}
	job, skips, err := c.Compile(context.Background(), doc, DefaultPrintSettings())
	if err != nil {
		t.Fatal(err)
	}
	var idx []int
	for _, s := range skips {
		idx = append(idx, s.Index)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 4, 5}, idx); diff != "" {
		t.Errorf("skipped elements mismatch (-want +got):\n%s", diff)
	}
	var barcodes []command.Command
	for _, cmd := range job.Commands {
		if cmd.Name == command.Draw1DBarcode {
			barcodes = append(barcodes, cmd)
		}
	}
	if len(barcodes) != 1 {
		t.Fatalf("got %d barcode commands, want 1", len(barcodes))
	}
	if got := param(t, barcodes[0], "symbol"); got != 0 {
		t.Errorf("UPC-A symbol = %v, want 0", got)
	}
	if got := param(t, barcodes[0], "hriPosition"); got != 3 {
		t.Errorf("hriPosition = %v, want 3", got)
	}
	if last := job.Commands[len(job.Commands)-1].Name; last != command.PrintBuffer {
		t.Errorf("last command = %s, want %s", last, command.PrintBuffer)
	}
}

func TestCompileRect(t *testing.T) {
	c := newTestConverter()
	doc := &Document{
		WidthMM:  58,
		HeightMM: 40,
		Objects: []Element{
			{Type: TypeRect, Width: 100, Height: 50, Stroke: "rgb(0,0,128)"},
			{Type: TypeRect, Width: 100, Height: 50, Stroke: "transparent"},
			{Type: TypeRect, Width: 100, Height: 50, Stroke: "bogus"},
			{Type: TypeRect, Width: 100, Height: 50, Stroke: "yellow"},
			{Type: TypeRect, Width: 100, Height: 50, Stroke: "rgba(0,0,0,0)"},
			{Type: TypeRect, Width: 100, Height: 50},
		},
	}
	job, skips, err := c.Compile(context.Background(), doc, DefaultPrintSettings())
	if err != nil {
		t.Fatal(err)
	}
	var idx []int
	for _, s := range skips {
		idx = append(idx, s.Index)
	}
	if diff := cmp.Diff([]int{1, 2, 4}, idx); diff != "" {
		t.Errorf("skipped elements mismatch (-want +got):\n%s", diff)
	}
	var colors []interface{}
	for _, cmd := range job.Commands {
		if cmd.Name == command.DrawBlock {
			colors = append(colors, param(t, cmd, "color"))
		}
	}
	if diff := cmp.Diff([]interface{}{"#000080", "#ffff00", "#000000"}, colors); diff != "" {
		t.Errorf("block colors mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileText(t *testing.T) {
	c := newTestConverter()
	doc := &Document{
		WidthMM:  58,
		HeightMM: 40,
		Objects: []Element{
			{Type: TypeTextbox, Text: "Мёд Липовый", Left: 10, Top: 20, FontSize: 16, FontWeight: "bold", TextAlign: "center"},
		},
	}
	job, skips, err := c.Compile(context.Background(), doc, DefaultPrintSettings())
	if err != nil {
		t.Fatal(err)
	}
	if len(skips) != 0 {
		t.Fatalf("unexpected skips %v", skips)
	}
	cmd := job.Commands[7]
	if cmd.Name != command.DrawDeviceFont {
		t.Fatalf("command = %s, want %s", cmd.Name, command.DrawDeviceFont)
	}
	want := map[string]interface{}{
		"text":          "Мёд Липовый",
		"x":             28,
		"y":             56,
		"fontType":      5,
		"widthEnlarge":  1,
		"heightEnlarge": 1,
		"bold":          1,
		"alignment":     0,
	}
	for k, v := range want {
		if got := param(t, cmd, k); got != v {
			t.Errorf("%s = %v, want %v", k, got, v)
		}
	}
}

func TestCompileTextLabel(t *testing.T) {
	c := newTestConverter()
	c.Protocol = command.ProtocolLabel
	doc := &Document{
		WidthMM:  58,
		HeightMM: 40,
		Objects: []Element{
			{Type: TypeText, Text: "Сыр", FontSize: 12, FontStyle: "italic"},
			{Type: TypeQRCode, Data: "https://example.com", ECCLevel: "H"},
		},
	}
	job, _, err := c.Compile(context.Background(), doc, DefaultPrintSettings())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{command.ClearBuffer, command.SetWidth, command.DrawTrueType, command.DrawQRCode, command.PrintBuffer}
	if diff := cmp.Diff(want, job.Names()); diff != "" {
		t.Fatalf("Compile() mismatch (-want +got):\n%s", diff)
	}
	text := job.Commands[2]
	if got := param(t, text, "fontname"); got != "Arial" {
		t.Errorf("fontname = %v, want Arial", got)
	}
	if got := param(t, text, "italic"); got != true {
		t.Errorf("italic = %v, want true", got)
	}
	if got := param(t, job.Commands[3], "eccLevel"); got != 30 {
		t.Errorf("eccLevel = %v, want 30", got)
	}
	if got := param(t, job.Commands[3], "size"); got != defaultModuleSize {
		t.Errorf("size = %v, want %d", got, defaultModuleSize)
	}
}

func TestExpandText(t *testing.T) {
	c := newTestConverter()
	doc := &Document{
		WidthMM:  58,
		HeightMM: 40,
		Objects: []Element{
			{Type: TypeRect, Width: 10, Height: 10},
			{Type: TypeTextbox, Text: "один\n\nтри", Top: 10, FontSize: 16, TextAlign: "right"},
		},
	}
	got, err := c.ExpandText(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Objects) != 3 {
		t.Fatalf("ExpandText() returned %d objects, want 3", len(got.Objects))
	}
	lh := font.NewFallbackMetrics(16, false, false).LineHeight()
	if got.Objects[0].Type != TypeRect {
		t.Errorf("first object = %s, want rect", got.Objects[0].Type)
	}
	if top := got.Objects[1].Top; top != 10 {
		t.Errorf("first line top = %v, want 10", top)
	}
	if top, want := got.Objects[2].Top, 10+2*lh; top != want {
		t.Errorf("third line top = %v, want %v", top, want)
	}
	if strings.TrimSpace(got.Objects[2].Text) != "три" {
		t.Errorf("third line text = %q, want три", got.Objects[2].Text)
	}
	for _, e := range got.Objects[1:] {
		if e.TextAlign != "left" {
			t.Errorf("expanded line align = %q, want left", e.TextAlign)
		}
	}
	if len(doc.Objects) != 2 {
		t.Errorf("original document changed")
	}
}

func TestDeviceFont(t *testing.T) {
	testdata := []struct {
		height int
		want   int
	}{
		{0, 0},
		{15, 0},
		{17, 0},
		{22, 1},
		{34, 3},
		{45, 5},
		{100, 5},
	}
	for _, td := range testdata {
		if got := DeviceFont(td.height); got != td.want {
			t.Errorf("DeviceFont(%d) = %d, want %d", td.height, got, td.want)
		}
	}
}

func TestCanonicalSymbology(t *testing.T) {
	testdata := []struct {
		name string
		want string
	}{
		{"", "CODE128"},
		{"ean-13", "EAN13"},
		{"EAN_8", "EAN8"},
		{"upc-a", "UPC_A"},
		{"ITF14", "ITF"},
		{"Code 39", "CODE39"},
	}
	for _, td := range testdata {
		if got := canonicalSymbology(td.name); got != td.want {
			t.Errorf("canonicalSymbology(%q) = %q, want %q", td.name, got, td.want)
		}
	}
	if _, err := lookupSymbology(labelSymbologies, "aztec"); !errors.Is(err, bag.ErrInvalidInput) {
		t.Errorf("lookupSymbology(aztec) error = %v, want ErrInvalidInput", err)
	}
}

func TestECCLevel(t *testing.T) {
	testdata := map[string]int{"l": 7, "M": 15, " q ": 25, "H": 30, "": 15, "X": 15}
	for level, want := range testdata {
		if got := ECCLevel(level); got != want {
			t.Errorf("ECCLevel(%q) = %d, want %d", level, got, want)
		}
	}
}

func TestRotation(t *testing.T) {
	testdata := []struct {
		angle float64
		want  int
	}{
		{0, 0}, {90, 1}, {180, 2}, {270, 3}, {360, 0}, {-90, 3}, {269, 3}, {44, 0},
	}
	for _, td := range testdata {
		if got := rotation(td.angle); got != td.want {
			t.Errorf("rotation(%v) = %d, want %d", td.angle, got, td.want)
		}
	}
}

func TestFontWeight(t *testing.T) {
	testdata := []struct {
		json string
		bold bool
	}{
		{`{"fontWeight":"bold"}`, true},
		{`{"fontWeight":"normal"}`, false},
		{`{"fontWeight":700}`, true},
		{`{"fontWeight":400}`, false},
		{`{"fontWeight":600}`, true},
		{`{"fontWeight":"Black"}`, true},
		{`{"fontWeight":"semi bold"}`, true},
		{`{"fontWeight":"light"}`, false},
		{`{"fontWeight":null}`, false},
		{`{}`, false},
	}
	for _, td := range testdata {
		var e Element
		if err := json.Unmarshal([]byte(td.json), &e); err != nil {
			t.Fatalf("Unmarshal(%s) error: %s", td.json, err)
		}
		if got := e.FontWeight.Bold(); got != td.bold {
			t.Errorf("Bold() for %s = %t, want %t", td.json, got, td.bold)
		}
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"widthMM":58,"heightMM":40,"objects":[{"type":"textbox","text":"Чай","hyphenate":false}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if doc.WidthMM != 58 || len(doc.Objects) != 1 {
		t.Errorf("ParseDocument() = %+v", doc)
	}
	if h := doc.Objects[0].Hyphenate; h == nil || *h {
		t.Errorf("hyphenate not read as false")
	}
	if _, err := ParseDocument([]byte(`{"widthMM":`)); !errors.Is(err, bag.ErrInvalidInput) {
		t.Errorf("ParseDocument(broken) error = %v, want ErrInvalidInput", err)
	}
}

func TestPrintSettings(t *testing.T) {
	s, err := DefaultPrintSettings().Merge(json.RawMessage(`{"density":15,"orientation":"B"}`))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultPrintSettings()
	want.Density = 15
	want.Orientation = "B"
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
	if _, err := s.Merge(json.RawMessage(`[1]`)); !errors.Is(err, bag.ErrInvalidInput) {
		t.Errorf("Merge([1]) error = %v, want ErrInvalidInput", err)
	}

	if err := s.Set("speed", "6"); err != nil || s.Speed != 6 {
		t.Errorf("Set(speed, 6) = %v, speed %d", err, s.Speed)
	}
	if err := s.Set("mediaType", "c"); err != nil || s.MediaType != "C" {
		t.Errorf("Set(mediaType, c) = %v, media type %q", err, s.MediaType)
	}
	for _, kv := range [][2]string{{"density", "dark"}, {"gapPercent", "x"}, {"color", "red"}} {
		if err := s.Set(kv[0], kv[1]); !errors.Is(err, bag.ErrInvalidInput) {
			t.Errorf("Set(%s, %s) error = %v, want ErrInvalidInput", kv[0], kv[1], err)
		}
	}
}

func pngDataURL(t *testing.T, w, h int) string {
	t.Helper()
	src := image.NewNRGBA(image.Rect(0, 0, w, h))
	src.Set(0, 0, color.Black)
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestBitmapData(t *testing.T) {
	url := pngDataURL(t, 10, 5)
	data, err := bitmapData(url, 20)
	if err != nil {
		t.Fatal(err)
	}
	img, err := decodeDataURL(data)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != image.Pt(20, 10) {
		t.Errorf("scaled size = %v, want (20,10)", got)
	}
	r, g, b, _ := img.At(19, 9).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("transparent pixel not flattened to white: %d %d %d", r, g, b)
	}

	for _, bad := range []string{"logo.png", "data:image/png,abc", "data:image/png;base64,!!!"} {
		if _, err := bitmapData(bad, 20); !errors.Is(err, bag.ErrElementConversion) {
			t.Errorf("bitmapData(%q) error = %v, want ErrElementConversion", bad, err)
		}
	}
}

func TestBitmapSize(t *testing.T) {
	testdata := []struct {
		src   image.Point
		width int
		want  image.Point
	}{
		{image.Pt(10, 5), 20, image.Pt(20, 10)},
		{image.Pt(10, 5), 0, image.Pt(10, 5)},
		{image.Pt(100, 1), 10, image.Pt(10, 1)},
		{image.Pt(10, 10), maxBitmapDots, image.Pt(maxBitmapDots, maxBitmapDots)},
	}
	for _, tc := range testdata {
		got, err := bitmapSize(tc.src, tc.width)
		if err != nil {
			t.Errorf("bitmapSize(%v, %d) error %v", tc.src, tc.width, err)
			continue
		}
		if got != tc.want {
			t.Errorf("bitmapSize(%v, %d) = %v, want %v", tc.src, tc.width, got, tc.want)
		}
	}
	for _, tc := range []struct {
		src   image.Point
		width int
	}{
		{image.Pt(10, 5), -1},
		{image.Pt(10, 5), maxBitmapDots + 1},
		{image.Pt(1, 100), 100},
		{image.Pt(maxBitmapDots+1, 1), 0},
	} {
		if _, err := bitmapSize(tc.src, tc.width); !errors.Is(err, bag.ErrElementConversion) {
			t.Errorf("bitmapSize(%v, %d) error = %v, want ErrElementConversion", tc.src, tc.width, err)
		}
	}
}

func TestCompileOversizedImage(t *testing.T) {
	c := newTestConverter()
	url := pngDataURL(t, 10, 5)
	doc := &Document{
		WidthMM:  58,
		HeightMM: 40,
		Objects: []Element{
			{Type: TypeImage, Src: url, Width: 1e10},
			{Type: TypeImage, Src: url, Width: -20},
			{Type: TypeImage, Src: url, Width: 20},
			{Type: TypeRect, Width: 10, Height: 10},
		},
	}
	job, skips, err := c.Compile(context.Background(), doc, DefaultPrintSettings())
	if err != nil {
		t.Fatal(err)
	}
	var idx []int
	for _, s := range skips {
		if !strings.Contains(s.Reason, bag.ErrElementConversion.Error()) {
			t.Errorf("skip reason %q does not name a conversion error", s.Reason)
		}
		idx = append(idx, s.Index)
	}
	if diff := cmp.Diff([]int{0, 1}, idx); diff != "" {
		t.Errorf("skipped elements mismatch (-want +got):\n%s", diff)
	}
	var names []string
	for _, cmd := range job.Commands {
		if cmd.Name == command.DrawBitmap || cmd.Name == command.DrawBlock {
			names = append(names, cmd.Name)
		}
	}
	if diff := cmp.Diff([]string{command.DrawBitmap, command.DrawBlock}, names); diff != "" {
		t.Errorf("element commands mismatch (-want +got):\n%s", diff)
	}
}
