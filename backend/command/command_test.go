package command

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labelpress/labelpress/backend/bag"
)

func sampleJob() *Job {
	return &Job{
		ID: 42,
		Commands: []Command{
			New(ClearBuffer),
			New(SetWidth, Arg("width", 464)),
			New(DrawBlock, Arg("x", 10), Arg("y", 20), Arg("width", 30), Arg("height", 40), Arg("lineWidth", 1), Arg("color", "#000000")),
			New(PrintBuffer),
		},
	}
}

func TestNamedEncoding(t *testing.T) {
	got, err := NamedEncoding{}.EncodeFunctions(sampleJob().Commands)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"name":"clearBuffer","params":{}},{"name":"setWidth","params":{"width":464}},` +
		`{"name":"drawBlock","params":{"x":10,"y":20,"width":30,"height":40,"lineWidth":1,"color":"#000000"}},` +
		`{"name":"printBuffer","params":{}}]`
	if string(got) != want {
		t.Errorf("EncodeFunctions() =\n%s\nwant\n%s", got, want)
	}
	if !json.Valid(got) {
		t.Errorf("EncodeFunctions() returns invalid JSON")
	}
}

func TestPositionalEncoding(t *testing.T) {
	got, err := PositionalEncoding{}.EncodeFunctions(sampleJob().Commands)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"func0":{"clearBuffer":[]},"func1":{"setWidth":[464]},` +
		`"func2":{"drawBlock":[10,20,30,40,1,"#000000"]},"func3":{"printBuffer":[]}}`
	if string(got) != want {
		t.Errorf("EncodeFunctions() =\n%s\nwant\n%s", got, want)
	}
}

func TestPositionalOrderBeyondTen(t *testing.T) {
	cmds := make([]Command, 12)
	for i := range cmds {
		cmds[i] = New(SetSpeed, Arg("speed", i))
	}
	got, err := PositionalEncoding{}.EncodeFunctions(cmds)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]map[string][]int
	if err := json.Unmarshal(got, &m); err != nil {
		t.Fatal(err)
	}
	if m["func11"]["setSpeed"][0] != 11 {
		t.Errorf("func11 = %v, want speed 11", m["func11"])
	}
}

func TestEncodeJob(t *testing.T) {
	p, err := sampleJob().Encode(NamedEncoding{}, "Printer1")
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		ID        int               `json:"id"`
		Printer   string            `json:"printer"`
		Functions []json.RawMessage `json:"functions"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != 42 || got.Printer != "Printer1" || len(got.Functions) != 4 {
		t.Errorf("payload = %s", data)
	}
}

func TestEncodeError(t *testing.T) {
	cmds := []Command{New(DrawBitmap, Arg("data", make(chan int)))}
	for _, enc := range []Encoding{NamedEncoding{}, PositionalEncoding{}} {
		if _, err := enc.EncodeFunctions(cmds); err == nil {
			t.Errorf("%s: EncodeFunctions() with a channel succeeded", enc.Name())
		}
	}
}

func TestEncodingFor(t *testing.T) {
	testdata := []struct {
		protocol string
		want     string
	}{
		{"", ProtocolSDK},
		{"sdk", ProtocolSDK},
		{"LABEL", ProtocolLabel},
		{"positional", ProtocolLabel},
	}
	for _, tc := range testdata {
		enc, err := EncodingFor(tc.protocol)
		if err != nil {
			t.Fatal(err)
		}
		if enc.Name() != tc.want {
			t.Errorf("EncodingFor(%q) = %s, want %s", tc.protocol, enc.Name(), tc.want)
		}
	}
	if _, err := EncodingFor("zpl"); !errors.Is(err, bag.ErrInvalidInput) {
		t.Errorf("EncodingFor(zpl) err = %v, want ErrInvalidInput", err)
	}
}

func TestCommandAccessors(t *testing.T) {
	c := New(SetMargin, Arg("h", 10), Arg("v", 12))
	if diff := cmp.Diff([]interface{}{10, 12}, c.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
	if v, ok := c.Param("v"); !ok || v != 12 {
		t.Errorf("Param(v) = %v, %t, want 12", v, ok)
	}
	if _, ok := c.Param("x"); ok {
		t.Errorf("Param(x) found a value")
	}
	if got, want := c.String(), "setMargin(h=10, v=12)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{"clearBuffer", "setWidth", "drawBlock", "printBuffer"}, sampleJob().Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
