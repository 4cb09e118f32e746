// Package command holds the device command list of a print job and its
// wire encodings.
package command

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/labelpress/labelpress/backend/bag"
)

// Command names understood by the print bridge.
const (
	ClearBuffer    = "clearBuffer"
	SetWidth       = "setWidth"
	SetLength      = "setLength"
	SetOrientation = "setOrientation"
	SetSpeed       = "setSpeed"
	SetDensity     = "setDensity"
	SetMargin      = "setMargin"
	DrawDeviceFont = "drawDeviceFont"
	DrawTrueType   = "drawTrueTypeFont"
	DrawBitmap     = "drawBitmap"
	Draw1DBarcode  = "draw1DBarcode"
	DrawQRCode     = "drawQRCode"
	DrawBlock      = "drawBlock"
	PrintBuffer    = "printBuffer"
)

// Param is one argument of a command. The name is only used by the named
// encoding, the position is what counts for the device.
type Param struct {
	Name  string
	Value interface{}
}

// Arg is a shortcut for creating a Param.
func Arg(name string, value interface{}) Param {
	return Param{Name: name, Value: value}
}

// Command is a single device instruction.
type Command struct {
	Name   string
	Params []Param
}

// New creates a command with the given parameters.
func New(name string, params ...Param) Command {
	return Command{Name: name, Params: params}
}

// Values returns the parameter values in order.
func (c Command) Values() []interface{} {
	ret := make([]interface{}, len(c.Params))
	for i, p := range c.Params {
		ret[i] = p.Value
	}
	return ret
}

// Param returns the value of the parameter with the given name.
func (c Command) Param(name string) (interface{}, bool) {
	for _, p := range c.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteRune('(')
	for i, p := range c.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", p.Name, p.Value)
	}
	b.WriteRune(')')
	return b.String()
}

// Job is a complete command list with the id the bridge uses to detect
// duplicates.
type Job struct {
	ID       int
	Commands []Command
}

// Names returns the command names in order.
func (j *Job) Names() []string {
	ret := make([]string, len(j.Commands))
	for i, c := range j.Commands {
		ret[i] = c.Name
	}
	return ret
}

// An Encoding serializes the command list for one bridge protocol.
type Encoding interface {
	Name() string
	EncodeFunctions(cmds []Command) (json.RawMessage, error)
}

// The protocol variants.
const (
	ProtocolSDK   = "sdk"
	ProtocolLabel = "label"
)

// EncodingFor returns the encoding for a protocol name.
func EncodingFor(protocol string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(protocol)) {
	case "", ProtocolSDK, "named":
		return NamedEncoding{}, nil
	case ProtocolLabel, "positional":
		return PositionalEncoding{}, nil
	}
	return nil, bag.Invalidf("unknown printer protocol %q", protocol)
}

// NamedEncoding writes an array of {"name": ..., "params": {...}} objects.
// Parameter keys keep the command's order.
type NamedEncoding struct{}

// Name returns "sdk".
func (NamedEncoding) Name() string { return ProtocolSDK }

// EncodeFunctions implements Encoding.
func (NamedEncoding) EncodeFunctions(cmds []Command) (json.RawMessage, error) {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, c := range cmds {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`{"name":`)
		if err := writeJSON(&b, c.Name); err != nil {
			return nil, err
		}
		b.WriteString(`,"params":{`)
		for j, p := range c.Params {
			if j > 0 {
				b.WriteByte(',')
			}
			if err := writeJSON(&b, p.Name); err != nil {
				return nil, err
			}
			b.WriteByte(':')
			if err := writeJSON(&b, p.Value); err != nil {
				return nil, fmt.Errorf("%s.%s: %w", c.Name, p.Name, err)
			}
		}
		b.WriteString("}}")
	}
	b.WriteByte(']')
	return b.Bytes(), nil
}

// PositionalEncoding writes an object {"func0": {"clearBuffer": []}, ...}
// with the parameter values as arrays.
type PositionalEncoding struct{}

// Name returns "label".
func (PositionalEncoding) Name() string { return ProtocolLabel }

// EncodeFunctions implements Encoding.
func (PositionalEncoding) EncodeFunctions(cmds []Command) (json.RawMessage, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, c := range cmds {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `"func%d":{`, i)
		if err := writeJSON(&b, c.Name); err != nil {
			return nil, err
		}
		b.WriteByte(':')
		if err := writeJSON(&b, c.Values()); err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		b.WriteByte('}')
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func writeJSON(b *bytes.Buffer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b.Write(data)
	return nil
}

// Payload is the request body sent to the bridge.
type Payload struct {
	ID        int             `json:"id"`
	Functions json.RawMessage `json:"functions"`
	Printer   string          `json:"printer,omitempty"`
}

// Encode returns the request body for printer.
func (j *Job) Encode(enc Encoding, printer string) (*Payload, error) {
	fns, err := enc.EncodeFunctions(j.Commands)
	if err != nil {
		return nil, fmt.Errorf("encode job %d: %w", j.ID, err)
	}
	return &Payload{ID: j.ID, Functions: fns, Printer: printer}, nil
}
