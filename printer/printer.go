// Package printer sends compiled jobs to the Web Print SDK bridge of a label
// printer.
package printer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labelpress/labelpress/backend/bag"
	"github.com/labelpress/labelpress/backend/command"
	"github.com/labelpress/labelpress/frontend"
)

// Model is reported by Info.
const Model = "Bixolon XD3-40d"

const (
	// DefaultTimeout limits a job submission.
	DefaultTimeout = 3 * time.Second
	// DefaultStatusTimeout limits the liveness check.
	DefaultStatusTimeout = 5 * time.Second
	// maxBody is the number of response bytes kept from the bridge.
	maxBody = 64 << 10
)

// Dispatcher talks to one printer behind one bridge. The command encoding is
// fixed per dispatcher.
type Dispatcher struct {
	Host          string
	Port          int
	Printer       string
	Timeout       time.Duration
	StatusTimeout time.Duration
	Encoding      command.Encoding
	Sequence      Sequence
	Client        *http.Client
	// Converter is only used for Info.
	Converter *frontend.Converter
}

// New returns a dispatcher for the printer name at host:port that encodes
// jobs for the given protocol.
func New(host string, port int, name string, protocol string) (*Dispatcher, error) {
	enc, err := command.EncodingFor(protocol)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{
		Host:          host,
		Port:          port,
		Printer:       name,
		Timeout:       DefaultTimeout,
		StatusTimeout: DefaultStatusTimeout,
		Encoding:      enc,
		Sequence:      NewTimeSequence(time.Now()),
		Client:        &http.Client{},
	}, nil
}

// ServerURL is the base URL of the bridge.
func (d *Dispatcher) ServerURL() string {
	return "http://" + d.Host + ":" + strconv.Itoa(d.Port) + "/WebPrintSDK"
}

func (d *Dispatcher) printerURL() string {
	return d.ServerURL() + "/" + d.Printer
}

func (d *Dispatcher) client() *http.Client {
	if d.Client == nil {
		return http.DefaultClient
	}
	return d.Client
}

// Result is the outcome of a successful submission.
type Result struct {
	Success   bool            `json:"success"`
	RequestID int             `json:"requestId"`
	Response  json.RawMessage `json:"response"`
	Timestamp time.Time       `json:"timestamp"`
}

type statusResponse struct {
	Result bool `json:"Result"`
}

// CheckConnection asks the bridge whether the printer is ready. Every
// failure counts as not connected.
func (d *Dispatcher) CheckConnection(ctx context.Context) bool {
	timeout := d.StatusTimeout
	if timeout <= 0 {
		timeout = DefaultStatusTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.printerURL()+"/checkStatus", nil)
	if err != nil {
		bag.Logger.Errorf("Status request: %s", err)
		return false
	}
	resp, err := d.client().Do(req)
	if err != nil {
		bag.Logger.Warnf("Bridge at %s:%d unreachable: %s", d.Host, d.Port, err)
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bag.Logger.Warnf("Status check returned %d", resp.StatusCode)
		return false
	}
	var sr statusResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&sr); err != nil {
		bag.Logger.Warnf("Cannot read status response: %s", err)
		return false
	}
	bag.Logger.Debugf("Printer %s ready: %t", d.Printer, sr.Result)
	return sr.Result
}

// Dispatch assigns the next id to job and submits it in one request. The
// printer is checked first; an unreachable bridge or a transport failure
// returns ErrConnectivity, a non 2xx answer a *bag.ProtocolError. Nothing is
// retried.
func (d *Dispatcher) Dispatch(ctx context.Context, job *command.Job) (*Result, error) {
	if !d.CheckConnection(ctx) {
		return nil, fmt.Errorf("%w: %s:%d (%s)", bag.ErrConnectivity, d.Host, d.Port, d.Printer)
	}
	if d.Sequence != nil {
		job.ID = d.Sequence.Next()
	}
	enc := d.Encoding
	if enc == nil {
		enc = command.NamedEncoding{}
	}
	payload, err := job.Encode(enc, d.Printer)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal job %d: %w", job.ID, err)
	}

	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.printerURL(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	bag.Logger.Infof("Send job %d (%d commands, %s encoding) to %s", job.ID, len(job.Commands), enc.Name(), d.printerURL())
	resp, err := d.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: job %d: %s", bag.ErrConnectivity, job.ID, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("%w: job %d: read response: %s", bag.ErrConnectivity, job.ID, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bag.Logger.Errorf("Job %d rejected with status %d: %s", job.ID, resp.StatusCode, raw)
		return nil, &bag.ProtocolError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return &Result{
		Success:   true,
		RequestID: job.ID,
		Response:  responseJSON(raw),
		Timestamp: time.Now().UTC(),
	}, nil
}

// responseJSON keeps a JSON answer as is and quotes anything else.
func responseJSON(raw []byte) json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	if json.Valid(raw) {
		return json.RawMessage(raw)
	}
	quoted, _ := json.Marshal(string(raw))
	return quoted
}

// Info describes the configured printer.
type Info struct {
	Model           string                 `json:"model"`
	DPI             int                    `json:"dpi"`
	Host            string                 `json:"host"`
	Port            int                    `json:"port"`
	PrinterName     string                 `json:"printerName"`
	Protocol        string                 `json:"protocol"`
	PixelsPerDot    string                 `json:"pixelsPerDot"`
	DefaultSettings frontend.PrintSettings `json:"defaultSettings"`
	ServerURL       string                 `json:"serverURL"`
}

// Info returns the printer description shown by the editor.
func (d *Dispatcher) Info() Info {
	c := d.Converter
	if c == nil {
		c = frontend.NewConverter(nil)
	}
	protocol := command.ProtocolSDK
	if d.Encoding != nil {
		protocol = d.Encoding.Name()
	}
	return Info{
		Model:           Model,
		DPI:             c.DPI,
		Host:            d.Host,
		Port:            d.Port,
		PrinterName:     d.Printer,
		Protocol:        protocol,
		PixelsPerDot:    strconv.FormatFloat(c.ScaleX, 'f', 2, 64),
		DefaultSettings: c.Settings,
		ServerURL:       d.ServerURL(),
	}
}
