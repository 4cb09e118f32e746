package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"github.com/labelpress/labelpress/backend/lang"
	"github.com/labelpress/labelpress/backend/linebreak"
	"github.com/labelpress/labelpress/frontend"
	"github.com/labelpress/labelpress/printer"
	"github.com/labelpress/labelpress/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeBridge struct {
	mu     sync.Mutex
	status int
	bodies []string
}

func (b *fakeBridge) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if r.Method == http.MethodGet {
		io.WriteString(w, `{"Result":true}`)
		return
	}
	data, _ := io.ReadAll(r.Body)
	b.bodies = append(b.bodies, string(data))
	w.WriteHeader(b.status)
	io.WriteString(w, `{"Result":"ok"}`)
}

func newTestServer(t *testing.T) (*Server, *fakeBridge) {
	t.Helper()
	bridge := &fakeBridge{status: http.StatusOK}
	srv := httptest.NewServer(bridge)
	t.Cleanup(srv.Close)
	u, _ := url.Parse(srv.URL)
	host, portStr, _ := net.SplitHostPort(u.Host)
	port, _ := strconv.Atoi(portStr)
	d, err := printer.New(host, port, "Printer1", "sdk")
	if err != nil {
		t.Fatal(err)
	}
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	conv := frontend.NewConverter(linebreak.New(nil, lang.NewLanguages("")))
	d.Converter = conv
	return &Server{Store: store, Converter: conv, Dispatcher: d, CORSOrigin: "*"}, bridge
}

func do(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

var honey = map[string]interface{}{
	"widthMM":  58,
	"heightMM": 40,
	"objects": []interface{}{
		map[string]interface{}{"type": "textbox", "text": "Мёд {{sort}}", "left": 10, "top": 10, "fontSize": 16},
	},
}

func TestLayoutRoutes(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Router()

	w := do(t, h, http.MethodPost, "/api/layouts/save", map[string]interface{}{"name": "honey", "layoutData": honey})
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d, body %s", w.Code, w.Body)
	}
	if !strings.Contains(w.Body.String(), `"filename":"honey.json"`) {
		t.Errorf("save body = %s", w.Body)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Errorf("response without request id")
	}

	w = do(t, h, http.MethodGet, "/api/layouts", nil)
	var entries []storage.Entry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name != "honey" {
		t.Errorf("list = %s", w.Body)
	}

	w = do(t, h, http.MethodGet, "/api/layouts/honey.json", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Мёд {{sort}}") {
		t.Errorf("get = %d %s", w.Code, w.Body)
	}

	w = do(t, h, http.MethodDelete, "/api/layouts/honey.json", nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete status = %d", w.Code)
	}
	w = do(t, h, http.MethodGet, "/api/layouts/honey.json", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", w.Code)
	}
}

func TestSaveRejected(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Router()
	testdata := []map[string]interface{}{
		{"name": "../evil", "layoutData": honey},
		{"name": "honey"},
		{"layoutData": honey},
		{"name": "honey", "layoutData": "text"},
	}
	for _, body := range testdata {
		if w := do(t, h, http.MethodPost, "/api/layouts/save", body); w.Code != http.StatusBadRequest {
			t.Errorf("save %v status = %d, want 400", body, w.Code)
		}
	}
	entries, err := s.Store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("rejected saves stored %d layouts", len(entries))
	}
}

func TestPrintTemplate(t *testing.T) {
	s, bridge := newTestServer(t)
	h := s.Router()
	if w := do(t, h, http.MethodPost, "/api/layouts/save", map[string]interface{}{"name": "honey", "layoutData": honey}); w.Code != http.StatusOK {
		t.Fatalf("save status = %d", w.Code)
	}
	w := do(t, h, http.MethodPost, "/api/print", map[string]interface{}{
		"template":      "honey",
		"data":          map[string]interface{}{"sort": "Липовый"},
		"printSettings": map[string]interface{}{"density": 15},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("print status = %d, body %s", w.Code, w.Body)
	}
	var resp struct {
		Result printer.Result `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Result.Success || resp.Result.RequestID == 0 {
		t.Errorf("result = %+v", resp.Result)
	}
	if len(bridge.bodies) != 1 {
		t.Fatalf("bridge received %d jobs", len(bridge.bodies))
	}
	sent := bridge.bodies[0]
	for _, want := range []string{"Мёд Липовый", `"density":15`, `"printer":"Printer1"`} {
		if !strings.Contains(sent, want) {
			t.Errorf("job does not contain %s: %s", want, sent)
		}
	}
}

func TestPrintErrors(t *testing.T) {
	s, bridge := newTestServer(t)
	h := s.Router()
	testdata := []struct {
		body map[string]interface{}
		want int
	}{
		{map[string]interface{}{"template": "missing", "data": map[string]interface{}{}}, http.StatusNotFound},
		{map[string]interface{}{}, http.StatusBadRequest},
		{map[string]interface{}{"layoutData": map[string]interface{}{"objects": []interface{}{}}}, http.StatusBadRequest},
	}
	for _, td := range testdata {
		if w := do(t, h, http.MethodPost, "/api/print", td.body); w.Code != td.want {
			t.Errorf("print %v status = %d, want %d", td.body, w.Code, td.want)
		}
	}

	bridge.status = http.StatusInternalServerError
	w := do(t, h, http.MethodPost, "/api/print", map[string]interface{}{"layoutData": honey})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("print to failing bridge status = %d, want 502", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":500`) {
		t.Errorf("upstream status missing: %s", w.Body)
	}
}

func TestCompile(t *testing.T) {
	s, bridge := newTestServer(t)
	w := do(t, s.Router(), http.MethodPost, "/api/compile", map[string]interface{}{"layoutData": honey})
	if w.Code != http.StatusOK {
		t.Fatalf("compile status = %d, body %s", w.Code, w.Body)
	}
	var resp struct {
		Commands []string `json:"commands"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	want := []string{"clearBuffer", "setWidth", "setLength", "setOrientation", "setSpeed", "setDensity", "setMargin", "drawDeviceFont", "printBuffer"}
	if diff := cmp.Diff(want, resp.Commands); diff != "" {
		t.Errorf("compile mismatch (-want +got):\n%s", diff)
	}
	if len(bridge.bodies) != 0 {
		t.Errorf("compile sent a job to the printer")
	}
}

func TestPrinterRoutes(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Router()
	w := do(t, h, http.MethodGet, "/api/printer-connection", nil)
	if w.Body.String() != `{"connected":true}` {
		t.Errorf("connection = %s", w.Body)
	}
	w = do(t, h, http.MethodGet, "/api/printer-info", nil)
	var info printer.Info
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatal(err)
	}
	if info.Model != printer.Model || info.PrinterName != "Printer1" || info.DefaultSettings.Density != 12 {
		t.Errorf("info = %+v", info)
	}
}

func TestTextLayout(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Router()
	w := do(t, h, http.MethodPost, "/api/text-layout", map[string]interface{}{
		"text": "Пример длинного текста для тестирования", "fontSize": 12, "blockWidth": 100,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("text-layout status = %d, body %s", w.Code, w.Body)
	}
	var res linebreak.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if len(res.Lines) < 2 || !res.Fallback {
		t.Errorf("text-layout = %+v", res)
	}
	w = do(t, h, http.MethodPost, "/api/text-layout", map[string]interface{}{"text": "x", "fontSize": 0, "blockWidth": 100})
	if w.Code != http.StatusBadRequest {
		t.Errorf("text-layout without font size status = %d, want 400", w.Code)
	}
}

func TestBarcode(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Router()
	w := do(t, h, http.MethodGet, "/api/barcode?bcid=ean13&text=123456789012&includetext", nil)
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/png" {
		t.Errorf("barcode = %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	w = do(t, h, http.MethodGet, "/api/barcode?bcid=ean13&text=1234567890123", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("barcode with wrong check digit status = %d, want 400", w.Code)
	}
	for _, q := range []string{"width=1099511627776", "width=-3", "height=100000"} {
		w = do(t, h, http.MethodGet, "/api/barcode?bcid=qrcode&text=A&"+q, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("barcode with %s status = %d, want 400", q, w.Code)
		}
	}
}

func TestCORS(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/print", nil)
	req.Header.Set("Origin", "http://editor.local")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://editor.local" {
		t.Errorf("allow origin = %q", got)
	}
}
