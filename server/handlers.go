package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/labelpress/labelpress/backend/bag"
	"github.com/labelpress/labelpress/backend/command"
	"github.com/labelpress/labelpress/backend/linebreak"
	"github.com/labelpress/labelpress/barcode"
	"github.com/labelpress/labelpress/frontend"
)

type saveRequest struct {
	Name       string          `json:"name"`
	LayoutData json.RawMessage `json:"layoutData"`
}

func (s *Server) saveLayout(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, fmt.Errorf("%w: %s", bag.ErrInvalidInput, err))
		return
	}
	if req.Name == "" || len(req.LayoutData) == 0 || string(req.LayoutData) == "null" {
		fail(c, bag.Invalidf("name and layoutData are required"))
		return
	}
	filename, err := s.Store.Save(req.Name, req.LayoutData)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "layout saved", "filename": filename})
}

func (s *Server) listLayouts(c *gin.Context) {
	entries, err := s.Store.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) getLayout(c *gin.Context) {
	data, err := s.Store.Load(c.Param("filename"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (s *Server) deleteLayout(c *gin.Context) {
	if err := s.Store.Delete(c.Param("filename")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "layout deleted"})
}

func (s *Server) printerInfo(c *gin.Context) {
	c.JSON(http.StatusOK, s.Dispatcher.Info())
}

func (s *Server) printerConnection(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"connected": s.Dispatcher.CheckConnection(c.Request.Context())})
}

// printRequest either names a stored template with placeholder values or
// carries the layout itself.
type printRequest struct {
	Template      string                 `json:"template"`
	Data          map[string]interface{} `json:"data"`
	LayoutData    json.RawMessage        `json:"layoutData"`
	PrintSettings json.RawMessage        `json:"printSettings"`
}

func placeholderValues(data map[string]interface{}) map[string]string {
	values := make(map[string]string, len(data))
	for k, v := range data {
		switch t := v.(type) {
		case nil:
			values[k] = ""
		case string:
			values[k] = t
		case float64:
			values[k] = strconv.FormatFloat(t, 'f', -1, 64)
		default:
			values[k] = fmt.Sprint(t)
		}
	}
	return values
}

func (s *Server) document(req *printRequest) (*frontend.Document, error) {
	if req.Template != "" && req.Data != nil {
		data, err := s.Store.Load(req.Template)
		if err != nil {
			return nil, err
		}
		doc, err := frontend.ParseDocument(data)
		if err != nil {
			return nil, err
		}
		return frontend.ReplacePlaceholders(doc, placeholderValues(req.Data)), nil
	}
	if len(req.LayoutData) > 0 && string(req.LayoutData) != "null" {
		return frontend.ParseDocument(req.LayoutData)
	}
	return nil, bag.Invalidf("either template and data or layoutData are required")
}

// compileRequest turns a print request into a job.
func (s *Server) compileRequest(ctx context.Context, req *printRequest) (*command.Job, []frontend.Skip, error) {
	doc, err := s.document(req)
	if err != nil {
		return nil, nil, err
	}
	settings, err := s.Converter.Settings.Merge(req.PrintSettings)
	if err != nil {
		return nil, nil, err
	}
	return s.Converter.Compile(ctx, doc, settings)
}

func (s *Server) print(c *gin.Context) {
	var req printRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, fmt.Errorf("%w: %s", bag.ErrInvalidInput, err))
		return
	}
	job, skips, err := s.compileRequest(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	res, err := s.Dispatcher.Dispatch(c.Request.Context(), job)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "label sent to the printer", "result": res, "skipped": skips})
}

func (s *Server) compile(c *gin.Context) {
	var req printRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, fmt.Errorf("%w: %s", bag.ErrInvalidInput, err))
		return
	}
	job, skips, err := s.compileRequest(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	payload, err := job.Encode(s.Dispatcher.Encoding, s.Dispatcher.Printer)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": payload, "commands": job.Names(), "skipped": skips})
}

type textLayoutRequest struct {
	Text       string  `json:"text"`
	FontSize   float64 `json:"fontSize"`
	FontFamily string  `json:"fontFamily"`
	Bold       bool    `json:"bold"`
	Italic     bool    `json:"italic"`
	Align      string  `json:"align"`
	BlockWidth float64 `json:"blockWidth"`
	Hyphenate  *bool   `json:"hyphenate"`
	Language   string  `json:"language"`
}

func (s *Server) textLayout(c *gin.Context) {
	var req textLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, fmt.Errorf("%w: %s", bag.ErrInvalidInput, err))
		return
	}
	hyphenate := s.Converter.Hyphenate
	if req.Hyphenate != nil {
		hyphenate = *req.Hyphenate
	}
	if s.Converter.Breaker == nil {
		fail(c, fmt.Errorf("no line breaker configured"))
		return
	}
	res, err := s.Converter.Breaker.Layout(c.Request.Context(), linebreak.Request{
		Text:       req.Text,
		FontSize:   req.FontSize,
		FontFamily: req.FontFamily,
		Bold:       req.Bold,
		Italic:     req.Italic,
		Align:      linebreak.ParseAlignment(req.Align),
		BlockWidth: req.BlockWidth,
		Hyphenate:  hyphenate,
		Language:   req.Language,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) barcode(c *gin.Context) {
	atoi := func(name string) (int, error) {
		v := c.Query(name)
		if v == "" {
			return 0, nil
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, bag.Invalidf("%s: %q is not a number", name, v)
		}
		return i, nil
	}
	height, err := atoi("height")
	if err != nil {
		fail(c, err)
		return
	}
	width, err := atoi("width")
	if err != nil {
		fail(c, err)
		return
	}
	include := strings.ToLower(c.Query("includetext"))
	png, err := barcode.Render(barcode.Request{
		BCID:        c.Query("bcid"),
		Text:        c.Query("text"),
		IncludeText: include == "true" || include == "1" || (include == "" && c.Request.URL.Query().Has("includetext")),
		Height:      height,
		Width:       width,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
