// Package server is the HTTP interface of the label editor: layout storage,
// previews and printing.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/labelpress/labelpress/backend/bag"
	"github.com/labelpress/labelpress/frontend"
	"github.com/labelpress/labelpress/printer"
	"github.com/labelpress/labelpress/storage"
)

const requestIDKey = "requestID"

// Server bundles the services behind the routes.
type Server struct {
	Store      *storage.Store
	Converter  *frontend.Converter
	Dispatcher *printer.Dispatcher
	CORSOrigin string
}

// Router returns the gin engine with all routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(), cors(s.CORSOrigin))

	api := r.Group("/api")
	api.POST("/layouts/save", s.saveLayout)
	api.GET("/layouts", s.listLayouts)
	api.GET("/layouts/:filename", s.getLayout)
	api.DELETE("/layouts/:filename", s.deleteLayout)
	api.GET("/printer-info", s.printerInfo)
	api.GET("/printer-connection", s.printerConnection)
	api.POST("/print", s.print)
	api.POST("/compile", s.compile)
	api.POST("/text-layout", s.textLayout)
	api.GET("/barcode", s.barcode)
	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		bag.Logger.Infow("request",
			"id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

func cors(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		h := c.Writer.Header()
		allowed := origin
		if origin == "*" {
			if o := c.GetHeader("Origin"); o != "" {
				allowed = o
			}
		}
		h.Set("Access-Control-Allow-Origin", allowed)
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		h.Set("Access-Control-Expose-Headers", "X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// fail writes err with the status code of its class.
func fail(c *gin.Context, err error) {
	body := gin.H{"error": err.Error(), "requestId": c.GetString(requestIDKey)}
	status := http.StatusInternalServerError
	var pe *bag.ProtocolError
	switch {
	case errors.Is(err, bag.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.As(err, &pe):
		status = http.StatusBadGateway
		body["status"] = pe.StatusCode
		body["body"] = pe.Body
	case errors.Is(err, bag.ErrConnectivity):
		status = http.StatusBadGateway
	}
	if status >= 500 {
		bag.Logger.Errorf("%s %s: %s", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, body)
}
