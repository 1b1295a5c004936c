package handlers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/hello-service/internal/middleware"
)

// StaticPageHandler serves an HTML file from disk
type StaticPageHandler struct {
	path string
}

// NewStaticPageHandler creates a handler serving the file at path
func NewStaticPageHandler(path string) *StaticPageHandler {
	return &StaticPageHandler{path: path}
}

// Handle reads the file on every request
func (h *StaticPageHandler) Handle(c *gin.Context) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		log.Printf("[%s] failed to read %s: %v", c.GetString(middleware.RequestIDKey), h.path, err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	c.Data(http.StatusOK, htmlContentType, data)
}
