// Package handlers contains HTTP request handlers for the hello service.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/hello-service/internal/middleware"
)

const htmlContentType = "text/html; charset=utf-8"

// PageRenderer renders the greeting page for a name
type PageRenderer interface {
	Render(name string) (string, error)
}

// GreetingHandler serves the name-templated greeting page
type GreetingHandler struct {
	renderer PageRenderer
}

// NewGreetingHandler creates a new greeting handler
func NewGreetingHandler(renderer PageRenderer) *GreetingHandler {
	return &GreetingHandler{renderer: renderer}
}

// Handle renders the page for the :name path parameter
func (h *GreetingHandler) Handle(c *gin.Context) {
	name := c.Param("name")

	html, err := h.renderer.Render(name)
	if err != nil {
		log.Printf("[%s] failed to render greeting page: %v", c.GetString(middleware.RequestIDKey), err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	c.Data(http.StatusOK, htmlContentType, []byte(html))
}
