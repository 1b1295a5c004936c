package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotFoundHandler answers every unmatched route
func NotFoundHandler(c *gin.Context) {
	c.String(http.StatusNotFound, "Not Found")
}
