package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// NewHealthHandler reports "ok" while check returns nil and "unhealthy" with
// 503 otherwise. A nil check always reports healthy.
func NewHealthHandler(check func() error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(); err != nil {
				c.JSON(http.StatusServiceUnavailable, HealthResponse{
					Status: "unhealthy",
					Error:  err.Error(),
				})
				return
			}
		}

		c.JSON(http.StatusOK, HealthResponse{
			Status: "ok",
		})
	}
}
