// Package middleware provides Gin middleware shared by all routes.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewRateLimitMiddleware creates a per-IP rate limiting middleware allowing
// limit requests every period. Requests over the limit get 429.
func NewRateLimitMiddleware(limit int64, period time.Duration) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: period,
		Limit:  limit,
	}

	// Create in-memory store
	store := memory.NewStore()

	instance := limiter.New(store, rate)

	return mgin.NewMiddleware(instance)
}
