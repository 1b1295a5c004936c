// Package server provides HTTP server setup and configuration.
package server

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/sebasr/hello-service/internal/config"
	"github.com/sebasr/hello-service/internal/handlers"
	"github.com/sebasr/hello-service/internal/middleware"
)

const healthPath = "/health"

// Renderer renders the greeting page and reports template defects
type Renderer interface {
	handlers.PageRenderer
	Err() error
}

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config   *config.Config
	Renderer Renderer
}

// New creates a new Gin router with all routes configured
func New(deps *Dependencies) *gin.Engine {
	// Set Gin to release mode to disable ANSI colors in logs
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(gin.Recovery())

	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(p gin.LogFormatterParams) string {
			return fmt.Sprintf("%s %s %s %d %s %q\n",
				p.TimeStamp.UTC().Format(time.RFC3339),
				p.ClientIP,
				p.Method,
				p.StatusCode,
				p.Latency,
				p.Path,
			)
		},
		SkipPaths: []string{healthPath},
	}))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.RequestID())
	router.Use(middleware.NewRateLimitMiddleware(deps.Config.RateLimit.Requests, deps.Config.RateLimit.Period))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	staticPage := handlers.NewStaticPageHandler(deps.Config.Pages.HelloHTMLPath)
	greeting := handlers.NewGreetingHandler(deps.Renderer)

	router.GET(healthPath, handlers.NewHealthHandler(deps.Renderer.Err))
	router.GET("/", handlers.HelloHandler)
	router.GET("/hello", staticPage.Handle)
	router.GET("/hello/:name", greeting.Handle)

	router.NoRoute(handlers.NotFoundHandler)

	return router
}
