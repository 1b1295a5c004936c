// Package main is the entry point for the hello service HTTP server.
package main

import (
	"log"

	"github.com/sebasr/hello-service/internal/config"
	"github.com/sebasr/hello-service/internal/render"
	"github.com/sebasr/hello-service/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	renderer := render.Default()
	if err := renderer.Err(); err != nil {
		log.Fatalf("Greeting page template is defective: %v", err)
	}

	deps := &server.Dependencies{
		Config:   cfg,
		Renderer: renderer,
	}

	srv := server.New(deps)

	addr := cfg.Server.Address()
	log.Printf("Starting server on %s (static page: %s)", addr, cfg.Pages.HelloHTMLPath)
	if err := srv.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
