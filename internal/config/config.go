// Package config provides configuration management for the hello service.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Pages     PagesConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host string
	Port string
}

// PagesConfig holds the locations of static pages
type PagesConfig struct {
	HelloHTMLPath string
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	Requests int64
	Period   time.Duration
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowOrigins []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("HOST", "127.0.0.1"),
			Port: getEnv("PORT", "8080"),
		},
		Pages: PagesConfig{
			HelloHTMLPath: getEnv("HELLO_HTML_PATH", "hello.html"),
		},
		RateLimit: RateLimitConfig{
			Requests: int64(getEnvAsInt("RATE_LIMIT_REQUESTS", 100)),
			Period:   getEnvAsDuration("RATE_LIMIT_PERIOD", "1m"),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvAsList("CORS_ALLOW_ORIGINS", "*"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be an integer between 1 and 65535, got %q", c.Server.Port)
	}
	if c.Pages.HelloHTMLPath == "" {
		return errors.New("HELLO_HTML_PATH must not be empty")
	}
	if c.RateLimit.Requests <= 0 {
		return errors.New("RATE_LIMIT_REQUESTS must be positive")
	}
	if c.RateLimit.Period <= 0 {
		return errors.New("RATE_LIMIT_PERIOD must be positive")
	}
	if len(c.CORS.AllowOrigins) == 0 {
		return errors.New("CORS_ALLOW_ORIGINS must list at least one origin")
	}
	return nil
}

// Address returns the host:port the server listens on
func (s *ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		defaultDuration, _ := time.ParseDuration(defaultValue)
		return defaultDuration
	}
	return value
}

// getEnvAsList splits a comma-separated environment variable, dropping blanks
func getEnvAsList(key, defaultValue string) []string {
	var values []string
	for _, v := range strings.Split(getEnv(key, defaultValue), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
