package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	// Set Gin to test mode
	gin.SetMode(gin.TestMode)
}

func TestHelloHandler(t *testing.T) {
	router := gin.New()
	router.GET("/", HelloHandler)

	req, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	if w.Body.String() != "hello" {
		t.Errorf("Expected body %q, got %q", "hello", w.Body.String())
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("Expected Content-Type %q, got %q", "text/plain; charset=utf-8", ct)
	}
}

func TestNotFoundHandler(t *testing.T) {
	router := gin.New()
	router.NoRoute(NotFoundHandler)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/does/not/exist", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
			}
			if w.Body.String() != "Not Found" {
				t.Errorf("Expected body %q, got %q", "Not Found", w.Body.String())
			}
		})
	}
}
