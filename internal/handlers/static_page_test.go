package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticPageHandler(t *testing.T) {
	const page = "<!DOCTYPE html>\n<html><body><h1>Hello</h1></body></html>\n"

	path := filepath.Join(t.TempDir(), "hello.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0o600))

	router := gin.New()
	router.GET("/hello", NewStaticPageHandler(path).Handle)

	t.Run("serves file contents", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/hello", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, page, w.Body.String())
	})

	t.Run("picks up edits without restart", func(t *testing.T) {
		const updated = "<p>updated</p>\n"
		require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))

		req := httptest.NewRequest(http.MethodGet, "/hello", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, updated, w.Body.String())
	})
}

func TestStaticPageHandler_MissingFile(t *testing.T) {
	router := gin.New()
	router.GET("/hello", NewStaticPageHandler(filepath.Join(t.TempDir(), "missing.html")).Handle)

	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", w.Body.String())
	assert.NotContains(t, w.Body.String(), "missing.html")
}
