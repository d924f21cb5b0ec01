//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"tickettock/internal/handler/httperr"
	"tickettock/internal/handler/middleware"
	"tickettock/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, cfg config.LogConfig) (*gin.Engine, *middleware.Logger) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := middleware.NewLogger(cfg)
	t.Cleanup(func() { _ = logger.Close() })

	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	return engine, logger
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	engine, _ := newEngine(t, config.NewTestConfig().Log)

	var seen string
	engine.GET("/ping", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
		c.Writer.WriteHeaderNow()
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(middleware.HeaderRequestID))
}

func TestLoggingMiddleware_RotatingFile(t *testing.T) {
	cfg := config.NewTestConfig().Log
	cfg.Level = "info"
	cfg.File = filepath.Join(t.TempDir(), "api.log")
	cfg.FileMaxSizeMB = 1
	cfg.FileMaxBackups = 1
	engine, _ := newEngine(t, cfg)

	engine.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-User-Id", "user-42")
	engine.ServeHTTP(httptest.NewRecorder(), req)

	content, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Request completed")
	assert.Contains(t, string(content), "user-42")
}

func TestErrorHandler(t *testing.T) {
	engine, _ := newEngine(t, config.NewTestConfig().Log)

	engine.GET("/public", func(c *gin.Context) {
		_ = c.Error(gin.Error{
			Err:  errors.New("boom"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(http.StatusConflict, "Seat already reserved", nil),
		})
	})
	engine.GET("/silent", func(_ *gin.Context) {})
	engine.GET("/panic", func(_ *gin.Context) { panic("kaboom") })

	testCases := []struct {
		path       string
		expectCode int
		expectBody string
	}{
		{path: "/public", expectCode: http.StatusConflict, expectBody: "Seat already reserved"},
		{path: "/silent", expectCode: http.StatusInternalServerError, expectBody: "Internal server error"},
		{path: "/panic", expectCode: http.StatusInternalServerError, expectBody: "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.expectCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.expectBody)
		})
	}
}

func TestCORSMiddleware_ExposesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CORSConfig{
		AllowOrigins:  []string{"http://localhost:3000"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Content-Type", "X-User-Id"},
		ExposeHeaders: []string{"Content-Length"},
	}

	engine := gin.New()
	engine.Use(middleware.NewCORSMiddleware(cfg))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), middleware.HeaderRequestID)
	assert.Equal(t, []string{"Content-Length"}, cfg.ExposeHeaders)
}
