// Package middleware_test provides behavior tests for the gateway middleware package.
package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jroosing/blockproxy/internal/api/middleware"
	"github.com/jroosing/blockproxy/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ============================================================================
// SlogRequestLogger Middleware Tests
// ============================================================================

func TestSlogRequestLogger_NilLogger(t *testing.T) {
	router := gin.New()
	router.Use(middleware.SlogRequestLogger(nil))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSlogRequestLogger_LogsBeforeDispatch(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var loggedBeforeHandler bool
	router := gin.New()
	router.Use(middleware.SlogRequestLogger(logger))
	router.POST("/api/blocking", func(c *gin.Context) {
		loggedBeforeHandler = strings.Contains(buf.String(), "admin request")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/blocking?x=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.True(t, loggedBeforeHandler)
	out := buf.String()
	assert.Contains(t, out, "proto=HTTP/1.1")
	assert.Contains(t, out, "method=POST")
	assert.Contains(t, out, `uri="/api/blocking?x=1"`)
	assert.NotContains(t, out, "admin response", "completion is logged at debug level")
}

func TestSlogRequestLogger_DebugCompletion(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	router := gin.New()
	router.Use(middleware.SlogRequestLogger(logger))
	router.GET("/error", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something failed"})
	})

	req := httptest.NewRequest(http.MethodGet, "/error", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "admin response")
	assert.Contains(t, buf.String(), "status=500")
}

// ============================================================================
// RequestID Middleware Tests
// ============================================================================

func TestRequestID_Generated(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())

	var seen string
	router.GET("/test", func(c *gin.Context) {
		seen = c.GetString(middleware.RequestIDKey)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	got := w.Header().Get(middleware.RequestIDHeader)
	require.NotEmpty(t, got)
	assert.Equal(t, got, seen)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestRequestID_Propagated(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestRequestID_OversizedReplaced(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	long := strings.Repeat("x", 500)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, long)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEqual(t, long, w.Header().Get(middleware.RequestIDHeader))
}

// ============================================================================
// Metrics Middleware Tests
// ============================================================================

func TestMetrics_Routes(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	router := gin.New()
	router.Use(middleware.Metrics(m))
	router.GET("/api/blocking", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.NoRoute(func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, path := range []string{"/api/blocking", "/api/nope", "/app.js", "/img/logo.png"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("/api/blocking", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("/api/*", "GET", "404")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("asset", "GET", "404")))
}

func TestMetrics_Nil(t *testing.T) {
	router := gin.New()
	router.Use(middleware.Metrics(nil))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
