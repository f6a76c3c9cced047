package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/blockproxy/internal/api/handlers"
	"github.com/jroosing/blockproxy/internal/statistics"
)

func setupTestRouter(h *handlers.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")
	api.GET("/statistics", h.Statistics)
	api.GET("/blocking", h.GetBlocking)
	api.POST("/blocking", h.SetBlocking)
	r.NoRoute(h.NotFound)

	return r
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// fixedSource returns the same snapshot on every call.
type fixedSource statistics.Snapshot

func (f fixedSource) Snapshot() statistics.Snapshot { return statistics.Snapshot(f) }
