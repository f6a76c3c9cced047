// Package handlers implements the admin gateway's JSON API.
//
// Endpoints:
//
//   - GET  /api/statistics - statistics snapshot of the proxy
//   - GET  /api/blocking   - current blocking state
//   - POST /api/blocking   - set the blocking state
//
// Any other /api/ route answers 404 with {"status":404,"message":"Not Found"}.
//
// @title blockproxy admin API
// @version 1.0
// @description Statistics and blocking control for the blockproxy dashboard.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @BasePath /api
package handlers

import (
	"log/slog"

	"github.com/jroosing/blockproxy/internal/blocking"
	"github.com/jroosing/blockproxy/internal/metrics"
	"github.com/jroosing/blockproxy/internal/statistics"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	stats   statistics.Source
	store   blocking.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a Handler reading statistics from stats and the blocking flag from store.
func New(stats statistics.Source, store blocking.Store, logger *slog.Logger) *Handler {
	return &Handler{
		stats:  stats,
		store:  store,
		logger: logger,
	}
}

// SetMetrics attaches collectors updated on blocking reads and writes.
func (h *Handler) SetMetrics(m *metrics.Metrics) {
	h.metrics = m
}
