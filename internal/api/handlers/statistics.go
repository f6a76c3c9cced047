package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Statistics godoc
// @Summary Proxy statistics
// @Description Returns a point-in-time snapshot of proxied, blocked and modified counters and the top blocked paths and clients
// @Tags statistics
// @Produce json
// @Success 200 {object} statistics.Snapshot
// @Router /statistics [get]
func (h *Handler) Statistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.stats.Snapshot())
}
