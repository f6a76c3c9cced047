package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/blockproxy/internal/api/models"
	"github.com/jroosing/blockproxy/internal/blocking"
)

// GetBlocking godoc
// @Summary Get blocking state
// @Description Returns whether the proxy currently blocks content
// @Tags blocking
// @Produce json
// @Success 200 {object} blocking.Status
// @Router /blocking [get]
func (h *Handler) GetBlocking(c *gin.Context) {
	enabled := h.store.Enabled()
	h.metrics.ObserveBlocking(enabled)

	c.JSON(http.StatusOK, blocking.Status{State: blocking.StateOf(enabled)})
}

// SetBlocking godoc
// @Summary Set blocking state
// @Description Enables or disables content blocking. The state must be exactly "Enabled" or "Disabled".
// @Tags blocking
// @Accept json
// @Produce json
// @Param state body blocking.Status true "Target state"
// @Success 200 {object} blocking.Status
// @Failure 400 {object} models.EmptyResponse
// @Router /blocking [post]
func (h *Handler) SetBlocking(c *gin.Context) {
	var state blocking.State
	raw, err := c.GetRawData()
	if err == nil {
		state, err = models.ParseBlockingRequest(raw)
	}
	if err != nil {
		if h.logger != nil {
			h.logger.Debug("rejected blocking update", "err", err)
		}
		c.JSON(http.StatusBadRequest, models.EmptyResponse{})
		return
	}

	h.store.SetEnabled(state.Enabled())

	if h.metrics != nil {
		h.metrics.BlockingChanges.WithLabelValues(state.String()).Inc()
		h.metrics.ObserveBlocking(state.Enabled())
	}
	if h.logger != nil {
		h.logger.Info("blocking state changed", "state", state.String())
	}

	c.JSON(http.StatusOK, blocking.Status{State: state})
}
