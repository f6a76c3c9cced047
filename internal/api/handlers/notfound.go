package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/blockproxy/internal/api/models"
)

// NotFound answers unknown /api/ routes.
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.NotFound)
}
