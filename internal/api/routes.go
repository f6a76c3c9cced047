package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/blockproxy/internal/api/handlers"
)

// APIPrefix marks requests answered by the JSON API instead of the asset root.
const APIPrefix = "/api/"

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, assets *Assets) {
	api := r.Group("/api")

	api.GET("/statistics", h.Statistics)
	api.GET("/blocking", h.GetBlocking)
	api.POST("/blocking", h.SetBlocking)

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, APIPrefix) {
			h.NotFound(c)
			return
		}
		assets.Serve(c)
	})
}
