package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/blockproxy/internal/metrics"
)

// Route labels for requests that matched no registered route.
const (
	routeAPINotFound = "/api/*"
	routeAsset       = "asset"
)

// Metrics records request counts and latency. Unmatched paths are folded into
// two labels so asset names never become label values.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				route = routeAPINotFound
			} else {
				route = routeAsset
			}
		}

		m.Requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
