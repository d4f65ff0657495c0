package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency labelled by the matched route
// template, so path parameters such as reference codes never become labels.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
