package middleware

import (
	"strconv"
	"time"

	"quote_relay/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

const metricsPath = "/metrics"

// Metrics records request count and latency per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == metricsPath {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		// Route template (/trackOpen/:quoteId) keeps label cardinality bounded.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.RequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
