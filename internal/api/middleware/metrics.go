package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/formkit/internal/metrics"
)

// MetricsMiddleware records request count, latency and in-flight requests.
// Paths are labelled by route template so ids do not explode cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.IncInFlight()
		defer metrics.DecInFlight()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
