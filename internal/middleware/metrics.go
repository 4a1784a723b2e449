package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/gateadmin/internal/metrics"
)

// Metrics records request counts and latencies per matched route.
// Unmatched paths are folded into one label to keep cardinality bounded.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
