package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-system/metrics"
	"github.com/yeremiapane/restaurant-system/utils"
)

// LoggerMiddleware logs every request and records its duration. m may be nil.
func LoggerMiddleware(m *metrics.RestaurantMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordRequest(c.Request.Method, route, status, latency)

		entry := utils.InfoLogger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"status":  status,
			"latency": latency.String(),
			"ip":      c.ClientIP(),
			"path":    path,
		})
		if status >= 500 {
			entry.Warn("request")
			return
		}
		entry.Info("request")
	}
}
