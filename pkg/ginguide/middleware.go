package ginguide

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// observe logs each request and records its metrics.
func (api *API) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		api.metrics.requests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
		api.metrics.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())

		attrs := []any{
			"method", c.Request.Method,
			"path", endpoint,
			"status", status,
			"duration", elapsed,
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}
		switch {
		case status >= 500:
			api.logger.Error("request failed", attrs...)
		case status >= 400:
			api.logger.Warn("request rejected", attrs...)
		default:
			api.logger.Debug("request served", attrs...)
		}
	}
}
