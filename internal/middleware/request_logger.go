package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fulfillment-service/internal/logger"
	"github.com/guttosm/fulfillment-service/internal/repository"
)

// RequestLogger returns a middleware that logs each HTTP request as
// structured JSON and, when a repository is provided, persists an audit
// record asynchronously. The persistence write never blocks the response.
func RequestLogger(logs repository.RequestLogsRepositoryInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := GetRequestID(c)

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.Request.URL.Path
		ip := c.ClientIP()
		userAgent := c.Request.UserAgent()

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", ip).
			Str("user_agent", userAgent).
			Logger()

		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if logs == nil {
			return
		}

		entry := &repository.RequestLogDocument{
			Timestamp:  time.Now(),
			RequestID:  requestID,
			Method:     method,
			Path:       path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         ip,
			UserAgent:  userAgent,
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.Last().Error()
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := logs.Create(ctx, entry); err != nil {
				log := logger.Logger()
				log.Warn().
					Err(err).
					Str("request_id", entry.RequestID).
					Msg("Failed to persist request log")
			}
		}()
	}
}
