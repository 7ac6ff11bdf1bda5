package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/peakreach/agency-api/internal/httperr"
	"github.com/peakreach/agency-api/internal/ratelimit"
)

// RateLimit caps public form submissions per client IP. With no Redis
// configured the limiter lets everything through.
func RateLimit(limiter *ratelimit.Limiter, scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context(), scope, c.ClientIP(), limit, window) {
			httperr.TooManyRequests(c, "rate_limited", "Too many requests, try again shortly.")
			c.Abort()
			return
		}
		c.Next()
	}
}
