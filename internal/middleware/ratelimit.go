package middleware

import (
	"net/http"
	"strconv"

	"github.com/buntagonalprism/firebase-auth-utils/internal/logger"
	"github.com/buntagonalprism/firebase-auth-utils/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit rejects callers exceeding the limiter's window with 429.
// Keys are client IPs. A limiter error fails open: blocking all sign-ins
// because redis is down is worse than briefly not limiting them.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Error("rate limiter unavailable", map[string]any{
				"error": err.Error(),
			})
			c.Next()
			return
		}

		if !res.Allowed {
			retryAfter := int(res.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests",
			})
			return
		}

		c.Next()
	}
}
