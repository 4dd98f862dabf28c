package ratelimit

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paylift/srbooster/internal/observability/metrics"
	"go.uber.org/zap"
)

// CreateLimiter throttles request creation per client IP. A nil limiter
// allows everything, so callers never need to branch on configuration.
type CreateLimiter struct {
	bucket  *TokenBucket
	rate    float64
	burst   int
	log     *zap.Logger
	metrics *metrics.Metrics
}

func (l *CreateLimiter) Middleware() gin.HandlerFunc {
	if l == nil || l.bucket == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf("srbooster:ratelimit:create:%s", c.ClientIP())

		res, err := l.bucket.Allow(c.Request.Context(), key, l.rate, l.burst)
		if err != nil {
			// Fail open: a redis outage must not block request creation.
			l.log.Warn("rate limit check failed", zap.Error(err))
			c.Next()
			return
		}

		if !res.Allowed {
			l.metrics.RecordRateLimitDenied(c.Request.Context())
			c.Header("Retry-After", fmt.Sprintf("%d", int(res.RetryAfter.Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
