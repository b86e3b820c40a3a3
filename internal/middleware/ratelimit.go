package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/launchlabs/leo-backend/internal/modules/serializer"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LoginRateLimit throttles credential guessing on the login endpoint:
// a fixed window of `limit` attempts per client IP, counted in redis.
// With no redis configured, or on redis failure, it fails open; an
// unavailable cache must not lock everyone out.
func LoginRateLimit(rdb *redis.Client, limit int, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	if rdb == nil || limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "ratelimit:login:" + c.ClientIP()

		n, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Sugar().Warnw("rate limiter unavailable", "err", err)
			c.Next()
			return
		}
		if n == 1 {
			rdb.Expire(ctx, key, window)
		}

		if n > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				serializer.Err(http.StatusTooManyRequests, "too many login attempts", nil))
			return
		}

		c.Next()
	}
}
