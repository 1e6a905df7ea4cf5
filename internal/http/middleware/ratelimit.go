package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimit applies a fixed-window counter per client IP, shared across
// instances through Redis. On Redis failure the request is let through;
// throttling is protection, not a correctness gate.
func RateLimit(rdb *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		bucket := time.Now().Unix() / int64(window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), bucket)

		pipe := rdb.Pipeline()
		count := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			slog.WarnContext(ctx, "rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if count.Val() > int64(maxRequests) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"ok": false, "msg": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
