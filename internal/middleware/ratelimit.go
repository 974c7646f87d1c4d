package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window per-IP limiter backed by Redis, so the
// limit holds across replicas. Redis being unavailable fails open.
type RateLimiter struct {
	rdb    *redis.Client
	max    int
	window time.Duration
}

func NewRateLimiter(rdb *redis.Client, max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		max:    max,
		window: window,
	}
}

// Middleware enforces the limit, keyed by client IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())
		ctx := c.Request.Context()

		count, err := rl.rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rl.rdb.Expire(ctx, key, rl.window)
		}

		remaining := int64(rl.max) - count
		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.max))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(rl.max) {
			ttl, _ := rl.rdb.TTL(ctx, key).Result()
			if ttl < 0 {
				ttl = rl.window
			}
			c.Header("Retry-After", strconv.Itoa(int(ttl.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}
