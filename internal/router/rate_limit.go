package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/vruksha/storefront/internal/cache"
	"github.com/vruksha/storefront/internal/config"
	"github.com/vruksha/storefront/internal/http/response"
	"github.com/vruksha/storefront/internal/logger"

	"github.com/gin-gonic/gin"
)

// LoginRateLimit throttles login attempts per client IP through Redis.
// With the cache disabled the limiter is a pass-through.
func LoginRateLimit(cfg config.LoginRateLimitConfig) gin.HandlerFunc {
	window := time.Duration(cfg.WindowSeconds) * time.Second
	if window <= 0 {
		window = 5 * time.Minute
	}
	maxAttempts := int64(cfg.MaxAttempts)
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	block := time.Duration(cfg.BlockSeconds) * time.Second
	if block <= 0 {
		block = 15 * time.Minute
	}

	return func(c *gin.Context) {
		client := cache.Client()
		if client == nil {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		key := cache.Key(fmt.Sprintf("ratelimit:login:%s", c.ClientIP()))

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			logger.Warnw("login_rate_limit_unavailable", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, window)
		}
		if count > maxAttempts {
			client.Expire(ctx, key, block)
			response.Error(c, http.StatusTooManyRequests, "too many login attempts, try again later")
			return
		}
		c.Next()
	}
}
