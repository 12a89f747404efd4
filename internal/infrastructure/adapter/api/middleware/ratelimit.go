package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerr "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/dto"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// fixedWindowScript increments the window counter and arms its expiry in one step,
// so a counter can never outlive its window
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimiter counts requests per client IP in fixed windows kept in Redis.
// When Redis cannot answer the request is let through.
func RateLimiter(client redis.UniversalClient, config RateLimitConfig, logger coreport.Logger) gin.HandlerFunc {
	windowMs := config.Window.Milliseconds()
	if windowMs <= 0 {
		windowMs = time.Minute.Milliseconds()
	}

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		key := fmt.Sprintf("ratelimit:%s", clientIP)

		count, err := fixedWindowScript.Run(c.Request.Context(), client, []string{key}, windowMs).Int64()
		if err != nil {
			logger.Warn("Rate limit check failed, allowing request", map[string]any{
				"client_ip": clientIP,
				"error":     err.Error(),
			})
			c.Next()
			return
		}

		remaining := max(int64(config.Requests)-count, 0)
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Requests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(config.Requests) {
			logger.Warn("Rate limit exceeded", map[string]any{
				"client_ip": clientIP,
				"path":      c.Request.URL.Path,
				"count":     count,
			})
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Code:    domainerr.CodeRateLimited,
				Message: "Too many requests. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
