package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"alumni-connect-backend/internal/delivery/http/response"
	"alumni-connect-backend/pkg/logger"
	"alumni-connect-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for the fixed-window rate limiter.
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for Redis
	KeyPrefix string
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
}

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
}

func (s *memoryStore) increment(key string, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	entry, ok := s.entries[key]
	if !ok || now.After(entry.resetAt) {
		s.entries[key] = &rateLimitEntry{count: 1, resetAt: now.Add(window)}
		return 1
	}
	entry.count++
	return entry.count
}

// RateLimit limits requests per client IP. Counters live in Redis so the
// limit holds across instances; when Redis is unavailable the middleware
// falls back to per-instance in-memory counters rather than failing closed.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limit <= 0 {
		cfg.Limit = 100
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "rl:ip:"
	}

	fallback := &memoryStore{entries: make(map[string]*rateLimitEntry)}

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		count, err := incrementRedis(c, key, cfg.Window)
		if err != nil {
			count = fallback.increment(key, cfg.Window)
		}

		if count > cfg.Limit {
			logger.Log.Warn("Rate limit exceeded", "ip", c.ClientIP(), "count", count)
			c.Header("Retry-After", fmt.Sprintf("%d", int(cfg.Window.Seconds())))
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please slow down.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func incrementRedis(c *gin.Context, key string, window time.Duration) (int, error) {
	client := redis.Client()
	if client == nil {
		return 0, fmt.Errorf("redis not configured")
	}

	ctx := c.Request.Context()
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		// first hit in this window owns the expiry
		if err := client.Expire(ctx, key, window).Err(); err != nil {
			return int(count), err
		}
	}
	return int(count), nil
}
