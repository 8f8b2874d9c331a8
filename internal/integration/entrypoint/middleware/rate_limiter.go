// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// RateLimitStore counts attempts per key inside a fixed window.
type RateLimitStore interface {
	// Hit records one attempt and returns the number of attempts in the current window.
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter provides IP-based rate limiting functionality.
type RateLimiter struct {
	store          RateLimitStore
	prefix         string
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new in-memory rate limiter with default settings.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(NewMemoryRateLimitStore(), "auth", defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(store RateLimitStore, prefix string, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	return &RateLimiter{
		store:          store,
		prefix:         prefix,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
// Store failures let the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		attempts, err := rl.store.Hit(c.Request.Context(), "ratelimit:"+rl.prefix+":"+clientIP, rl.windowDuration)
		if err != nil {
			slog.Warn("Rate limit store unavailable", "error", err)
			c.Next()
			return
		}

		if attempts > int64(rl.maxAttempts) {
			c.Header("Retry-After", strconv.Itoa(int(rl.windowDuration.Seconds())))
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int64
	resetTime time.Time
}

// MemoryRateLimitStore keeps counters in process memory.
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	now     func() time.Time
}

// NewMemoryRateLimitStore creates an empty in-memory store.
func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		entries: make(map[string]*rateLimitEntry),
		now:     time.Now,
	}
}

// Hit implements RateLimitStore.
func (s *MemoryRateLimitStore) Hit(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, exists := s.entries[key]
	if !exists || now.After(entry.resetTime) {
		s.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(window),
		}
		return 1, nil
	}

	entry.attempts++
	return entry.attempts, nil
}

// Cleanup removes expired entries.
func (s *MemoryRateLimitStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.entries {
		if now.After(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}

// RedisRateLimitStore shares counters across instances through Redis.
type RedisRateLimitStore struct {
	client *redis.Client
}

// NewRedisRateLimitStore creates a store backed by client.
func NewRedisRateLimitStore(client *redis.Client) *RedisRateLimitStore {
	return &RedisRateLimitStore{client: client}
}

// Hit implements RateLimitStore. The window starts with the first attempt.
func (s *RedisRateLimitStore) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	attempts, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if attempts == 1 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return attempts, nil
}
