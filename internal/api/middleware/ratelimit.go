package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/civictrack/internal/metrics"
	"github.com/linskybing/civictrack/pkg/response"
	"github.com/linskybing/civictrack/pkg/utils"
	"github.com/redis/go-redis/v9"
)

// Counter counts hits for key inside a fixed window. It returns the count
// including this hit and the time left in the window.
type Counter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RedisCounter is a fixed-window Counter on INCR and EXPIRE.
type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("incrementing %s: %w", key, err)
	}
	// First hit opens the window.
	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("setting ttl on %s: %w", key, err)
		}
		return count, window, nil
	}
	ttl, err := r.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("reading ttl of %s: %w", key, err)
	}
	// A key left without expiry would block the user forever.
	if ttl < 0 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("setting ttl on %s: %w", key, err)
		}
		ttl = window
	}
	return count, ttl, nil
}

// NewRedisClient connects and pings.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

// ReportRateLimiter caps report submissions per user per window. Counter
// errors let the request through.
func ReportRateLimiter(counter Counter, limit int64, window time.Duration, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if counter == nil || limit <= 0 {
			c.Next()
			return
		}

		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}

		key := fmt.Sprintf("ratelimit:reports:%d", uid)
		count, retryAfter, err := counter.Hit(c.Request.Context(), key, window)
		if err != nil {
			slog.Warn("rate limiter unavailable", "user_id", uid, "error", err)
			c.Next()
			return
		}

		if count > limit {
			m.RateLimited()
			c.Header("Retry-After", fmt.Sprintf("%d", int64(math.Ceil(retryAfter.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			return
		}

		c.Next()
	}
}
