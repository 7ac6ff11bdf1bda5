package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/peakreach/agency-api/internal/config"
)

// Limiter is a fixed-window counter backed by Redis. It fails open: on
// Redis errors the request is allowed, since losing a lead to an outage
// is worse than letting a burst through.
type Limiter struct {
	client *redis.Client
	logger *zap.Logger
}

func NewLimiter(cfg *config.Config, logger *zap.Logger) *Limiter {
	if cfg.RedisAddr == "" {
		return &Limiter{logger: logger}
	}

	return &Limiter{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}),
		logger: logger,
	}
}

func (l *Limiter) Enabled() bool {
	return l.client != nil
}

// Allow increments the counter for (scope, key) and reports whether the
// caller is still under the limit for the current window.
func (l *Limiter) Allow(
	ctx context.Context,
	scope string,
	key string,
	limit int,
	window time.Duration,
) bool {

	if l.client == nil {
		return true
	}

	redisKey := fmt.Sprintf("ratelimit:%s:%s", scope, key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		l.logger.Warn("rate limit check failed", zap.Error(err))
		return true
	}

	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			l.logger.Warn("rate limit expire failed", zap.Error(err))
		}
	}

	return count <= int64(limit)
}
