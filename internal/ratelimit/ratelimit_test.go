package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/peakreach/agency-api/internal/config"
)

func TestLimiterDisabledWithoutRedis(t *testing.T) {
	l := NewLimiter(&config.Config{}, zap.NewNop())

	assert.False(t, l.Enabled())
	assert.True(t, l.Allow(context.Background(), "public_bookings", "1.2.3.4", 1, time.Minute))
	assert.True(t, l.Allow(context.Background(), "public_bookings", "1.2.3.4", 1, time.Minute))
}

func TestLimiterEnabledWithRedisAddr(t *testing.T) {
	l := NewLimiter(&config.Config{RedisAddr: "localhost:6379"}, zap.NewNop())
	assert.True(t, l.Enabled())
}
