package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiterAllowsBurstThenDenies(t *testing.T) {
	limiter := NewInMemoryLimiter(1, time.Hour, 2)

	require.True(t, limiter.Allow(1))
	require.True(t, limiter.Allow(1))
	require.False(t, limiter.Allow(1))
}

func TestLimiterIsPerChat(t *testing.T) {
	limiter := NewInMemoryLimiter(1, time.Hour, 1)

	require.True(t, limiter.Allow(1))
	require.False(t, limiter.Allow(1))
	require.True(t, limiter.Allow(2))
}
