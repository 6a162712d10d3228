package middleware_test

import (
	"testing"
	"time"

	"luminai/middleware"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter(t *testing.T) {
	rl := middleware.NewIPRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"))
	}
	assert.False(t, rl.Allow("10.0.0.1"))

	// Other clients are unaffected
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestIPRateLimiterWindowExpiry(t *testing.T) {
	rl := middleware.NewIPRateLimiter(1, 20*time.Millisecond)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, rl.Allow("10.0.0.1"))
}
