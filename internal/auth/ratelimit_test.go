package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiter_BlocksAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(5, time.Minute, time.Minute)

	for i := 0; i < 5; i++ {
		require.True(t, rl.Allow("10.0.0.1"), "attempt %d should be allowed", i+1)
	}
	require.False(t, rl.Allow("10.0.0.1"))
	require.False(t, rl.BlockedUntil("10.0.0.1").IsZero())

	// Other sources are unaffected
	require.True(t, rl.Allow("10.0.0.2"))
}

func TestRateLimiter_SuccessResets(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(2, time.Minute, time.Minute)

	require.True(t, rl.Allow("10.0.0.1"))
	require.True(t, rl.Allow("10.0.0.1"))
	rl.RecordSuccess("10.0.0.1")

	require.True(t, rl.Allow("10.0.0.1"))
	require.True(t, rl.BlockedUntil("10.0.0.1").IsZero())
}

func TestRateLimiter_BlockExpires(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 20*time.Millisecond, 20*time.Millisecond)

	require.True(t, rl.Allow("10.0.0.1"))
	require.False(t, rl.Allow("10.0.0.1"))

	time.Sleep(30 * time.Millisecond)
	require.True(t, rl.Allow("10.0.0.1"))
}
