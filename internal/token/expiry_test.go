package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeExpiresAt(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("thirty minutes", func(t *testing.T) {
		got := ComputeExpiresAt(base, 30)
		assert.Equal(t, "2025-01-01T00:30:00Z", got.Format(time.RFC3339))
	})

	t.Run("zero minutes is identity", func(t *testing.T) {
		assert.True(t, ComputeExpiresAt(base, 0).Equal(base))
	})

	t.Run("exact for a range of durations", func(t *testing.T) {
		for _, m := range []int{1, 59, 60, 1440, 525600} {
			got := ComputeExpiresAt(base, m)
			assert.Equal(t, time.Duration(m)*time.Minute, got.Sub(base), "minutes=%d", m)
		}
	})

	t.Run("preserves sub-second precision of now", func(t *testing.T) {
		now := base.Add(123456789 * time.Nanosecond)
		got := ComputeExpiresAt(now, 1)
		assert.Equal(t, now.Add(time.Minute), got)
	})
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 10, 0, 0, time.UTC)

	t.Run("future expiry is not expired", func(t *testing.T) {
		assert.False(t, IsExpired(now.Add(10*time.Minute), now))
	})

	t.Run("past expiry is expired", func(t *testing.T) {
		assert.True(t, IsExpired(now.Add(-10*time.Minute), now))
	})

	t.Run("exact boundary is expired", func(t *testing.T) {
		assert.True(t, IsExpired(now, now))
	})

	t.Run("boundary holds across time zones", func(t *testing.T) {
		tz := time.FixedZone("UTC+8", 8*60*60)
		assert.True(t, IsExpired(now.In(tz), now))
	})

	t.Run("one nanosecond before expiry is active", func(t *testing.T) {
		assert.False(t, IsExpired(now.Add(time.Nanosecond), now))
	})

	t.Run("monotonic in now", func(t *testing.T) {
		expiresAt := now
		for _, d := range []time.Duration{0, time.Nanosecond, time.Second, time.Hour} {
			assert.True(t, IsExpired(expiresAt, now.Add(d)), "offset=%v", d)
		}
	})
}
