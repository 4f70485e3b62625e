package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWindowStoreLimit(t *testing.T) {
	t.Parallel()

	store := NewFixedWindowStore(10, time.Hour)

	for i := 0; i < 10; i++ {
		ok, err := store.Allow("10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d should pass", i+1)
	}

	ok, err := store.Allow("10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFixedWindowStoreRollover(t *testing.T) {
	t.Parallel()

	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewFixedWindowStore(2, time.Hour)
	store.now = func() time.Time { return clock }

	for i := 0; i < 2; i++ {
		ok, _ := store.Allow("10.0.0.2")
		assert.True(t, ok)
	}
	ok, _ := store.Allow("10.0.0.2")
	assert.False(t, ok)

	clock = clock.Add(time.Hour)
	ok, _ = store.Allow("10.0.0.2")
	assert.True(t, ok)
}

func TestFixedWindowStoreIndependentIdentifiers(t *testing.T) {
	t.Parallel()

	store := NewFixedWindowStore(1, time.Hour)

	ok, _ := store.Allow("10.0.0.3")
	assert.True(t, ok)
	ok, _ = store.Allow("10.0.0.3")
	assert.False(t, ok)

	ok, _ = store.Allow("10.0.0.4")
	assert.True(t, ok)
}
