package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheStoreRoundTrip(t *testing.T) {
	store := NewMemoryCacheStore(time.Hour)
	ctx := context.Background()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Put(ctx, "k1", []byte(`{"title":"plan"}`)))

	payload, found, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"title":"plan"}`), payload)
}

func TestMemoryCacheStoreLastWriterWins(t *testing.T) {
	store := NewMemoryCacheStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k1", []byte("first")))
	require.NoError(t, store.Put(ctx, "k1", []byte("second")))

	payload, found, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("second"), payload)
}

func TestMemoryCacheStoreExpiry(t *testing.T) {
	store := NewMemoryCacheStore(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k1", []byte("short-lived")))
	time.Sleep(25 * time.Millisecond)

	_, found, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, found)
}
