package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primeticket/primeticket-api/internal/model"
	"github.com/primeticket/primeticket-api/internal/storage"
)

func newTestCache(t *testing.T) (*Cache, *storage.Memory, *time.Time) {
	t.Helper()
	store := storage.NewMemory()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCache(store)
	cache.now = func() time.Time { return now }
	return cache, store, &now
}

func TestCacheRoundTrip(t *testing.T) {
	cache, _, _ := newTestCache(t)
	ctx := context.Background()

	movies := []model.Movie{movie(100, "Tenet"), movie(101, "Arrival")}
	require.NoError(t, cache.Write(ctx, movies))

	got := cache.Read(ctx)
	assert.Equal(t, movies, got, "a fresh envelope round-trips unchanged")
}

func TestCacheExpiryClearsSlot(t *testing.T) {
	cache, store, now := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Write(ctx, []model.Movie{movie(100, "Tenet")}))

	*now = now.Add(CacheExpiry + time.Minute)
	assert.Nil(t, cache.Read(ctx), "expired envelope reads as nil")

	_, err := store.Get(ctx, storage.SlotCatalog)
	assert.ErrorIs(t, err, storage.ErrNotFound, "expired slot is deleted")
}

func TestCacheReadJustInsideWindow(t *testing.T) {
	cache, _, now := newTestCache(t)
	ctx := context.Background()

	movies := []model.Movie{movie(100, "Tenet")}
	require.NoError(t, cache.Write(ctx, movies))

	*now = now.Add(CacheExpiry - time.Minute)
	assert.Equal(t, movies, cache.Read(ctx))
}

func TestCacheAppendKeepsTimestamp(t *testing.T) {
	cache, _, now := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Write(ctx, []model.Movie{movie(100, "Tenet")}))

	// grow the snapshot an hour before expiry
	*now = now.Add(CacheExpiry - time.Hour)
	require.NoError(t, cache.Append(ctx, []model.Movie{movie(101, "Arrival")}))

	got := cache.Read(ctx)
	require.Len(t, got, 2)

	// two hours later the envelope is past its original write time and
	// must be gone even though the append was recent
	*now = now.Add(2 * time.Hour)
	assert.Nil(t, cache.Read(ctx), "append must not extend the expiry window")
}

func TestCacheAppendToEmptyActsAsWrite(t *testing.T) {
	cache, _, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Append(ctx, []model.Movie{movie(100, "Tenet")}))
	assert.Len(t, cache.Read(ctx), 1)
}

func TestCacheCorruptSlotIsDropped(t *testing.T) {
	cache, store, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, storage.SlotCatalog, []byte("not json")))
	assert.Nil(t, cache.Read(ctx))

	_, err := store.Get(ctx, storage.SlotCatalog)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
