package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/primeticket/primeticket-api/internal/model"
	"github.com/primeticket/primeticket-api/internal/storage"
)

// CacheExpiry is how long a catalog snapshot stays valid.
const CacheExpiry = 24 * time.Hour

// envelope is the persisted cache shape: converted movies plus the
// epoch-millisecond write time used for expiry.
type envelope struct {
	Data      []model.Movie `json:"data"`
	Timestamp int64         `json:"timestamp"`
}

// Cache is the time-boxed snapshot of converted remote movies. It is
// a single global slot, not per-query: every catalog load consults it
// before touching the network, and pagination grows it by appending.
//
// Append deliberately keeps the envelope's original timestamp, so a
// snapshot expires 24 hours after its first write no matter how much
// infinite scroll has grown it since. Refreshing on append would let
// a snapshot whose oldest entries are arbitrarily stale live forever.
type Cache struct {
	store storage.Store
	now   func() time.Time
}

// NewCache builds a cache over the given slot store.
func NewCache(store storage.Store) *Cache {
	return &Cache{store: store, now: time.Now}
}

// Read returns the cached movies, or nil when the slot is empty,
// unreadable or expired. An expired or corrupt slot is deleted on the
// way out.
func (c *Cache) Read(ctx context.Context) []model.Movie {
	raw, err := c.store.Get(ctx, storage.SlotCatalog)
	if err != nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		_ = c.store.Delete(ctx, storage.SlotCatalog)
		return nil
	}
	if c.now().UnixMilli()-env.Timestamp > CacheExpiry.Milliseconds() {
		_ = c.store.Delete(ctx, storage.SlotCatalog)
		return nil
	}
	return env.Data
}

// Write overwrites the slot with movies and a fresh timestamp.
func (c *Cache) Write(ctx context.Context, movies []model.Movie) error {
	return c.write(ctx, envelope{Data: movies, Timestamp: c.now().UnixMilli()})
}

// Append grows the cached snapshot for pagination. The existing
// timestamp is preserved; an empty or expired slot behaves like a
// fresh Write.
func (c *Cache) Append(ctx context.Context, movies []model.Movie) error {
	raw, err := c.store.Get(ctx, storage.SlotCatalog)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Write(ctx, movies)
		}
		return err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return c.Write(ctx, movies)
	}
	if c.now().UnixMilli()-env.Timestamp > CacheExpiry.Milliseconds() {
		return c.Write(ctx, movies)
	}
	env.Data = append(env.Data, movies...)
	return c.write(ctx, env)
}

func (c *Cache) write(ctx context.Context, env envelope) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return c.store.Put(ctx, storage.SlotCatalog, raw)
}
