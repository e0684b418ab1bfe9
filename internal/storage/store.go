// Package storage provides slot-oriented persistence. A slot is a
// single named value that is always read and written whole, the way
// the application treats its user directory, session pointer and
// catalog cache. Writers do full read-modify-write cycles and the
// last write wins; there is no merging of concurrent updates. The
// model assumes a single active user per deployment.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a slot has no value.
var ErrNotFound = errors.New("storage: slot not found")

// Well-known slot keys. The separation matters more than the names:
// directory, session pointer, catalog cache and the two theater
// preferences each live in their own slot.
const (
	SlotUsers     = "primeticket:users"
	SlotSession   = "primeticket:session"
	SlotCatalog   = "primeticket:catalog"
	SlotPrefState = "primeticket:pref:state"
	SlotPrefCity  = "primeticket:pref:city"
)

// Store reads and writes whole slot values as raw bytes (the callers
// marshal JSON into them). Get returns ErrNotFound for absent slots.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
