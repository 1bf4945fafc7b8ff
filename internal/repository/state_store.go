package repository

import "context"

// StateStore persists one JSON value per key.
//
// Load reports found=false with a nil error both for a missing key and for
// content that cannot be decoded into dst. Backend failures are returned as
// storage-unavailable errors.
type StateStore interface {
	Load(ctx context.Context, key string, dst any) (bool, error)
	Save(ctx context.Context, key string, value any) error
	Clear(ctx context.Context, key string) error
}

// KVStore is the raw byte-level backend a StateStore is built on.
// Get returns ErrNotFound for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
