package kv

import (
	"errors"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

// StoreType selects the backend behind the persistent state store.
type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeRedis  StoreType = "redis"
	StoreTypeSQLite StoreType = "sqlite"
	StoreTypeMongo  StoreType = "mongo"
)

const defaultTTL = 30 * 24 * time.Hour

var (
	ErrInvalidStoreType = errors.New("invalid store type")
	ErrInvalidConfig    = errors.New("invalid store configuration")
)

// NewStore creates a KVStore of the given type. Redis, sqlite and mongo
// stores need their client supplied through the matching option.
func NewStore(storeType StoreType, opts ...StoreOption) (repository.KVStore, error) {
	cfg := &storeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch storeType {
	case StoreTypeMemory:
		return NewMemoryStore(), nil

	case StoreTypeRedis:
		if cfg.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		ttl := cfg.ttl
		if ttl <= 0 {
			ttl = defaultTTL
		}
		return NewRedisStore(cfg.redisClient, cfg.keyPrefix, ttl), nil

	case StoreTypeSQLite:
		if cfg.sqliteDB == nil {
			return nil, ErrInvalidConfig
		}
		return NewSQLiteStore(cfg.sqliteDB)

	case StoreTypeMongo:
		if cfg.mongoCollection == nil {
			return nil, ErrInvalidConfig
		}
		return NewMongoStore(cfg.mongoCollection), nil

	default:
		return nil, ErrInvalidStoreType
	}
}
