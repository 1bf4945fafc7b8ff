package app

import (
	"context"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/kv"
	mongoadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/mongo"
	redisadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/redis"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

// stateBackend is the raw store plus whatever must be released with it.
type stateBackend struct {
	store   repository.KVStore
	closers []func(ctx context.Context) error
}

func (b *stateBackend) Close(ctx context.Context) error {
	var firstErr error
	if err := b.store.Close(); err != nil {
		firstErr = err
	}
	for _, closeFn := range b.closers {
		if err := closeFn(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func newStateBackend(ctx context.Context, cfg config.StoreConfig, log logger.Logger) (*stateBackend, error) {
	storeType := kv.StoreType(cfg.Driver)
	log.Infof("Initializing %s state store...", storeType)

	switch storeType {
	case kv.StoreTypeMemory:
		log.Warn("Using in-memory state store, carts and sessions are lost on restart")
		store, err := kv.NewStore(storeType)
		if err != nil {
			return nil, err
		}
		return &stateBackend{store: store}, nil

	case kv.StoreTypeRedis:
		client, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
		}
		store, err := kv.NewStore(storeType,
			kv.WithRedisClient(client),
			kv.WithKeyPrefix(cfg.Redis.KeyPrefix),
			kv.WithTTL(cfg.TTL),
		)
		if err != nil {
			client.Close()
			return nil, err
		}
		return &stateBackend{
			store:   store,
			closers: []func(ctx context.Context) error{func(context.Context) error { return client.Close() }},
		}, nil

	case kv.StoreTypeSQLite:
		db, err := kv.OpenSQLite(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		store, err := kv.NewStore(storeType, kv.WithSQLiteDB(db))
		if err != nil {
			db.Close()
			return nil, err
		}
		return &stateBackend{store: store}, nil

	case kv.StoreTypeMongo:
		client, err := mongoadapter.NewClient(ctx, cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MongoDB client: %w", err)
		}
		store, err := kv.NewStore(storeType, kv.WithMongoCollection(mongoadapter.StateCollection(client, cfg.Mongo)))
		if err != nil {
			client.Disconnect(ctx)
			return nil, err
		}
		return &stateBackend{
			store:   store,
			closers: []func(ctx context.Context) error{client.Disconnect},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", kv.ErrInvalidStoreType, cfg.Driver)
	}
}
