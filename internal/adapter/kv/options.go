package kv

import (
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// StoreOption is a functional option for configuring a store.
type StoreOption func(*storeConfig)

type storeConfig struct {
	redisClient     *redis.Client
	keyPrefix       string
	ttl             time.Duration
	sqliteDB        *sql.DB
	mongoCollection *mongo.Collection
}

func WithRedisClient(client *redis.Client) StoreOption {
	return func(c *storeConfig) {
		c.redisClient = client
	}
}

// WithKeyPrefix namespaces every redis key.
func WithKeyPrefix(prefix string) StoreOption {
	return func(c *storeConfig) {
		c.keyPrefix = prefix
	}
}

// WithTTL sets the expiry refreshed on every redis write.
func WithTTL(ttl time.Duration) StoreOption {
	return func(c *storeConfig) {
		c.ttl = ttl
	}
}

func WithSQLiteDB(db *sql.DB) StoreOption {
	return func(c *storeConfig) {
		c.sqliteDB = db
	}
}

func WithMongoCollection(coll *mongo.Collection) StoreOption {
	return func(c *storeConfig) {
		c.mongoCollection = coll
	}
}
