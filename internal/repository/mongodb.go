// Package repository provides the MongoDB-backed data access layer that
// implements the order and cart fetch contracts.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-oriented MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and collection access.
type MongoDB struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Orders      *mongo.Collection
	Items       *mongo.Collection
	Carts       *mongo.Collection
	RequestLogs *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	database := client.Database(databaseName)

	return &MongoDB{
		Client:      client,
		Database:    database,
		Orders:      database.Collection("orders"),
		Items:       database.Collection("items"),
		Carts:       database.Collection("carts"),
		RequestLogs: database.Collection("request_logs"),
	}, nil
}

// SetRequestLogsTTL creates a TTL index on the request logs collection so
// entries expire after the given number of days.
func (db *MongoDB) SetRequestLogsTTL(ctx context.Context, days int) error {
	if days <= 0 {
		days = 30
	}

	index := mongo.IndexModel{
		Keys: map[string]interface{}{"timestamp": 1},
		Options: options.Index().
			SetExpireAfterSeconds(int32(days * 24 * 60 * 60)).
			SetName("request_logs_ttl"),
	}

	_, err := db.RequestLogs.Indexes().CreateOne(ctx, index)
	return err
}

// Close disconnects the MongoDB client.
func (db *MongoDB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}
