// Package db manages the MongoDB client lifecycle for the service.
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"firststeps/internal/config"
)

const connectTimeout = 10 * time.Second

// Mongo bundles the client handle, the application database, and the GridFS
// bucket backed by it.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
	Bucket   *gridfs.Bucket
}

// Connect dials MongoDB, verifies the deployment with a ping, and opens the
// GridFS bucket on the application database.
func Connect(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	database := client.Database(cfg.MongoDB)
	bucket, err := gridfs.NewBucket(database)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("open gridfs bucket: %w", err)
	}

	logger.Info("mongodb connected", zap.String("database", cfg.MongoDB))
	return &Mongo{Client: client, Database: database, Bucket: bucket}, nil
}

// Disconnect closes the client and every connection in its pool.
func (m *Mongo) Disconnect(ctx context.Context, logger *zap.Logger) error {
	if err := m.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	logger.Info("mongodb disconnected")
	return nil
}

// Ping verifies the server is still reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}
