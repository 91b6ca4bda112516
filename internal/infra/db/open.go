// Package db handles the MongoDB client lifecycle: connecting, ping
// verification, and exposing a health-check view of the client.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"globalnews/pkg/config"
)

// Open connects to MongoDB using MONGODB_URI and verifies the connection
// with a ping. Pool sizing is env-configurable with sensible defaults.
func Open(ctx context.Context) (*mongo.Client, error) {
	uri := config.GetEnvString("MONGODB_URI", "")
	if uri == "" {
		return nil, fmt.Errorf("MONGODB_URI not set")
	}

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(uint64(config.GetEnvInt("DB_MAX_POOL_SIZE", 25))).
		SetMinPoolSize(uint64(config.GetEnvInt("DB_MIN_POOL_SIZE", 2))).
		SetMaxConnIdleTime(config.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", 30*time.Minute))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	slog.Info("mongodb connection established")
	return client, nil
}

// Database returns the application database handle. The database name
// defaults to the one the production deployment uses.
func Database(client *mongo.Client) *mongo.Database {
	return client.Database(config.GetEnvString("MONGODB_DATABASE", "globalNewsDB"))
}

// Pinger adapts a mongo client to the health handlers' store-ping contract.
type Pinger struct {
	Client *mongo.Client
}

// Ping checks connectivity to the primary.
func (p Pinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx, readpref.Primary())
}
