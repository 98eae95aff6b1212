// Package mongodb contains the concrete implementation of the persistence layer
// using the official MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"bookstore/config"
	"bookstore/internal/domain/lifecycle"
	"bookstore/internal/errors"
)

const (
	booksCollection = "books"
	usersCollection = "users"

	defaultConnectTimeout = 10 * time.Second
)

// Params holds dependencies for the MongoDB connection, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New establishes the process-wide MongoDB connection and returns the database
// handle shared by all repositories. The client pools connections internally
// and is created once at startup, disconnected at shutdown.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo connection settings must be provided")
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	params.Logger.Info("Connected to MongoDB", slog.String("database", cfg.Database))

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			disconnectCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.Info("Disconnecting from MongoDB")

			return errors.WithStack(client.Disconnect(disconnectCtx))
		},
	})

	return client.Database(cfg.Database), nil
}

// EnsureIndexes creates the collection indexes the application relies on.
// Index creation is idempotent, so this is safe to run on every startup.
// The unique index on Email is the final backstop for the registration
// lookup-then-insert window.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "Email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, indexModel); err != nil {
		return errors.Wrap(err, "failed to create unique email index on users")
	}

	return nil
}
