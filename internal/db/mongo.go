package db

import (
	"context"
	"fmt"
	"time"

	"github.com/alexbilevskiy/tdapi/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const opTimeout = 10 * time.Second

func NewClient(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	if cfg.Mongo["uri"] == "" {
		return nil, fmt.Errorf("mongo uri is not configured")
	}
	rb := bson.NewRegistryBuilder()

	registry := rb.Build()
	clientOptions := options.Client().ApplyURI(cfg.Mongo["uri"]).SetRegistry(registry)

	mctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	client, err := mongo.Connect(mctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(mctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, nil
}
