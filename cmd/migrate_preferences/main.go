package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ksugita/tenrankai/configs"
	"github.com/ksugita/tenrankai/migrations"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	mongoClient, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoDBURI))
	if err != nil {
		panic(fmt.Sprintf("failed to connect mongo: %v", err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(ctx)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		panic(fmt.Sprintf("failed to ping mongo: %v", err))
	}

	if err := migrations.EnsureMembershipIndexes(ctx, mongoClient, cfg.DatabaseName); err != nil {
		panic(fmt.Sprintf("failed to ensure indexes: %v", err))
	}

	if err := migrations.MigratePreferences(ctx, mongoClient, cfg.DatabaseName); err != nil {
		panic(fmt.Sprintf("failed to migrate preferences: %v", err))
	}

	fmt.Println("done")
}
