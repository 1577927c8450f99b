package main

import (
	"context"
	"fmt"
	"time"

	mongoMigration "venuebook/internal/migrations/mongo"
	"venuebook/pkg/config"
)

const JobName = "mongo-migration"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	cfg.Log.Info("Starting Mongo migration job")
	defer cfg.GracefulShutdown()

	if err := mongoMigration.RunMigration(ctx, cfg.Client.Mongo, cfg.MongoDatabaseName); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}
	fmt.Println("Migration completed successfully.")
}
