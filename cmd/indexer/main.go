package main

import (
	"context"
	"os"
	"time"

	"github.com/ilhamrdh/scorebase/internal/config"
	"github.com/ilhamrdh/scorebase/internal/infrastructure/repository/mongodb"
	"github.com/ilhamrdh/scorebase/internal/platform/logging"
	"github.com/joho/godotenv"
)

// Creates the indexes the match ranking pipeline and the standings reads
// rely on. Run once per environment, and again after adding collections.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	store, err := mongodb.NewStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Error("init mongo store", "error", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close(context.Background()) }()

	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Error("ensure indexes", "error", err)
		os.Exit(1)
	}

	logger.Info("indexes ensured", "database", cfg.MongoDatabase)
}
