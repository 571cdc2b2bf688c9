package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/immogest/immogest-backend/pkg/config"
	"github.com/immogest/immogest-backend/pkg/db"
	"github.com/immogest/immogest-backend/pkg/logger"
	"github.com/immogest/immogest-backend/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "migrate"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := migrate.Run(ctx, dbClient.DB()); err != nil {
		logg.Error(ctx, "schema migration failed", err)
		os.Exit(1)
	}

	logg.Info(ctx, "schema migration completed")
}
