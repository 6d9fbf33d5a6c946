package main

import (
	"context"
	"flag"
	"log"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/db"
	"github.com/Tusharxhub/GitHubWrapped/pkg/logger"
	"github.com/Tusharxhub/GitHubWrapped/pkg/seeder"
	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", seeder.DefaultSeedDir, "directory holding JSON seed files")
	flag.Parse()

	// load configurations
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to initialize: %v ", err)
	}

	// logger
	logr, err := logger.NewLogger(string(cfg.GetAppEnv()), cfg.AppName+"-seeder")
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logr.Sync()

	dbConn, err := db.NewPostgresDb(cfg)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbConn.Close()

	if err := db.RunMigrations(dbConn, logr); err != nil {
		logr.Fatal("migrations failed", zap.Error(err))
	}

	report, err := seeder.Seed(context.Background(), dbConn, *dir, logr)
	if err != nil {
		logr.Fatal("seeding failed", zap.Error(err))
	}

	logr.Info("Seeder finished successfully",
		zap.Int("inserted", report.Inserted),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)
}
