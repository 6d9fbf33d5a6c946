package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/db"
	"github.com/Tusharxhub/GitHubWrapped/internal/container"
	"github.com/Tusharxhub/GitHubWrapped/internal/server"
	"github.com/Tusharxhub/GitHubWrapped/internal/tasks"
	"github.com/Tusharxhub/GitHubWrapped/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// load configurations
	conf, err := config.New()
	if err != nil {
		return err
	}

	// logger
	logr, err := logger.NewLogger(string(conf.GetAppEnv()), conf.AppName)
	if err != nil {
		return err
	}
	defer logr.Sync()

	diContainer, err := container.NewContainer(conf, logr)
	if err != nil {
		logr.Error("failed to build dependencies", zap.Error(err))
		return err
	}
	defer diContainer.Close()

	// run migrations
	if err := db.RunMigrations(diContainer.GetDB(), logr); err != nil {
		return err
	}

	// start worker / task server
	if diContainer.WorkerEnabled() {
		tsk := tasks.New(conf, logr, diContainer.GetStatsService())
		go func() {
			if err := tasks.StartWorker(tsk, conf); err != nil {
				logr.Error("worker server encountered an error", zap.Error(err))
			}
		}()
	}

	// create and start server
	svr := server.New(conf, logr)
	return svr.Start(ctx, diContainer)
}
