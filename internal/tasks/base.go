package tasks

import (
	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"go.uber.org/zap"
)

// Task holds what background handlers need to do their work.
type Task struct {
	config       *config.Config
	logger       *zap.Logger
	statsService domain.StatsService
}

func New(config *config.Config, logger *zap.Logger, statsService domain.StatsService) *Task {
	return &Task{
		config:       config,
		logger:       logger.With(zap.String("package", "tasks")),
		statsService: statsService,
	}
}
