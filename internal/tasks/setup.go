package tasks

import (
	"fmt"
	"os"
	"time"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

const (
	TypeQueueCritical = "critical"
	TypeQueueDefault  = "default"
)

// config for periodic task
type FileBasedConfigProvider struct {
	filename string
}

func NewFileBasedConfigProvider(filename string) *FileBasedConfigProvider {
	return &FileBasedConfigProvider{filename: filename}
}

type PeriodicTaskConfigContainer struct {
	Configs []*Config `yaml:"configs"`
}

type Config struct {
	Cronspec string `yaml:"cronspec"`
	TaskType string `yaml:"task_type"`
}

// RedisConnOpt parses the configured redis location into asynq connection options.
func RedisConnOpt(cfg *config.Config) (asynq.RedisConnOpt, error) {
	opt, err := asynq.ParseRedisURI(cfg.GetRedisURL())
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return opt, nil
}

func (t *Task) ServeMux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Use(t.LoggingMiddleware)

	// tasks
	mux.HandleFunc(TypeWarmLeaderboard, t.HandleWarmLeaderboardTask)

	// cron
	mux.HandleFunc(TypeLeaderboardRefresh, t.HandleLeaderboardRefreshTask)

	return mux
}

// start worker
func StartWorker(t *Task, cfg *config.Config) error {
	opt, err := RedisConnOpt(cfg)
	if err != nil {
		return err
	}

	srv := asynq.NewServer(
		opt,
		asynq.Config{Concurrency: 10, Queues: map[string]int{
			TypeQueueCritical: 3,
			TypeQueueDefault:  1,
		}},
	)

	go func() {
		if err := srv.Run(t.ServeMux()); err != nil {
			t.logger.Fatal("failed to start task server", zap.Error(err))
		}
	}()
	t.logger.Info("tasks server started successfully")

	// for the crons (dynamic periodic task)
	mgr, err := asynq.NewPeriodicTaskManager(
		asynq.PeriodicTaskManagerOpts{
			RedisConnOpt:               opt,
			PeriodicTaskConfigProvider: NewFileBasedConfigProvider(cfg.CronFile),
			SyncInterval:               10 * time.Second,
		})
	if err != nil {
		return err
	}

	t.logger.Info("dynamic periodic task manager starting", zap.String("cron_file", cfg.CronFile))
	return mgr.Run()
}

func (p *FileBasedConfigProvider) GetConfigs() ([]*asynq.PeriodicTaskConfig, error) {
	data, err := os.ReadFile(p.filename)
	if err != nil {
		return nil, err
	}

	var c PeriodicTaskConfigContainer
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	var configs []*asynq.PeriodicTaskConfig
	for _, cfg := range c.Configs {
		configs = append(configs, &asynq.PeriodicTaskConfig{
			Cronspec: cfg.Cronspec,
			Task:     asynq.NewTask(cfg.TaskType, nil, asynq.Retention(24*time.Hour)),
		})
	}
	return configs, nil
}
