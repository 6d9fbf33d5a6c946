package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeLeaderboardRefresh = "cron:leaderboard_refresh"
	TypeWarmLeaderboard    = "ops:warm_leaderboard"

	// warm requests inside this window collapse into one task
	warmUniqueWindow = 30 * time.Second
)

type WarmLeaderboardTaskInput struct {
	Reason string
}

// Enqueuer schedules background work on the asynq queues.
type Enqueuer struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewEnqueuer(opt asynq.RedisConnOpt, logger *zap.Logger) *Enqueuer {
	return &Enqueuer{
		client: asynq.NewClient(opt),
		logger: logger.With(zap.String("package", "tasks")),
	}
}

// EnqueueLeaderboardWarm asks the worker to recompute the cached leaderboard.
func (e *Enqueuer) EnqueueLeaderboardWarm(ctx context.Context) error {
	payload, err := sonic.Marshal(WarmLeaderboardTaskInput{Reason: "snapshot_created"})
	if err != nil {
		return err
	}

	info, err := e.client.EnqueueContext(ctx,
		asynq.NewTask(TypeWarmLeaderboard, payload),
		asynq.Queue(TypeQueueDefault),
		asynq.Unique(warmUniqueWindow),
		asynq.Retention(time.Hour),
	)
	if errors.Is(err, asynq.ErrDuplicateTask) {
		e.logger.Debug("leaderboard warm already queued")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", TypeWarmLeaderboard, err)
	}

	e.logger.Info("successfully enqueued task", zap.String("type", info.Type), zap.String("id", info.ID))
	return nil
}

func (e *Enqueuer) Close() error {
	return e.client.Close()
}

// cron handlers
func (t *Task) HandleLeaderboardRefreshTask(ctx context.Context, a *asynq.Task) error {
	return t.statsService.RefreshLeaderboard(ctx)
}

// task handlers
func (t *Task) HandleWarmLeaderboardTask(ctx context.Context, a *asynq.Task) error {
	logr := t.logger.With(zap.String("method", "HandleWarmLeaderboardTask"))

	var p WarmLeaderboardTaskInput
	if err := sonic.Unmarshal(a.Payload(), &p); err != nil {
		return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}

	logr.Debug("warming leaderboard", zap.String("reason", p.Reason))
	return t.statsService.RefreshLeaderboard(ctx)
}
