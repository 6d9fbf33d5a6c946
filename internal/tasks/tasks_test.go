package tasks_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain/mock_domain"
	"github.com/Tusharxhub/GitHubWrapped/internal/tasks"
	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileBasedConfigProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cron.yaml")
	content := "configs:\n  - cronspec: \"*/15 * * * *\"\n    task_type: cron:leaderboard_refresh\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	configs, err := tasks.NewFileBasedConfigProvider(path).GetConfigs()
	require.NoError(t, err)
	require.Len(t, configs, 1)
	require.Equal(t, "*/15 * * * *", configs[0].Cronspec)
	require.Equal(t, tasks.TypeLeaderboardRefresh, configs[0].Task.Type())
}

func TestFileBasedConfigProviderMissingFile(t *testing.T) {
	_, err := tasks.NewFileBasedConfigProvider(filepath.Join(t.TempDir(), "none.yaml")).GetConfigs()
	require.Error(t, err)
}

func TestRedisConnOpt(t *testing.T) {
	opt, err := tasks.RedisConnOpt(&config.Config{RedisURL: "redis://cache:6380/2"})
	require.NoError(t, err)

	clientOpt, ok := opt.(asynq.RedisClientOpt)
	require.True(t, ok)
	require.Equal(t, "cache:6380", clientOpt.Addr)
	require.Equal(t, 2, clientOpt.DB)
}

func TestWarmLeaderboardTaskRefreshes(t *testing.T) {
	ctrl := gomock.NewController(t)
	stats := mock_domain.NewMockStatsService(ctrl)
	stats.EXPECT().RefreshLeaderboard(gomock.Any()).Return(nil)

	tsk := tasks.New(&config.Config{}, zap.NewNop(), stats)
	task := asynq.NewTask(tasks.TypeWarmLeaderboard, []byte(`{"Reason":"snapshot_created"}`))

	require.NoError(t, tsk.ServeMux().ProcessTask(context.Background(), task))
}

func TestWarmLeaderboardTaskBadPayloadSkipsRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	stats := mock_domain.NewMockStatsService(ctrl)

	tsk := tasks.New(&config.Config{}, zap.NewNop(), stats)
	err := tsk.HandleWarmLeaderboardTask(context.Background(), asynq.NewTask(tasks.TypeWarmLeaderboard, []byte("{")))
	require.ErrorIs(t, err, asynq.SkipRetry)
}

func TestLeaderboardRefreshTaskPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	stats := mock_domain.NewMockStatsService(ctrl)
	stats.EXPECT().RefreshLeaderboard(gomock.Any()).Return(errors.New("db down"))

	tsk := tasks.New(&config.Config{}, zap.NewNop(), stats)
	task := asynq.NewTask(tasks.TypeLeaderboardRefresh, nil)

	require.EqualError(t, tsk.ServeMux().ProcessTask(context.Background(), task), "db down")
}

func TestEnqueueLeaderboardWarmCollapsesDuplicates(t *testing.T) {
	mr := miniredis.RunT(t)
	enq := tasks.NewEnqueuer(asynq.RedisClientOpt{Addr: mr.Addr()}, zap.NewNop())
	t.Cleanup(func() { _ = enq.Close() })

	ctx := context.Background()
	require.NoError(t, enq.EnqueueLeaderboardWarm(ctx))
	require.NoError(t, enq.EnqueueLeaderboardWarm(ctx))

	pending, err := mr.List("asynq:{default}:pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)
}
