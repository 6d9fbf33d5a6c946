// Package cache keeps serialized snapshots and the leaderboard in redis in front of postgres.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	snapshotKeyPrefix = "wrapped:stats:"
	leaderboardKey    = "wrapped:leaderboard"

	// snapshots never change once written
	DefaultSnapshotTTL    = 24 * time.Hour
	DefaultLeaderboardTTL = 15 * time.Minute
)

// Cache is a best-effort store: a miss and a failed read both report ok=false.
type Cache interface {
	GetSnapshot(ctx context.Context, username string) (*domain.StatsDTO, bool)
	SetSnapshot(ctx context.Context, dto *domain.StatsDTO)
	GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, bool)
	SetLeaderboard(ctx context.Context, entries []domain.LeaderboardEntry)
}

type redisCache struct {
	client         *redis.Client
	snapshotTTL    time.Duration
	leaderboardTTL time.Duration
	logger         *zap.Logger
}

func NewRedisCache(client *redis.Client, logger *zap.Logger) Cache {
	return &redisCache{
		client:         client,
		snapshotTTL:    DefaultSnapshotTTL,
		leaderboardTTL: DefaultLeaderboardTTL,
		logger:         logger.With(zap.String("package", "cache")),
	}
}

func snapshotKey(username string) string {
	return snapshotKeyPrefix + strings.ToLower(username)
}

func (c *redisCache) GetSnapshot(ctx context.Context, username string) (*domain.StatsDTO, bool) {
	var dto domain.StatsDTO
	if !c.get(ctx, snapshotKey(username), &dto) {
		return nil, false
	}
	return &dto, true
}

func (c *redisCache) SetSnapshot(ctx context.Context, dto *domain.StatsDTO) {
	c.set(ctx, snapshotKey(dto.Username), dto, c.snapshotTTL)
}

func (c *redisCache) GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, bool) {
	var entries []domain.LeaderboardEntry
	if !c.get(ctx, leaderboardKey, &entries) {
		return nil, false
	}
	return entries, true
}

func (c *redisCache) SetLeaderboard(ctx context.Context, entries []domain.LeaderboardEntry) {
	c.set(ctx, leaderboardKey, entries, c.leaderboardTTL)
}

func (c *redisCache) get(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := sonic.UnmarshalString(raw, dest); err != nil {
		c.logger.Warn("cache entry is corrupt, dropping it", zap.String("key", key), zap.Error(err))
		c.client.Del(ctx, key)
		return false
	}
	return true
}

func (c *redisCache) set(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := sonic.MarshalString(value)
	if err != nil {
		c.logger.Error("failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(fmt.Errorf("set: %w", err)))
	}
}

type nopCache struct{}

// NewNopCache returns a cache that never stores anything, used when redis is not configured.
func NewNopCache() Cache { return nopCache{} }

func (nopCache) GetSnapshot(context.Context, string) (*domain.StatsDTO, bool) { return nil, false }

func (nopCache) SetSnapshot(context.Context, *domain.StatsDTO) {}

func (nopCache) GetLeaderboard(context.Context) ([]domain.LeaderboardEntry, bool) { return nil, false }

func (nopCache) SetLeaderboard(context.Context, []domain.LeaderboardEntry) {}
