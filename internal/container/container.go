package container

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/db"
	"github.com/Tusharxhub/GitHubWrapped/internal/adapters/postgresdb"
	"github.com/Tusharxhub/GitHubWrapped/internal/cache"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/Tusharxhub/GitHubWrapped/internal/handlers"
	"github.com/Tusharxhub/GitHubWrapped/internal/integrations/githubapi"
	"github.com/Tusharxhub/GitHubWrapped/internal/integrations/llm"
	"github.com/Tusharxhub/GitHubWrapped/internal/services/githubservice"
	"github.com/Tusharxhub/GitHubWrapped/internal/services/insightservice"
	"github.com/Tusharxhub/GitHubWrapped/internal/services/statsservice"
	"github.com/Tusharxhub/GitHubWrapped/internal/services/supporterservice"
	"github.com/Tusharxhub/GitHubWrapped/internal/tasks"
	"github.com/go-redis/redis/v8"
	svix "github.com/svix/svix-webhooks/go"
	"go.uber.org/zap"
)

const (
	githubHTTPTimeout = 30 * time.Second
	// completions stream for a while, the timeout covers the whole body
	llmHTTPTimeout = 2 * time.Minute
)

type Container struct {
	config           *config.Config
	dbConn           *sql.DB
	redisClient      *redis.Client
	enqueuer         *tasks.Enqueuer
	statsService     domain.StatsService
	supporterService domain.SupporterService
	insightService   domain.InsightService
	handler          *handlers.Handler
}

// NewContainer opens the stores and wires every service. It fails when a required
// dependency is unreachable or GITHUB_TOKEN is missing.
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{config: cfg}

	// db
	dbConn, err := db.NewPostgresDb(cfg)
	if err != nil {
		return nil, err
	}
	c.dbConn = dbConn

	// cache and queue
	statsCache := cache.NewNopCache()
	var notifier statsservice.LeaderboardNotifier
	if cfg.RedisEnabled() {
		redisClient, err := db.NewRedisDb(cfg)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.redisClient = redisClient
		statsCache = cache.NewRedisCache(redisClient, logger)

		opt, err := tasks.RedisConnOpt(cfg)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.enqueuer = tasks.NewEnqueuer(opt, logger)
		notifier = c.enqueuer
	} else {
		logger.Warn("redis not configured, running without cache and background tasks")
	}

	// Repositories
	snapshotRepo := postgresdb.NewSnapshotStore(dbConn)
	supporterRepo := postgresdb.NewSupporterStore(dbConn)

	// Clients
	githubClient, err := githubapi.NewClient(cfg, &http.Client{Timeout: githubHTTPTimeout}, logger)
	if err != nil {
		c.Close()
		return nil, err
	}
	completer := llm.NewClient(cfg, &http.Client{Timeout: llmHTTPTimeout}, logger)

	var verifier handlers.WebhookVerifier
	if cfg.WebhookSecret != "" {
		wh, err := svix.NewWebhook(cfg.WebhookSecret)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("invalid webhook secret: %w", err)
		}
		verifier = wh
	}

	// Services
	githubSvc := githubservice.NewGithubService(githubClient, logger)
	c.statsService = statsservice.NewStatsService(cfg, snapshotRepo, githubSvc, statsCache, notifier, logger)
	c.supporterService = supporterservice.NewSupporterService(cfg, supporterRepo, logger)
	c.insightService = insightservice.NewInsightService(cfg, c.statsService, completer, logger)

	c.handler = handlers.New(cfg, logger, c.statsService, c.supporterService, c.insightService, verifier)

	return c, nil
}

func (c *Container) GetDB() *sql.DB {
	return c.dbConn
}

func (c *Container) GetStatsService() domain.StatsService {
	return c.statsService
}

func (c *Container) GetSupporterService() domain.SupporterService {
	return c.supporterService
}

func (c *Container) GetInsightService() domain.InsightService {
	return c.insightService
}

func (c *Container) GetHandler() *handlers.Handler {
	return c.handler
}

// WorkerEnabled reports whether background tasks can run.
func (c *Container) WorkerEnabled() bool {
	return c.enqueuer != nil
}

func (c *Container) Close() {
	if c.enqueuer != nil {
		_ = c.enqueuer.Close()
	}
	if c.redisClient != nil {
		_ = c.redisClient.Close()
	}
	if c.dbConn != nil {
		_ = c.dbConn.Close()
	}
}
