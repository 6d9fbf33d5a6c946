package statsservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/internal/aggregator"
	"github.com/Tusharxhub/GitHubWrapped/internal/apperror"
	"github.com/Tusharxhub/GitHubWrapped/internal/cache"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/Tusharxhub/GitHubWrapped/internal/keylock"
	"github.com/Tusharxhub/GitHubWrapped/internal/repositories"
	"github.com/Tusharxhub/GitHubWrapped/internal/services/githubservice"
	"go.uber.org/zap"
)

// LeaderboardSize is how many users the top users board holds.
const LeaderboardSize = 6

// LeaderboardNotifier is told when a new snapshot may have changed the leaderboard.
type LeaderboardNotifier interface {
	EnqueueLeaderboardWarm(ctx context.Context) error
}

type statsService struct {
	repo     repositories.SnapshotRepository
	github   githubservice.GitHubService
	cache    cache.Cache
	locks    *keylock.KeyedMutex
	notifier LeaderboardNotifier
	year     int
	logger   *zap.Logger
}

var _ domain.StatsService = (*statsService)(nil)

func NewStatsService(
	cfg *config.Config,
	repo repositories.SnapshotRepository,
	gitHubService githubservice.GitHubService,
	c cache.Cache,
	notifier LeaderboardNotifier,
	logger *zap.Logger,
) domain.StatsService {
	logger = logger.With(zap.String("package", "statsservice"))
	if c == nil {
		c = cache.NewNopCache()
	}
	return &statsService{
		repo:     repo,
		github:   gitHubService,
		cache:    c,
		locks:    keylock.New(),
		notifier: notifier,
		year:     cfg.WrappedYear,
		logger:   logger,
	}
}

func (s *statsService) GetStats(ctx context.Context, username string) (*domain.StatsDTO, error) {
	logr := s.logger.With(zap.String("method", "GetStats"))
	key := strings.ToLower(username)

	if dto, ok := s.cache.GetSnapshot(ctx, key); ok {
		logr.Debug("snapshot served from cache", zap.String("username", key))
		return dto, nil
	}

	snapshot, err := s.repo.FindSnapshot(ctx, key)
	if err != nil {
		logr.Error("error in FindSnapshot", zap.Error(err))
		return nil, fmt.Errorf("failed to load stats for %s: %w", key, err)
	}
	if snapshot == nil {
		return nil, apperror.NotFound("stats", key)
	}

	dto := ToStatsDTO(snapshot, s.year)
	s.cache.SetSnapshot(ctx, dto)
	return dto, nil
}

// GenerateStats builds and stores the snapshot for username once. Later calls, and callers
// that lose a race with another process, receive the stored snapshot with GenerationExisting.
func (s *statsService) GenerateStats(ctx context.Context, username string) (*domain.GenerationResult, error) {
	key := strings.ToLower(username)
	logr := s.logger.With(zap.String("method", "GenerateStats"), zap.String("username", key))

	unlock, err := s.locks.Lock(ctx, key)
	if err != nil {
		logr.Warn("stopped waiting for generation lock", zap.Error(err))
		return nil, fmt.Errorf("waiting to generate stats for %s: %w", key, err)
	}
	defer unlock()

	existing, err := s.repo.FindSnapshot(ctx, key)
	if err != nil {
		logr.Error("error in FindSnapshot", zap.Error(err))
		return nil, fmt.Errorf("failed to check existing stats: %w", err)
	}
	if existing != nil {
		logr.Info("stats already exist")
		return &domain.GenerationResult{Status: domain.GenerationExisting, Snapshot: ToStatsDTO(existing, s.year)}, nil
	}

	state := domain.StateUnknown
	transition := func(next domain.GenerationState) {
		logr.Info("generation state changed", zap.String("from", string(state)), zap.String("to", string(next)))
		state = next
	}
	fail := func(err error) (*domain.GenerationResult, error) {
		transition(domain.StateFailed)
		return nil, err
	}

	transition(domain.StateFetching)
	user, err := s.github.GetUser(ctx, key)
	if err != nil {
		return fail(err)
	}
	user.PinnedRepositories = s.github.GetPinnedRepositories(ctx, key)

	repos, err := s.github.GetRepositories(ctx, key)
	if err != nil {
		return fail(err)
	}

	contributions, err := s.github.GetContributions(ctx, key)
	if err != nil {
		return fail(err)
	}

	transition(domain.StateAggregating)
	snapshot := &domain.Snapshot{
		User:  *user,
		Stats: buildStats(key, repos, contributions),
	}

	if err := s.repo.SaveSnapshot(ctx, snapshot); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			logr.Info("stats stored concurrently, returning stored snapshot")
			return s.storedResult(ctx, key)
		}
		logr.Error("error in SaveSnapshot", zap.Error(err))
		return fail(fmt.Errorf("failed to save stats: %w", err))
	}
	transition(domain.StatePersisted)

	dto := ToStatsDTO(snapshot, s.year)
	s.cache.SetSnapshot(ctx, dto)
	if s.notifier != nil {
		if err := s.notifier.EnqueueLeaderboardWarm(ctx); err != nil {
			logr.Warn("failed to enqueue leaderboard refresh", zap.Error(err))
		}
	}

	return &domain.GenerationResult{Status: domain.GenerationCreated, Snapshot: dto}, nil
}

func (s *statsService) storedResult(ctx context.Context, username string) (*domain.GenerationResult, error) {
	stored, err := s.repo.FindSnapshot(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read stats: %w", err)
	}
	if stored == nil {
		return nil, apperror.NotFound("stats", username)
	}
	return &domain.GenerationResult{Status: domain.GenerationExisting, Snapshot: ToStatsDTO(stored, s.year)}, nil
}

func buildStats(username string, repos []domain.Repository, contributions *domain.Contributions) domain.Stats {
	totals := aggregator.CalculateTotals(repos)

	return domain.Stats{
		Username:                username,
		TotalCommits:            contributions.Commits,
		TotalIssuesClosed:       contributions.IssuesClosed,
		TotalPullRequestsClosed: contributions.PullRequestsClosed,
		TotalStars:              totals.Stars,
		TotalForks:              totals.Forks,
		TopRepository:           aggregator.FindTopRepository(repos),
		LanguagesStats:          aggregator.AggregateLanguages(repos),
		ContributionCalendar:    contributions.Calendar,
	}
}

func (s *statsService) GetAllUsers(ctx context.Context) ([]domain.AllUserDTO, error) {
	logr := s.logger.With(zap.String("method", "GetAllUsers"))

	usernames, err := s.repo.ListAllUsernames(ctx)
	if err != nil {
		logr.Error("error in ListAllUsernames", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]domain.AllUserDTO, 0, len(usernames))
	for _, u := range usernames {
		users = append(users, domain.AllUserDTO{Username: u})
	}
	return users, nil
}

func (s *statsService) GetTopUsers(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	if entries, ok := s.cache.GetLeaderboard(ctx); ok {
		return entries, nil
	}
	return s.computeLeaderboard(ctx)
}

func (s *statsService) RefreshLeaderboard(ctx context.Context) error {
	_, err := s.computeLeaderboard(ctx)
	return err
}

// computeLeaderboard selects by commits and presents by total contributions.
func (s *statsService) computeLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	logr := s.logger.With(zap.String("method", "computeLeaderboard"))

	entries, err := s.repo.ListTopByCommits(ctx, LeaderboardSize)
	if err != nil {
		logr.Error("error in ListTopByCommits", zap.Error(err))
		return nil, fmt.Errorf("failed to load top users: %w", err)
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalContributions > entries[j].TotalContributions
	})

	s.cache.SetLeaderboard(ctx, entries)
	logr.Info("leaderboard computed", zap.Int("count", len(entries)))
	return entries, nil
}
