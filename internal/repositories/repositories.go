package repositories

import (
	"context"

	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
)

// ListOptions holds limit/offset paging for list queries.
type ListOptions struct {
	Limit  int
	Offset int
}

// SnapshotRepository stores users and their stats. Usernames are matched lower-cased and
// find methods return nil without error when nothing is stored.
type SnapshotRepository interface {
	FindUser(ctx context.Context, username string) (*domain.User, error)
	FindStats(ctx context.Context, username string) (*domain.Stats, error)
	FindSnapshot(ctx context.Context, username string) (*domain.Snapshot, error)
	SaveUser(ctx context.Context, user *domain.User) error
	SaveStats(ctx context.Context, stats *domain.Stats) error
	// SaveSnapshot writes the user and stats in one transaction. A stored user without stats
	// is reused. A stored stats row yields apperror.ErrConflict.
	SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) error
	ListAllUsernames(ctx context.Context) ([]string, error)
	ListTopByCommits(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type SupporterRepository interface {
	FindByPaymentID(ctx context.Context, paymentID string) (*domain.Supporter, error)
	// Create returns apperror.ErrConflict when the payment id is already stored.
	Create(ctx context.Context, supporter *domain.Supporter) error
	ListPublic(ctx context.Context, opts ListOptions) ([]domain.Supporter, error)
	Aggregate(ctx context.Context) (*domain.SupporterAggregate, error)
}
