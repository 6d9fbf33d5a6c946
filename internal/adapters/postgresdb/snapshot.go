package postgresdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tusharxhub/GitHubWrapped/internal/apperror"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/Tusharxhub/GitHubWrapped/internal/repositories"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	userColumns = `id, uid, username, name, bio, email, company, location, avatar_url, blog_url,
		twitter_username, followers, following, public_repos, pinned_repositories, created_at`

	statsColumns = `id, uid, username, user_id, total_commits, total_issues_closed,
		total_pull_requests_closed, total_stars, total_forks, total_contributions,
		top_repository, languages_stats, contribution_calendar, created_at`

	insertUserQuery = `
		INSERT INTO users
			(uid, username, name, bio, email, company, location, avatar_url, blog_url,
			twitter_username, followers, following, public_repos, pinned_repositories, created_at)
		VALUES
			(:uid, :username, :name, :bio, :email, :company, :location, :avatar_url, :blog_url,
			:twitter_username, :followers, :following, :public_repos, :pinned_repositories, :created_at)
		ON CONFLICT (username) DO NOTHING
		RETURNING id
	`

	insertStatsQuery = `
		INSERT INTO stats
			(uid, username, user_id, total_commits, total_issues_closed, total_pull_requests_closed,
			total_stars, total_forks, total_contributions, top_repository, languages_stats,
			contribution_calendar, created_at)
		VALUES
			(:uid, :username, :user_id, :total_commits, :total_issues_closed, :total_pull_requests_closed,
			:total_stars, :total_forks, :total_contributions, :top_repository, :languages_stats,
			:contribution_calendar, :created_at)
		RETURNING id
	`
)

type snapshotStore struct {
	db *sqlx.DB
}

var _ repositories.SnapshotRepository = (*snapshotStore)(nil)

func NewSnapshotStore(db *sql.DB) repositories.SnapshotRepository {
	return &snapshotStore{db: sqlx.NewDb(db, "postgres")}
}

func (s *snapshotStore) FindUser(ctx context.Context, username string) (*domain.User, error) {
	return findUser(ctx, s.db, strings.ToLower(username))
}

func (s *snapshotStore) FindStats(ctx context.Context, username string) (*domain.Stats, error) {
	query := `SELECT ` + statsColumns + ` FROM stats WHERE username = $1`

	var row statsRow
	if err := s.db.GetContext(ctx, &row, query, strings.ToLower(username)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find stats for %s: %w", username, err)
	}

	return row.toDomain()
}

// FindSnapshot returns nil unless both the user and its stats are stored.
func (s *snapshotStore) FindSnapshot(ctx context.Context, username string) (*domain.Snapshot, error) {
	user, err := s.FindUser(ctx, username)
	if err != nil || user == nil {
		return nil, err
	}

	stats, err := s.FindStats(ctx, username)
	if err != nil || stats == nil {
		return nil, err
	}

	return &domain.Snapshot{User: *user, Stats: *stats}, nil
}

func (s *snapshotStore) SaveUser(ctx context.Context, user *domain.User) error {
	prepareUser(user)
	row, err := toUserRow(user)
	if err != nil {
		return err
	}

	id, err := insertUser(ctx, s.db, row)
	if err != nil {
		return err
	}
	if id == 0 {
		return apperror.Conflict("user", user.Username)
	}
	user.ID = id
	return nil
}

func (s *snapshotStore) SaveStats(ctx context.Context, stats *domain.Stats) error {
	prepareStats(stats)
	row, err := toStatsRow(stats)
	if err != nil {
		return err
	}

	id, err := insertStats(ctx, s.db, row)
	if err != nil {
		return err
	}
	stats.ID = id
	return nil
}

func (s *snapshotStore) SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) (err error) {
	prepareUser(&snapshot.User)
	prepareStats(&snapshot.Stats)

	uRow, err := toUserRow(&snapshot.User)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	userID, err := insertUser(ctx, tx, uRow)
	if err != nil {
		return err
	}
	if userID != 0 {
		snapshot.User.ID = userID
	} else {
		// a user stored by an earlier generation that never got its stats
		existing, findErr := findUser(ctx, tx, uRow.Username)
		if findErr != nil {
			err = findErr
			return err
		}
		if existing == nil {
			err = fmt.Errorf("user %s vanished during snapshot save", uRow.Username)
			return err
		}
		snapshot.User = *existing
	}

	snapshot.Stats.UserID = snapshot.User.UID
	sRow, err := toStatsRow(&snapshot.Stats)
	if err != nil {
		return err
	}

	statsID, err := insertStats(ctx, tx, sRow)
	if err != nil {
		return err
	}
	snapshot.Stats.ID = statsID

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *snapshotStore) ListAllUsernames(ctx context.Context) ([]string, error) {
	const query = `
		SELECT u.username
		FROM users u
		JOIN stats s ON s.username = u.username
		ORDER BY u.id
	`

	usernames := []string{}
	if err := s.db.SelectContext(ctx, &usernames, query); err != nil {
		return nil, fmt.Errorf("failed to list usernames: %w", err)
	}
	return usernames, nil
}

func (s *snapshotStore) ListTopByCommits(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	const query = `
		SELECT
			s.username,
			u.name,
			u.avatar_url,
			s.total_contributions,
			s.total_commits,
			s.total_issues_closed,
			s.total_pull_requests_closed,
			s.total_stars,
			s.total_forks
		FROM stats s
		JOIN users u ON u.username = s.username
		ORDER BY s.total_commits DESC, s.id ASC
		LIMIT $1
	`

	entries := []domain.LeaderboardEntry{}
	if err := s.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("failed to fetch top users by commits: %w", err)
	}
	return entries, nil
}

func findUser(ctx context.Context, q sqlx.QueryerContext, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var row userRow
	if err := sqlx.GetContext(ctx, q, &row, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user %s: %w", username, err)
	}
	return row.toDomain()
}

// insertUser returns zero when the username is already taken.
func insertUser(ctx context.Context, q sqlx.ExtContext, row userRow) (int, error) {
	query, args, err := sqlx.Named(insertUserQuery, row)
	if err != nil {
		return 0, fmt.Errorf("failed to bind user insert: %w", err)
	}

	var id int
	err = sqlx.GetContext(ctx, q, &id, q.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert user %s: %w", row.Username, err)
	}
	return id, nil
}

func insertStats(ctx context.Context, q sqlx.ExtContext, row statsRow) (int, error) {
	query, args, err := sqlx.Named(insertStatsQuery, row)
	if err != nil {
		return 0, fmt.Errorf("failed to bind stats insert: %w", err)
	}

	var id int
	if err := sqlx.GetContext(ctx, q, &id, q.Rebind(query), args...); err != nil {
		if isUniqueViolation(err) {
			return 0, apperror.Conflict("stats", row.Username)
		}
		return 0, fmt.Errorf("failed to insert stats for %s: %w", row.Username, err)
	}
	return id, nil
}

func prepareUser(u *domain.User) {
	u.Username = strings.ToLower(u.Username)
	if u.UID == uuid.Nil {
		u.UID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
}

func prepareStats(s *domain.Stats) {
	s.Username = strings.ToLower(s.Username)
	if s.UID == uuid.Nil {
		s.UID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
}
