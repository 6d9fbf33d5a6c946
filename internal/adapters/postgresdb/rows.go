package postgresdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type userRow struct {
	ID                 int       `db:"id"`
	UID                uuid.UUID `db:"uid"`
	Username           string    `db:"username"`
	Name               string    `db:"name"`
	Bio                string    `db:"bio"`
	Email              string    `db:"email"`
	Company            string    `db:"company"`
	Location           string    `db:"location"`
	AvatarURL          string    `db:"avatar_url"`
	BlogURL            string    `db:"blog_url"`
	TwitterUsername    string    `db:"twitter_username"`
	Followers          int       `db:"followers"`
	Following          int       `db:"following"`
	PublicRepos        int       `db:"public_repos"`
	PinnedRepositories string    `db:"pinned_repositories"`
	CreatedAt          time.Time `db:"created_at"`
}

type statsRow struct {
	ID                      int            `db:"id"`
	UID                     uuid.UUID      `db:"uid"`
	Username                string         `db:"username"`
	UserID                  uuid.UUID      `db:"user_id"`
	TotalCommits            int            `db:"total_commits"`
	TotalIssuesClosed       int            `db:"total_issues_closed"`
	TotalPullRequestsClosed int            `db:"total_pull_requests_closed"`
	TotalStars              int            `db:"total_stars"`
	TotalForks              int            `db:"total_forks"`
	TotalContributions      int            `db:"total_contributions"`
	TopRepository           sql.NullString `db:"top_repository"`
	LanguagesStats          string         `db:"languages_stats"`
	ContributionCalendar    string         `db:"contribution_calendar"`
	CreatedAt               time.Time      `db:"created_at"`
}

type supporterRow struct {
	ID            int             `db:"id"`
	UID           uuid.UUID       `db:"uid"`
	PaymentID     string          `db:"payment_id"`
	Name          string          `db:"name"`
	Email         string          `db:"email"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	DisplayOnWall bool            `db:"display_on_wall"`
	CreatedAt     time.Time       `db:"created_at"`
}

func toUserRow(u *domain.User) (userRow, error) {
	pinned := u.PinnedRepositories
	if pinned == nil {
		pinned = []domain.PinnedRepository{}
	}
	pinnedJSON, err := sonic.Marshal(pinned)
	if err != nil {
		return userRow{}, fmt.Errorf("failed to encode pinned repositories: %w", err)
	}

	return userRow{
		ID:                 u.ID,
		UID:                u.UID,
		Username:           u.Username,
		Name:               u.Name,
		Bio:                u.Bio,
		Email:              u.Email,
		Company:            u.Company,
		Location:           u.Location,
		AvatarURL:          u.AvatarURL,
		BlogURL:            u.BlogURL,
		TwitterUsername:    u.TwitterUsername,
		Followers:          u.Followers,
		Following:          u.Following,
		PublicRepos:        u.PublicRepos,
		PinnedRepositories: string(pinnedJSON),
		CreatedAt:          u.CreatedAt,
	}, nil
}

func (r userRow) toDomain() (*domain.User, error) {
	pinned := []domain.PinnedRepository{}
	if len(r.PinnedRepositories) > 0 {
		if err := sonic.UnmarshalString(r.PinnedRepositories, &pinned); err != nil {
			return nil, fmt.Errorf("failed to decode pinned repositories for %s: %w", r.Username, err)
		}
	}

	return &domain.User{
		ID:                 r.ID,
		UID:                r.UID,
		Username:           r.Username,
		Name:               r.Name,
		Bio:                r.Bio,
		Email:              r.Email,
		Company:            r.Company,
		Location:           r.Location,
		AvatarURL:          r.AvatarURL,
		BlogURL:            r.BlogURL,
		TwitterUsername:    r.TwitterUsername,
		Followers:          r.Followers,
		Following:          r.Following,
		PublicRepos:        r.PublicRepos,
		PinnedRepositories: pinned,
		CreatedAt:          r.CreatedAt,
	}, nil
}

func toStatsRow(s *domain.Stats) (statsRow, error) {
	row := statsRow{
		ID:                      s.ID,
		UID:                     s.UID,
		Username:                s.Username,
		UserID:                  s.UserID,
		TotalCommits:            s.TotalCommits,
		TotalIssuesClosed:       s.TotalIssuesClosed,
		TotalPullRequestsClosed: s.TotalPullRequestsClosed,
		TotalStars:              s.TotalStars,
		TotalForks:              s.TotalForks,
		TotalContributions:      s.ContributionCalendar.TotalContributions,
		CreatedAt:               s.CreatedAt,
	}

	var err error
	if s.TopRepository != nil {
		top, err := sonic.MarshalString(s.TopRepository)
		if err != nil {
			return statsRow{}, fmt.Errorf("failed to encode top repository: %w", err)
		}
		row.TopRepository = sql.NullString{String: top, Valid: true}
	}

	langs := s.LanguagesStats
	if langs == nil {
		langs = []domain.LanguageStat{}
	}
	if row.LanguagesStats, err = sonic.MarshalString(langs); err != nil {
		return statsRow{}, fmt.Errorf("failed to encode language stats: %w", err)
	}

	calendar := s.ContributionCalendar
	if calendar.Weeks == nil {
		calendar.Weeks = []domain.Week{}
	}
	if row.ContributionCalendar, err = sonic.MarshalString(calendar); err != nil {
		return statsRow{}, fmt.Errorf("failed to encode contribution calendar: %w", err)
	}

	return row, nil
}

func (r statsRow) toDomain() (*domain.Stats, error) {
	s := &domain.Stats{
		ID:                      r.ID,
		UID:                     r.UID,
		Username:                r.Username,
		UserID:                  r.UserID,
		TotalCommits:            r.TotalCommits,
		TotalIssuesClosed:       r.TotalIssuesClosed,
		TotalPullRequestsClosed: r.TotalPullRequestsClosed,
		TotalStars:              r.TotalStars,
		TotalForks:              r.TotalForks,
		LanguagesStats:          []domain.LanguageStat{},
		ContributionCalendar:    domain.ContributionCalendar{Weeks: []domain.Week{}},
		CreatedAt:               r.CreatedAt,
	}

	if r.TopRepository.Valid && r.TopRepository.String != "null" {
		s.TopRepository = &domain.TopRepository{}
		if err := sonic.UnmarshalString(r.TopRepository.String, s.TopRepository); err != nil {
			return nil, fmt.Errorf("failed to decode top repository for %s: %w", r.Username, err)
		}
	}
	if len(r.LanguagesStats) > 0 {
		if err := sonic.UnmarshalString(r.LanguagesStats, &s.LanguagesStats); err != nil {
			return nil, fmt.Errorf("failed to decode language stats for %s: %w", r.Username, err)
		}
	}
	if len(r.ContributionCalendar) > 0 {
		if err := sonic.UnmarshalString(r.ContributionCalendar, &s.ContributionCalendar); err != nil {
			return nil, fmt.Errorf("failed to decode contribution calendar for %s: %w", r.Username, err)
		}
	}

	return s, nil
}

func toSupporterRow(s *domain.Supporter) supporterRow {
	return supporterRow{
		ID:            s.ID,
		UID:           s.UID,
		PaymentID:     s.PaymentID,
		Name:          s.Name,
		Email:         s.Email,
		Amount:        s.Amount,
		Currency:      s.Currency,
		DisplayOnWall: s.DisplayOnWall,
		CreatedAt:     s.CreatedAt,
	}
}

func (r supporterRow) toDomain() domain.Supporter {
	return domain.Supporter{
		ID:            r.ID,
		UID:           r.UID,
		PaymentID:     r.PaymentID,
		Name:          r.Name,
		Email:         r.Email,
		Amount:        r.Amount,
		Currency:      r.Currency,
		DisplayOnWall: r.DisplayOnWall,
		CreatedAt:     r.CreatedAt,
	}
}
