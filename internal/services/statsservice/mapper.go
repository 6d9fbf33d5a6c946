package statsservice

import (
	"time"

	"github.com/Tusharxhub/GitHubWrapped/internal/aggregator"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
)

// ToStatsDTO builds the response shape for a stored snapshot. Monthly and daily buckets are
// derived from the calendar for the wrapped year.
func ToStatsDTO(snapshot *domain.Snapshot, year int) *domain.StatsDTO {
	summary := aggregator.Summarize(snapshot.Stats.ContributionCalendar, year)

	return &domain.StatsDTO{
		Username: snapshot.User.Username,
		User:     toUserDTO(snapshot.User),
		Stats:    toStatsDetailsDTO(snapshot.Stats, summary),
	}
}

func toUserDTO(u domain.User) domain.UserDTO {
	pinned := u.PinnedRepositories
	if pinned == nil {
		pinned = []domain.PinnedRepository{}
	}

	return domain.UserDTO{
		ID:                 u.UID.String(),
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
		PinnedRepositories: pinned,
		CreatedDate:        formatDate(u.CreatedAt),
	}
}

func toStatsDetailsDTO(s domain.Stats, summary aggregator.Summary) domain.StatsDetailsDTO {
	languages := s.LanguagesStats
	if languages == nil {
		languages = []domain.LanguageStat{}
	}
	calendar := s.ContributionCalendar
	if calendar.Weeks == nil {
		calendar.Weeks = []domain.Week{}
	}

	return domain.StatsDetailsDTO{
		ID:                      s.UID.String(),
		Username:                s.Username,
		UserID:                  s.UserID.String(),
		TotalCommits:            s.TotalCommits,
		TotalIssuesClosed:       s.TotalIssuesClosed,
		TotalPullRequestsClosed: s.TotalPullRequestsClosed,
		TotalStars:              s.TotalStars,
		TotalForks:              s.TotalForks,
		TopRepository:           s.TopRepository,
		LanguagesStats:          languages,
		ContributionCalendar:    calendar,
		MonthlyContributions:    summary.MonthlyContributions,
		DailyContributions:      summary.DailyContributions,
		CreatedDate:             formatDate(s.CreatedAt),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
