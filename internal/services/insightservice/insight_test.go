package insightservice_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/internal/apperror"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain/mock_domain"
	"github.com/Tusharxhub/GitHubWrapped/internal/services/insightservice"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCompleter struct {
	system string
	prompt string
	reply  string
}

func (f *fakeCompleter) StreamCompletion(_ context.Context, system, prompt string, w io.Writer) error {
	f.system = system
	f.prompt = prompt
	_, err := io.WriteString(w, f.reply)
	return err
}

func snapshotDTO() *domain.StatsDTO {
	return &domain.StatsDTO{
		Username: "octocat",
		User:     domain.UserDTO{Username: "octocat", Name: "The Octocat", Followers: 10},
		Stats: domain.StatsDetailsDTO{
			TotalCommits:  42,
			TopRepository: &domain.TopRepository{Name: "hello-world", Stars: 7},
			ContributionCalendar: domain.ContributionCalendar{Weeks: []domain.Week{{ContributionDays: []domain.ContributionDay{
				{Weekday: 3, Date: "2025-01-01", ContributionCount: 2},
				{Weekday: 4, Date: "2025-01-02", ContributionCount: 0},
				{Weekday: 5, Date: "2025-01-03", ContributionCount: 0},
				{Weekday: 6, Date: "2025-01-04", ContributionCount: 5},
				{Weekday: 0, Date: "2025-01-05", ContributionCount: 1},
			}}}},
		},
	}
}

func TestBuildRequest(t *testing.T) {
	req := insightservice.BuildRequest(snapshotDTO(), 2025)

	require.Equal(t, "octocat", req.Username)
	require.Equal(t, "The Octocat", req.Name)
	require.Equal(t, 42, req.TotalCommits)
	require.Equal(t, 2, req.LongestStreak)
	require.Equal(t, 2, req.LongestGap)
	require.Equal(t, 2, req.WeekendActivity)
	require.Equal(t, 3, req.ActiveDays)
	require.Equal(t, domain.BucketTotal{Name: "Jan", Total: 8}, req.MonthlyContributions[0])
	require.Len(t, req.DailyContributions, 7)
}

func TestUserPromptEmbedsStats(t *testing.T) {
	prompt, err := insightservice.UserPrompt(insightservice.BuildRequest(snapshotDTO(), 2025), 2025)
	require.NoError(t, err)

	require.Contains(t, prompt, "GitHub Profile: octocat")
	require.Contains(t, prompt, "Year: 2025")
	require.Contains(t, prompt, `"totalCommits":42`)
	require.Contains(t, prompt, `"longestStreak":2`)
	require.Contains(t, prompt, "The Roast")
}

func TestUserPromptDefaultsUsername(t *testing.T) {
	prompt, err := insightservice.UserPrompt(insightservice.Request{}, 2025)
	require.NoError(t, err)
	require.Contains(t, prompt, "GitHub Profile: Developer")
}

func TestStreamInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	stats := mock_domain.NewMockStatsService(ctrl)
	stats.EXPECT().GetStats(gomock.Any(), "octocat").Return(snapshotDTO(), nil)

	completer := &fakeCompleter{reply: "You shipped 42 commits."}
	svc := insightservice.NewInsightService(&config.Config{WrappedYear: 2025}, stats, completer, zap.NewNop())

	var out strings.Builder
	require.NoError(t, svc.StreamInsights(context.Background(), "octocat", &out))
	require.Equal(t, "You shipped 42 commits.", out.String())
	require.Contains(t, completer.system, "GitHubWrapped AI")
	require.Contains(t, completer.prompt, "GitHub Profile: octocat")
}

func TestStreamInsightsUnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	stats := mock_domain.NewMockStatsService(ctrl)
	stats.EXPECT().GetStats(gomock.Any(), "ghost").Return(nil, apperror.NotFound("stats", "ghost"))

	completer := &fakeCompleter{}
	svc := insightservice.NewInsightService(&config.Config{WrappedYear: 2025}, stats, completer, zap.NewNop())

	var out strings.Builder
	err := svc.StreamInsights(context.Background(), "ghost", &out)
	require.ErrorIs(t, err, apperror.ErrNotFound)
	require.Empty(t, out.String())
	require.Empty(t, completer.prompt)
}
