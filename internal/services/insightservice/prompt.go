package insightservice

import (
	"fmt"

	"github.com/Tusharxhub/GitHubWrapped/internal/aggregator"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/bytedance/sonic"
)

const systemPrompt = `You are GitHubWrapped AI, a witty, insightful and slightly sassy code companion who writes personalized year-in-review summaries. You find the humor in coding patterns and turn dry statistics into entertaining stories.

Your personality:
- Clever and punny, you love a good code joke
- Supportive but happy to roast gently
- You notice the small details that make each developer unique
- You talk like a friend who knows a lot about their coding habits

Guidelines:
- Reference SPECIFIC data points from the stats (exact numbers, languages, repositories)
- Make observations that feel personal, not generic
- Use emojis for emphasis, 2 to 4 per section at most
- Keep each section punchy: 2 to 3 sentences
- Be playful but never mean-spirited
- Write in English only`

const userPromptFormat = `
Analyze this GitHub developer's %[2]d activity and write a personalized GitHubWrapped summary.

Write these sections, 2 to 3 sentences each, specific to their data:

**🎯 Your Year in Code:**
Summarize their year with specific numbers (commits, contributions, active days).

**⚡ Code Superpower:**
Give them a creative superpower title based on their standout pattern, such as "The Weekend Warrior" for high weekend activity or "The Streak Master" for long streaks. Explain why they earned it.

**🔮 Commit Horoscope:**
Make a fun prediction from their contribution rhythm (daily patterns, monthly trends) and one actionable piece of advice for next year.

**🏆 Week of Glory:**
Find their most productive period and celebrate it with specifics.

**😴 The Drought:**
Playfully acknowledge their longest break, referencing the actual gap length.

**🦊 Spirit Animal:**
Assign a coding spirit animal that matches their consistency, bursts, languages and weekend habits.

**🔥 The Roast:**
One roast that is funny but not cruel, about something specific in their stats.

GitHub Profile: %[1]s
Year: %[2]d
Stats: %[3]s`

// Request is the stats payload the model is asked to comment on.
type Request struct {
	Username                string                    `json:"username"`
	Name                    string                    `json:"name"`
	Bio                     string                    `json:"bio"`
	BlogURL                 string                    `json:"blogUrl"`
	TwitterUsername         string                    `json:"twitterUsername"`
	Followers               int                       `json:"followers"`
	Following               int                       `json:"following"`
	PublicRepos             int                       `json:"publicRepos"`
	PinnedRepositories      []domain.PinnedRepository `json:"pinnedRepositories"`
	TotalCommits            int                       `json:"totalCommits"`
	TotalIssuesClosed       int                       `json:"totalIssuesClosed"`
	TotalPullRequestsClosed int                       `json:"totalPullRequestsClosed"`
	TotalStars              int                       `json:"totalStars"`
	TotalForks              int                       `json:"totalForks"`
	TopRepository           *domain.TopRepository     `json:"topRepository"`
	LanguagesStats          []domain.LanguageStat     `json:"languagesStats"`
	MonthlyContributions    []domain.BucketTotal      `json:"monthlyContributions"`
	DailyContributions      []domain.BucketTotal      `json:"dailyContributions"`
	LongestStreak           int                       `json:"longestStreak"`
	LongestGap              int                       `json:"longestGap"`
	WeekendActivity         int                       `json:"weekendActivity"`
	ActiveDays              int                       `json:"activeDays"`
}

// BuildRequest derives the insight payload from a stored snapshot.
func BuildRequest(dto *domain.StatsDTO, year int) Request {
	summary := aggregator.Summarize(dto.Stats.ContributionCalendar, year)

	return Request{
		Username:                dto.Username,
		Name:                    dto.User.Name,
		Bio:                     dto.User.Bio,
		BlogURL:                 dto.User.BlogURL,
		TwitterUsername:         dto.User.TwitterUsername,
		Followers:               dto.User.Followers,
		Following:               dto.User.Following,
		PublicRepos:             dto.User.PublicRepos,
		PinnedRepositories:      dto.User.PinnedRepositories,
		TotalCommits:            dto.Stats.TotalCommits,
		TotalIssuesClosed:       dto.Stats.TotalIssuesClosed,
		TotalPullRequestsClosed: dto.Stats.TotalPullRequestsClosed,
		TotalStars:              dto.Stats.TotalStars,
		TotalForks:              dto.Stats.TotalForks,
		TopRepository:           dto.Stats.TopRepository,
		LanguagesStats:          dto.Stats.LanguagesStats,
		MonthlyContributions:    summary.MonthlyContributions,
		DailyContributions:      summary.DailyContributions,
		LongestStreak:           summary.LongestStreak,
		LongestGap:              summary.LongestGap,
		WeekendActivity:         summary.WeekendActivity,
		ActiveDays:              summary.ActiveDays,
	}
}

// UserPrompt embeds the serialized request into the section instructions.
func UserPrompt(req Request, year int) (string, error) {
	stats, err := sonic.MarshalString(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode insight request: %w", err)
	}

	username := req.Username
	if username == "" {
		username = "Developer"
	}
	return fmt.Sprintf(userPromptFormat, username, year, stats), nil
}
