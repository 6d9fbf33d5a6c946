package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is the profile snapshot taken when stats are first generated. It is never updated.
type User struct {
	ID                 int                `json:"-"`
	UID                uuid.UUID          `json:"id"`
	Username           string             `json:"username"`
	Name               string             `json:"name"`
	Bio                string             `json:"bio"`
	Email              string             `json:"email"`
	Company            string             `json:"company"`
	Location           string             `json:"location"`
	AvatarURL          string             `json:"avatarUrl"`
	BlogURL            string             `json:"blogUrl"`
	TwitterUsername    string             `json:"twitterUsername"`
	Followers          int                `json:"followers"`
	Following          int                `json:"following"`
	PublicRepos        int                `json:"publicRepos"`
	PinnedRepositories []PinnedRepository `json:"pinnedRepositories"`
	CreatedAt          time.Time          `json:"createdDate"`
}

type PinnedRepository struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	URL              string `json:"url"`
	Stars            int    `json:"stars"`
	ForkCount        int    `json:"forkCount"`
	TopLanguage      string `json:"topLanguage"`
	TopLanguageColor string `json:"topLanguageColor"`
}

// Stats is the derived metrics snapshot, one per username.
type Stats struct {
	ID                      int                  `json:"-"`
	UID                     uuid.UUID            `json:"id"`
	Username                string               `json:"username"`
	UserID                  uuid.UUID            `json:"userId"`
	TotalCommits            int                  `json:"totalCommits"`
	TotalIssuesClosed       int                  `json:"totalIssuesClosed"`
	TotalPullRequestsClosed int                  `json:"totalPullRequestsClosed"`
	TotalStars              int                  `json:"totalStars"`
	TotalForks              int                  `json:"totalForks"`
	TopRepository           *TopRepository       `json:"topRepository"`
	LanguagesStats          []LanguageStat       `json:"languagesStats"`
	ContributionCalendar    ContributionCalendar `json:"contributionCalendar"`
	CreatedAt               time.Time            `json:"createdDate"`
}

type TopRepository struct {
	Name             string `json:"name"`
	TopLanguage      string `json:"topLanguage"`
	TopLanguageColor string `json:"topLanguageColor"`
	Stars            int    `json:"stars"`
	Forks            int    `json:"forks"`
}

type LanguageStat struct {
	Language   string `json:"language"`
	Color      string `json:"color"`
	LinesCount int64  `json:"linesCount"`
}

type ContributionCalendar struct {
	TotalContributions int    `json:"totalContributions"`
	Weeks              []Week `json:"weeks"`
}

type Week struct {
	ContributionDays []ContributionDay `json:"contributionDays"`
}

// ContributionDay holds one calendar day. Date is a YYYY-MM-DD string as reported upstream.
type ContributionDay struct {
	Weekday           int    `json:"weekday"`
	Date              string `json:"date"`
	ContributionCount int    `json:"contributionCount"`
	Color             string `json:"color"`
}

// Snapshot is a user and its stats, the unit written by one generation.
type Snapshot struct {
	User  User
	Stats Stats
}

// Repository is a non-fork repository as fetched for aggregation.
type Repository struct {
	Name          string
	Stars         int
	ForkCount     int
	Language      string
	LanguageColor string
	// Commits counts default branch commits inside the wrapped year.
	Commits   int
	Languages []LanguageSize
}

type LanguageSize struct {
	Name  string
	Color string
	Size  int64
}

// Contributions is the contribution period summary for the wrapped year.
type Contributions struct {
	Commits            int
	IssuesClosed       int
	PullRequestsClosed int
	Calendar           ContributionCalendar
}

// LeaderboardEntry joins a stats row with its user for the top users board.
type LeaderboardEntry struct {
	Username                string `db:"username" json:"username"`
	Name                    string `db:"name" json:"name"`
	AvatarURL               string `db:"avatar_url" json:"avatarUrl"`
	TotalContributions      int    `db:"total_contributions" json:"totalContributions"`
	TotalCommits            int    `db:"total_commits" json:"totalCommits"`
	TotalIssuesClosed       int    `db:"total_issues_closed" json:"totalIssuesClosed"`
	TotalPullRequestsClosed int    `db:"total_pull_requests_closed" json:"totalPullRequestsClosed"`
	TotalStars              int    `db:"total_stars" json:"totalStars"`
	TotalForks              int    `db:"total_forks" json:"totalForks"`
}

type Supporter struct {
	ID            int
	UID           uuid.UUID
	PaymentID     string
	Name          string
	Email         string
	Amount        decimal.Decimal
	Currency      string
	DisplayOnWall bool
	CreatedAt     time.Time
}

type SupporterAggregate struct {
	TotalCount  int
	TotalAmount decimal.Decimal
}

// Payment is a successful donation event, already verified and unwrapped.
type Payment struct {
	PaymentID        string
	Name             string
	Email            string
	AmountMinorUnits int64
	Currency         string
	ProductIDs       []string
}
