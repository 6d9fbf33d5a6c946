package domain

import "github.com/Tusharxhub/GitHubWrapped/pkg/pagination"

type StatsDTO struct {
	Username string          `json:"username"`
	User     UserDTO         `json:"user"`
	Stats    StatsDetailsDTO `json:"stats"`
}

type UserDTO struct {
	ID                 string             `json:"id"`
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
	CreatedDate        string             `json:"createdDate"`
}

type StatsDetailsDTO struct {
	ID                      string               `json:"id"`
	Username                string               `json:"username"`
	UserID                  string               `json:"userId"`
	TotalCommits            int                  `json:"totalCommits"`
	TotalIssuesClosed       int                  `json:"totalIssuesClosed"`
	TotalPullRequestsClosed int                  `json:"totalPullRequestsClosed"`
	TotalStars              int                  `json:"totalStars"`
	TotalForks              int                  `json:"totalForks"`
	TopRepository           *TopRepository       `json:"topRepository"`
	LanguagesStats          []LanguageStat       `json:"languagesStats"`
	ContributionCalendar    ContributionCalendar `json:"contributionCalendar"`
	MonthlyContributions    []BucketTotal        `json:"monthlyContributions"`
	DailyContributions      []BucketTotal        `json:"dailyContributions"`
	CreatedDate             string               `json:"createdDate"`
}

// BucketTotal is a labelled sum, one per month or weekday.
type BucketTotal struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

type AllUserDTO struct {
	Username string `json:"username"`
}

type SupporterDTO struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	CreatedAt string  `json:"createdAt"`
}

type SupportersDTO struct {
	Supporters  []SupporterDTO         `json:"supporters"`
	TotalCount  int                    `json:"totalCount"`
	TotalAmount float64                `json:"totalAmount"`
	Pagination  *pagination.Pagination `json:"pagination"`
}
