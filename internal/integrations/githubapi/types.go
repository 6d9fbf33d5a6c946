package githubapi

// GitHubError represents an error response from the GitHub API.
type GitHubError struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
	Status           string `json:"status"`
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type graphqlResponse[T any] struct {
	Data   *T             `json:"data"`
	Errors []graphqlError `json:"errors"`
}

type Language struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type PinnedRepositoryNode struct {
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	URL             string    `json:"url"`
	Stars           int       `json:"stars"`
	ForkCount       int       `json:"forkCount"`
	PrimaryLanguage *Language `json:"primaryLanguage"`
}

type pinnedItemsData struct {
	User *struct {
		PinnedItems struct {
			Edges []struct {
				Node PinnedRepositoryNode `json:"node"`
			} `json:"edges"`
		} `json:"pinnedItems"`
	} `json:"user"`
}

type LanguageEdge struct {
	Node Language `json:"node"`
	Size int64    `json:"size"`
}

type RepositoryNode struct {
	Name            string    `json:"name"`
	Stars           int       `json:"stars"`
	ForkCount       int       `json:"forkCount"`
	PrimaryLanguage *Language `json:"primaryLanguage"`
	Commits         *struct {
		Target *struct {
			History struct {
				TotalCount int `json:"totalCount"`
			} `json:"history"`
		} `json:"target"`
	} `json:"commits"`
	Languages struct {
		Edges []LanguageEdge `json:"edges"`
	} `json:"languages"`
}

// CommitCount is the default branch history count, zero for empty repositories.
func (r RepositoryNode) CommitCount() int {
	if r.Commits == nil || r.Commits.Target == nil {
		return 0
	}
	return r.Commits.Target.History.TotalCount
}

type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type repositoriesData struct {
	User *struct {
		Repositories struct {
			Edges []struct {
				Node RepositoryNode `json:"node"`
			} `json:"edges"`
			PageInfo PageInfo `json:"pageInfo"`
		} `json:"repositories"`
	} `json:"user"`
}

type ContributionDay struct {
	Weekday           int    `json:"weekday"`
	Date              string `json:"date"`
	ContributionCount int    `json:"contributionCount"`
	Color             string `json:"color"`
}

type ContributionCalendar struct {
	TotalContributions int `json:"totalContributions"`
	Weeks              []struct {
		ContributionDays []ContributionDay `json:"contributionDays"`
	} `json:"weeks"`
}

type ContributionsCollection struct {
	Commits              int                  `json:"commits"`
	IssuesClosed         int                  `json:"issuesClosed"`
	PullRequestsClosed   int                  `json:"pullRequestsClosed"`
	ContributionCalendar ContributionCalendar `json:"contributionCalendar"`
}

type contributionsData struct {
	User *struct {
		ContributionsCollection ContributionsCollection `json:"contributionsCollection"`
	} `json:"user"`
}
