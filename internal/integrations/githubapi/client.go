package githubapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/internal/apperror"
	"github.com/bytedance/sonic"
	"github.com/google/go-github/v62/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultMaxPages = 50
)

var ErrUserMissing = errors.New("github user missing from response")

type HttpClient interface {
	Do(*http.Request) (*http.Response, error)
}

type Client struct {
	graphqlURL string
	token      string
	maxPages   int
	yearStart  time.Time
	yearEnd    time.Time
	httpClient HttpClient
	rest       *github.Client
	logger     *zap.Logger
}

// NewClient builds a GitHub client. GraphQL calls go through httpClient with a bearer token;
// REST profile lookups go through go-github over an oauth2 token transport.
func NewClient(cfg *config.Config, httpClient HttpClient, logger *zap.Logger) (*Client, error) {
	if cfg.GithubToken == "" {
		return nil, apperror.Configuration("GITHUB_TOKEN environment variable is not set")
	}

	restBase := &http.Client{Timeout: defaultTimeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, restBase)
	rest := github.NewClient(oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GithubToken})))

	if base := cfg.GetGithubBaseUrl(); base != "" {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, apperror.Configuration(fmt.Sprintf("invalid GITHUB_BASE_URL %q", cfg.GetGithubBaseUrl()))
		}
		rest.BaseURL = u
	}

	maxPages := cfg.GithubMaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	return &Client{
		graphqlURL: cfg.GithubGraphQLUrl,
		token:      cfg.GithubToken,
		maxPages:   maxPages,
		yearStart:  cfg.WrappedYearStart(),
		yearEnd:    cfg.WrappedYearEnd(),
		httpClient: httpClient,
		rest:       rest,
		logger:     logger.With(zap.String("package", "githubapi")),
	}, nil
}

// GetUser fetches the public profile through the REST API.
func (c *Client) GetUser(ctx context.Context, username string) (*github.User, error) {
	user, _, err := c.rest.Users.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get github user %s: %w", username, err)
	}
	return user, nil
}

func (c *Client) GetPinnedRepositories(ctx context.Context, username string) ([]PinnedRepositoryNode, error) {
	data, err := doQuery[pinnedItemsData](ctx, c, pinnedRepositoriesQuery, map[string]any{"login": username})
	if err != nil {
		return nil, fmt.Errorf("failed to get pinned repositories: %w", err)
	}
	if data.User == nil {
		return nil, ErrUserMissing
	}

	nodes := make([]PinnedRepositoryNode, 0, len(data.User.PinnedItems.Edges))
	for _, edge := range data.User.PinnedItems.Edges {
		nodes = append(nodes, edge.Node)
	}
	return nodes, nil
}

// GetRepositories walks every page of non-fork repositories. A failed page ends the walk and
// the repositories collected so far are returned without error. The walk also stops at the
// configured page ceiling.
func (c *Client) GetRepositories(ctx context.Context, username string) ([]RepositoryNode, error) {
	logr := c.logger.With(zap.String("method", "GetRepositories"), zap.String("username", username))

	var (
		repos  []RepositoryNode
		cursor *string
	)

	for page := 1; ; page++ {
		if page > c.maxPages {
			logr.Warn("repository page ceiling reached", zap.Int("max_pages", c.maxPages), zap.Int("repos", len(repos)))
			break
		}

		vars := map[string]any{
			"login": username,
			"after": cursor,
			"since": c.yearStart.Format(time.RFC3339),
			"until": c.yearEnd.Format(time.RFC3339),
		}

		data, err := doQuery[repositoriesData](ctx, c, repositoriesQuery, vars)
		if err == nil && data.User == nil {
			err = ErrUserMissing
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			logr.Warn("repository page failed, returning partial result", zap.Int("page", page), zap.Int("repos", len(repos)), zap.Error(err))
			break
		}

		conn := data.User.Repositories
		for _, edge := range conn.Edges {
			repos = append(repos, edge.Node)
		}

		if !conn.PageInfo.HasNextPage || conn.PageInfo.EndCursor == "" {
			break
		}
		next := conn.PageInfo.EndCursor
		cursor = &next
	}

	logr.Debug("fetched repositories", zap.Int("count", len(repos)))
	return repos, nil
}

func (c *Client) GetContributions(ctx context.Context, username string) (*ContributionsCollection, error) {
	vars := map[string]any{
		"login": username,
		"from":  c.yearStart.Format(time.RFC3339),
		"to":    c.yearEnd.Format(time.RFC3339),
	}

	data, err := doQuery[contributionsData](ctx, c, contributionsQuery, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to get contributions: %w", err)
	}
	if data.User == nil {
		return nil, ErrUserMissing
	}

	return &data.User.ContributionsCollection, nil
}

func doQuery[T any](ctx context.Context, c *Client, query string, variables map[string]any) (*T, error) {
	payload, err := sonic.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create graphql request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit graphql request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read graphql response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var ghErr GitHubError
		if err := sonic.Unmarshal(body, &ghErr); err != nil || ghErr.Message == "" {
			ghErr.Message = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("graphql request failed with status %d: %s", resp.StatusCode, ghErr.Message)
	}

	var out graphqlResponse[T]
	if err := sonic.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal graphql response: %w", err)
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("graphql error: %s", out.Errors[0].Message)
	}
	if out.Data == nil {
		return nil, errors.New("graphql response has no data")
	}

	return out.Data, nil
}
