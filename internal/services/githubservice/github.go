package githubservice

import (
	"context"
	"strings"

	"github.com/Tusharxhub/GitHubWrapped/internal/apperror"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/Tusharxhub/GitHubWrapped/internal/integrations/githubapi"
	"github.com/google/go-github/v62/github"
	"go.uber.org/zap"
)

// GitHubService exposes the GitHub data a wrapped snapshot is built from, translated into
// domain types and the application error taxonomy.
type GitHubService interface {
	GetUser(ctx context.Context, username string) (*domain.User, error)
	GetPinnedRepositories(ctx context.Context, username string) []domain.PinnedRepository
	GetRepositories(ctx context.Context, username string) ([]domain.Repository, error)
	GetContributions(ctx context.Context, username string) (*domain.Contributions, error)
}

type githubService struct {
	client *githubapi.Client
	logger *zap.Logger
}

func NewGithubService(client *githubapi.Client, logger *zap.Logger) GitHubService {
	logger = logger.With(zap.String("package", "githubservice"))
	return &githubService{
		client: client,
		logger: logger,
	}
}

// GetUser returns a NotFound error for any upstream failure.
func (s *githubService) GetUser(ctx context.Context, username string) (*domain.User, error) {
	logr := s.logger.With(zap.String("method", "GetUser"), zap.String("username", username))

	ghUser, err := s.client.GetUser(ctx, username)
	if err != nil {
		logr.Info("no user data found", zap.Error(err))
		return nil, &apperror.AppError{
			Err:     apperror.ErrNotFound,
			Message: "no user data found",
			Field:   "username",
			Cause:   err,
		}
	}

	return convertToDomainUser(username, ghUser), nil
}

// GetPinnedRepositories returns an empty list when the lookup fails.
func (s *githubService) GetPinnedRepositories(ctx context.Context, username string) []domain.PinnedRepository {
	logr := s.logger.With(zap.String("method", "GetPinnedRepositories"), zap.String("username", username))

	nodes, err := s.client.GetPinnedRepositories(ctx, username)
	if err != nil {
		logr.Error("failed to fetch pinned repositories", zap.Error(err))
		return []domain.PinnedRepository{}
	}

	pinned := make([]domain.PinnedRepository, 0, len(nodes))
	for _, n := range nodes {
		pinned = append(pinned, convertToDomainPinned(n))
	}
	return pinned
}

func (s *githubService) GetRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	nodes, err := s.client.GetRepositories(ctx, username)
	if err != nil {
		return nil, apperror.Upstream("failed to fetch repositories", err)
	}

	repos := make([]domain.Repository, 0, len(nodes))
	for _, n := range nodes {
		repos = append(repos, convertToDomainRepository(n))
	}
	return repos, nil
}

// GetContributions returns an Upstream error for any failure, partial data is never used.
func (s *githubService) GetContributions(ctx context.Context, username string) (*domain.Contributions, error) {
	collection, err := s.client.GetContributions(ctx, username)
	if err != nil {
		s.logger.Error("failed to fetch contribution stats", zap.String("username", username), zap.Error(err))
		return nil, apperror.Upstream("failed to fetch contribution stats", err)
	}

	return convertToDomainContributions(collection), nil
}

func convertToDomainUser(username string, u *github.User) *domain.User {
	return &domain.User{
		Username:        strings.ToLower(username),
		Name:            u.GetName(),
		Bio:             u.GetBio(),
		Email:           u.GetEmail(),
		Company:         u.GetCompany(),
		Location:        u.GetLocation(),
		AvatarURL:       u.GetAvatarURL(),
		BlogURL:         u.GetBlog(),
		TwitterUsername: u.GetTwitterUsername(),
		Followers:       u.GetFollowers(),
		Following:       u.GetFollowing(),
		PublicRepos:     u.GetPublicRepos(),
	}
}

func convertToDomainPinned(n githubapi.PinnedRepositoryNode) domain.PinnedRepository {
	p := domain.PinnedRepository{
		Name:      n.Name,
		URL:       n.URL,
		Stars:     n.Stars,
		ForkCount: n.ForkCount,
	}
	if n.Description != nil {
		p.Description = *n.Description
	}
	if n.PrimaryLanguage != nil {
		p.TopLanguage = n.PrimaryLanguage.Name
		p.TopLanguageColor = n.PrimaryLanguage.Color
	}
	return p
}

func convertToDomainRepository(n githubapi.RepositoryNode) domain.Repository {
	r := domain.Repository{
		Name:      n.Name,
		Stars:     n.Stars,
		ForkCount: n.ForkCount,
		Commits:   n.CommitCount(),
		Languages: make([]domain.LanguageSize, 0, len(n.Languages.Edges)),
	}
	if n.PrimaryLanguage != nil {
		r.Language = n.PrimaryLanguage.Name
		r.LanguageColor = n.PrimaryLanguage.Color
	}
	for _, edge := range n.Languages.Edges {
		r.Languages = append(r.Languages, domain.LanguageSize{
			Name:  edge.Node.Name,
			Color: edge.Node.Color,
			Size:  edge.Size,
		})
	}
	return r
}

func convertToDomainContributions(c *githubapi.ContributionsCollection) *domain.Contributions {
	calendar := domain.ContributionCalendar{
		TotalContributions: c.ContributionCalendar.TotalContributions,
		Weeks:              make([]domain.Week, 0, len(c.ContributionCalendar.Weeks)),
	}
	for _, w := range c.ContributionCalendar.Weeks {
		week := domain.Week{ContributionDays: make([]domain.ContributionDay, 0, len(w.ContributionDays))}
		for _, d := range w.ContributionDays {
			week.ContributionDays = append(week.ContributionDays, domain.ContributionDay{
				Weekday:           d.Weekday,
				Date:              d.Date,
				ContributionCount: d.ContributionCount,
				Color:             d.Color,
			})
		}
		calendar.Weeks = append(calendar.Weeks, week)
	}

	return &domain.Contributions{
		Commits:            c.Commits,
		IssuesClosed:       c.IssuesClosed,
		PullRequestsClosed: c.PullRequestsClosed,
		Calendar:           calendar,
	}
}
