package githubservice_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/internal/apperror"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/Tusharxhub/GitHubWrapped/internal/integrations/githubapi"
	"github.com/Tusharxhub/GitHubWrapped/internal/services/githubservice"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeGitHub serves the REST profile endpoint and answers GraphQL queries by their
// top-level field.
func fakeGitHub(t *testing.T, graphql map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/users/octocat":
			_, _ = w.Write([]byte(`{"login":"Octocat","name":"The Octocat","blog":"https://github.blog","followers":3}`))
		case r.URL.Path == "/graphql":
			body, _ := io.ReadAll(r.Body)
			for field, resp := range graphql {
				if strings.Contains(string(body), field) {
					if resp == "" {
						w.WriteHeader(http.StatusInternalServerError)
						return
					}
					_, _ = w.Write([]byte(resp))
					return
				}
			}
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		}
	}))
}

func newService(t *testing.T, srv *httptest.Server) githubservice.GitHubService {
	t.Helper()
	cfg := &config.Config{
		GithubToken:      "ghp_test",
		GithubBaseUrl:    srv.URL,
		GithubGraphQLUrl: srv.URL + "/graphql",
		GithubMaxPages:   5,
		WrappedYear:      2025,
	}
	client, err := githubapi.NewClient(cfg, srv.Client(), zap.NewNop())
	require.NoError(t, err)
	return githubservice.NewGithubService(client, zap.NewNop())
}

func TestGetUserNormalizesAndMaps(t *testing.T) {
	srv := fakeGitHub(t, nil)
	defer srv.Close()
	svc := newService(t, srv)

	user, err := svc.GetUser(context.Background(), "octocat")
	require.NoError(t, err)
	require.Equal(t, "octocat", user.Username)
	require.Equal(t, "The Octocat", user.Name)
	require.Equal(t, "https://github.blog", user.BlogURL)
	require.Equal(t, 3, user.Followers)
}

func TestGetUserUnknownIsNotFound(t *testing.T) {
	srv := fakeGitHub(t, nil)
	defer srv.Close()
	svc := newService(t, srv)

	_, err := svc.GetUser(context.Background(), "ghost")
	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetPinnedRepositoriesFailureIsEmpty(t *testing.T) {
	srv := fakeGitHub(t, map[string]string{"pinnedItems": ""})
	defer srv.Close()
	svc := newService(t, srv)

	pinned := svc.GetPinnedRepositories(context.Background(), "octocat")
	require.NotNil(t, pinned)
	require.Empty(t, pinned)
}

func TestGetContributionsFailureIsUpstream(t *testing.T) {
	srv := fakeGitHub(t, map[string]string{"contributionsCollection": ""})
	defer srv.Close()
	svc := newService(t, srv)

	_, err := svc.GetContributions(context.Background(), "octocat")
	require.ErrorIs(t, err, apperror.ErrUpstream)
}

func TestGetRepositoriesMapsLanguages(t *testing.T) {
	srv := fakeGitHub(t, map[string]string{"repositories": `{"data":{"user":{"repositories":{"edges":[
		{"node":{"name":"wrapped","stars":7,"forkCount":2,"primaryLanguage":{"name":"Go","color":"#00ADD8"},
		"commits":{"target":{"history":{"totalCount":30}}},
		"languages":{"edges":[{"node":{"name":"Go","color":"#00ADD8"},"size":900},{"node":{"name":"Makefile","color":"#427819"},"size":40}]}}}
	],"pageInfo":{"hasNextPage":false,"endCursor":"x"}}}}}`})
	defer srv.Close()
	svc := newService(t, srv)

	repos, err := svc.GetRepositories(context.Background(), "octocat")
	require.NoError(t, err)
	require.Equal(t, []domain.Repository{{
		Name:          "wrapped",
		Stars:         7,
		ForkCount:     2,
		Language:      "Go",
		LanguageColor: "#00ADD8",
		Commits:       30,
		Languages: []domain.LanguageSize{
			{Name: "Go", Color: "#00ADD8", Size: 900},
			{Name: "Makefile", Color: "#427819", Size: 40},
		},
	}}, repos)
}
