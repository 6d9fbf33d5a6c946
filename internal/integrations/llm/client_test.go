package llm_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/internal/apperror"
	"github.com/Tusharxhub/GitHubWrapped/internal/integrations/llm"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type seenRequest struct {
	Path        string
	Referer     string
	Title       string
	Model       string
	Temperature float32
	MaxTokens   int
	Messages    int
}

func newStreamServer(t *testing.T, chunks ...string) (*httptest.Server, chan seenRequest) {
	t.Helper()
	seen := make(chan seenRequest, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Model       string  `json:"model"`
			Temperature float32 `json:"temperature"`
			MaxTokens   int     `json:"max_tokens"`
			Messages    []any   `json:"messages"`
		}
		_ = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&body)
		seen <- seenRequest{
			Path:        r.URL.Path,
			Referer:     r.Header.Get("HTTP-Referer"),
			Title:       r.Header.Get("X-Title"),
			Model:       body.Model,
			Temperature: body.Temperature,
			MaxTokens:   body.MaxTokens,
			Messages:    len(body.Messages),
		}

		w.Header().Set("Content-Type", "text/event-stream")
		for _, c := range chunks {
			payload, _ := sonic.MarshalString(map[string]any{
				"id":      "chunk",
				"object":  "chat.completion.chunk",
				"choices": []map[string]any{{"index": 0, "delta": map[string]string{"content": c}}},
			})
			fmt.Fprintf(w, "data: %s\n\n", payload)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		WrappedYear:   2025,
		AIBaseUrl:     baseURL,
		AIApiKey:      "sk-test",
		AIModelID:     "mistralai/mistral-7b-instruct",
		AITemperature: 0.9,
		AIMaxTokens:   1200,
		AIReferer:     "https://githubwrapped01.vercel.app/",
	}
}

func TestStreamCompletionWritesChunks(t *testing.T) {
	srv, seen := newStreamServer(t, "Hello ", "octo", "cat")
	client := llm.NewClient(testConfig(srv.URL+"/api/v1"), srv.Client(), zap.NewNop())

	var out strings.Builder
	err := client.StreamCompletion(context.Background(), "system", "prompt", &out)
	require.NoError(t, err)
	require.Equal(t, "Hello octocat", out.String())

	req := <-seen
	require.Equal(t, "/api/v1/chat/completions", req.Path)
	require.Equal(t, "https://githubwrapped01.vercel.app/", req.Referer)
	require.Equal(t, "GitHub Wrapped 2025 - Your Year in Code", req.Title)
	require.Equal(t, "mistralai/mistral-7b-instruct", req.Model)
	require.InDelta(t, 0.9, req.Temperature, 0.0001)
	require.Equal(t, 1200, req.MaxTokens)
	require.Equal(t, 2, req.Messages)
}

func TestStreamCompletionWithoutKey(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:0")
	cfg.AIApiKey = ""
	client := llm.NewClient(cfg, http.DefaultClient, zap.NewNop())

	err := client.StreamCompletion(context.Background(), "system", "prompt", &strings.Builder{})
	require.ErrorIs(t, err, apperror.ErrConfiguration)
}

func TestStreamCompletionUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"rate limited","type":"rate_limit"}}`)
	}))
	t.Cleanup(srv.Close)

	client := llm.NewClient(testConfig(srv.URL), srv.Client(), zap.NewNop())
	err := client.StreamCompletion(context.Background(), "system", "prompt", &strings.Builder{})
	require.ErrorIs(t, err, apperror.ErrUpstream)
}
