// Package llm streams chat completions from an OpenAI compatible endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/internal/apperror"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Completer writes the model's reply to a system and user prompt into w as it arrives.
type Completer interface {
	StreamCompletion(ctx context.Context, system, prompt string, w io.Writer) error
}

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// headerDoer sets attribution headers on every outgoing request.
type headerDoer struct {
	next    HttpClient
	headers http.Header
}

func (d *headerDoer) Do(req *http.Request) (*http.Response, error) {
	for k, v := range d.headers {
		req.Header[k] = v
	}
	return d.next.Do(req)
}

type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
	configured  bool
	logger      *zap.Logger
}

var _ Completer = (*Client)(nil)

func NewClient(cfg *config.Config, httpClient HttpClient, logger *zap.Logger) *Client {
	headers := http.Header{}
	headers.Set("HTTP-Referer", cfg.AIReferer)
	headers.Set("X-Title", fmt.Sprintf("GitHub Wrapped %d - Your Year in Code", cfg.WrappedYear))

	apiConfig := openai.DefaultConfig(cfg.AIApiKey)
	apiConfig.BaseURL = cfg.AIBaseUrl
	apiConfig.HTTPClient = &headerDoer{next: httpClient, headers: headers}

	return &Client{
		api:         openai.NewClientWithConfig(apiConfig),
		model:       cfg.AIModelID,
		temperature: cfg.AITemperature,
		maxTokens:   cfg.AIMaxTokens,
		configured:  cfg.AIApiKey != "",
		logger:      logger.With(zap.String("package", "llm")),
	}
}

func (c *Client) StreamCompletion(ctx context.Context, system, prompt string, w io.Writer) error {
	logr := c.logger.With(zap.String("method", "StreamCompletion"), zap.String("model", c.model))

	if !c.configured {
		return apperror.Configuration("OPENROUTER_API_KEY is not set")
	}

	stream, err := c.api.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Stream:      true,
	})
	if err != nil {
		logr.Error("failed to open completion stream", zap.Error(err))
		return apperror.Upstream("failed to start completion", err)
	}
	defer stream.Close()

	written := 0
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			logr.Info("completion finished", zap.Int("bytes", written))
			return nil
		}
		if err != nil {
			logr.Error("completion stream failed", zap.Error(err), zap.Int("bytes", written))
			return apperror.Upstream("completion stream failed", err)
		}

		for _, choice := range resp.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			n, err := io.WriteString(w, choice.Delta.Content)
			written += n
			if err != nil {
				return fmt.Errorf("failed to write completion: %w", err)
			}
		}
	}
}
