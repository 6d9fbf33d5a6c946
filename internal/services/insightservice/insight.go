package insightservice

import (
	"context"
	"io"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/Tusharxhub/GitHubWrapped/internal/integrations/llm"
	"go.uber.org/zap"
)

type insightService struct {
	stats     domain.StatsService
	completer llm.Completer
	year      int
	logger    *zap.Logger
}

var _ domain.InsightService = (*insightService)(nil)

func NewInsightService(cfg *config.Config, stats domain.StatsService, completer llm.Completer, logger *zap.Logger) domain.InsightService {
	logger = logger.With(zap.String("package", "insightservice"))
	return &insightService{
		stats:     stats,
		completer: completer,
		year:      cfg.WrappedYear,
		logger:    logger,
	}
}

// StreamInsights writes the AI commentary for a stored snapshot to w. A username without
// stats yields a NotFound error before anything is written.
func (s *insightService) StreamInsights(ctx context.Context, username string, w io.Writer) error {
	logr := s.logger.With(zap.String("method", "StreamInsights"), zap.String("username", username))

	dto, err := s.stats.GetStats(ctx, username)
	if err != nil {
		return err
	}

	prompt, err := UserPrompt(BuildRequest(dto, s.year), s.year)
	if err != nil {
		return err
	}

	logr.Info("requesting insights")
	return s.completer.StreamCompletion(ctx, systemPrompt, prompt, w)
}
