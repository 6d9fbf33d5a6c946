package handlers

import (
	"errors"
	"net/http"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/internal/apperror"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/Tusharxhub/GitHubWrapped/internal/messages"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"
)

// WebhookVerifier checks a signed webhook delivery against its headers.
type WebhookVerifier interface {
	Verify(payload []byte, headers http.Header) error
}

type Handler struct {
	config           *config.Config
	logger           *zap.Logger
	statsService     domain.StatsService
	supporterService domain.SupporterService
	insightService   domain.InsightService
	webhookVerifier  WebhookVerifier
}

// New builds the handler set. A nil verifier accepts webhook payloads unverified.
func New(
	config *config.Config,
	logger *zap.Logger,
	statsService domain.StatsService,
	supporterService domain.SupporterService,
	insightService domain.InsightService,
	webhookVerifier WebhookVerifier,
) *Handler {
	logger = logger.With(zap.String("package", "handlers"))
	return &Handler{
		config:           config,
		logger:           logger,
		statsService:     statsService,
		supporterService: supporterService,
		insightService:   insightService,
		webhookVerifier:  webhookVerifier,
	}
}

type ResponseFormat struct {
	Status  bool     `json:"status"`
	Data    any      `json:"data,omitempty"`
	Error   []string `json:"error,omitempty"`
	Message string   `json:"message"`
}

func (h Handler) withValidationErrors(errs validation.Errors) []string {
	fieldErrors := make([]string, 0, len(errs))
	for field, err := range errs {
		fieldErrors = append(fieldErrors, field+": "+err.Error())
	}

	return fieldErrors
}

func (h Handler) response(code int, res ResponseFormat) (int, ResponseFormat) {
	if code == 0 {
		code = 200
	}

	if !res.Status {
		res.Status = code < http.StatusBadRequest
	}

	if res.Message == "" {
		res.Message = messages.OperationWasSuccessful
		if code == http.StatusNotFound {
			res.Message = messages.NotFound
		} else if code >= http.StatusBadRequest {
			res.Message = messages.SomethingWentWrong
		}
	}

	return code, res
}

// statusFor maps the error taxonomy to a response code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrConfiguration):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
