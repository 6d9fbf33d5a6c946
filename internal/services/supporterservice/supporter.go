package supporterservice

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/internal/apperror"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/Tusharxhub/GitHubWrapped/internal/repositories"
	"github.com/Tusharxhub/GitHubWrapped/pkg/pagination"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultSupporterName = "Anonymous Supporter"
	DefaultCurrency      = "USD"
)

type supporterService struct {
	repo      repositories.SupporterRepository
	productID string
	logger    *zap.Logger
}

var _ domain.SupporterService = (*supporterService)(nil)

func NewSupporterService(cfg *config.Config, repo repositories.SupporterRepository, logger *zap.Logger) domain.SupporterService {
	logger = logger.With(zap.String("package", "supporterservice"))
	return &supporterService{
		repo:      repo,
		productID: cfg.DonationProductID,
		logger:    logger,
	}
}

// RecordPayment stores a supporter for a donation payment at most once per payment id.
// Payments without the donation product are acknowledged and dropped.
func (s *supporterService) RecordPayment(ctx context.Context, payment domain.Payment) (domain.PaymentOutcome, error) {
	logr := s.logger.With(zap.String("method", "RecordPayment"), zap.String("payment_id", payment.PaymentID))

	if err := s.checkPayment(payment); err != nil {
		if errors.Is(err, apperror.ErrIgnored) {
			logr.Info("ignoring payment", zap.Error(err))
			return domain.PaymentProductNotMatching, nil
		}
		logr.Warn("rejecting payment", zap.Error(err))
		return "", err
	}

	existing, err := s.repo.FindByPaymentID(ctx, payment.PaymentID)
	if err != nil {
		logr.Error("error in FindByPaymentID", zap.Error(err))
		return "", fmt.Errorf("failed to look up payment: %w", err)
	}
	if existing != nil {
		logr.Info("payment already processed")
		return domain.PaymentAlreadyProcessed, nil
	}

	supporter := NewSupporter(payment)
	if err := s.repo.Create(ctx, supporter); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			logr.Info("payment already processed")
			return domain.PaymentAlreadyProcessed, nil
		}
		logr.Error("error in Create", zap.Error(err))
		return "", fmt.Errorf("failed to store supporter: %w", err)
	}

	logr.Info("new supporter added",
		zap.String("name", supporter.Name),
		zap.String("currency", supporter.Currency),
		zap.String("amount", supporter.Amount.StringFixed(2)),
	)
	return domain.PaymentSupporterAdded, nil
}

// checkPayment returns an ErrIgnored error when the cart lacks the donation product and an
// ErrValidation error when the payment cannot be keyed.
func (s *supporterService) checkPayment(payment domain.Payment) error {
	if !slices.Contains(payment.ProductIDs, s.productID) {
		return apperror.Ignored(fmt.Sprintf("product %s not in cart %v", s.productID, payment.ProductIDs))
	}
	if payment.PaymentID == "" {
		return apperror.ValidationFailed("payment_id", "payment id is required")
	}
	return nil
}

// NewSupporter converts a payment into a wall entry. Minor units are divided by 100 exactly.
func NewSupporter(payment domain.Payment) *domain.Supporter {
	name := payment.Name
	if name == "" {
		name = DefaultSupporterName
	}
	currency := payment.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	return &domain.Supporter{
		PaymentID:     payment.PaymentID,
		Name:          name,
		Email:         payment.Email,
		Amount:        decimal.New(payment.AmountMinorUnits, -2),
		Currency:      currency,
		DisplayOnWall: true,
		CreatedAt:     time.Now().UTC(),
	}
}

func (s *supporterService) ListPublicSupporters(ctx context.Context, limit, offset int) (*domain.SupportersDTO, error) {
	logr := s.logger.With(zap.String("method", "ListPublicSupporters"))
	limit, offset = pagination.Normalize(limit, offset)

	supporters, err := s.repo.ListPublic(ctx, repositories.ListOptions{Limit: limit, Offset: offset})
	if err != nil {
		logr.Error("error in ListPublic", zap.Error(err))
		return nil, fmt.Errorf("failed to list supporters: %w", err)
	}

	agg, err := s.GetAggregate(ctx)
	if err != nil {
		return nil, err
	}

	dto := &domain.SupportersDTO{
		Supporters:  make([]domain.SupporterDTO, 0, len(supporters)),
		TotalCount:  agg.TotalCount,
		TotalAmount: agg.TotalAmount.InexactFloat64(),
		Pagination:  pagination.NewPagination(limit, offset, agg.TotalCount),
	}
	for _, sp := range supporters {
		dto.Supporters = append(dto.Supporters, toSupporterDTO(sp))
	}
	return dto, nil
}

func (s *supporterService) GetAggregate(ctx context.Context) (*domain.SupporterAggregate, error) {
	agg, err := s.repo.Aggregate(ctx)
	if err != nil {
		s.logger.Error("error in Aggregate", zap.Error(err))
		return nil, fmt.Errorf("failed to aggregate supporters: %w", err)
	}
	return agg, nil
}

func toSupporterDTO(s domain.Supporter) domain.SupporterDTO {
	return domain.SupporterDTO{
		Name:      s.Name,
		Amount:    s.Amount.InexactFloat64(),
		Currency:  s.Currency,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}
}
