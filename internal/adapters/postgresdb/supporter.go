package postgresdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Tusharxhub/GitHubWrapped/internal/apperror"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/Tusharxhub/GitHubWrapped/internal/repositories"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const supporterColumns = `id, uid, payment_id, name, email, amount, currency, display_on_wall, created_at`

type supporterStore struct {
	db *sqlx.DB
}

var _ repositories.SupporterRepository = (*supporterStore)(nil)

func NewSupporterStore(db *sql.DB) repositories.SupporterRepository {
	return &supporterStore{db: sqlx.NewDb(db, "postgres")}
}

func (s *supporterStore) FindByPaymentID(ctx context.Context, paymentID string) (*domain.Supporter, error) {
	query := `SELECT ` + supporterColumns + ` FROM supporters WHERE payment_id = $1`

	var row supporterRow
	if err := s.db.GetContext(ctx, &row, query, paymentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find supporter by payment id %s: %w", paymentID, err)
	}

	supporter := row.toDomain()
	return &supporter, nil
}

func (s *supporterStore) Create(ctx context.Context, supporter *domain.Supporter) error {
	if supporter.UID == uuid.Nil {
		supporter.UID = uuid.New()
	}
	if supporter.CreatedAt.IsZero() {
		supporter.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO supporters
			(uid, payment_id, name, email, amount, currency, display_on_wall, created_at)
		VALUES
			(:uid, :payment_id, :name, :email, :amount, :currency, :display_on_wall, :created_at)
		RETURNING id
	`

	bound, args, err := s.db.BindNamed(query, toSupporterRow(supporter))
	if err != nil {
		return fmt.Errorf("failed to bind supporter insert: %w", err)
	}

	if err := s.db.GetContext(ctx, &supporter.ID, bound, args...); err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("supporter", supporter.PaymentID)
		}
		return fmt.Errorf("failed to insert supporter %s: %w", supporter.PaymentID, err)
	}
	return nil
}

// ListPublic returns supporters shown on the wall, newest first.
func (s *supporterStore) ListPublic(ctx context.Context, opts repositories.ListOptions) ([]domain.Supporter, error) {
	query := `
		SELECT ` + supporterColumns + `
		FROM supporters
		WHERE display_on_wall = TRUE
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	var rows []supporterRow
	if err := s.db.SelectContext(ctx, &rows, query, opts.Limit, opts.Offset); err != nil {
		return nil, fmt.Errorf("failed to list supporters: %w", err)
	}

	supporters := make([]domain.Supporter, 0, len(rows))
	for _, r := range rows {
		supporters = append(supporters, r.toDomain())
	}
	return supporters, nil
}

// Aggregate counts and sums the supporters shown on the wall.
func (s *supporterStore) Aggregate(ctx context.Context) (*domain.SupporterAggregate, error) {
	const query = `
		SELECT COUNT(*) AS total_count, COALESCE(SUM(amount), 0) AS total_amount
		FROM supporters
		WHERE display_on_wall = TRUE
	`

	var agg struct {
		TotalCount  int             `db:"total_count"`
		TotalAmount decimal.Decimal `db:"total_amount"`
	}
	if err := s.db.GetContext(ctx, &agg, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate supporters: %w", err)
	}

	return &domain.SupporterAggregate{TotalCount: agg.TotalCount, TotalAmount: agg.TotalAmount}, nil
}
