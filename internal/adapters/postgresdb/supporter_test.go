package postgresdb_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Tusharxhub/GitHubWrapped/internal/adapters/postgresdb"
	"github.com/Tusharxhub/GitHubWrapped/internal/apperror"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/Tusharxhub/GitHubWrapped/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var supporterCols = []string{
	"id", "uid", "payment_id", "name", "email", "amount", "currency", "display_on_wall", "created_at",
}

func TestCreateSupporter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := postgresdb.NewSupporterStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO supporters")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	supporter := &domain.Supporter{
		PaymentID:     "pay_123",
		Name:          "Ada",
		Amount:        decimal.RequireFromString("5.00"),
		Currency:      "USD",
		DisplayOnWall: true,
	}
	require.NoError(t, store.Create(context.Background(), supporter))
	require.Equal(t, 11, supporter.ID)
	require.NotEqual(t, uuid.Nil, supporter.UID)
	require.False(t, supporter.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSupporterDuplicatePayment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := postgresdb.NewSupporterStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO supporters")).
		WillReturnError(&pq.Error{Code: "23505"})

	err = store.Create(context.Background(), &domain.Supporter{PaymentID: "pay_123", Name: "Ada"})
	require.ErrorIs(t, err, apperror.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByPaymentIDMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := postgresdb.NewSupporterStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM supporters WHERE payment_id = $1")).
		WithArgs("pay_missing").
		WillReturnRows(sqlmock.NewRows(supporterCols))

	supporter, err := store.FindByPaymentID(context.Background(), "pay_missing")
	require.NoError(t, err)
	require.Nil(t, supporter)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListPublicAndAggregate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := postgresdb.NewSupporterStore(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE display_on_wall = TRUE")).
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows(supporterCols).
			AddRow(2, uuid.New().String(), "pay_2", "Grace", "g@example.com", "10.00", "USD", true, now).
			AddRow(1, uuid.New().String(), "pay_1", "Ada", "a@example.com", "2.50", "EUR", true, now.Add(-time.Hour)))

	supporters, err := store.ListPublic(context.Background(), repositories.ListOptions{Limit: 50})
	require.NoError(t, err)
	require.Len(t, supporters, 2)
	require.Equal(t, "Grace", supporters[0].Name)
	require.True(t, decimal.RequireFromString("2.5").Equal(supporters[1].Amount))

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(amount), 0)")).
		WillReturnRows(sqlmock.NewRows([]string{"total_count", "total_amount"}).AddRow(2, "12.50"))

	agg, err := store.Aggregate(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, agg.TotalCount)
	require.True(t, decimal.RequireFromString("12.5").Equal(agg.TotalAmount))
	require.NoError(t, mock.ExpectationsWereMet())
}
