package seeder_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Tusharxhub/GitHubWrapped/pkg/seeder"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInsertQuery(t *testing.T) {
	require.Equal(t,
		`INSERT INTO "supporters" ("payment_id","name") VALUES ($1,$2)`,
		seeder.InsertQuery("supporters", []string{"payment_id", "name"}),
	)
}

func TestSeedSkipsDuplicates(t *testing.T) {
	dir := t.TempDir()
	content := `{
		"table": "supporters",
		"columns": ["payment_id", "name"],
		"values": [["pay_1", "Ada"], ["pay_2", "Linus"], ["pay_3", "Grace"], ["pay_4"]]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01_supporters.json"), []byte(content), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o600))

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	query := regexp.QuoteMeta(`INSERT INTO "supporters" ("payment_id","name") VALUES ($1,$2)`)
	mock.ExpectExec(query).WithArgs("pay_1", "Ada").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(query).WithArgs("pay_2", "Linus").WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectExec(query).WithArgs("pay_3", "Grace").WillReturnError(errors.New("boom"))

	report, err := seeder.Seed(context.Background(), db, dir, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, seeder.Report{Inserted: 1, Skipped: 1, Failed: 2}, report)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedMissingDirectory(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = seeder.Seed(context.Background(), db, filepath.Join(t.TempDir(), "missing"), zap.NewNop())
	require.Error(t, err)
}
