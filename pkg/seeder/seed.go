// Package seeder loads JSON seed files into postgres. Each file names a table, its columns
// and rows of values; rows that already exist are skipped.
package seeder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	DefaultSeedDir           = "db/seeders"
	ErrSQlDuplicateEntryCode = "23505"
)

type seed struct {
	Table   string   `json:"table"`
	Columns []string `json:"columns"`
	Values  [][]any  `json:"values"`
}

// Report counts what a seeding run did across all files.
type Report struct {
	Inserted int
	Skipped  int
	Failed   int
}

// Seed applies every .json file in dir in name order.
func Seed(ctx context.Context, db *sql.DB, dir string, logger *zap.Logger) (Report, error) {
	sqlxDB := sqlx.NewDb(db, "postgres")
	logger = logger.With(zap.String("package", "seeder"))
	var report Report

	files, err := os.ReadDir(dir)
	if err != nil {
		return report, fmt.Errorf("error in reading seeder directory, err: %w", err)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, file.Name()))
		if err != nil {
			return report, fmt.Errorf("error reading file, err: %w", err)
		}

		var data seed
		if err = sonic.Unmarshal(content, &data); err != nil {
			return report, fmt.Errorf("error during un-marshalling %s, err: %w", file.Name(), err)
		}
		if data.Table == "" || len(data.Columns) == 0 {
			return report, fmt.Errorf("seed file %s needs a table and columns", file.Name())
		}

		execQuery(ctx, sqlxDB, data, file.Name(), &report, logger)
	}

	return report, nil
}

func execQuery(ctx context.Context, db *sqlx.DB, data seed, fileName string, report *Report, logger *zap.Logger) {
	query := InsertQuery(data.Table, data.Columns)

	for _, value := range data.Values {
		if len(value) != len(data.Columns) {
			logger.Error("seed row has the wrong number of values", zap.String("file", fileName), zap.Int("got", len(value)))
			report.Failed++
			continue
		}

		if _, err := db.ExecContext(ctx, query, value...); err != nil {
			if IsDuplicateEntry(err) {
				report.Skipped++
				continue
			}
			logger.Error("error in running seeder file", zap.String("file", fileName), zap.Error(err))
			report.Failed++
			continue
		}
		report.Inserted++
	}
}

// InsertQuery builds a postgres insert with quoted identifiers and $n placeholders.
func InsertQuery(table string, columns []string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = pq.QuoteIdentifier(c)
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s)`,
		pq.QuoteIdentifier(table),
		strings.Join(quoted, ","),
		strings.TrimSuffix(strings.Repeat("?,", len(columns)), ","),
	)
	return sqlx.Rebind(sqlx.DOLLAR, query)
}

func IsDuplicateEntry(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == ErrSQlDuplicateEntryCode
	}

	return false
}
