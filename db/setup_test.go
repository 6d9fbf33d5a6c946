package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestPingOrCloseReleasesPoolOnFailure(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectClose()

	err = pingOrClose(context.Background(), conn)
	require.EqualError(t, err, "connection refused")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPingOrCloseKeepsHealthyPool(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectPing()

	require.NoError(t, pingOrClose(context.Background(), conn))
	require.NoError(t, mock.ExpectationsWereMet())
}
