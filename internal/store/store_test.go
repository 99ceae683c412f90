package store

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-room-booking/internal/logger"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		driver:             DriverPostgres,
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func newTestRoomRepo(t *testing.T) (*roomRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	repo := NewRoomRepository(db, logger.Nop()).(*roomRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

func newTestBookingRepo(t *testing.T) (*bookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	repo := NewBookingRepository(db, logger.Nop()).(*bookingRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
