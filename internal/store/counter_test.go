package store

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-room-booking/internal/logger"
)

func TestColumnCounter_CountByColumn(t *testing.T) {
	const countSQL = "SELECT COUNT(*) FROM rooms WHERE code = $1"

	t.Run("counts matching rows", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
			WithArgs("A101").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

		n, err := NewColumnCounter(db, logger.Nop()).CountByColumn(context.Background(), "rooms", "code", "A101")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects identifiers before querying", func(t *testing.T) {
		db, mock := newTestDB(t)

		_, err := NewColumnCounter(db, logger.Nop()).CountByColumn(context.Background(), "rooms", "code = code OR 1", "x")
		require.ErrorIs(t, err, ErrInvalidIdentifier)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("temporary failure", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
			WillReturnError(pgError(pgerrcode.SerializationFailure))

		_, err := NewColumnCounter(db, logger.Nop()).CountByColumn(context.Background(), "rooms", "code", "A101")
		require.ErrorIs(t, err, ErrTemporary)
		require.ErrorIs(t, err, ErrExecutingQuery)
	})
}
