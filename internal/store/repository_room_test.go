package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-room-booking/models"
)

const selectRoomSQL = `SELECT id, name, code, capacity, price_per_hour, description, accessible, created_at, updated_at FROM rooms`

func testRoom() models.Room {
	return models.Room{
		Name:         "Besprechungsraum Nord",
		Code:         "A101",
		Capacity:     12,
		PricePerHour: 25.5,
		Description:  "Heller Raum mit Beamer.",
		Accessible:   true,
	}
}

func roomRows(rooms ...models.Room) *sqlmock.Rows {
	rows := sqlmock.NewRows(roomColumns)
	for _, r := range rooms {
		rows.AddRow(r.ID, r.Name, r.Code, r.Capacity, r.PricePerHour, r.Description, r.Accessible, r.CreatedAt, r.UpdatedAt)
	}
	return rows
}

func TestRoomRepository_CreateRoom(t *testing.T) {
	room := testRoom()

	tests := []struct {
		name    string
		mockErr error
		wantErr error
	}{
		{name: "success"},
		{name: "duplicate code", mockErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrCodeAlreadyExists},
		{name: "deadlock is temporary", mockErr: pgError(pgerrcode.DeadlockDetected), wantErr: ErrTemporary},
		{name: "other failure", mockErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRoomRepo(t)

			expectation := mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rooms")).
				WithArgs(room.Name, room.Code, room.Capacity, room.PricePerHour, room.Description, room.Accessible, fixedNow, fixedNow)
			if tt.mockErr != nil {
				expectation.WillReturnError(tt.mockErr)
			} else {
				expectation.WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
			}

			created, err := repo.CreateRoom(context.Background(), room)
			require.NoError(t, mock.ExpectationsWereMet())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(42), created.ID)
			assert.Equal(t, fixedNow, created.CreatedAt)
			assert.Equal(t, fixedNow, created.UpdatedAt)
			assert.Equal(t, room.Code, created.Code)
		})
	}
}

func TestRoomRepository_GetRoom(t *testing.T) {
	stored := testRoom()
	stored.ID, stored.CreatedAt, stored.UpdatedAt = 5, fixedNow, fixedNow

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestRoomRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectRoomSQL + " WHERE id = $1")).
			WithArgs(int64(5)).
			WillReturnRows(roomRows(stored))

		got, err := repo.GetRoom(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestRoomRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectRoomSQL)).
			WithArgs(int64(5)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetRoom(context.Background(), 5)
		require.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("connection lost", func(t *testing.T) {
		repo, mock := newTestRoomRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectRoomSQL)).
			WithArgs(int64(5)).
			WillReturnError(pgError(pgerrcode.ConnectionFailure))

		_, err := repo.GetRoom(context.Background(), 5)
		require.ErrorIs(t, err, ErrTemporary)
		require.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestRoomRepository_ListRooms(t *testing.T) {
	a, b := testRoom(), testRoom()
	a.ID, a.Name, a.Code = 1, "Atrium", "AT1"
	b.ID, b.Name, b.Code = 2, "Bibliothek", "BI1"

	t.Run("ordered rows", func(t *testing.T) {
		repo, mock := newTestRoomRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectRoomSQL + " ORDER BY name, id")).
			WillReturnRows(roomRows(a, b))

		rooms, err := repo.ListRooms(context.Background())
		require.NoError(t, err)
		require.Len(t, rooms, 2)
		assert.Equal(t, "AT1", rooms[0].Code)
		assert.Equal(t, "BI1", rooms[1].Code)
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		repo, mock := newTestRoomRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectRoomSQL)).WillReturnRows(roomRows())

		rooms, err := repo.ListRooms(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, rooms)
		assert.Empty(t, rooms)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestRoomRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectRoomSQL)).WillReturnError(errors.New("boom"))

		_, err := repo.ListRooms(context.Background())
		require.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("row error", func(t *testing.T) {
		repo, mock := newTestRoomRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectRoomSQL)).
			WillReturnRows(roomRows(a, b).RowError(1, errors.New("broken row")))

		_, err := repo.ListRooms(context.Background())
		require.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestRoomRepository_UpdateRoom(t *testing.T) {
	room := testRoom()
	room.ID = 9
	const updateSQL = "UPDATE rooms SET name = $1, code = $2, capacity = $3, price_per_hour = $4, description = $5, accessible = $6, updated_at = $7 WHERE id = $8"

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestRoomRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(updateSQL)).
			WithArgs(room.Name, room.Code, room.Capacity, room.PricePerHour, room.Description, room.Accessible, fixedNow, room.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		updated, err := repo.UpdateRoom(context.Background(), room)
		require.NoError(t, err)
		assert.Equal(t, fixedNow, updated.UpdatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newTestRoomRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(updateSQL)).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.UpdateRoom(context.Background(), room)
		require.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("duplicate code", func(t *testing.T) {
		repo, mock := newTestRoomRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(updateSQL)).WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.UpdateRoom(context.Background(), room)
		require.ErrorIs(t, err, ErrCodeAlreadyExists)
	})
}

func TestRoomRepository_DeleteRoom(t *testing.T) {
	t.Run("removes bookings first", func(t *testing.T) {
		repo, mock := newTestRoomRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE room_id = $1")).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rooms WHERE id = $1")).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.DeleteRoom(context.Background(), 3))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown room rolls back", func(t *testing.T) {
		repo, mock := newTestRoomRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rooms")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		require.ErrorIs(t, repo.DeleteRoom(context.Background(), 3), ErrRoomNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin fails", func(t *testing.T) {
		repo, mock := newTestRoomRepo(t)
		mock.ExpectBegin().WillReturnError(errors.New("no tx"))

		require.ErrorIs(t, repo.DeleteRoom(context.Background(), 3), ErrBeginningTransaction)
	})

	t.Run("bookings delete fails", func(t *testing.T) {
		repo, mock := newTestRoomRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings")).WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		require.ErrorIs(t, repo.DeleteRoom(context.Background(), 3), ErrExecutingStatement)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit fails", func(t *testing.T) {
		repo, mock := newTestRoomRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rooms")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit().WillReturnError(errors.New("commit"))

		require.ErrorIs(t, repo.DeleteRoom(context.Background(), 3), ErrCommitingTransaction)
	})
}
