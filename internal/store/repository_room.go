// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-room-booking/internal/logger"
	"github.com/MKhiriev/go-room-booking/models"
)

// roomRepository is the database/sql implementation of [RoomRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type roomRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewRoomRepository constructs a [RoomRepository] backed by db.
func NewRoomRepository(db *DB, logger *logger.Logger) RoomRepository {
	logger.Debug().Msg("creating room repository")
	return &roomRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateRoom inserts room and returns it with ID and timestamps set.
//
// Error handling:
//   - unique violation on rooms.code → [ErrCodeAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *roomRepository) CreateRoom(ctx context.Context, room models.Room) (models.Room, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	query, args, err := buildInsertRoomQuery(r.db.builder(), room, now)
	if err != nil {
		return models.Room{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&room.ID); err != nil {
		log.Err(err).Str("func", "*roomRepository.CreateRoom").Msg("error inserting room")
		if isUniqueViolation(err) {
			return models.Room{}, ErrCodeAlreadyExists
		}
		return models.Room{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	room.CreatedAt, room.UpdatedAt = now, now
	return room, nil
}

// GetRoom returns the room with the given ID or [ErrRoomNotFound].
func (r *roomRepository) GetRoom(ctx context.Context, id int64) (models.Room, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRoomQuery(r.db.builder(), id)
	if err != nil {
		return models.Room{}, err
	}

	room, err := scanRoom(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Room{}, ErrRoomNotFound
		}
		log.Err(err).Str("func", "*roomRepository.GetRoom").Int64("id", id).Msg("error scanning room")
		return models.Room{}, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	return room, nil
}

// ListRooms returns all rooms ordered by name.
func (r *roomRepository) ListRooms(ctx context.Context) ([]models.Room, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRoomsQuery(r.db.builder())
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*roomRepository.ListRooms").Msg("error selecting rooms")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	rooms := make([]models.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			log.Err(err).Str("func", "*roomRepository.ListRooms").Msg("error scanning rooms")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	return rooms, nil
}

// UpdateRoom overwrites every editable column of the room identified by
// room.ID.
func (r *roomRepository) UpdateRoom(ctx context.Context, room models.Room) (models.Room, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	query, args, err := buildUpdateRoomQuery(r.db.builder(), room, now)
	if err != nil {
		return models.Room{}, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*roomRepository.UpdateRoom").Int64("id", room.ID).Msg("error updating room")
		if isUniqueViolation(err) {
			return models.Room{}, ErrCodeAlreadyExists
		}
		return models.Room{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.Room{}, ErrRoomNotFound
	}

	room.UpdatedAt = now
	return room, nil
}

// DeleteRoom removes the room and its bookings in one transaction.
func (r *roomRepository) DeleteRoom(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	deleteBookings, bookingArgs, err := buildDeleteQuery(r.db.builder(), bookingsTable, sq.Eq{"room_id": id})
	if err != nil {
		return err
	}
	deleteRoom, roomArgs, err := buildDeleteQuery(r.db.builder(), roomsTable, sq.Eq{"id": id})
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*roomRepository.DeleteRoom").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, r.db.classify(err))
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteBookings, bookingArgs...); err != nil {
		log.Err(err).Str("func", "*roomRepository.DeleteRoom").Msg("error deleting bookings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	res, err := tx.ExecContext(ctx, deleteRoom, roomArgs...)
	if err != nil {
		log.Err(err).Str("func", "*roomRepository.DeleteRoom").Msg("error deleting room")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrRoomNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*roomRepository.DeleteRoom").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, r.db.classify(err))
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (models.Room, error) {
	var room models.Room
	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Code,
		&room.Capacity,
		&room.PricePerHour,
		&room.Description,
		&room.Accessible,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	return room, err
}
