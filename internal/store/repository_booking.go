// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-room-booking/internal/logger"
	"github.com/MKhiriev/go-room-booking/models"
)

type bookingRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewBookingRepository constructs a [BookingRepository] backed by db.
func NewBookingRepository(db *DB, logger *logger.Logger) BookingRepository {
	logger.Debug().Msg("creating booking repository")
	return &bookingRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateBooking inserts booking. A foreign key violation on room_id is
// reported as [ErrRoomNotFound].
func (r *bookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	query, args, err := buildInsertBookingQuery(r.db.builder(), booking, now)
	if err != nil {
		return models.Booking{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&booking.ID); err != nil {
		log.Err(err).Str("func", "*bookingRepository.CreateBooking").Msg("error inserting booking")
		if isForeignKeyViolation(err) {
			return models.Booking{}, ErrRoomNotFound
		}
		return models.Booking{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	booking.CreatedAt = now
	return booking, nil
}

// ListBookingsByRoom returns the bookings of a room, newest first.
func (r *bookingRepository) ListBookingsByRoom(ctx context.Context, roomID int64) ([]models.Booking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBookingsQuery(r.db.builder(), roomID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.ListBookingsByRoom").Msg("error selecting bookings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var b models.Booking
		if err = rows.Scan(&b.ID, &b.RoomID, &b.GuestName, &b.Email, &b.Persons, &b.Hours, &b.Notes, &b.CreatedAt); err != nil {
			log.Err(err).Str("func", "*bookingRepository.ListBookingsByRoom").Msg("error scanning bookings")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	return bookings, nil
}

// DeleteBooking removes a booking of the given room.
func (r *bookingRepository) DeleteBooking(ctx context.Context, roomID, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(r.db.builder(), bookingsTable, sq.Eq{"id": id, "room_id": roomID})
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.DeleteBooking").Msg("error deleting booking")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
