// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"regexp"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-room-booking/models"
)

const (
	roomsTable    = "rooms"
	bookingsTable = "bookings"
)

var roomColumns = []string{
	"id",
	"name",
	"code",
	"capacity",
	"price_per_hour",
	"description",
	"accessible",
	"created_at",
	"updated_at",
}

var bookingColumns = []string{
	"id",
	"room_id",
	"guest_name",
	"email",
	"persons",
	"hours",
	"notes",
	"created_at",
}

// identifierRe matches the plain identifiers accepted by CountByColumn.
// Table and column names cannot be bound as parameters, so anything else
// is rejected.
var identifierRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func buildInsertRoomQuery(b sq.StatementBuilderType, room models.Room, now time.Time) (string, []any, error) {
	query, args, err := b.Insert(roomsTable).
		Columns("name", "code", "capacity", "price_per_hour", "description", "accessible", "created_at", "updated_at").
		Values(room.Name, room.Code, room.Capacity, room.PricePerHour, room.Description, room.Accessible, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectRoomQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select(roomColumns...).
		From(roomsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectRoomsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(roomColumns...).
		From(roomsTable).
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateRoomQuery(b sq.StatementBuilderType, room models.Room, now time.Time) (string, []any, error) {
	query, args, err := b.Update(roomsTable).
		Set("name", room.Name).
		Set("code", room.Code).
		Set("capacity", room.Capacity).
		Set("price_per_hour", room.PricePerHour).
		Set("description", room.Description).
		Set("accessible", room.Accessible).
		Set("updated_at", now).
		Where(sq.Eq{"id": room.ID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteQuery(b sq.StatementBuilderType, table string, where sq.Eq) (string, []any, error) {
	query, args, err := b.Delete(table).Where(where).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertBookingQuery(b sq.StatementBuilderType, booking models.Booking, now time.Time) (string, []any, error) {
	query, args, err := b.Insert(bookingsTable).
		Columns("room_id", "guest_name", "email", "persons", "hours", "notes", "created_at").
		Values(booking.RoomID, booking.GuestName, booking.Email, booking.Persons, booking.Hours, booking.Notes, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectBookingsQuery(b sq.StatementBuilderType, roomID int64) (string, []any, error) {
	query, args, err := b.Select(bookingColumns...).
		From(bookingsTable).
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCountByColumnQuery builds SELECT COUNT(*) FROM table WHERE column = ?
// with value bound as a parameter.
func buildCountByColumnQuery(b sq.StatementBuilderType, table, column string, value any) (string, []any, error) {
	if !identifierRe.MatchString(table) || !identifierRe.MatchString(column) {
		return "", nil, fmt.Errorf("%w: %q.%q", ErrInvalidIdentifier, table, column)
	}

	query, args, err := b.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
