// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-room-booking/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RoomRepository persists rooms.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room models.Room) (models.Room, error)
	GetRoom(ctx context.Context, id int64) (models.Room, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	UpdateRoom(ctx context.Context, room models.Room) (models.Room, error)
	DeleteRoom(ctx context.Context, id int64) error
}

// BookingRepository persists bookings of a room.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	ListBookingsByRoom(ctx context.Context, roomID int64) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, roomID, id int64) error
}

// ColumnCounter counts rows matching a single column value.
// It satisfies validators.Counter.
type ColumnCounter interface {
	CountByColumn(ctx context.Context, table, column string, value any) (int64, error)
}

// ErrorClassificator decides whether a failed database operation may
// succeed when attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
