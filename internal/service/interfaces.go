package service

import (
	"context"

	"github.com/MKhiriev/go-room-booking/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RoomService manages rooms. Create and Update accept the raw form so that
// validation wrappers can check it before it is converted.
type RoomService interface {
	CreateRoom(ctx context.Context, form models.RoomForm) (models.Room, error)
	GetRoom(ctx context.Context, id int64) (models.Room, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	UpdateRoom(ctx context.Context, form models.RoomForm) (models.Room, error)
	DeleteRoom(ctx context.Context, id int64) error
}

// BookingService manages the bookings of a room.
type BookingService interface {
	CreateBooking(ctx context.Context, form models.BookingForm) (models.Booking, error)
	ListBookings(ctx context.Context, roomID int64) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, roomID, id int64) error
}

// ClickService counts redirects per visitor session.
type ClickService interface {
	// Track increments the counter of target in the session identified by
	// token and returns the target to redirect to.
	Track(ctx context.Context, token, target string) (string, error)

	// Stats returns the counters of the session.
	Stats(ctx context.Context, token string) (models.ClickStats, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}
