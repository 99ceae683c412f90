package service

import (
	"context"

	"github.com/MKhiriev/go-room-booking/internal/logger"
	"github.com/MKhiriev/go-room-booking/internal/store"
	"github.com/MKhiriev/go-room-booking/models"
)

type bookingService struct {
	bookingRepository store.BookingRepository

	logger *logger.Logger
}

func NewBookingService(bookingRepository store.BookingRepository, logger *logger.Logger) BookingService {
	return &bookingService{
		bookingRepository: bookingRepository,
		logger:            logger,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, form models.BookingForm) (models.Booking, error) {
	booking, err := s.bookingRepository.CreateBooking(ctx, form.Booking())
	if err != nil {
		return models.Booking{}, err
	}

	logger.FromContext(ctx).Info().
		Int64("room_id", booking.RoomID).
		Int64("booking_id", booking.ID).
		Msg("booking created")
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, roomID int64) ([]models.Booking, error) {
	return s.bookingRepository.ListBookingsByRoom(ctx, roomID)
}

func (s *bookingService) DeleteBooking(ctx context.Context, roomID, id int64) error {
	return s.bookingRepository.DeleteBooking(ctx, roomID, id)
}
