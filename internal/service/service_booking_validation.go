package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-room-booking/internal/store"
	"github.com/MKhiriev/go-room-booking/internal/validators"
	"github.com/MKhiriev/go-room-booking/models"
)

// BookingValidationService checks booking forms against the booked room.
type BookingValidationService struct {
	inner          BookingService
	roomRepository store.RoomRepository
	validator      validators.Validator
}

func NewBookingValidationService(roomRepository store.RoomRepository) BookingServiceWrapper {
	return &BookingValidationService{
		roomRepository: roomRepository,
		validator:      validators.NewBookingValidator(),
	}
}

// CreateBooking loads the room to bound the number of persons by its
// capacity, then validates the form.
func (v *BookingValidationService) CreateBooking(ctx context.Context, form models.BookingForm) (models.Booking, error) {
	room, err := v.roomRepository.GetRoom(ctx, form.RoomID)
	if err != nil {
		return models.Booking{}, err
	}
	form.RoomCapacity = room.Capacity

	if err = v.validator.Validate(ctx, form); err != nil {
		return models.Booking{}, fmt.Errorf("error during booking validation before saving: %w", err)
	}

	return v.inner.CreateBooking(ctx, form)
}

func (v *BookingValidationService) ListBookings(ctx context.Context, roomID int64) ([]models.Booking, error) {
	return v.inner.ListBookings(ctx, roomID)
}

func (v *BookingValidationService) DeleteBooking(ctx context.Context, roomID, id int64) error {
	return v.inner.DeleteBooking(ctx, roomID, id)
}

func (v *BookingValidationService) Wrap(inner BookingService) BookingService {
	v.inner = inner
	return v
}
