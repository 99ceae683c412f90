package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-room-booking/internal/validators"
	"github.com/MKhiriev/go-room-booking/models"
)

// RoomValidationService checks room forms before passing them on.
type RoomValidationService struct {
	inner     RoomService
	validator validators.Validator
}

// NewRoomValidationService builds the wrapper. counter backs the room code
// uniqueness check.
func NewRoomValidationService(counter validators.Counter) RoomServiceWrapper {
	return &RoomValidationService{
		validator: validators.NewRoomValidator(counter),
	}
}

func (v *RoomValidationService) CreateRoom(ctx context.Context, form models.RoomForm) (models.Room, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.Room{}, fmt.Errorf("error during room validation before saving: %w", err)
	}

	return v.inner.CreateRoom(ctx, form)
}

func (v *RoomValidationService) GetRoom(ctx context.Context, id int64) (models.Room, error) {
	return v.inner.GetRoom(ctx, id)
}

func (v *RoomValidationService) ListRooms(ctx context.Context) ([]models.Room, error) {
	return v.inner.ListRooms(ctx)
}

// UpdateRoom validates the form. The code uniqueness check is skipped
// when the code is unchanged, since the room itself holds it.
func (v *RoomValidationService) UpdateRoom(ctx context.Context, form models.RoomForm) (models.Room, error) {
	current, err := v.inner.GetRoom(ctx, form.ID)
	if err != nil {
		return models.Room{}, err
	}

	fields := validators.DefaultRoomFields
	if strings.TrimSpace(form.Code) == current.Code {
		fields = slices.DeleteFunc(slices.Clone(fields), func(f string) bool {
			return f == validators.FieldRoomCodeUnique
		})
	}

	if err = v.validator.Validate(ctx, form, fields...); err != nil {
		return models.Room{}, fmt.Errorf("error during room validation before updating: %w", err)
	}

	return v.inner.UpdateRoom(ctx, form)
}

func (v *RoomValidationService) DeleteRoom(ctx context.Context, id int64) error {
	return v.inner.DeleteRoom(ctx, id)
}

func (v *RoomValidationService) Wrap(inner RoomService) RoomService {
	v.inner = inner
	return v
}
