package service

import (
	"context"

	"github.com/MKhiriev/go-room-booking/internal/logger"
	"github.com/MKhiriev/go-room-booking/internal/store"
	"github.com/MKhiriev/go-room-booking/models"
)

type roomService struct {
	roomRepository store.RoomRepository

	logger *logger.Logger
}

// NewRoomService returns the plain RoomService. It expects forms that
// already passed validation, see [NewRoomValidationService].
func NewRoomService(roomRepository store.RoomRepository, logger *logger.Logger) RoomService {
	return &roomService{
		roomRepository: roomRepository,
		logger:         logger,
	}
}

func (s *roomService) CreateRoom(ctx context.Context, form models.RoomForm) (models.Room, error) {
	room, err := s.roomRepository.CreateRoom(ctx, form.Room())
	if err != nil {
		return models.Room{}, err
	}

	logger.FromContext(ctx).Info().Int64("room_id", room.ID).Str("code", room.Code).Msg("room created")
	return room, nil
}

func (s *roomService) GetRoom(ctx context.Context, id int64) (models.Room, error) {
	return s.roomRepository.GetRoom(ctx, id)
}

func (s *roomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	return s.roomRepository.ListRooms(ctx)
}

func (s *roomService) UpdateRoom(ctx context.Context, form models.RoomForm) (models.Room, error) {
	if form.ID <= 0 {
		return models.Room{}, ErrInvalidDataProvided
	}
	return s.roomRepository.UpdateRoom(ctx, form.Room())
}

func (s *roomService) DeleteRoom(ctx context.Context, id int64) error {
	if err := s.roomRepository.DeleteRoom(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("room_id", id).Msg("room deleted")
	return nil
}
