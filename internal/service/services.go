package service

import (
	"github.com/MKhiriev/go-room-booking/internal/config"
	"github.com/MKhiriev/go-room-booking/internal/logger"
	"github.com/MKhiriev/go-room-booking/internal/session"
	"github.com/MKhiriev/go-room-booking/internal/store"
	"github.com/MKhiriev/go-room-booking/models"
)

// RoomServiceWrapper defines middleware composition for RoomService.
// Implementations wrap an existing RoomService to add behavior such as
// logging or validating.
type RoomServiceWrapper interface {
	Wrap(RoomService) RoomService
}

// BookingServiceWrapper defines middleware composition for BookingService.
type BookingServiceWrapper interface {
	Wrap(BookingService) BookingService
}

type Services struct {
	RoomService    RoomService
	BookingService BookingService
	ClickService   ClickService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. Room and booking services
// are wrapped with their validation layers.
func NewServices(storages *store.Storages, sessions session.Store, cfg config.StructuredConfig, build models.AppInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	roomService := NewRoomValidationService(storages.ColumnCounter).
		Wrap(NewRoomService(storages.RoomRepository, logger))
	bookingService := NewBookingValidationService(storages.RoomRepository).
		Wrap(NewBookingService(storages.BookingRepository, logger))

	return &Services{
		RoomService:    roomService,
		BookingService: bookingService,
		ClickService:   NewClickService(sessions, logger),
		AppInfoService: appInfoService,
	}, nil
}
