package http

import (
	"github.com/MKhiriev/go-room-booking/internal/logger"
	"github.com/MKhiriev/go-room-booking/internal/service"
	"github.com/MKhiriev/go-room-booking/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager
	views    *views

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, logger *logger.Logger) (*Handler, error) {
	v, err := newViews()
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		views:    v,
		logger:   logger,
	}, nil
}
