package handler

import (
	"github.com/MKhiriev/go-room-booking/internal/config"
	"github.com/MKhiriev/go-room-booking/internal/handler/http"
	"github.com/MKhiriev/go-room-booking/internal/logger"
	"github.com/MKhiriev/go-room-booking/internal/service"
	"github.com/MKhiriev/go-room-booking/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions *session.Manager, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, sessions, logger)
	if err != nil {
		return nil, err
	}

	return &Handlers{HTTP: httpHandler}, nil
}
