package service

import (
	"context"

	"github.com/MKhiriev/go-room-booking/internal/config"
	"github.com/MKhiriev/go-room-booking/internal/logger"
	"github.com/MKhiriev/go-room-booking/models"
)

type appInfoService struct {
	appInfo models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService reports the configured version, falling back to the
// version baked into the binary. One of them must be set.
func NewAppInfoService(cfg config.App, build models.AppInfo, logger *logger.Logger) (AppInfoService, error) {
	info := build
	if cfg.Version != "" {
		info.Version = cfg.Version
	}

	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appInfo: info,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.appInfo
}
