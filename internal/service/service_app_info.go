package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when no version was
// configured or linked into the binary.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", version).Msg("serving app version")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
