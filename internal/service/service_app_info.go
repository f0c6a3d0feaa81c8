package service

import (
	"context"

	"github.com/MKhiriev/freight-calculator/internal/config"
	"github.com/MKhiriev/freight-calculator/internal/logger"
)

type appInfoService struct {
	appVersion string
	sandbox    bool

	logger *logger.Logger
}

func NewAppInfoService(appCfg config.App, providerCfg config.Provider, logger *logger.Logger) (AppInfoService, error) {
	if appCfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: appCfg.Version,
		sandbox:    providerCfg.IsSandbox(),
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// IsSandbox reports the provider environment selected at startup.
func (s *appInfoService) IsSandbox(ctx context.Context) bool {
	return s.sandbox
}
