package http

import (
	"github.com/MKhiriev/freight-calculator/internal/logger"
	"github.com/MKhiriev/freight-calculator/internal/service"
	"github.com/MKhiriev/freight-calculator/internal/utils"
	"github.com/MKhiriev/freight-calculator/internal/validators"
)

type Handler struct {
	services *service.Services

	validator   validators.Validator
	idGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		validator:   validators.NewStructValidator(),
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}
