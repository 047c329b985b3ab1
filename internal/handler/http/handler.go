// Package http exposes the operational HTTP surface of the sync daemon:
// queue statistics, manual sync triggers and failed-item maintenance.
package http

import (
	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
