package http

import (
	"github.com/MKhiriev/go-field-crypt/internal/logger"
	"github.com/MKhiriev/go-field-crypt/internal/service"
)

// Handler serves the messages API on top of the service layer. Routes are
// mounted by [Handler.Init].
type Handler struct {
	services *service.Services

	// logger is the parent of every request logger.
	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Str("func", "NewHandler").Msg("messages API handler created")

	return &Handler{services: services, logger: logger}
}
