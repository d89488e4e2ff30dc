package http

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	projectID string
	limiter   *addressLimiter
	metrics   *httpMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		projectID: cfg.App.ProjectID,
		limiter:   newAddressLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst),
		metrics:   newHTTPMetrics(),
		logger:    logger,
	}
}
