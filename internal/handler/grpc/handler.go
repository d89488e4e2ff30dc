// Package grpc implements the gRPC transport of the note backend. It serves
// the standard grpc.health.v1.Health service so that orchestrators can probe
// the backend next to its HTTP API.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Handler is the root gRPC transport handler.
//
// It owns the health status reported to clients and the interceptors shared
// by every registered service. A handler instance is created once at startup
// and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] reporting SERVING for the whole server
// and for the account and document services.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	for _, name := range ServiceNames {
		h.health.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	return h
}

// ServiceNames lists the names reported by the health service. The empty
// name stands for the server as a whole.
var ServiceNames = []string{"", "notekeeper.v1.Account", "notekeeper.v1.Documents"}

// Register attaches the handler's services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// ServerOptions returns the options the gRPC server must be built with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{grpc.ChainUnaryInterceptor(h.withLogging)}
}

// Shutdown flips every status to NOT_SERVING, so that watchers learn about
// the shutdown before connections are closed.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	log := h.logger.WithField("grpc_method", info.FullMethod)
	resp, err := next(log.WithContext(ctx), req)

	log.Info().
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()
	return resp, err
}
