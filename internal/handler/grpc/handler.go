package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/service"
)

// UsersServiceName is the health-check name of the user API.
const UsersServiceName = "users"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1.Health service. Both the overall
// server ("") and the user API are reported as SERVING until Shutdown.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(UsersServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches all gRPC services of the handler to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown switches every service to NOT_SERVING so that health watchers
// see the server going away before the listener closes.
func (h *Handler) Shutdown() {
	h.logger.Debug().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}
