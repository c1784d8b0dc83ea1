package handler

import (
	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-user-keeper/internal/handler/http"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger,
			http.WithHashKey(cfg.App.HashKey),
			http.WithRequestTimeout(cfg.Server.RequestTimeout),
			http.WithRegisterRateLimit(cfg.Server.RegisterRateLimit),
			http.WithTrustedProxyHeaders(cfg.Server.TrustProxyHeaders),
		)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
