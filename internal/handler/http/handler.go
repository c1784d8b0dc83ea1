package http

import (
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// signer checks the HashSHA256 header of request bodies. Nil disables
	// the check.
	signer *utils.BodySigner

	// registerLimiter throttles account creation per client address. Nil
	// disables throttling.
	registerLimiter *ipRateLimiter

	// trustProxyHeaders lets X-Forwarded-For/X-Real-IP replace the peer
	// address. Off, clients cannot pick their own rate limit key.
	trustProxyHeaders bool

	requestTimeout time.Duration

	logger *logger.Logger
}

// Option customizes a Handler.
type Option func(*Handler)

// WithHashKey enables request body integrity checks keyed with key.
func WithHashKey(key string) Option {
	return func(h *Handler) {
		h.signer = utils.NewBodySigner(key)
	}
}

// WithRequestTimeout bounds the time a request may take. Zero means no bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

// WithRegisterRateLimit allows perMinute registrations per client address.
// Values below 1 disable the limit.
func WithRegisterRateLimit(perMinute int) Option {
	return func(h *Handler) {
		h.registerLimiter = newIPRateLimiter(perMinute)
	}
}

// WithTrustedProxyHeaders makes the client address come from proxy headers.
func WithTrustedProxyHeaders(trust bool) Option {
	return func(h *Handler) {
		h.trustProxyHeaders = trust
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().
		Bool("integrity_check", h.signer != nil).
		Bool("register_rate_limit", h.registerLimiter != nil).
		Bool("trust_proxy_headers", h.trustProxyHeaders).
		Dur("request_timeout", h.requestTimeout).
		Msg("http handler created")
	return h
}
