package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
)

// withLogging writes one access log line per request using the
// request-scoped logger installed by withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		event := logger.FromRequest(r).Info()
		if lw.status >= http.StatusInternalServerError {
			event = logger.FromRequest(r).Warn()
		}
		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote_ip", utils.ClientIP(r)).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
