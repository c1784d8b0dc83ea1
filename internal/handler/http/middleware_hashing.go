package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

// hashHeader carries the hex HMAC-SHA256 of the request body.
const hashHeader = "HashSHA256"

// withHashing runs only when a hash key is configured. Every request with a
// non-empty body must then carry a matching HashSHA256 header; unsigned or
// mis-signed bodies are rejected. Bodyless requests pass.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.writeError(w, r, ErrInvalidJSON)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(body) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		signature := r.Header.Get(hashHeader)
		if signature == "" {
			logger.FromRequest(r).Warn().Str("func", "*Handler.withHashing").Msg("unsigned request body")
			h.writeError(w, r, ErrIntegrityCheckFailed)
			return
		}

		if !h.signer.Verify(body, signature) {
			logger.FromRequest(r).Warn().Str("func", "*Handler.withHashing").Msg("hashes are not equal")
			h.writeError(w, r, ErrIntegrityCheckFailed)
			return
		}

		next.ServeHTTP(w, r)
	})
}
