package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the token subject in the
// request context with [utils.WithUserID]. Requests without a valid token
// are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// ownerOnly lets a request through only when the authenticated user is the
// one named by the {id} URL parameter. It must run after auth, as an inline
// middleware so that the URL parameters are already resolved.
func (h *Handler) ownerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		if target := chi.URLParam(r, "id"); target != userID {
			logger.FromRequest(r).Warn().
				Str("user_id", userID).
				Str("target_id", target).
				Msg("attempt to modify another user's account")
			h.writeError(w, r, ErrForeignAccount)
			return
		}

		next.ServeHTTP(w, r)
	})
}
