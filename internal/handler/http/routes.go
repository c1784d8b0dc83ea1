package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.trustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(
		middleware.Recoverer,
		h.withTraceID,
		h.withLogging,
		withGZip,
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	if h.signer != nil {
		router.Use(h.withHashing)
	}

	router.Route("/api/users", func(r chi.Router) {
		// routes without authorization
		r.Get("/", h.listUsers)
		r.With(h.withRegisterRateLimit).Post("/", h.createUser)
		r.Post("/login", h.login)
		r.Get("/{id}", h.getUser)

		// self-service routes: the token subject must own {id}
		r.Group(func(r chi.Router) {
			r.Use(h.auth, h.ownerOnly)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
			r.Patch("/{id}/password", h.changePassword)
		})
	})

	router.Get("/api/version/", h.getServerVersion)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}

// notFound also serves unsupported methods on known paths, so callers
// cannot probe which routes exist.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrRouteNotFound)
}
