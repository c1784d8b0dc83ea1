package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

const registeredMessage = "user registered successfully"

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := h.services.UserService.List(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// parseListQuery reads page, page_size, sort ("field:order") and search.
// Absent parameters stay zero and are defaulted by the service.
func parseListQuery(r *http.Request) (models.ListQuery, error) {
	values := r.URL.Query()
	var query models.ListQuery

	for name, dst := range map[string]*int{"page": &query.Page, "page_size": &query.PageSize} {
		raw := values.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.ListQuery{}, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, name, raw)
		}
		*dst = n
	}

	if sort := values.Get("sort"); sort != "" {
		field, order, _ := strings.Cut(sort, ":")
		query.SortBy = strings.TrimSpace(field)
		query.SortOrder = strings.ToLower(strings.TrimSpace(order))
	}
	query.Search = values.Get("search")

	return query, nil
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("id", user.ID).Str("email", user.Email).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Message:   registeredMessage,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	req.UserID = chi.URLParam(r, "id")

	id, err := h.services.UserService.Update(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.IDResponse{ID: id}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := h.services.UserService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.IDResponse{ID: id}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	req.UserID = chi.URLParam(r, "id")

	id, err := h.services.AuthService.ChangePassword(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.IDResponse{ID: id}, http.StatusOK)
}

// decodeJSON reads the body into dst and reports success. On failure the
// 400 response is already written.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return false
	}
	return true
}
