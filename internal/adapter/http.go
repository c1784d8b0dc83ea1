package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

// hashHeader carries the hex HMAC-SHA256 of the request body.
const hashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient

	// signer is nil when no hash key is configured.
	signer *utils.BodySigner
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. A token from appCfg is used for authenticated requests.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		signer: utils.NewBodySigner(appCfg.HashKey),
		logger: logger,
	}
	a.SetToken(appCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. A "Bearer " prefix is accepted and
// stripped.
func (h *httpServerAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)
	if parsed, err := utils.ParseBearerToken(token); err == nil {
		token = parsed
	}
	h.token = token
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter] via POST /api/users.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var registered models.RegisterResponse

	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return models.RegisterResponse{}, err
	}
	resp, err := r.SetResult(&registered).Post("/api/users")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return registered, nil
}

// Login implements [ServerAdapter] via POST /api/users/login. The token is
// taken from the Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	var user models.User

	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return models.User{}, err
	}
	resp, err := r.SetResult(&user).Post("/api/users/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("user_id", user.ID).Msg("logged in")
	return user, nil
}

// ListUsers implements [ServerAdapter] via GET /api/users. Zero fields of
// query are left out so the server applies its defaults.
func (h *httpServerAdapter) ListUsers(ctx context.Context, query models.ListQuery) (models.UserPage, error) {
	var page models.UserPage

	params := map[string]string{}
	if query.Page != 0 {
		params["page"] = strconv.Itoa(query.Page)
	}
	if query.PageSize != 0 {
		params["page_size"] = strconv.Itoa(query.PageSize)
	}
	if query.SortBy != "" {
		sort := query.SortBy
		if query.SortOrder != "" {
			sort += ":" + query.SortOrder
		}
		params["sort"] = sort
	}
	if query.Search != "" {
		params["search"] = query.Search
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&page).
		Get("/api/users")
	if err != nil {
		return models.UserPage{}, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserPage{}, err
	}

	return page, nil
}

// GetUser implements [ServerAdapter] via GET /api/users/{id}.
func (h *httpServerAdapter) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&user).
		Get("/api/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser implements [ServerAdapter] via PUT /api/users/{id}.
func (h *httpServerAdapter) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (string, error) {
	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return "", err
	}

	return h.doIDRequest(r.SetPathParam("id", req.UserID), resty.MethodPut, "/api/users/{id}", "update user")
}

// DeleteUser implements [ServerAdapter] via DELETE /api/users/{id}.
func (h *httpServerAdapter) DeleteUser(ctx context.Context, id string) (string, error) {
	r := h.authedRequest(ctx).SetPathParam("id", id)

	return h.doIDRequest(r, resty.MethodDelete, "/api/users/{id}", "delete user")
}

// ChangePassword implements [ServerAdapter] via PATCH /api/users/{id}/password.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (string, error) {
	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return "", err
	}

	return h.doIDRequest(r.SetPathParam("id", req.UserID), resty.MethodPatch, "/api/users/{id}/password", "change password")
}

// ServerVersion implements [ServerAdapter] via GET /api/version/.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) doIDRequest(r *resty.Request, method, path, op string) (string, error) {
	var result models.IDResponse

	resp, err := r.SetResult(&result).Execute(method, path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.ID, nil
}

// jsonRequest returns an authenticated request carrying body as JSON,
// signed when a hash key is configured.
func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	r := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.signer != nil {
		r.SetHeader(hashHeader, h.signer.Sign(payload))
	}

	return r, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
