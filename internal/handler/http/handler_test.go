package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case; a nil field panics so
// unexpected calls fail loudly.
type mockAuthService struct {
	registerFn       func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.User, error)
	changePasswordFn func(ctx context.Context, req models.ChangePasswordRequest) (string, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (string, error) {
	return m.changePasswordFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	listFn   func(ctx context.Context, query models.ListQuery) (models.UserPage, error)
	getFn    func(ctx context.Context, id string) (models.User, error)
	updateFn func(ctx context.Context, req models.UpdateUserRequest) (string, error)
	deleteFn func(ctx context.Context, id string) (string, error)
}

func (m *mockUserService) List(ctx context.Context, query models.ListQuery) (models.UserPage, error) {
	return m.listFn(ctx, query)
}

func (m *mockUserService) Get(ctx context.Context, id string) (models.User, error) {
	return m.getFn(ctx, id)
}

func (m *mockUserService) Update(ctx context.Context, req models.UpdateUserRequest) (string, error) {
	return m.updateFn(ctx, req)
}

func (m *mockUserService) Delete(ctx context.Context, id string) (string, error) {
	return m.deleteFn(ctx, id)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// tokenFor makes ParseToken accept "token-<id>" as a token of user id.
func tokenFor(auth *mockAuthService) {
	auth.parseTokenFn = func(_ context.Context, tokenString string) (models.Token, error) {
		const prefix = "token-"
		if len(tokenString) <= len(prefix) || tokenString[:len(prefix)] != prefix {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{UserID: tokenString[len(prefix):]}, nil
	}
}

func newTestRouter(t *testing.T, auth service.AuthService, users service.UserService, opts ...Option) http.Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		UserService:    users,
		AppInfoService: &mockAppInfoService{version: "test"},
	}
	return NewHandler(svcs, logger.Nop(), opts...).Init()
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorDetail {
	t.Helper()
	var body models.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}
