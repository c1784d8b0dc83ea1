package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-keeper/models"
)

func TestWriteJSON(t *testing.T) {
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "id response",
			data:     models.IDResponse{ID: "0195f0c2-aaaa"},
			status:   http.StatusOK,
			wantBody: `{"id":"0195f0c2-aaaa"}`,
		},
		{
			name:     "user never carries the hash",
			data:     models.User{ID: "u1", Name: "Ann", Email: "ann@example.com", PasswordHash: "secret", CreatedAt: created, UpdatedAt: created},
			status:   http.StatusOK,
			wantBody: `{"id":"u1","name":"Ann","email":"ann@example.com","created_at":"2026-05-01T12:00:00Z","updated_at":"2026-05-01T12:00:00Z"}`,
		},
		{
			name:     "nil",
			data:     nil,
			status:   http.StatusOK,
			wantBody: "null",
		},
		{
			name:     "custom status",
			data:     map[string]string{"error": "not found"},
			status:   http.StatusNotFound,
			wantBody: `{"error":"not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteText(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteText(w, "1.4.0", http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "1.4.0", w.Body.String())
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		remote string
		want   string
	}{
		{remote: "10.0.0.1:5555", want: "10.0.0.1"},
		{remote: "[::1]:8080", want: "::1"},
		{remote: "10.0.0.2", want: "10.0.0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote

			assert.Equal(t, tt.want, ClientIP(r))
		})
	}
}
