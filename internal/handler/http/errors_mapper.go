package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked top to bottom and the first match wins. Wrapped
// errors often match several targets (a failed insert is both
// ErrCreationFailed and ErrStoreUnavailable), so order matters.
var errorStatuses = []errorStatus{
	{store.ErrStoreUnavailable, http.StatusServiceUnavailable},
	{service.ErrTooManyAttempts, http.StatusForbidden},

	{service.ErrInvalidListQuery, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidQueryParam, http.StatusBadRequest},
	{ErrIntegrityCheckFailed, http.StatusBadRequest},

	{validators.ErrValidation, http.StatusUnprocessableEntity},
	{service.ErrPasswordMismatch, http.StatusUnprocessableEntity},
	{service.ErrEmailAlreadyTaken, http.StatusUnprocessableEntity},
	{service.ErrInvalidCredentials, http.StatusUnprocessableEntity},
	{service.ErrCreationFailed, http.StatusUnprocessableEntity},
	{service.ErrUpdateFailed, http.StatusUnprocessableEntity},

	{service.ErrNotFound, http.StatusNotFound},
	{ErrRouteNotFound, http.StatusNotFound},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{ErrForeignAccount, http.StatusForbidden},

	{ErrTooManyRequests, http.StatusTooManyRequests},
}

// statusFromError returns the status of the first matching target, the
// target itself, and 500 with a nil target when nothing matches.
func statusFromError(err error) (int, error) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es.status, es.target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError sends the JSON error envelope for err. Lockout errors also get
// a Retry-After header in whole seconds and the cooldown end in the body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, target := statusFromError(err)
	detail := models.ErrorDetail{
		Code:    status,
		Message: publicMessage(err, target, status),
	}

	var tooMany *service.TooManyAttemptsError
	if errors.As(err, &tooMany) {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(tooMany.RetryAfter)))
		detail.RetryAfter = tooMany.Until.UTC().Format(time.RFC3339)
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorBody{Error: detail}, status)
}

// publicMessage keeps internal wrapping out of responses: validation errors
// report the broken rule, other known errors their sentinel text.
func publicMessage(err, target error, status int) string {
	var fieldErr *validators.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return fieldErr.Field + ": " + fieldErr.Error()
	case target == store.ErrStoreUnavailable:
		return "service temporarily unavailable"
	case target != nil:
		return target.Error()
	default:
		return http.StatusText(status)
	}
}

func retryAfterSeconds(d time.Duration) int {
	seconds := int(math.Ceil(d.Seconds()))
	if seconds < 1 {
		return 1
	}
	return seconds
}
