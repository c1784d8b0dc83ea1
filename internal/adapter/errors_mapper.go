package adapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-user-keeper/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses and an [*APIError] otherwise.
// The JSON error envelope is used when present; a plain body is kept as
// the message.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		kind:       statusErrors[resp.StatusCode()],
	}

	var envelope models.ErrorBody
	body := resp.Body()
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
		if envelope.Error.RetryAfter != "" {
			if until, err := time.Parse(time.RFC3339, envelope.Error.RetryAfter); err == nil {
				apiErr.RetryAfter = until
			}
		}
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}
	if resp.StatusCode() == http.StatusForbidden && !apiErr.RetryAfter.IsZero() {
		apiErr.kind = ErrLocked
	}

	return apiErr
}
