// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Transport-level errors. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrForeignAccount is returned when the token subject differs from the
	// user id in the URL.
	ErrForeignAccount = errors.New("access to another user's account is forbidden")

	ErrInvalidJSON          = errors.New("invalid JSON was passed")
	ErrInvalidQueryParam    = errors.New("invalid query parameter")
	ErrIntegrityCheckFailed = errors.New("integrity check failed")
	ErrTooManyRequests      = errors.New("too many requests")
	ErrRouteNotFound        = errors.New("route not found")
)
