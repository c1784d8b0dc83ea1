// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used by the command-line
// client to talk to the go-user-keeper server.
//
// The primary abstraction is [ServerAdapter]. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are returned as [*APIError], which unwraps to one of the
// sentinels in errors.go so callers can use [errors.Is] (e.g. [ErrLocked]
// for an account-creation cooldown, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the go-user-keeper server.
// Implementations handle serialisation, the bearer token and body signing.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an account. The server never returns the password.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login authenticates by email and password. On success the issued
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// ListUsers fetches one page of users.
	ListUsers(ctx context.Context, query models.ListQuery) (models.UserPage, error)

	// GetUser fetches a single user by id.
	GetUser(ctx context.Context, id string) (models.User, error)

	// UpdateUser changes name and email of the authenticated user.
	UpdateUser(ctx context.Context, req models.UpdateUserRequest) (string, error)

	// DeleteUser removes the authenticated user.
	DeleteUser(ctx context.Context, id string) (string, error)

	// ChangePassword replaces the password of the authenticated user.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (string, error)

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
