// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

// AuthService owns the credential lifecycle: registration guarded by the
// lockout governor, login, password change and JWT handling.
type AuthService interface {
	// Register creates an account. A password/confirmation mismatch is
	// recorded as a failure for the email before the error is returned.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login checks credentials and returns the matching user.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// ChangePassword replaces the password of req.UserID and returns the id.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (string, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService is the thin read/update/delete/list layer over the credential
// store.
type UserService interface {
	List(ctx context.Context, query models.ListQuery) (models.UserPage, error)
	Get(ctx context.Context, id string) (models.User, error)
	Update(ctx context.Context, req models.UpdateUserRequest) (string, error)
	Delete(ctx context.Context, id string) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// UserServiceWrapper defines middleware composition for UserService.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
