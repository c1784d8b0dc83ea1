// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the payload of the account-creation endpoint.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// LoginRequest carries credentials for token issuance.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest carries the mutable profile fields of a user.
// UserID is taken from the URL, never from the body.
type UpdateUserRequest struct {
	UserID string `json:"-"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// ChangePasswordRequest is the payload of the password-change endpoint.
// UserID is taken from the URL, never from the body.
type ChangePasswordRequest struct {
	UserID             string `json:"-"`
	OldPassword        string `json:"password_old"`
	NewPassword        string `json:"password_new"`
	NewPasswordConfirm string `json:"password_confirm"`
}
