package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

// AuthValidationService rejects malformed requests before they reach the
// wrapped AuthService, so the workflows only see well-formed input.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during registration request validation: %w", err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during login request validation: %w", err)
	}

	return v.inner.Login(ctx, req)
}

// ChangePassword validates everything but the old password's strength: it
// only has to match what is stored.
func (v *AuthValidationService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", fmt.Errorf("error during password change request validation: %w", err)
	}

	return v.inner.ChangePassword(ctx, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// UserValidationService is the UserService counterpart of
// AuthValidationService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) List(ctx context.Context, query models.ListQuery) (models.UserPage, error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return models.UserPage{}, fmt.Errorf("%w: %w", ErrInvalidListQuery, err)
	}

	return v.inner.List(ctx, query)
}

func (v *UserValidationService) Get(ctx context.Context, id string) (models.User, error) {
	return v.inner.Get(ctx, id)
}

func (v *UserValidationService) Update(ctx context.Context, req models.UpdateUserRequest) (string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", fmt.Errorf("error during update request validation: %w", err)
	}

	return v.inner.Update(ctx, req)
}

func (v *UserValidationService) Delete(ctx context.Context, id string) (string, error) {
	return v.inner.Delete(ctx, id)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
