package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/lockout"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/password"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It runs the registration and password change workflows on top of a
// UserRepository, a password Hasher and the process-wide lockout Governor,
// and handles the JWT token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks salted one-way password hashes.
	hasher password.Hasher

	// governor counts mismatched registration attempts per email.
	governor lockout.Governor

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// collaborators and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use: its own state is
// read-only after construction and governor serializes lockout updates.
func NewAuthService(userRepository store.UserRepository, hasher password.Hasher, governor lockout.Governor, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		governor:       governor,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Returns the stored user or:
//   - *TooManyAttemptsError (matches ErrTooManyAttempts) if the confirmation
//     does not match and the email is inside a cooldown.
//   - ErrPasswordMismatch if the confirmation does not match otherwise.
//   - ErrEmailAlreadyTaken if the email belongs to an existing user.
//   - ErrCreationFailed wrapping the cause if hashing or the insert fails.
//
// A store outage always keeps store.ErrStoreUnavailable in the chain.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Password != req.PasswordConfirm {
		decision := a.governor.RecordFailure(req.Email)
		if decision.Locked {
			log.Warn().
				Str("email", req.Email).
				Int("failures", decision.Failures).
				Time("locked_until", decision.Until).
				Msg("registration attempt during lockout")
			return models.User{}, &TooManyAttemptsError{
				Until:      decision.Until,
				RetryAfter: decision.RetryAfter,
			}
		}

		log.Info().Str("email", req.Email).Int("failures", decision.Failures).Msg("password confirmation mismatch")
		return models.User{}, ErrPasswordMismatch
	}

	if err := a.ensureEmailIsFree(ctx, req.Email); err != nil {
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrCreationFailed, err)
	}

	user, err := a.userRepository.Insert(ctx, req.Name, req.Email, hash)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyTaken
		}
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("%w: %w", ErrCreationFailed, err)
	}

	a.governor.Reset(req.Email)

	return user, nil
}

func (a *authService) ensureEmailIsFree(ctx context.Context, email string) error {
	_, err := a.userRepository.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrEmailAlreadyTaken
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	default:
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
// Login attempts are not counted by the lockout governor.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.verify(ctx, user, req.Password); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ChangePassword replaces the password of an existing user.
//
// Returns the user id or:
//   - ErrPasswordMismatch if the new password and its confirmation differ.
//   - ErrInvalidCredentials if the user does not exist or the old password
//     is wrong.
//   - ErrUpdateFailed wrapping the cause if hashing or the update fails.
func (a *authService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (string, error) {
	log := logger.FromContext(ctx)

	if req.NewPassword != req.NewPasswordConfirm {
		return "", ErrPasswordMismatch
	}

	user, err := a.userRepository.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		log.Err(err).Str("id", req.UserID).Msg("user search by id failed")
		return "", fmt.Errorf("user search by id failed: %w", err)
	}

	if err = a.verify(ctx, user, req.OldPassword); err != nil {
		return "", err
	}

	hash, err := a.hasher.Hash(req.NewPassword)
	if err != nil {
		log.Err(err).Str("id", user.ID).Msg("error hashing password")
		return "", fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	if err = a.userRepository.UpdatePassword(ctx, user.ID, hash); err != nil {
		log.Err(err).Str("id", user.ID).Msg("password update ended with error")
		return "", fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	return user.ID, nil
}

// verify compares plain with the stored hash of user. A malformed stored
// hash is logged and treated as a mismatch.
func (a *authService) verify(ctx context.Context, user models.User, plain string) error {
	ok, err := a.hasher.Verify(plain, user.PasswordHash)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", user.ID).Msg("stored password hash cannot be verified")
		return ErrInvalidCredentials
	}
	if !ok {
		return ErrInvalidCredentials
	}

	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
