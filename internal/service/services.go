package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/lockout"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/password"
	"github.com/MKhiriev/go-user-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService

	// Governor is the process-wide lockout state shared by AuthService and
	// the lockout reporter.
	Governor lockout.Governor
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher, err := password.NewArgon2Hasher(password.Params{
		Time:      cfg.App.PasswordHashing.Time,
		MemoryKiB: cfg.App.PasswordHashing.MemoryKiB,
		Threads:   cfg.App.PasswordHashing.Threads,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	governor := lockout.NewGovernor(
		lockout.WithThreshold(cfg.Lockout.FailureThreshold()),
		lockout.WithCooldown(cfg.Lockout.Cooldown),
	)

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, hasher, governor, cfg.App, logger),
	)
	userService := NewUserValidationService().Wrap(
		NewUserService(storages.UserRepository, logger),
	)

	return &Services{
		AuthService:    authService,
		UserService:    userService,
		AppInfoService: appInfoService,
		Governor:       governor,
	}, nil
}
