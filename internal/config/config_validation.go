// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no HTTP or gRPC address", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.DB.DriverName() {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Lockout.FailureThreshold() < 0 || cfg.Lockout.Cooldown <= 0 {
		return fmt.Errorf("%w: threshold=%d cooldown=%s", ErrInvalidLockoutConfigs, cfg.Lockout.FailureThreshold(), cfg.Lockout.Cooldown)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
