package config

import "time"

// Defaults applied to every field left zero by all configuration sources.
const (
	DefaultLockoutThreshold      = 5
	DefaultLockoutCooldown       = 30 * time.Minute
	DefaultTokenIssuer           = "go-user-keeper"
	DefaultTokenDuration         = time.Hour
	DefaultRequestTimeout        = 30 * time.Second
	DefaultRegisterRateLimit     = 60
	DefaultMaxOpenConns          = 10
	DefaultLockoutReportInterval = 5 * time.Minute
	DefaultVersion               = "dev"

	DefaultArgon2Time      uint32 = 3
	DefaultArgon2MemoryKiB uint32 = 64 * 1024
	DefaultArgon2Threads   uint8  = 2
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
			PasswordHashing: PasswordHashing{
				Time:      DefaultArgon2Time,
				MemoryKiB: DefaultArgon2MemoryKiB,
				Threads:   DefaultArgon2Threads,
			},
		},
		Lockout: Lockout{
			Threshold: intPtr(DefaultLockoutThreshold),
			Cooldown:  DefaultLockoutCooldown,
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: DefaultMaxOpenConns},
		},
		Server: Server{
			RequestTimeout:    DefaultRequestTimeout,
			RegisterRateLimit: DefaultRegisterRateLimit,
		},
		Workers: Workers{
			LockoutReportInterval: DefaultLockoutReportInterval,
		},
	}
}

func intPtr(v int) *int {
	return &v
}
