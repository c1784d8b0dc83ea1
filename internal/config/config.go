// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-user-keeper server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters,
	// password hashing cost and the application version.
	App App `envPrefix:"APP_"`

	// Lockout holds the registration brute-force safeguard policy.
	Lockout Lockout `envPrefix:"LOCKOUT_"`

	// Storage holds configuration for the credential store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Integrity checks are off when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel narrows the global zerolog level ("info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// PasswordHashing holds the argon2id cost parameters.
	PasswordHashing PasswordHashing `envPrefix:"ARGON2_"`
}

// PasswordHashing holds argon2id cost parameters used for new hashes.
// Existing hashes carry their own parameters and stay verifiable after a
// change here.
type PasswordHashing struct {
	// Time is the number of argon2 passes. Env: APP_ARGON2_TIME
	Time uint32 `env:"TIME"`

	// MemoryKiB is the memory cost in KiB. Env: APP_ARGON2_MEMORY_KIB
	MemoryKiB uint32 `env:"MEMORY_KIB"`

	// Threads is the degree of parallelism. Env: APP_ARGON2_THREADS
	Threads uint8 `env:"THREADS"`
}

// Lockout configures the registration lockout governor.
type Lockout struct {
	// Threshold is the failure count above which a cooldown is opened.
	// Nil selects DefaultLockoutThreshold; an explicit 0 locks on the first
	// failure. Env: LOCKOUT_THRESHOLD
	Threshold *int `env:"THRESHOLD"`

	// Cooldown is the length of the lockout window.
	// Env: LOCKOUT_COOLDOWN
	Cooldown time.Duration `env:"COOLDOWN"`
}

// FailureThreshold returns the configured threshold or the default when
// none was set.
func (l Lockout) FailureThreshold() int {
	if l.Threshold == nil {
		return DefaultLockoutThreshold
	}
	return *l.Threshold
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format. Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server
	// listens. Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RegisterRateLimit is the number of registration requests per minute
	// allowed from one client address. Negative disables the limit.
	// Env: SERVER_REGISTER_RATE_LIMIT
	RegisterRateLimit int `env:"REGISTER_RATE_LIMIT"`

	// TrustProxyHeaders takes the client address from X-Forwarded-For and
	// X-Real-IP. Enable only behind a proxy that overwrites those headers.
	// Env: SERVER_TRUST_PROXY_HEADERS
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS"`
}

// Storage groups the configuration for the credential store.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// Driver names accepted in [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the data source name: a PostgreSQL URL or a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver selects the database/sql driver ("pgx" or "sqlite3").
	// When empty it is derived from the DSN, see [DB.DriverName].
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// MaxOpenConns caps the connection pool. Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// DriverName returns the configured driver or, when none is set, guesses
// one from the DSN: PostgreSQL URLs and key=value strings select pgx,
// anything else is treated as a SQLite file.
func (db DB) DriverName() string {
	if db.Driver != "" {
		return db.Driver
	}

	dsn := strings.ToLower(db.DSN)
	if strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=") {
		return DriverPostgres
	}

	return DriverSQLite
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// LockoutReportInterval is how often lockout statistics are logged.
	// Env: WORKERS_LOCKOUT_REPORT_INTERVAL
	LockoutReportInterval time.Duration `env:"LOCKOUT_REPORT_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults fill whatever is still zero afterwards.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
