package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
// Durations accept both strings ("30m") and integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
		Argon2        struct {
			Time      uint32 `json:"time"`
			MemoryKiB uint32 `json:"memory_kib"`
			Threads   uint8  `json:"threads"`
		} `json:"argon2,omitempty"`
	} `json:"app,omitempty"`

	Lockout struct {
		Threshold *int     `json:"threshold"`
		Cooldown  Duration `json:"cooldown"`
	} `json:"lockout,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			Driver       string `json:"driver"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		GRPCAddress       string   `json:"grpc_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		RegisterRateLimit int      `json:"register_rate_limit"`
		TrustProxyHeaders bool     `json:"trust_proxy_headers"`
	} `json:"server,omitempty"`

	Workers struct {
		LockoutReportInterval Duration `json:"lockout_report_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			HashKey:       jsonCfg.App.HashKey,
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
			PasswordHashing: PasswordHashing{
				Time:      jsonCfg.App.Argon2.Time,
				MemoryKiB: jsonCfg.App.Argon2.MemoryKiB,
				Threads:   jsonCfg.App.Argon2.Threads,
			},
		},
		Lockout: Lockout{
			Threshold: jsonCfg.Lockout.Threshold,
			Cooldown:  time.Duration(jsonCfg.Lockout.Cooldown),
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				Driver:       jsonCfg.Storage.DB.Driver,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			GRPCAddress:       jsonCfg.Server.GRPCAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			RegisterRateLimit: jsonCfg.Server.RegisterRateLimit,
			TrustProxyHeaders: jsonCfg.Server.TrustProxyHeaders,
		},
		Workers: Workers{
			LockoutReportInterval: time.Duration(jsonCfg.Workers.LockoutReportInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
