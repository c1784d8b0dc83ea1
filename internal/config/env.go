// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. prefix is prepended to
// every key, so the client reads CLIENT_SERVER_ADDRESS while the server reads
// SERVER_ADDRESS from the same struct tags.
func parseEnv(cfg any, prefix string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
