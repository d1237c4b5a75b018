// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment. Struct fields are
// mapped via their `env` and `envPrefix` tags defined on [StructuredConfig]
// and its nested types.
func parseEnv(cfg any) error {
	if err := parseEnvironment(cfg, nil); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}

// parseEnvironment is parseEnv over an explicit variable set. A nil map
// means the process environment.
func parseEnvironment(cfg any, vars map[string]string) error {
	return env.ParseWithOptions(cfg, env.Options{Environment: vars})
}
