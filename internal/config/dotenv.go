package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultDotEnvFile is read from the working directory when present.
const DefaultDotEnvFile = ".env"

// parseDotEnv reads KEY=VALUE pairs from path and maps them onto a fresh
// StructuredConfig with the same tags parseEnv uses. The process
// environment is left untouched. A missing file yields (nil, nil).
func parseDotEnv(path string) (*StructuredConfig, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	if vars == nil {
		vars = map[string]string{}
	}

	cfg := &StructuredConfig{}
	if err := parseEnvironment(cfg, vars); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return cfg, nil
}
