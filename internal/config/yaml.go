package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// isYAMLFile reports whether path names a YAML configuration file.
func isYAMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// parseConfigFile reads the configuration file at path, choosing the
// decoder by extension. Anything that is not .yaml or .yml is JSON.
func parseConfigFile(path string) (*StructuredConfig, error) {
	if isYAMLFile(path) {
		return parseYAML(path)
	}
	return parseJSON(path)
}

func parseYAML(yamlFilePath string) (*StructuredConfig, error) {
	yamlFile, err := os.Open(yamlFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}
	defer yamlFile.Close()

	var yamlCfg StructuredJSONConfig
	decoder := yaml.NewDecoder(yamlFile)
	decoder.KnownFields(true)
	if err := decoder.Decode(&yamlCfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	return yamlCfg.toStructuredConfig(), nil
}

// UnmarshalYAML accepts Go duration strings ("90s") and integer nanoseconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}

	if parsed, err := time.ParseDuration(value.Value); err == nil {
		*d = Duration(parsed)
		return nil
	}

	var nanos int64
	if err := value.Decode(&nanos); err != nil {
		return fmt.Errorf("line %d: invalid duration %q", value.Line, value.Value)
	}
	*d = Duration(time.Duration(nanos))
	return nil
}
