package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the optional per-project configuration file, looked up
// in the scan root.
const ConfigFileName = "script-detection.yaml"

// Environment variables recognized as overrides. Precedence is
// flags > environment > yaml.
const (
	EnvFormat         = "SCRIPT_DETECTION_FORMAT"
	EnvFailOnFindings = "SCRIPT_DETECTION_FAIL_ON_FINDINGS"
)

// ProjectConfig holds per-project defaults for the scan command.
type ProjectConfig struct {
	// Format selects the report renderer: text, json, yaml, or markdown.
	Format string `yaml:"format,omitempty"`

	// Output is a file path for the report; empty means stdout.
	Output string `yaml:"output,omitempty"`

	// FailOnFindings makes the scan exit non-zero when any package
	// declares a lifecycle script.
	FailOnFindings bool `yaml:"fail_on_findings,omitempty"`
}

// Load reads script-detection.yaml from sourcePath.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnvOverrides layers recognized environment variables over cfg.
func ApplyEnvOverrides(cfg *ProjectConfig) error {
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(EnvFailOnFindings); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvFailOnFindings, v, err)
		}
		cfg.FailOnFindings = parsed
	}
	return nil
}
