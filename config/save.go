package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveConfig provides methods to save configuration values.
type SaveConfig struct {
	// GlobalConfigDir is the directory under ~/.config/ for global config.
	GlobalConfigDir string

	// GlobalConfigFile is the filename. Defaults to "config.yaml".
	GlobalConfigFile string

	// LocalConfigName is the filename for local config.
	LocalConfigName string

	// ValidKeys lists keys that can be saved. If nil, all keys are valid.
	ValidKeys []string
}

func (c SaveConfig) globalConfigFile() string {
	if c.GlobalConfigFile != "" {
		return c.GlobalConfigFile
	}
	return "config.yaml"
}

// GlobalPath returns the global config file location under home.
func (c SaveConfig) GlobalPath(home string) string {
	return filepath.Join(home, ".config", c.GlobalConfigDir, c.globalConfigFile())
}

// SaveGlobal saves a key-value pair to the global config file.
func (c SaveConfig) SaveGlobal(key, value string) error {
	if c.GlobalConfigDir == "" {
		return fmt.Errorf("global config directory not configured")
	}
	if err := c.validate(key); err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := c.GlobalPath(home)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return err
	}

	return writeKey(configPath, key, value, 0o600)
}

// SaveLocal saves a key-value pair to the local config file in dir.
func (c SaveConfig) SaveLocal(dir, key, value string) error {
	if dir == "" {
		return fmt.Errorf("local config directory not set")
	}
	if c.LocalConfigName == "" {
		return fmt.Errorf("local config name not configured")
	}
	if err := c.validate(key); err != nil {
		return err
	}

	// Local config may be shared and should be readable
	return writeKey(filepath.Join(dir, c.LocalConfigName), key, value, 0o644)
}

func (c SaveConfig) validate(key string) error {
	if len(c.ValidKeys) > 0 && !slices.Contains(c.ValidKeys, key) {
		return fmt.Errorf("unknown config key: %s\n\nValid keys: %s",
			key, strings.Join(c.ValidKeys, ", "))
	}
	return nil
}

// writeKey merges key into the YAML file at path. A malformed existing
// file is replaced.
func writeKey(path, key, value string, perm os.FileMode) error {
	var existing map[string]interface{}
	if data, readErr := os.ReadFile(path); readErr == nil { //nolint:gosec // config path
		_ = yaml.Unmarshal(data, &existing)
	}
	if existing == nil {
		existing = make(map[string]interface{})
	}

	existing[key] = parseValue(value)

	data, err := yaml.Marshal(existing)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, perm)
}

// parseValue converts string values to appropriate types for YAML.
func parseValue(value string) interface{} {
	lower := strings.ToLower(value)
	if lower == "true" {
		return true
	}
	if lower == "false" {
		return false
	}
	return value
}
