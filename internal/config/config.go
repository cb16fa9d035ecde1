package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultCopyWindowMs is how long the copy indicator stays lit after a
// successful clipboard write.
const DefaultCopyWindowMs = 2000

type Config struct {
	CopyWindowMs     int  `json:"copy_window_ms"`
	DisableClipboard bool `json:"disable_clipboard,omitempty"`
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return config, nil
}

// CopyWindow returns the configured indicator window, falling back to the
// default for zero or nonsense values.
func (c *Config) CopyWindow() time.Duration {
	ms := c.CopyWindowMs
	if ms <= 0 {
		ms = DefaultCopyWindowMs
	}
	return time.Duration(ms) * time.Millisecond
}

func getConfigPath() (string, error) {
	var configDir string

	// Use KEYACK_HOME if set, otherwise use user's home directory
	if keyackHome := os.Getenv("KEYACK_HOME"); keyackHome != "" {
		configDir = keyackHome
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".keyack", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	// Read existing config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		CopyWindowMs: DefaultCopyWindowMs,
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}
