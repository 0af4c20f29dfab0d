package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EnvAPIURL overrides the configured backend address when set.
const EnvAPIURL = "MEDSEARCH_API_URL"

// DefaultAPIURL is the backend address used when nothing else is configured.
const DefaultAPIURL = "http://localhost:8000"

// Config represents the application configuration
type Config struct {
	Version      int        `toml:"version"`
	APIURL       string     `toml:"api_url"`
	DefaultLimit int        `toml:"default_limit"`
	TimeoutSec   int        `toml:"timeout_sec"`
	LogLevel     string     `toml:"log_level"`
	UISettings   UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowTiming   bool `toml:"show_timing"`
	AbstractRows int  `toml:"abstract_rows"` // abstract lines shown per result card
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	medsearchDir := filepath.Join(configDir, "medsearch")
	os.MkdirAll(medsearchDir, 0755)

	return &configService{
		filePath: filepath.Join(medsearchDir, "config.toml"),
	}
}

// Load loads the configuration from the default path
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolveAPIURL returns the backend address, preferring the
// environment over the config file.
func ResolveAPIURL(cfg *Config) string {
	if v := os.Getenv(EnvAPIURL); v != "" {
		return v
	}
	if cfg.APIURL != "" {
		return cfg.APIURL
	}
	return DefaultAPIURL
}

// applyDefaults fills zero values that would make the UI unusable
func applyDefaults(cfg *Config) {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.DefaultLimit < 1 || cfg.DefaultLimit > 100 {
		cfg.DefaultLimit = 5
	}
	if cfg.TimeoutSec <= 0 {
		cfg.TimeoutSec = 30
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.UISettings.AbstractRows <= 0 {
		cfg.UISettings.AbstractRows = 3
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:      1,
		APIURL:       DefaultAPIURL,
		DefaultLimit: 5,
		TimeoutSec:   30,
		LogLevel:     "info",
		UISettings: UISettings{
			ShowTiming:   true,
			AbstractRows: 3,
		},
	}
}
