// Package config contains the definition of the application config structure
// and logic required to load and update it.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config represents the configuration of the application.
type Config struct {
	Sheets            SheetsConfig `yaml:"sheets"`
	GitHub            GitHubConfig `yaml:"github"`
	Linear            LinearConfig `yaml:"linear"`
	CACertificatePath string       `yaml:"ca_certificate_path,omitempty"`
}

// SheetsConfig contains settings for the Google Sheets client.
type SheetsConfig struct {
	// CredentialSources overrides the credential lookup order when set.
	// An empty list means the built-in order.
	CredentialSources []string `yaml:"credential_sources"`
}

// GitHubConfig contains settings for the GitHub client.
type GitHubConfig struct {
	// TokenSources overrides the token lookup order when set.
	TokenSources []string `yaml:"token_sources"`
}

// LinearConfig contains settings for the Linear client.
type LinearConfig struct {
	// KeySources overrides the API key lookup order when set.
	KeySources []string `yaml:"key_sources"`
	// Team is the default team name used when an issue request names none.
	Team string `yaml:"team,omitempty"`
	// DefaultEmail is the fallback account email for assigned-issue listings.
	DefaultEmail string `yaml:"default_email,omitempty"`
}

// defaultPathGenerator generates the default config path using xdg
var defaultPathGenerator = func() (string, error) {
	return xdg.ConfigFile("gofer/config.yaml")
}

// getConfigPath is the current path generator, can be replaced in tests
var getConfigPath = defaultPathGenerator

// createNewConfigWithDefaults creates a new config with default values.
// Empty source lists mean the built-in lookup order for each service.
func createNewConfigWithDefaults() Config {
	return Config{}
}

// LoadOrCreateConfig fetches the application configuration.
// If it does not already exist - it will create a new config file with default values.
func LoadOrCreateConfig() (*Config, error) {
	return NewConfigStore().Load(context.Background())
}

// LoadOrCreateConfigWithPath fetches the application configuration from a specific path.
// If configPath is empty, it uses the default path.
// If it does not already exist - it will create a new config file with default values.
func LoadOrCreateConfigWithPath(configPath string) (*Config, error) {
	return NewConfigStoreWithPath(configPath).Load(context.Background())
}

// Save serializes the config struct and writes it to disk.
func (c *Config) save() error {
	return c.saveToPath("")
}

// saveToPath serializes the config struct and writes it to a specific path.
// If configPath is empty, it uses the default path.
func (c *Config) saveToPath(configPath string) error {
	if configPath == "" {
		var err error
		configPath, err = getConfigPath()
		if err != nil {
			return fmt.Errorf("unable to fetch config path: %w", err)
		}
	}

	configBytes, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error serializing config file: %w", err)
	}

	err = os.WriteFile(configPath, configBytes, 0600)
	if err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// UpdateConfig loads config from the default store, applies changes, and saves back
func UpdateConfig(updateFn func(*Config)) error {
	return UpdateConfigWithStore(nil, updateFn)
}

// UpdateConfigWithStore uses the provided store or creates a new one to update config
func UpdateConfigWithStore(store Store, updateFn func(*Config)) error {
	if store == nil {
		store = NewConfigStore()
	}

	err := store.Update(context.Background(), updateFn)
	if err != nil {
		return err
	}

	// Update singleton cache if this is the current config
	if appConfig != nil {
		config, err := store.Load(context.Background())
		if err != nil {
			return fmt.Errorf("failed to reload config: %w", err)
		}
		lock.Lock()
		appConfig = config
		lock.Unlock()
	}

	return nil
}

// UpdateConfigAtPath loads config from a specific path, applies changes, and saves back
// If configPath is empty, it uses the default path.
func UpdateConfigAtPath(configPath string, updateFn func(*Config)) error {
	store := NewConfigStoreWithPath(configPath)
	return store.Update(context.Background(), updateFn)
}
