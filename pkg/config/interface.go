package config

// Provider defines the interface for configuration operations
type Provider interface {
	GetConfig() *Config
	UpdateConfig(updateFn func(*Config)) error
	LoadOrCreateConfig() (*Config, error)

	// CA certificate operations
	SetCACert(certPath string) error
	GetCACert() (certPath string, exists bool, accessible bool)
	UnsetCACert() error
}

// DefaultProvider implements Provider using the default XDG config path
type DefaultProvider struct{}

// NewDefaultProvider creates a new default config provider
func NewDefaultProvider() *DefaultProvider {
	return &DefaultProvider{}
}

// GetConfig returns the singleton config
func (*DefaultProvider) GetConfig() *Config {
	return Get()
}

// UpdateConfig updates the config using the default path
func (*DefaultProvider) UpdateConfig(updateFn func(*Config)) error {
	return UpdateConfig(updateFn)
}

// LoadOrCreateConfig loads or creates config using the default path
func (*DefaultProvider) LoadOrCreateConfig() (*Config, error) {
	return LoadOrCreateConfig()
}

// SetCACert validates and records a CA certificate path
func (d *DefaultProvider) SetCACert(certPath string) error {
	return setCACert(d, certPath)
}

// GetCACert returns the configured CA certificate path and its status
func (d *DefaultProvider) GetCACert() (certPath string, exists bool, accessible bool) {
	return getCACert(d)
}

// UnsetCACert removes the CA certificate configuration
func (d *DefaultProvider) UnsetCACert() error {
	return unsetCACert(d)
}

// PathProvider implements Provider using a specific config path
type PathProvider struct {
	configPath string
}

// NewPathProvider creates a new config provider with a specific path
func NewPathProvider(configPath string) *PathProvider {
	return &PathProvider{configPath: configPath}
}

// GetConfig loads and returns the config from the specific path
func (p *PathProvider) GetConfig() *Config {
	config, err := LoadOrCreateConfigWithPath(p.configPath)
	if err != nil {
		// Return default config on error, similar to singleton behavior
		defaultConfig := createNewConfigWithDefaults()
		return &defaultConfig
	}
	return config
}

// UpdateConfig updates the config at the specific path
func (p *PathProvider) UpdateConfig(updateFn func(*Config)) error {
	return UpdateConfigAtPath(p.configPath, updateFn)
}

// LoadOrCreateConfig loads or creates config at the specific path
func (p *PathProvider) LoadOrCreateConfig() (*Config, error) {
	return LoadOrCreateConfigWithPath(p.configPath)
}

// SetCACert validates and records a CA certificate path
func (p *PathProvider) SetCACert(certPath string) error {
	return setCACert(p, certPath)
}

// GetCACert returns the configured CA certificate path and its status
func (p *PathProvider) GetCACert() (certPath string, exists bool, accessible bool) {
	return getCACert(p)
}

// UnsetCACert removes the CA certificate configuration
func (p *PathProvider) UnsetCACert() error {
	return unsetCACert(p)
}
