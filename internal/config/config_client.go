package config

import (
	"fmt"
)

// ClientConfig is the configuration view of the command-line client and of
// everything that wires the backend. It leaves out the gateway settings.
type ClientConfig struct {
	// App contains token and picture settings.
	App App
	// Adapter contains backend selection and identifiers.
	Adapter Adapter
	// Storage contains store connection settings.
	Storage Storage
}

// Client returns the client view of cfg.
func (cfg *StructuredConfig) Client() *ClientConfig {
	return &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
	}
}

// GetClientConfig builds and validates the client view from the merged
// structured configuration. Gateway settings are not required.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.Client()
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}
