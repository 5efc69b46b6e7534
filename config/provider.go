package config

import "github.com/google/wire"

// ProviderSet is the wire provider set for the config package.
// It extracts sub-configurations from a loaded *Config.
var ProviderSet = wire.NewSet(
	ProvideLoggerConfig,
	ProvideServerConfig,
	ProvideClientConfig,
	ProvideDataConfig,
)

// ProvideLoggerConfig provides the logger configuration.
func ProvideLoggerConfig(cfg *Config) *Logger {
	if cfg == nil {
		return nil
	}
	return cfg.Logger
}

// ProvideServerConfig provides the list server configuration.
func ProvideServerConfig(cfg *Config) *Server {
	if cfg == nil {
		return nil
	}
	return cfg.Server
}

// ProvideClientConfig provides the list client configuration.
func ProvideClientConfig(cfg *Config) *Client {
	if cfg == nil {
		return nil
	}
	return cfg.Client
}

// ProvideDataConfig provides the data layer configuration.
func ProvideDataConfig(cfg *Config) *Data {
	if cfg == nil {
		return nil
	}
	return cfg.Data
}
