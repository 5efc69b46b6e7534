package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	logcfg "github.com/ncobase/nasadmin/logging/logger/config"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. NASADMIN_CLIENT_BASE_URL.
const EnvPrefix = "NASADMIN"

// Logger is the logger configuration
type Logger = logcfg.Config

// Config represents the configuration implementation.
type Config struct {
	AppName  string    `json:"app_name" yaml:"app_name"`
	RunMode  string    `json:"run_mode" yaml:"run_mode"`
	Server   *Server   `json:"server" yaml:"server" validate:"required"`
	Client   *Client   `json:"client" yaml:"client" validate:"required"`
	Logger   *Logger   `json:"logger" yaml:"logger"`
	Data     *Data     `json:"data" yaml:"data" validate:"required"`
	Observes *Observes `json:"observes" yaml:"observes"`

	Viper *viper.Viper `json:"-" yaml:"-"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// LoadConfig loads the configuration from the file. An empty path searches
// the default locations; a missing file there is not an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("/etc/nasadmin")
		v.AddConfigPath("$HOME/.nasadmin")
		v.AddConfigPath(".")
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(ex))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := FromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		AppName:  getStringOrDefault(v, "app_name", "nasadmin"),
		RunMode:  getStringOrDefault(v, "run_mode", "release"),
		Server:   getServerConfig(v),
		Client:   getClientConfig(v),
		Logger:   logcfg.GetConfig(v),
		Data:     getDataConfig(v),
		Observes: getObservesConfig(v),
		Viper:    v,
	}
}

// Validate checks the struct tags of the configuration tree.
func (c *Config) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Watch watches the configuration file and hands the reloaded config to
// callback. Reload errors are passed to onError and the old config stays.
func (c *Config) Watch(callback func(*Config), onError func(error)) {
	if c.Viper == nil || c.Viper.ConfigFileUsed() == "" {
		return
	}
	path := c.Viper.ConfigFileUsed()
	c.Viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		next, err := LoadConfig(path)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		callback(next)
	})
	c.Viper.WatchConfig()
}
