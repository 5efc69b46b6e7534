package config

import (
	"time"

	"github.com/spf13/viper"
)

// Client configures the list client and the collections built on it
type Client struct {
	BaseURL   string        `json:"base_url" yaml:"base_url" validate:"required,url"`
	PageSize  int           `json:"page_size" yaml:"page_size" validate:"gte=1"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	EchoCount bool          `json:"echo_count" yaml:"echo_count"`
	CacheTTL  time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
	Breaker   *Breaker      `json:"breaker" yaml:"breaker"`
}

// Breaker configures the client circuit breaker
type Breaker struct {
	Enabled      bool          `json:"enabled" yaml:"enabled"`
	MaxRequests  uint32        `json:"max_requests" yaml:"max_requests"`
	Interval     time.Duration `json:"interval" yaml:"interval"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	MinRequests  uint32        `json:"min_requests" yaml:"min_requests"`
	FailureRatio float64       `json:"failure_ratio" yaml:"failure_ratio" validate:"gte=0,lte=1"`
}

func getClientConfig(v *viper.Viper) *Client {
	return &Client{
		BaseURL:   getStringOrDefault(v, "client.base_url", "http://127.0.0.1:8080"),
		PageSize:  getIntOrDefault(v, "client.page_size", 10),
		Timeout:   getDurationOrDefault(v, "client.timeout", 30*time.Second),
		EchoCount: getBoolOrDefault(v, "client.echo_count", false),
		CacheTTL:  getDurationOrDefault(v, "client.cache_ttl", 0),
		Breaker: &Breaker{
			Enabled:      getBoolOrDefault(v, "client.breaker.enabled", false),
			MaxRequests:  getUint32OrDefault(v, "client.breaker.max_requests", 1),
			Interval:     getDurationOrDefault(v, "client.breaker.interval", 5*time.Second),
			Timeout:      getDurationOrDefault(v, "client.breaker.timeout", 3*time.Second),
			MinRequests:  getUint32OrDefault(v, "client.breaker.min_requests", 3),
			FailureRatio: getFloat64OrDefault(v, "client.breaker.failure_ratio", 0.6),
		},
	}
}
