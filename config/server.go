package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Server is the dev list server configuration
type Server struct {
	Host         string        `json:"host" yaml:"host"`
	Port         int           `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
	ReadTimeout  time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
	SeedCount    int           `json:"seed_count" yaml:"seed_count" validate:"gte=0"`
}

// Addr returns host:port
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func getServerConfig(v *viper.Viper) *Server {
	return &Server{
		Host:         getStringOrDefault(v, "server.host", "127.0.0.1"),
		Port:         getIntOrDefault(v, "server.port", 8080),
		ReadTimeout:  getDurationOrDefault(v, "server.read_timeout", 15*time.Second),
		WriteTimeout: getDurationOrDefault(v, "server.write_timeout", 15*time.Second),
		SeedCount:    getIntOrDefault(v, "server.seed_count", 37),
	}
}
