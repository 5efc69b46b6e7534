package config

import (
	"github.com/spf13/viper"
)

// Data represents the data configuration
type Data struct {
	SQLite *SQLite `json:"sqlite" yaml:"sqlite" validate:"required"`
	Redis  *Redis  `json:"redis" yaml:"redis"`
}

// SQLite configures the appliance record store
type SQLite struct {
	Source      string `json:"source" yaml:"source" validate:"required"`
	MaxOpenConn int    `json:"max_open_conn" yaml:"max_open_conn" validate:"gte=0"`
}

// Redis configures the optional page cache; an empty Addr disables it
type Redis struct {
	Addr     string `json:"addr" yaml:"addr"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

func getDataConfig(v *viper.Viper) *Data {
	return &Data{
		SQLite: &SQLite{
			Source:      getStringOrDefault(v, "data.sqlite.source", "file:nasadmin.db?cache=shared&mode=rwc"),
			MaxOpenConn: getIntOrDefault(v, "data.sqlite.max_open_conn", 1),
		},
		Redis: &Redis{
			Addr:     v.GetString("data.redis.addr"),
			Username: v.GetString("data.redis.username"),
			Password: v.GetString("data.redis.password"),
			DB:       v.GetInt("data.redis.db"),
		},
	}
}
