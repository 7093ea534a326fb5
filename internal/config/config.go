// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Database DatabaseConfig `mapstructure:"database"`
	Mirror   MirrorConfig   `mapstructure:"mirror"`
}

type DataConfig struct {
	Directory string `mapstructure:"directory" validate:"required,datadir"`
}

// DatabaseConfig selects the optional MySQL backend for the completion
// log and postponement records.
type DatabaseConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Host            string `mapstructure:"host" validate:"required_if=Enabled true"`
	Port            int    `mapstructure:"port" validate:"gte=0,lte=65535"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database" validate:"required_if=Enabled true"`
	TLS             bool   `mapstructure:"tls"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// MirrorConfig configures the optional remote replication of
// postponement actions. Failures there never block local operations.
type MirrorConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
	Token   string `mapstructure:"token"`
	UserID  string `mapstructure:"user_id"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/murajaah")
	}

	v.SetDefault("data.directory", filepath.Join("data"))
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)

	// Bind secrets to environment variables only (not from config file)
	if err := v.BindEnv("database.password", "MURAJAAH_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind MURAJAAH_DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("mirror.token", "MURAJAAH_MIRROR_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind MURAJAAH_MIRROR_TOKEN environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
