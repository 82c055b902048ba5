// Package config loads runtime settings from environment variables and an
// optional config file, env taking precedence. All keys have defaults; a
// missing config file is not an error.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Database Database `mapstructure:"database"`
	Sweep    Sweep    `mapstructure:"sweep"`
	Log      Log      `mapstructure:"log"`
}

type Database struct {
	// DSN is the sqlite path or connection string.
	DSN string `mapstructure:"dsn"`
}

type Sweep struct {
	// Time is the daily generation sweep time as HH:MM.
	Time string `mapstructure:"time"`
	// Timezone is an IANA zone name for the sweep clock.
	Timezone string `mapstructure:"timezone"`
}

type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
}

// Load reads configuration. Environment variables use the BEETRACK_ prefix
// with underscores for nesting, e.g. BEETRACK_DATABASE_DSN.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.dsn", "beetrack.db")
	v.SetDefault("sweep.time", "03:00")
	v.SetDefault("sweep.timezone", "UTC")
	v.SetDefault("log.level", "info")

	v.SetConfigName("beetrack")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/beetrack")

	v.SetEnvPrefix("BEETRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
