// Package config loads the initforge configuration from initforge.yaml and
// the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the initforge configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Metadata MetadataConfig `mapstructure:"metadata"`
}

// ServerConfig represents HTTP server configuration.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// MetadataConfig represents metadata source configuration. Source is a file
// path or an http(s) URL; an empty source uses the built-in catalog.
type MetadataConfig struct {
	Source          string        `mapstructure:"source"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	Cache           CacheConfig   `mapstructure:"cache"`
}

// CacheConfig represents the metadata document cache configuration.
type CacheConfig struct {
	// Backend is "memory" or "redis".
	Backend   string        `mapstructure:"backend"`
	RedisAddr string        `mapstructure:"redis_addr"`
	TTL       time.Duration `mapstructure:"ttl"`
}

// Addr returns the server listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load loads the configuration from initforge.yml or initforge.yaml in the
// working directory, falling back to defaults. Environment variables with
// the INITFORGE_ prefix override file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("metadata.source", "")
	v.SetDefault("metadata.refresh_interval", 10*time.Minute)
	v.SetDefault("metadata.cache.backend", "memory")
	v.SetDefault("metadata.cache.redis_addr", "localhost:6379")
	v.SetDefault("metadata.cache.ttl", 10*time.Minute)

	v.SetConfigName("initforge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("INITFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got: %d", cfg.Server.Port)
	}
	switch cfg.Metadata.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("metadata.cache.backend must be 'memory' or 'redis', got: %s",
			cfg.Metadata.Cache.Backend)
	}
	return nil
}
