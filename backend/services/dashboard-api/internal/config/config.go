package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "traillog/backend/libs/config"
)

// Config defines dashboard API configuration. Redis and the service secret
// are optional: without redis the list query always hits the store, and
// without a secret the internal cache endpoint is not exposed.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"DASHBOARD_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn" env:"DASHBOARD_POSTGRES_DSN"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr" env:"DASHBOARD_REDIS_ADDR"`
		Password string `yaml:"password" env:"DASHBOARD_REDIS_PASSWORD"`
		TTL      int    `yaml:"ttlSeconds" env:"DASHBOARD_REDIS_TTL"`
	} `yaml:"redis"`
	Auth struct {
		ServiceSecret string `yaml:"serviceSecret" env:"DASHBOARD_SERVICE_SECRET"`
	} `yaml:"auth"`
}

// Load reads configuration via shared helper.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8080"
	cfg.Redis.TTL = 3600

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, errors.New("config: database dsn required")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// CacheTTL returns ttl as duration.
func (c *Config) CacheTTL() time.Duration {
	if c.Redis.TTL <= 0 {
		return time.Hour
	}
	return time.Duration(c.Redis.TTL) * time.Second
}

// CacheEnabled reports whether redis is configured.
func (c *Config) CacheEnabled() bool {
	return strings.TrimSpace(c.Redis.Addr) != ""
}
