package config

import (
	"errors"
	"strings"

	libconfig "traillog/backend/libs/config"
)

// Config defines the importer batch job configuration. Database and dashboard
// sections are optional: with no DSN the run stops after writing the local
// cache artifact (local-cache-only mode), and with no dashboard base URL the
// post-seed cache invalidation is skipped.
type Config struct {
	Source struct {
		Files []string `yaml:"files" env:"IMPORTER_SOURCE_FILES"`
	} `yaml:"source"`
	Cache struct {
		Path string `yaml:"path" env:"IMPORTER_CACHE_PATH"`
	} `yaml:"cache"`
	Database struct {
		DSN string `yaml:"dsn" env:"IMPORTER_POSTGRES_DSN"`
	} `yaml:"database"`
	Dashboard struct {
		BaseURL string `yaml:"baseUrl" env:"IMPORTER_DASHBOARD_URL"`
		Secret  string `yaml:"secret" env:"IMPORTER_SERVICE_SECRET"`
	} `yaml:"dashboard"`
	BatchSize int `yaml:"batchSize" env:"IMPORTER_BATCH_SIZE"`
}

// Load reads configuration via shared helper.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.Cache.Path = "data/activities.json"
	cfg.BatchSize = 500

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}

	if len(cfg.Source.Files) == 0 {
		return nil, errors.New("config: at least one source file required")
	}
	if strings.TrimSpace(cfg.Cache.Path) == "" {
		return nil, errors.New("config: cache path required")
	}
	if cfg.Dashboard.BaseURL != "" && strings.TrimSpace(cfg.Dashboard.Secret) == "" {
		return nil, errors.New("config: dashboard secret required when base url set")
	}
	return cfg, nil
}

// SeedEnabled reports whether a store DSN is configured.
func (c *Config) SeedEnabled() bool {
	return strings.TrimSpace(c.Database.DSN) != ""
}

// NotifyEnabled reports whether the dashboard should be notified after a seed.
func (c *Config) NotifyEnabled() bool {
	return strings.TrimSpace(c.Dashboard.BaseURL) != ""
}
