package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds everything read from the environment at startup. A missing
// DATABASE_URL is not an error here: the store reports itself unavailable and
// the /test endpoint surfaces the gap instead of the process refusing to boot.
type Config struct {
	Port string `env:"PORT" envDefault:"8000"`

	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"mouqab"`

	RedisAddr      string        `env:"REDIS_ADDR"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	SearchCacheTTL time.Duration `env:"SEARCH_CACHE_TTL" envDefault:"60s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// HasDatabaseURL and HasDatabaseName back the /test diagnostics.
func (c *Config) HasDatabaseURL() bool  { return c.DatabaseURL != "" }
func (c *Config) HasDatabaseName() bool { return c.DatabaseName != "" }
