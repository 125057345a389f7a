package app

import (
	"fmt"
	"time"

	"github.com/joefazee/countries/app/database"
	"github.com/joefazee/countries/internal/cache"
	"github.com/joefazee/countries/internal/nexus"
	"github.com/joefazee/countries/models"
)

const (
	DataSourceMemory   = "memory"
	DataSourcePostgres = "postgres"
	DataSourceRedis    = "redis"
)

// RedisConfig configures the redis snapshot store
type RedisConfig struct {
	Addr       string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password   string        `env:"REDIS_PASSWORD"`
	DB         int           `env:"REDIS_DB" env-default:"0"`
	Key        string        `env:"REDIS_KEY" env-default:"countries:all"`
	PoolSize   int           `env:"REDIS_POOL_SIZE" env-default:"10"`
	MaxRetries int           `env:"REDIS_MAX_RETRIES" env-default:"3"`
	OpTimeout  time.Duration `env:"REDIS_OP_TIMEOUT" env-default:"250ms"`
}

// Options converts the config into cache client options
func (c *RedisConfig) Options() *cache.RedisOptions {
	return &cache.RedisOptions{
		Addr:            c.Addr,
		Password:        c.Password,
		DB:              c.DB,
		PoolSize:        c.PoolSize,
		MinIdleConns:    1,
		MaxRetries:      c.MaxRetries,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		OpTimeout:       c.OpTimeout,
	}
}

type Config struct {
	DB    database.Config
	Redis RedisConfig

	AppHost     string `env:"APP_HOST" env-default:"localhost"`
	AppPort     string `env:"APP_PORT" env-default:"2019"`
	Env         string `env:"APP_ENV" env-default:"development" validate:"oneof=development staging production test"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`
	DataSource  string `env:"DATA_SOURCE" env-default:"memory" validate:"oneof=memory postgres redis"`
	SeedOnStart bool   `env:"SEED_ON_START" env-default:"true"`
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// Validate checks settings that depend on the selected data source
func (c *Config) Validate() error {
	switch c.DataSource {
	case DataSourceMemory, DataSourceRedis:
		return nil
	case DataSourcePostgres:
		return c.DB.Validate()
	default:
		return fmt.Errorf("%w: %q", models.ErrUnknownDataSource, c.DataSource)
	}
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig(opts ...nexus.LoaderOption) (*Config, error) {
	c := &Config{}
	if err := nexus.NewLoader(opts...).Load(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
