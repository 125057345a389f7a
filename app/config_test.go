package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/countries/internal/nexus"
	"github.com/joefazee/countries/models"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(nexus.WithOnlyEnvironment())

	require.NoError(t, err)
	assert.Equal(t, "localhost:2019", cfg.Addr())
	assert.Equal(t, DataSourceMemory, cfg.DataSource)
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, "countries:all", cfg.Redis.Key)
	assert.Equal(t, 250*time.Millisecond, cfg.Redis.OpTimeout)
	assert.Equal(t, "migrations", cfg.DB.MigrationsPath)
}

func TestLoadConfig_PostgresRequiresCredentials(t *testing.T) {
	t.Setenv("DATA_SOURCE", "postgres")

	cfg, err := LoadConfig(nexus.WithOnlyEnvironment())

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, models.ErrDatabaseCredentialNotConfigured)
}

func TestLoadConfig_Postgres(t *testing.T) {
	t.Setenv("DATA_SOURCE", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "countries")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "countries")

	cfg, err := LoadConfig(nexus.WithOnlyEnvironment())

	require.NoError(t, err)
	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
}

func TestLoadConfig_UnknownDataSource(t *testing.T) {
	t.Setenv("DATA_SOURCE", "mysql")

	_, err := LoadConfig(nexus.WithOnlyEnvironment())

	var cfgErr *nexus.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, nexus.ErrCodeValidation, cfgErr.Code)
}

func TestConfig_Validate_UnknownDataSource(t *testing.T) {
	cfg := &Config{DataSource: "mysql"}
	assert.ErrorIs(t, cfg.Validate(), models.ErrUnknownDataSource)
}

func TestRedisConfig_Options(t *testing.T) {
	rc := RedisConfig{Addr: "cache:6379", DB: 2, PoolSize: 4, MaxRetries: 1, OpTimeout: time.Second}

	opts := rc.Options()

	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 4, opts.PoolSize)
	assert.Equal(t, time.Second, opts.OpTimeout)
}
