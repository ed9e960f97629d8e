package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DefaultCacheTTL, cfg.Cache.TTL)
	assert.Equal(t, 15*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "fleet-edi-gateway", cfg.Auth.AdminJWTIssuer)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FEG_SERVER_PORT", "9090")
	t.Setenv("FEG_PROVIDER_API_KEY", "secret-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "secret-key", cfg.Provider.APIKey)
}

func TestLoad_CacheTTLClampedToMax(t *testing.T) {
	t.Setenv("FEG_CACHE_TTL", "30m")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, MaxCacheTTL, cfg.Cache.TTL)
}

func TestLoad_CacheTTLZeroFallsBackToDefault(t *testing.T) {
	t.Setenv("FEG_CACHE_TTL", "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCacheTTL, cfg.Cache.TTL)
}

func TestLoad_CacheTTLWithinBoundsKept(t *testing.T) {
	t.Setenv("FEG_CACHE_TTL", "2m")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db.internal", Port: 5432, User: "app", Password: "pw",
		DBName: "fleet_edi_gateway", SSLMode: "require",
	}
	assert.Equal(t, "postgres://app:pw@db.internal:5432/fleet_edi_gateway?sslmode=require", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}
