package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "test-secret", cfg.SecretKey)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.True(t, cfg.RunMigrations)
}

// TestLoad_MissingSecretKey verifies a missing signing key is a hard
// configuration failure, not a silent fallback.
func TestLoad_MissingSecretKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := Load()

	assert.Error(t, err, "startup must fail without SECRET_KEY")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("PORT", "9000")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_HOST", "cache.internal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Contains(t, cfg.DSN(), "host=db.internal")
	assert.Equal(t, "cache.internal:6379", cfg.RedisAddr())
}

func TestConfig_RedisAddr_Unconfigured(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("REDIS_HOST", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.RedisAddr(), "no Redis host means no address")
}
