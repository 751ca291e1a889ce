package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadJWTConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	loadJWTConfig()

	assert.NotEmpty(t, JWTSecret)
	assert.Equal(t, 24*time.Hour, JWTExpiration)
}

func TestLoadJWTConfigFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")

	loadJWTConfig()

	assert.Equal(t, []byte("test-secret"), JWTSecret)
	assert.Equal(t, 2*time.Hour, JWTExpiration)
}

func TestLoadJWTConfigIgnoresBadExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "not-a-number")

	loadJWTConfig()

	assert.Equal(t, 24*time.Hour, JWTExpiration)
}

func TestLoadJWTConfigRequiresSecretInProduction(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "production")

	assert.Panics(t, func() { loadJWTConfig() })
}
