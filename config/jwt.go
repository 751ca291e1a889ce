package config

import (
	"os"
	"strconv"
	"time"
)

var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	loadJWTConfig()
}

// loadJWTConfig reads the session-signing settings from the environment.
// Development falls back to a throwaway secret; production refuses to start
// without JWT_SECRET so sessions are never signed with a known key.
func loadJWTConfig() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("APP_ENV") == "production" {
			panic("JWT_SECRET must be set when APP_ENV=production")
		}
		secret = "dev-only-insecure-secret"
	}
	JWTSecret = []byte(secret)

	JWTExpiration = 24 * time.Hour
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			JWTExpiration = time.Duration(hours) * time.Hour
		}
	}
}
