package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables. A .env file in
// the working directory is loaded first, without overriding variables already
// present in the environment.
//
// Recognized variables:
//
//	ADDRESS         HTTP bind address (e.g. ":8080")
//	DATABASE_DSN    PostgreSQL DSN
//	JWT_SECRET      HMAC secret for signing tokens
//	TOKEN_VALIDITY  token lifetime as a Go duration ("24h")
//	BCRYPT_COST     bcrypt work factor
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if c, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = c
		}
	}
}
