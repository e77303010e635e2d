// Package config loads the server configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the server.
type Config struct {
	Addr          string        // listen address
	DataDir       string        // badger database directory
	SessionTTL    time.Duration // session lifetime
	BcryptCost    int           // password hashing work factor
	SecureCookies bool          // mark session cookies Secure (behind TLS)
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:          getEnv("INKWELL_ADDR", ":4004"),
		DataDir:       getEnv("INKWELL_DATA_DIR", "data/badger"),
		SessionTTL:    getEnvAsDuration("INKWELL_SESSION_TTL", time.Hour),
		BcryptCost:    getEnvAsInt("INKWELL_BCRYPT_COST", 10),
		SecureCookies: getEnvAsBool("INKWELL_SECURE_COOKIES", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
