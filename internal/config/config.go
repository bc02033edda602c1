// Package config loads application configuration from environment variables.
// A .env file in the working directory is read first when present, so local
// development does not need exported variables.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to an
// environment variable; secrets are required, everything else has a default
// suitable for local development.
type Config struct {
	Env           string // application environment ("dev", "prod")
	Port          string // HTTP port to listen on
	DataFile      string // path of the JSON catalog file; empty selects the default data/data.json
	JWTSecret     string // secret used to sign access tokens
	AccessTTLMin  int    // access token time-to-live in minutes
	BcryptCost    int    // bcrypt cost for hashing the admin password
	AdminEmail    string // email of the single administrator account
	AdminPassword string // password of the administrator, hashed at startup
	AllowReclose  bool   // whether closing an already-closed rental overwrites the return date
}

// Load reads the .env file (if any) and builds a Config. Missing required
// variables abort startup with a fatal log message.
func Load() Config {
	// Absence of .env is fine; real environments export variables directly.
	_ = godotenv.Load()

	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("APP_PORT", "8080"),
		DataFile:      os.Getenv("DATA_FILE"),
		JWTSecret:     must("JWT_SECRET"),
		AccessTTLMin:  getenvInt("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:    getenvInt("BCRYPT_COST", 10),
		AdminEmail:    must("ADMIN_EMAIL"),
		AdminPassword: must("ADMIN_PASSWORD"),
		AllowReclose:  getenvBool("RENTAL_ALLOW_RECLOSE", true),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the variable's value or the given default when unset.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvInt parses an integer variable, falling back to the default on
// absence or parse failure.
func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("config: invalid int for %s: %q, using %d", key, v, def)
	}
	return def
}

// getenvBool parses a boolean variable ("true"/"1"/"false"/"0").
func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("config: invalid bool for %s: %q, using %v", key, v, def)
	}
	return def
}
