package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Addr           string
	JWTSecret      string
	StorageBackend string
	BoltPath       string
	DatabaseDSN    string
}

// Load reads the environment (honoring a local .env file when present) and
// returns the resolved configuration. Defaults suit local development.
func Load() Config {
	_ = godotenv.Load()

	// Amounts in stored blobs and API payloads are plain JSON numbers, matching
	// the v1.1 backup format.
	decimal.MarshalJSONWithoutQuotes = true

	return Config{
		Addr:           getEnv("ADDR", ":8080"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		StorageBackend: getEnv("STORAGE_BACKEND", "bolt"),
		BoltPath:       getEnv("BOLT_PATH", "bizmoney.db"),
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
