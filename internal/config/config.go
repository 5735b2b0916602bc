package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	PgHost     string
	PgPort     string
	PgUser     string
	PgPassword string
	PgDatabase string
	PgSSLMode  string

	MongoURI      string
	MongoDatabase string

	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		PgHost:         getEnv("POSTGRES_HOST", "db"),
		PgPort:         getEnv("POSTGRES_PORT", "5432"),
		PgUser:         getEnv("POSTGRES_USER", "tootodo"),
		PgPassword:     getEnv("POSTGRES_PASSWORD", "tootodo"),
		PgDatabase:     getEnv("POSTGRES_DB", "tootodo"),
		PgSSLMode:      getEnv("POSTGRES_SSLMODE", "disable"),
		MongoURI:       getEnv("MONGODB_URI", "mongodb://mongo:27017"),
		MongoDatabase:  getEnv("MONGODB_DATABASE", "tootodo"),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
