package config

import (
	"log"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	JWT    JWTConfig
	Admin  AdminConfig
	Worker WorkerConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type StoreConfig struct {
	// SQLitePath is the local store file used when no DB_URL is set.
	SQLitePath string
	// PostgresURL switches the store to Postgres when non-empty.
	PostgresURL string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type AdminConfig struct {
	ID           string
	PasswordHash string
}

type WorkerConfig struct {
	// LegacyPassword is the effective password for worker records that
	// predate the password field.
	LegacyPassword string
	DefaultArea    string
	DefaultRate    float64
}

var AppConfig *Config

func Load() {
	adminPassword := getEnv("ADMIN_PASSWORD", "admin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Store: StoreConfig{
			SQLitePath:  getEnv("THEKEDAAR_DB", "thekedaar.db"),
			PostgresURL: getEnv("DB_URL", ""),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-this-in-production"),
			ExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 24),
		},
		Admin: AdminConfig{
			ID:           getEnv("ADMIN_ID", "admin"),
			PasswordHash: string(hash),
		},
		Worker: WorkerConfig{
			LegacyPassword: getEnv("WORKER_LEGACY_PASSWORD", "123"),
			DefaultArea:    getEnv("DEFAULT_AREA", "Bhilai"),
			DefaultRate:    getEnvAsFloat("DEFAULT_HOURLY_RATE", 300),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
