package config

import (
	"os"
	"strconv"
	"time"

	"godiya-emr-backend/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string

	// Artificial delay applied to login and password-change requests.
	// The dashboard frontend expects backend latency here; keep it
	// configurable so tests can set it to zero.
	SimulatedLatency time.Duration
}

func Load() *Config {
	// .env is optional; real deployments set env vars directly
	if err := godotenv.Load(); err == nil {
		logger.Log.Info("Loaded environment from .env file")
	}

	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=godiya_emr port=5432 sslmode=disable"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		CORSOrigins:      getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		SimulatedLatency: time.Duration(getEnvInt("SIMULATED_LATENCY_MS", 800)) * time.Millisecond,
	}

	if cfg.JWTSecret == "" {
		logger.Log.Fatal("JWT_SECRET environment variable is not set, it is required")
	}
	if len(cfg.JWTSecret) < 32 {
		logger.Log.Fatal("JWT_SECRET must be at least 32 characters")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=godiya_emr port=5432 sslmode=disable" {
		logger.Log.Warn("DATABASE_DSN is using the default value, set your own Postgres connection for production")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		logger.Log.Warn("CORS_ALLOWED_ORIGINS is using the default value, set your own domain for production")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
		logger.WithField("key", key).Warn("Invalid integer environment value, using default")
	}
	return def
}
