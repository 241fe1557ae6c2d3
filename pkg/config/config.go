package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseURL      string
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Auto-postpone fallback when neither board nor account carries a period
	AutoPostponeDays int

	// Interval between auto-postpone sweeps
	AutoPostponeInterval time.Duration

	// Firebase service account file for push notifications (optional)
	FirebaseCredentials string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 15 * time.Minute
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	refreshExpiry := 168 * time.Hour // 7 days
	if exp := os.Getenv("JWT_REFRESH_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			refreshExpiry = parsed
		}
	}

	postponeDays := 30
	if d := os.Getenv("AUTO_POSTPONE_DAYS"); d != "" {
		if parsed, err := strconv.Atoi(d); err == nil && parsed > 0 {
			postponeDays = parsed
		}
	}

	postponeInterval := 1 * time.Hour
	if iv := os.Getenv("AUTO_POSTPONE_INTERVAL"); iv != "" {
		if parsed, err := time.ParseDuration(iv); err == nil {
			postponeInterval = parsed
		}
	}

	return &Config{
		Port:                 getEnv("PORT", "8080"),
		DatabaseURL:          getEnv("DATABASE_URL", "host=localhost user=fizzy password=fizzy dbname=fizzy port=5432 sslmode=disable"),
		JWTSecret:            getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:      accessExpiry,
		JWTRefreshExpiry:     refreshExpiry,
		AutoPostponeDays:     postponeDays,
		AutoPostponeInterval: postponeInterval,
		FirebaseCredentials:  getEnv("FIREBASE_CREDENTIALS", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
