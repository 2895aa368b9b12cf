package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	// Capture
	CaptureInterval   time.Duration
	RecognizerURL     string // empty -> simulated detector
	RecognizerTimeout time.Duration
	// Conversational AI
	AIAPIKey  string
	AIBaseURL string
	AIModel   string
	AITimeout time.Duration
}

func Load() *Config {
	return &Config{
		Port:       getenv("PORT", "8080"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "sentinel_db"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		CaptureInterval:   getseconds("CAPTURE_INTERVAL_SECONDS", 2),
		RecognizerURL:     getenv("RECOGNIZER_URL", ""),
		RecognizerTimeout: getseconds("RECOGNIZER_TIMEOUT_SECONDS", 10),

		AIAPIKey:  getenv("AI_API_KEY", ""),
		AIBaseURL: getenv("AI_BASE_URL", ""),
		AIModel:   getenv("AI_MODEL", ""),
		AITimeout: getseconds("AI_TIMEOUT_SECONDS", 30),
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getseconds(key string, fallback int) time.Duration {
	v := os.Getenv(key)
	if v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(fallback) * time.Second
}
