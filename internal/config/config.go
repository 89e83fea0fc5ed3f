package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	JWTSecret         string
	JWTTTL            time.Duration
	WebhookSecret     string
	AcademyRepo       string
	RawContentBaseURL string
	ServerPort        string
}

func Load() *Config {
	// Missing .env is fine, deployments set real env vars.
	_ = godotenv.Load()

	return &Config{
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "academy"),
		JWTSecret:         getEnv("JWT_SECRET", "super-secret-key-change-me"),
		JWTTTL:            time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		WebhookSecret:     getEnv("GITHUB_WEBHOOK_SECRET", ""),
		AcademyRepo:       getEnv("ACADEMY_REPO", "ai-academy-2026"),
		RawContentBaseURL: getEnv("RAW_CONTENT_BASE_URL", "https://raw.githubusercontent.com"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
