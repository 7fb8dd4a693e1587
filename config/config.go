package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	PORT         string
	APP_ENV      string
	CORS_ORIGIN  string
	DB_URL       string
	DB_MAX_CONNS int

	SESSION_SECRET    string
	SESSION_TTL_HOURS int
	REDIS_ADDR        string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "4000")
	APP_ENV = getEnv("APP_ENV", "development")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	// DB_URL may be empty in development; main falls back to the in-memory store.
	DB_URL = getEnv("DB_URL", "")
	DB_MAX_CONNS = getEnvInt("DB_MAX_CONNS", 10)

	SESSION_SECRET = mustEnv("SESSION_SECRET")
	SESSION_TTL_HOURS = getEnvInt("SESSION_TTL_HOURS", 24)
	REDIS_ADDR = getEnv("REDIS_ADDR", "")

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")
}

func IsProduction() bool {
	return APP_ENV == "production"
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer, got %q", key, value)
	}
	return n
}
