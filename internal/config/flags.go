package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Populated from command-line flags before Init runs; Init fills anything
// still empty from the environment. The backend application name, the
// synthetic user id and the request timeout are deliberately not configurable
// and live in the client package.
var (
	BackendURL string
	Host       string
	Port       string
	LogLevel   string
)

func Init() {
	// A missing .env file is not an error; the environment may be set
	// directly by the deployment.
	_ = godotenv.Load()

	if BackendURL == "" {
		BackendURL = getEnv("BACKEND_URL", "http://localhost:8000")
	}
	if Host == "" {
		Host = getEnv("HOST", "0.0.0.0")
	}
	if Port == "" {
		Port = getEnv("PORT", "8001")
	}
	if LogLevel == "" {
		LogLevel = getEnv("LOG_LEVEL", "info")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
