package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	CORS_ORIGIN string
	SIGNUP_URL  string

	LOG_LEVEL   string
	ENVIRONMENT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	// Static trial sign-up link rendered in the summary panel. No parameters
	// are ever computed into it.
	SIGNUP_URL = getEnv("SIGNUP_URL", "https://count.co/sign-up?trial=true")

	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	ENVIRONMENT = getEnv("ENVIRONMENT", "development")
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
