package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file when present; real environment variables win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// Getenv returns the variable's value or the fallback when unset.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
