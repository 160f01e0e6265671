package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value of the given key from .env / environment.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Print("Error loading .env file")
	}
	return os.Getenv(key)
}

// ConfigOr returns the env value or def when the key is unset.
func ConfigOr(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}
