package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Init loads the environment and configures the logger. A missing .env file is
// fine in deployed environments where variables come from the platform.
func Init() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using process environment")
	}
	initLogger()
}

func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
