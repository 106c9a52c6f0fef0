package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:     get("PORT", "8080"),
		Timezone: get("TZ", "America/Denver"),
		DBPath:   get("DB_PATH", "graze.db"),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
