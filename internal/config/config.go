package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds the blog host configuration
type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
	SiteURL       string // always ends with "/"
	BlogID        string
	AdminPassword string // seeds the admin account on an empty database
	RememberFor   time.Duration
	Log           LogConfig
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
	Env   string
}

// Load reads .env (when present) then environment variables
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, reading env vars from system")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=frontsession port=5432 sslmode=disable"),
		SessionSecret: getEnv("SESSION_SECRET", "secret_key_change_me"),
		SiteURL:       getEnv("SITE_URL", "http://localhost:8080/"),
		BlogID:        getEnv("BLOG_ID", "default"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		RememberFor:   getDurationEnv("SESSION_REMEMBER", 30*24*time.Hour),
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			Env:   getEnv("ENV", "production"),
		},
	}
	if !strings.HasSuffix(cfg.SiteURL, "/") {
		cfg.SiteURL += "/"
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if days, err := strconv.Atoi(value); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	return defaultValue
}
