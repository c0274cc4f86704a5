package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

func loadEnv() {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})
}

func Config(key string) string {
	loadEnv()
	return os.Getenv(key)
}

func configOr(key, fallback string) string {
	if v := strings.TrimSpace(Config(key)); v != "" {
		return v
	}
	return fallback
}

type Settings struct {
	DatabaseURL      string
	Port             string
	DBHealthSchedule string
	SeedCategories   bool
}

func Load() (Settings, error) {
	s := Settings{
		DatabaseURL:      strings.TrimSpace(Config("DATABASE_URL")),
		Port:             configOr("PORT", "8080"),
		DBHealthSchedule: configOr("DB_HEALTH_SCHEDULE", "*/5 * * * *"),
		SeedCategories:   true,
	}

	if s.DatabaseURL == "" {
		s.DatabaseURL = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			configOr("DB_HOST", "localhost"),
			configOr("DB_PORT", "5432"),
			Config("DB_USER"),
			Config("DB_PASSWORD"),
			configOr("DB_NAME", "trivia"),
		)
	}

	if raw := strings.TrimSpace(Config("SEED_CATEGORIES")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid SEED_CATEGORIES: %w", err)
		}
		s.SeedCategories = v
	}

	if _, err := strconv.Atoi(s.Port); err != nil {
		return Settings{}, fmt.Errorf("invalid PORT %q: %w", s.Port, err)
	}

	return s, nil
}

func (s Settings) HealthJobEnabled() bool {
	return s.DBHealthSchedule != "off"
}
