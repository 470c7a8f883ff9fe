package config

import (
	"log/slog"
	"os"
	"time"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

// Enabled reports whether enough is set to talk to the bucket.
func (r R2) Enabled() bool {
	return r.AccountID != "" && r.AccessKey != "" && r.SecretKey != "" && r.BucketName != ""
}

type Config struct {
	Port          string
	FrontendURL   string
	Timezone      string
	SeedPath      string
	RedisURI      string
	R2            R2
	SecretKey     string
	CookieName    string
	SweepSchedule string
	LogLevel      string
}

func LoadConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", "3000"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		Timezone:    getEnv("TIMEZONE", "UTC"),
		SeedPath:    getEnv("SEED_PATH", ""),
		RedisURI:    getEnv("REDIS_URI", ""),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		SecretKey:     getEnv("SECRET_KEY", "fluxora-dev-secret"),
		CookieName:    getEnv("COOKIE_NAME", "fluxora_session"),
		SweepSchedule: getEnv("SWEEP_SCHEDULE", "@every 1m"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

// Location resolves Timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("unknown timezone, using UTC", "timezone", c.Timezone, "error", err)
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
