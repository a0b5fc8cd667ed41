package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env         string
	ServerPort  string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	LogLevel    string
	SwaggerHost string

	// Mail delivery for verification and password-reset flows.
	SMTPAddr string
	SMTPFrom string

	// AppBaseURL is the externally reachable base URL used in
	// verification and reset links.
	AppBaseURL string

	// Initial admin account created by cmd/seed.
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("APP_ENV", "development"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/minops?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),

		SMTPAddr: getEnv("SMTP_ADDR", "localhost:25"),
		SMTPFrom: getEnv("SMTP_FROM", "no-reply@minops.local"),

		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:8080"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@minops.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "change-me-now"),
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
