package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Unknown-plan policies for subscribe requests. The behavior is an explicit
// deployment choice: reject the request, or re-home it onto the monthly plan.
const (
	UnknownPlanReject  = "reject"
	UnknownPlanMonthly = "monthly"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Server
	Port string

	// CORS
	CORSOrigins     []string
	CORSCredentials bool

	// Admin
	AdminToken string

	// Subscription behavior
	UnknownPlanPolicy string

	// Logging
	LogRetentionDays int
}

func Load() *Config {
	// .env is optional; real deployments inject env directly.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "planhub_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		Port: getEnv("PORT", "8080"),

		CORSOrigins:     parseCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		CORSCredentials: parseBool(getEnv("CORS_CREDENTIALS", "false")),

		AdminToken: getEnv("ADMIN_TOKEN", ""),

		UnknownPlanPolicy: parsePolicy(getEnv("UNKNOWN_PLAN_POLICY", UnknownPlanReject)),

		LogRetentionDays: parseInt(getEnv("LOG_RETENTION_DAYS", "30"), 30),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parsePolicy(s string) string {
	if strings.EqualFold(s, UnknownPlanMonthly) {
		return UnknownPlanMonthly
	}
	return UnknownPlanReject
}
