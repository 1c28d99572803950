package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/linskybing/formkit/pkg/logger"
)

var (
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	DbSSLMode          string
	ServerPort         string
	LogLevel           string
	GinMode            string
	CORSAllowedOrigins []string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		logger.Infof("No .env file found, using environment variables")
	}

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "forms")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")
	ServerPort = getEnv("SERVER_PORT", "8080")
	LogLevel = getEnv("LOG_LEVEL", "info")
	GinMode = getEnv("GIN_MODE", "release")
	CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:*,http://127.0.0.1:*"))

	if err := logger.SetLevel(LogLevel); err != nil {
		logger.Warnf("invalid LOG_LEVEL %q, keeping %s", LogLevel, logger.Logger.GetLevel())
	}
}

// DSN builds the PostgreSQL connection string from the loaded settings.
func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		DbHost,
		DbPort,
		DbUser,
		DbPassword,
		DbName,
		DbSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
