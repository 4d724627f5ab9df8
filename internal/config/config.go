package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string

	JWTSecret      string
	JWTExpiryHours int

	// RedisAddr is the notification channel broker. Empty means
	// notifications are written to the log instead.
	RedisAddr string

	// NotifyFallbackEmail receives unassignment notices when the task
	// had no assignee.
	NotifyFallbackEmail string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              getEnv("DB_USER", "taskflow_user"),
		DBPassword:          getEnv("DB_PASSWORD", "taskflow_pass"),
		DBName:              getEnv("DB_NAME", "taskflow_db"),
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		JWTSecret:           getEnv("JWT_SECRET", "supersecretkey"),
		JWTExpiryHours:      getEnvInt("JWT_EXPIRY_HOURS", 24),
		RedisAddr:           getEnv("REDIS_ADDR", ""),
		NotifyFallbackEmail: getEnv("NOTIFY_FALLBACK_EMAIL", "notifications@taskflow.local"),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultVal
}
