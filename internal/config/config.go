// Package config handles configuration loading for the movie service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all configuration for the movie service.
type Config struct {
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	RedisHost          string
	RedisPort          string
	RedisPassword      string
	JWTSecret          string
	JWTExpiry          time.Duration
	BcryptCost         int
	Port               string
	Environment        string
	AllowedOrigins     []string
	RequestTimeout     time.Duration
	LoginMaxAttempts   int
	LoginAttemptWindow time.Duration
	SwaggerHost        string
}

// Load reads configuration from environment variables.
// A local .env file is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:             GetEnvRequired("DB_HOST"),
		DBPort:             GetEnvRequired("DB_PORT"),
		DBUser:             GetEnvRequired("DB_USER"),
		DBPassword:         GetEnvRequired("DB_PASSWORD"),
		DBName:             GetEnvRequired("DB_NAME"),
		RedisHost:          GetEnvRequired("REDIS_HOST"),
		RedisPort:          GetEnvRequired("REDIS_PORT"),
		RedisPassword:      GetEnv("REDIS_PASSWORD", ""),
		JWTSecret:          GetEnvRequired("JWT_SECRET"),
		JWTExpiry:          parseDuration(GetEnv("JWT_EXPIRY", "24h"), 24*time.Hour),
		BcryptCost:         parseBcryptCost(GetEnv("BCRYPT_COST", "12")),
		Port:               GetEnv("PORT", "8080"),
		Environment:        GetEnv("ENVIRONMENT", "development"),
		AllowedOrigins:     parseOrigins(GetEnv("ALLOWED_ORIGINS", "")),
		RequestTimeout:     parseDuration(GetEnv("REQUEST_TIMEOUT", "5s"), 5*time.Second),
		LoginMaxAttempts:   parseInt(GetEnv("LOGIN_MAX_ATTEMPTS", "10"), 10),
		LoginAttemptWindow: parseDuration(GetEnv("LOGIN_ATTEMPT_WINDOW", "15m"), 15*time.Minute),
		SwaggerHost:        GetEnv("SWAGGER_HOST", ""),
	}
}

// GetEnv returns the value of the environment variable or the default.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvRequired returns the value of the environment variable or panics.
func GetEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func parseInt(value string, defaultValue int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// parseBcryptCost clamps the configured cost to the range bcrypt accepts,
// with a floor of 10 rounds for password storage.
func parseBcryptCost(value string) int {
	cost := parseInt(value, 12)
	if cost < 10 {
		cost = 10
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return cost
}

func parseOrigins(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
