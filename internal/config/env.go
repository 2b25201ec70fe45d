package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service
type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Engine EngineConfig
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Host         string
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// RedisConfig configures the event publisher. An empty Addr disables
// event publishing entirely.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// EngineConfig points at the transcription engine configuration file
type EngineConfig struct {
	ConfigPath string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error since variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load builds the configuration from environment variables with defaults.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("HOST", "0.0.0.0"),
			Port:         getEnvOrDefault("PORT", "8000"),
			Environment:  getEnvOrDefault("ENVIRONMENT", "development"),
			ReadTimeout:  getDurationOrDefault("READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationOrDefault("WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDurationOrDefault("IDLE_TIMEOUT", 60*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", ""),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       getIntOrDefault("REDIS_DB", 0),
			Channel:  getEnvOrDefault("REDIS_CHANNEL", "transcriptions-events"),
		},
		Engine: EngineConfig{
			ConfigPath: getEnvOrDefault("ENGINE_CONFIG", ""),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
