package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Import   ImportConfig
	Worker   WorkerConfig
	Logging  LoggingConfig
	EventBus EventBusConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
	AllowOrigins    []string
}

type AuthConfig struct {
	JWTSecret    string
	JWTExpiresIn time.Duration
}

type ImportConfig struct {
	MaxFileBytes int64
	MaxRows      int
}

type WorkerConfig struct {
	PoolSize   int
	MaxRetries int
}

type LoggingConfig struct {
	Level string
}

type EventBusConfig struct {
	ChannelBufferSize int
}

type SeedConfig struct {
	DemoData bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "3000"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
			AllowOrigins:    getListEnv("ALLOW_ORIGINS", []string{"*"}),
		},
		Auth: AuthConfig{
			JWTSecret:    getEnv("JWT_SECRET", "secret"),
			JWTExpiresIn: getDurationEnv("JWT_EXPIRES_IN", 7*24*time.Hour),
		},
		Import: ImportConfig{
			MaxFileBytes: int64(getIntEnv("IMPORT_MAX_FILE_BYTES", 5<<20)),
			MaxRows:      getIntEnv("IMPORT_MAX_ROWS", 5000),
		},
		Worker: WorkerConfig{
			PoolSize:   getIntEnv("WORKER_POOL_SIZE", 10),
			MaxRetries: getIntEnv("MAX_RETRIES", 5),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		EventBus: EventBusConfig{
			ChannelBufferSize: getIntEnv("EVENT_CHANNEL_BUFFER_SIZE", 1000),
		},
		Seed: SeedConfig{
			DemoData: getBoolEnv("SEED_DEMO_DATA", true),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getListEnv splits a comma separated value, dropping empty entries.
func getListEnv(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
