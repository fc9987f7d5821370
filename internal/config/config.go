package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Events   EventsConfig
	Export   ExportConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	OtlpEndpoint       string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret   string
	TokenExpiry time.Duration
}

type EventsConfig struct {
	NatsURL     string
	NatsEnabled bool
	AuditTopic  string
}

type ExportConfig struct {
	CacheTTL time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			OtlpEndpoint:       getEnv("OTLP_ENDPOINT", "localhost:4318"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret:   getEnv("JWT_SECRET", ""),
			TokenExpiry: getEnvAsDuration("JWT_TOKEN_EXPIRY", 24*time.Hour),
		},
		Events: EventsConfig{
			NatsURL:     getEnv("NATS_URL", "nats://localhost:4222"),
			NatsEnabled: getEnvAsBool("NATS_ENABLED", false),
			AuditTopic:  getEnv("AUDIT_EVENT_TOPIC_NAME", "DOMAIN_EVENTS"),
		},
		Export: ExportConfig{
			CacheTTL: getEnvAsDuration("EXPORT_CACHE_TTL", 10*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
