package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	WebSocket WebSocketConfig
	CORS      CORSConfig
	Uploads   UploadsConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type DatabaseConfig struct {
	Driver string
	DSN    string
}

type JWTConfig struct {
	Secret                 string
	Expiration             time.Duration
	RefreshTokenExpiration time.Duration
}

type WebSocketConfig struct {
	WriteWait      time.Duration
	PongWait       time.Duration
	PingPeriod     time.Duration
	MaxConnPerUser int
}

type CORSConfig struct {
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// UploadsConfig points at the external upload service; the server only
// ever calls its delete-by-key endpoint.
type UploadsConfig struct {
	APIURL string
	APIKey string
}

func Load() (*Config, error) {
	godotenv.Load()

	jwtExp, err := time.ParseDuration(getEnv("JWT_EXPIRATION", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION: %w", err)
	}

	refreshExp, err := time.ParseDuration(getEnv("REFRESH_TOKEN_EXPIRATION", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_TOKEN_EXPIRATION: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "0.0.0.0"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "sqlite3"),
			DSN:    getEnv("DB_DSN", "notable.db"),
		},
		JWT: JWTConfig{
			Secret:                 getEnv("JWT_SECRET", "dev-secret-change-in-production"),
			Expiration:             jwtExp,
			RefreshTokenExpiration: refreshExp,
		},
		WebSocket: WebSocketConfig{
			WriteWait:      10 * time.Second,
			PongWait:       60 * time.Second,
			PingPeriod:     54 * time.Second,
			MaxConnPerUser: getEnvAsInt("WS_MAX_CONN_PER_USER", 5),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
		},
		Uploads: UploadsConfig{
			APIURL: getEnv("UPLOADS_API_URL", "https://api.uploadthing.com/v6"),
			APIKey: getEnv("UPLOADS_API_KEY", ""),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
