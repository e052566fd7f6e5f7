package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`

	DbHost     string `envconfig:"DB_HOST" default:"localhost"`
	DbPort     string `envconfig:"DB_PORT" default:"5432"`
	DbUser     string `envconfig:"DB_USER" default:"postgres"`
	DbPassword string `envconfig:"DB_PASSWORD" default:"password"`
	DbName     string `envconfig:"DB_NAME" default:"civictrack"`
	DbSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	JwtSecret          string `envconfig:"JWT_SECRET" default:"defaultsecret"`
	Issuer             string `envconfig:"JWT_ISSUER" default:"civictrack"`
	TokenExpireMinutes int    `envconfig:"ACCESS_TOKEN_EXPIRE_MINUTES" default:"1440"`

	CorsAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`

	RedisAddr        string        `envconfig:"REDIS_ADDR"`
	RedisPassword    string        `envconfig:"REDIS_PASSWORD"`
	ReportRateLimit  int64         `envconfig:"REPORT_RATE_LIMIT" default:"20"`
	ReportRateWindow time.Duration `envconfig:"REPORT_RATE_WINDOW" default:"24h"`

	MinioEndpoint  string `envconfig:"MINIO_ENDPOINT"`
	MinioAccessKey string `envconfig:"MINIO_ACCESS_KEY" default:"minioadmin"`
	MinioSecretKey string `envconfig:"MINIO_SECRET_KEY" default:"minioadmin"`
	MinioBucket    string `envconfig:"MINIO_BUCKET" default:"report-images"`
	MinioUseSSL    bool   `envconfig:"MINIO_USE_SSL" default:"false"`
	MinioPublicURL string `envconfig:"MINIO_PUBLIC_URL"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	if cfg.TokenExpireMinutes <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", cfg.TokenExpireMinutes)
	}
	if cfg.ReportRateWindow <= 0 {
		return nil, fmt.Errorf("REPORT_RATE_WINDOW must be positive, got %s", cfg.ReportRateWindow)
	}
	return cfg, nil
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenExpireMinutes) * time.Minute
}

// DSN is the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DbHost, c.DbUser, c.DbPassword, c.DbName, c.DbPort, c.DbSSLMode)
}

func (c *Config) RedisEnabled() bool { return c.RedisAddr != "" }

func (c *Config) MinioEnabled() bool { return c.MinioEndpoint != "" }

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
