// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode       string        `mapstructure:"GIN_MODE"`
	ServerHost    string        `mapstructure:"SERVER_HOST"`
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	ServerTimeout time.Duration `mapstructure:"SERVER_TIMEOUT_SECONDS"`

	// Database Configuration
	DBHost            string        `mapstructure:"DB_HOST"`
	DBPort            string        `mapstructure:"DB_PORT"`
	DBUser            string        `mapstructure:"DB_USER"`
	DBPassword        string        `mapstructure:"DB_PASSWORD"`
	DBName            string        `mapstructure:"DB_NAME"`
	DBSSLMode         string        `mapstructure:"DB_SSL_MODE"`
	DBTimezone        string        `mapstructure:"DB_TIMEZONE"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME_MINUTES"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Firebase Configuration
	FirebaseServiceAccountKeyPath string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_KEY_PATH"`
	FirebaseProjectID             string `mapstructure:"FIREBASE_PROJECT_ID"`

	// File Storage Configuration
	StorageDriver        string `mapstructure:"STORAGE_DRIVER"` // "local" or "s3"
	StorageLocalPath     string `mapstructure:"STORAGE_LOCAL_PATH"`
	StoragePublicBaseURL string `mapstructure:"STORAGE_PUBLIC_BASE_URL"`
	S3Bucket             string `mapstructure:"S3_BUCKET"`
	S3Region             string `mapstructure:"S3_REGION"`
	S3Endpoint           string `mapstructure:"S3_ENDPOINT"`
	S3PublicEndpoint     string `mapstructure:"S3_PUBLIC_ENDPOINT"`
	S3AccessKeyID        string `mapstructure:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey    string `mapstructure:"S3_SECRET_ACCESS_KEY"`
	S3UsePathStyle       bool   `mapstructure:"S3_USE_PATH_STYLE"`

	// Cron Jobs
	CatalogIntegrityJobSchedule string `mapstructure:"CATALOG_INTEGRITY_JOB_SCHEDULE"`
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// Set default values
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "music_catalog_db")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MINUTES", 60)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	// Firebase
	v.SetDefault("FIREBASE_PROJECT_ID", "") // Optional
	v.SetDefault("FIREBASE_SERVICE_ACCOUNT_KEY_PATH", "")

	// File storage
	v.SetDefault("STORAGE_DRIVER", "local")
	v.SetDefault("STORAGE_LOCAL_PATH", "./uploads")
	v.SetDefault("STORAGE_PUBLIC_BASE_URL", "http://localhost:8080/uploads")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_PUBLIC_ENDPOINT", "")
	v.SetDefault("S3_ACCESS_KEY_ID", "")
	v.SetDefault("S3_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_USE_PATH_STYLE", true)

	v.SetDefault("CATALOG_INTEGRITY_JOB_SCHEDULE", "@daily")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Convert duration fields
	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second
	cfg.DBConnMaxLifetime = time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME_MINUTES")) * time.Minute

	// Basic validation for critical configs
	if strings.TrimSpace(cfg.FirebaseServiceAccountKeyPath) == "" {
		return nil, fmt.Errorf("FATAL: FIREBASE_SERVICE_ACCOUNT_KEY_PATH is not set. This is required for Firebase Admin SDK initialization")
	}
	if _, err := os.Stat(cfg.FirebaseServiceAccountKeyPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("FATAL: Firebase service account key file specified in FIREBASE_SERVICE_ACCOUNT_KEY_PATH (%s) not found", cfg.FirebaseServiceAccountKeyPath)
	}

	switch cfg.StorageDriver {
	case "local":
		if strings.TrimSpace(cfg.StorageLocalPath) == "" {
			return nil, fmt.Errorf("STORAGE_LOCAL_PATH is required when STORAGE_DRIVER is 'local'")
		}
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("S3_BUCKET is required when STORAGE_DRIVER is 's3'")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (expected 'local' or 's3')", cfg.StorageDriver)
	}

	return &cfg, nil
}
