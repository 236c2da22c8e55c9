package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrMissingBucket is returned by Load when no recordings bucket is configured.
// No upload can proceed without it, so callers should treat it as fatal.
var ErrMissingBucket = errors.New("RECORDINGS_BUCKET is required")

// Config holds application configuration loaded from environment.
type Config struct {
	Server  ServerConfig
	AWS     AWSConfig
	Redis   RedisConfig
	Uploads UploadsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string
	ReadTimeout        int
	WriteTimeout       int
	CORSAllowedOrigins string // comma-separated, or "*" for all
}

// AWSConfig holds AWS region, optional static credentials, and the recordings bucket.
// When AccessKeyID/SecretAccessKey are empty the default credential chain is used
// (e.g. an SSO-derived CLI session).
type AWSConfig struct {
	Region               string
	AccessKeyID          string
	SecretAccessKey      string
	RecordingsBucket     string
	PresignExpireMinutes int
}

// RedisConfig holds optional Redis settings for the session store.
// An empty Addr selects the in-memory store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// UploadsConfig holds workflow settings for recording uploads.
type UploadsConfig struct {
	KeyPrefix         string // S3 folder for recording objects, e.g. "source"
	MaxSizeBytes      int64
	SessionTTLMinutes int
}

// Load reads configuration from environment, with optional .env file.
// It fails when the recordings bucket is not set; no workflow can run without it.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			ReadTimeout:        getEnvInt("READ_TIMEOUT_SEC", 30),
			WriteTimeout:       getEnvInt("WRITE_TIMEOUT_SEC", 60),
			CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		AWS: AWSConfig{
			Region:               getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:          getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey:      getEnv("AWS_SECRET_ACCESS_KEY", ""),
			RecordingsBucket:     getEnv("RECORDINGS_BUCKET", ""),
			PresignExpireMinutes: getEnvInt("PRESIGN_EXPIRE_MINUTES", 60),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Uploads: UploadsConfig{
			KeyPrefix:         getEnv("S3_KEY_PREFIX", "source"),
			MaxSizeBytes:      int64(getEnvInt("MAX_UPLOAD_SIZE_MB", 25)) * 1024 * 1024,
			SessionTTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 120),
		},
	}

	if cfg.AWS.RecordingsBucket == "" {
		return nil, fmt.Errorf("load config: %w", ErrMissingBucket)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
