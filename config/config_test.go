package config

import (
	"errors"
	"testing"
)

func TestLoadRequiresBucket(t *testing.T) {
	t.Setenv("RECORDINGS_BUCKET", "")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error when RECORDINGS_BUCKET is unset")
	}
	if !errors.Is(err, ErrMissingBucket) {
		t.Fatalf("expected ErrMissingBucket, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RECORDINGS_BUCKET", "test-bucket")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AWS.RecordingsBucket != "test-bucket" {
		t.Errorf("bucket = %q, want test-bucket", cfg.AWS.RecordingsBucket)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.AWS.PresignExpireMinutes != 60 {
		t.Errorf("presign expire = %d, want 60", cfg.AWS.PresignExpireMinutes)
	}
	if cfg.Uploads.KeyPrefix != "source" {
		t.Errorf("key prefix = %q, want source", cfg.Uploads.KeyPrefix)
	}
	if cfg.Uploads.MaxSizeBytes != 25*1024*1024 {
		t.Errorf("max size = %d, want 25MB", cfg.Uploads.MaxSizeBytes)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RECORDINGS_BUCKET", "voice-prod")
	t.Setenv("S3_KEY_PREFIX", "captures")
	t.Setenv("PRESIGN_EXPIRE_MINUTES", "15")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Uploads.KeyPrefix != "captures" {
		t.Errorf("key prefix = %q, want captures", cfg.Uploads.KeyPrefix)
	}
	if cfg.AWS.PresignExpireMinutes != 15 {
		t.Errorf("presign expire = %d, want 15", cfg.AWS.PresignExpireMinutes)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr)
	}
}
