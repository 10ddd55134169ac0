package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

// BackupConfig holds the S3-compatible (Cloudflare R2) credentials for the
// optional backup of saved data files. Backup is disabled when all fields
// are empty.
type BackupConfig struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
}

func (b BackupConfig) Enabled() bool {
	return b.AccountID != "" || b.AccessKeyID != "" || b.SecretAccessKey != "" || b.BucketName != ""
}

// Config holds all configuration parameters of the application.
type Config struct {
	DataDir           string
	StoreDriver       string
	DatabaseURL       string
	ViewerPort        int    // 0 disables the read-only HTTP viewer
	AdminPasscodeHash string // bcrypt; empty disables the admin gate
	Backup            BackupConfig
}

// Load reads configuration from environment variables, optionally seeded
// from a .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:           getEnvOrDefault("DATA_DIR", "data"),
		StoreDriver:       getEnvOrDefault("STORE_DRIVER", StoreDriverFile),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		AdminPasscodeHash: os.Getenv("ADMIN_PASSCODE_HASH"),
		Backup: BackupConfig{
			AccountID:       os.Getenv("BACKUP_R2_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("BACKUP_R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("BACKUP_R2_SECRET_ACCESS_KEY"),
			BucketName:      os.Getenv("BACKUP_R2_BUCKET"),
		},
	}

	switch cfg.StoreDriver {
	case StoreDriverFile:
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want %s or %s)",
			cfg.StoreDriver, StoreDriverFile, StoreDriverPostgres)
	}

	if portStr := os.Getenv("VIEWER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid VIEWER_PORT environment variable: %w", err)
		}
		if port < 0 || port > 65535 {
			return nil, fmt.Errorf("VIEWER_PORT must be between 0 and 65535, got %d", port)
		}
		cfg.ViewerPort = port
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
