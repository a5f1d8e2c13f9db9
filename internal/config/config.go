package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	DatabaseURL string // GANTT_DATABASE_URL (required)
	HTTPAddr    string // GANTT_HTTP_ADDR (default ":8080")
	NATSURL     string // GANTT_NATS_URL (optional, empty = no events)
	AuthToken   string // GANTT_AUTH_TOKEN (optional, empty = auth disabled)

	// Snapshot export settings
	SyncInterval   time.Duration // GANTT_SYNC_INTERVAL (default 5m; 0 = disabled)
	SyncS3Bucket   string        // GANTT_SYNC_S3_BUCKET (enables S3 when set)
	SyncS3Endpoint string        // GANTT_SYNC_S3_ENDPOINT (custom endpoint for MinIO)
	SyncS3Region   string        // GANTT_SYNC_S3_REGION (default "us-east-1")
	SyncS3Key      string        // GANTT_SYNC_S3_KEY (default "ganttview/backup.jsonl")
	SyncGitRepo    string        // GANTT_SYNC_GIT_REPO (enables git when set; path to clone)
	SyncGitFile    string        // GANTT_SYNC_GIT_FILE (default "ganttview.jsonl")
	SyncGitBranch  string        // GANTT_SYNC_GIT_BRANCH (default "main")
}

func Load() (*Config, error) {
	c := &Config{
		DatabaseURL:    os.Getenv("GANTT_DATABASE_URL"),
		HTTPAddr:       envOrDefault("GANTT_HTTP_ADDR", ":8080"),
		NATSURL:        os.Getenv("GANTT_NATS_URL"),
		AuthToken:      os.Getenv("GANTT_AUTH_TOKEN"),
		SyncS3Bucket:   os.Getenv("GANTT_SYNC_S3_BUCKET"),
		SyncS3Endpoint: os.Getenv("GANTT_SYNC_S3_ENDPOINT"),
		SyncS3Region:   envOrDefault("GANTT_SYNC_S3_REGION", "us-east-1"),
		SyncS3Key:      envOrDefault("GANTT_SYNC_S3_KEY", "ganttview/backup.jsonl"),
		SyncGitRepo:    os.Getenv("GANTT_SYNC_GIT_REPO"),
		SyncGitFile:    envOrDefault("GANTT_SYNC_GIT_FILE", "ganttview.jsonl"),
		SyncGitBranch:  envOrDefault("GANTT_SYNC_GIT_BRANCH", "main"),
	}
	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("GANTT_DATABASE_URL is required")
	}

	intervalStr := envOrDefault("GANTT_SYNC_INTERVAL", "5m")
	if intervalStr != "" {
		d, err := time.ParseDuration(intervalStr)
		if err != nil {
			return nil, fmt.Errorf("GANTT_SYNC_INTERVAL: %w", err)
		}
		c.SyncInterval = d
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
