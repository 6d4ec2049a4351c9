package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ATS_API_KEY", "WORKER_COUNT", "MAX_QUEUE_SIZE",
		"MAX_UPLOAD_BYTES", "JOB_TTL", "STATS_WINDOW",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Port != "8090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8090")
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want 4", cfg.WorkerCount)
	}
	if cfg.MaxQueueSize != 100 {
		t.Errorf("MaxQueueSize = %d, want 100", cfg.MaxQueueSize)
	}
	if cfg.MaxUploadBytes != 10485760 {
		t.Errorf("MaxUploadBytes = %d, want 10485760", cfg.MaxUploadBytes)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("JobTTL = %v, want 1h", cfg.JobTTL)
	}
	if cfg.StatsWindow != time.Hour {
		t.Errorf("StatsWindow = %v, want 1h", cfg.StatsWindow)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ATS_API_KEY", "secret")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("MAX_QUEUE_SIZE", "25")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("JOB_TTL", "30m")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9000")
	}
	if cfg.APIKey != "secret" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "secret")
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("WorkerCount = %d, want 8", cfg.WorkerCount)
	}
	if cfg.MaxQueueSize != 25 {
		t.Errorf("MaxQueueSize = %d, want 25", cfg.MaxQueueSize)
	}
	if cfg.MaxUploadBytes != 1048576 {
		t.Errorf("MaxUploadBytes = %d, want 1048576", cfg.MaxUploadBytes)
	}
	if cfg.JobTTL != 30*time.Minute {
		t.Errorf("JobTTL = %v, want 30m", cfg.JobTTL)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKER_COUNT", "not-a-number")
	t.Setenv("MAX_QUEUE_SIZE", "-5")
	t.Setenv("JOB_TTL", "soon")

	cfg := Load()
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want default 4", cfg.WorkerCount)
	}
	if cfg.MaxQueueSize != 100 {
		t.Errorf("MaxQueueSize = %d, want default 100", cfg.MaxQueueSize)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("JobTTL = %v, want default 1h", cfg.JobTTL)
	}
}

func TestValidate(t *testing.T) {
	if err := (Config{}).Validate(); err == nil {
		t.Error("Validate() should fail without an API key")
	}
	if err := (Config{APIKey: "k"}).Validate(); err != nil {
		t.Errorf("Validate() error with API key set: %v", err)
	}
}
