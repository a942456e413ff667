package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Timeout != 10*time.Minute {
		t.Fatalf("expected default timeout, got %v", cfg.Timeout)
	}
	if cfg.Workers < 1 {
		t.Fatalf("expected at least one worker")
	}
	if !cfg.Progress {
		t.Fatalf("expected progress on by default")
	}
	if cfg.PprofAddr != "" {
		t.Fatalf("expected pprof off by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RIDEPROFILE_TIMEOUT", "30s")
	t.Setenv("RIDEPROFILE_WORKERS", "3")
	t.Setenv("RIDEPROFILE_PROGRESS", "false")
	t.Setenv("RIDEPROFILE_PPROF", "127.0.0.1:6060")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("expected override timeout, got %v", cfg.Timeout)
	}
	if cfg.Workers != 3 {
		t.Fatalf("expected override workers, got %d", cfg.Workers)
	}
	if cfg.Progress {
		t.Fatalf("expected override progress")
	}
	if cfg.PprofAddr != "127.0.0.1:6060" {
		t.Fatalf("expected override pprof, got %q", cfg.PprofAddr)
	}
}

func TestLoadClampsWorkers(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RIDEPROFILE_WORKERS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Workers != 1 {
		t.Fatalf("expected workers clamped to 1, got %d", cfg.Workers)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("RIDEPROFILE_WORKERS=5\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// godotenv sets the variable process-wide; register it for cleanup
	t.Setenv("RIDEPROFILE_WORKERS", "")
	os.Unsetenv("RIDEPROFILE_WORKERS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Workers != 5 {
		t.Fatalf("expected workers from .env, got %d", cfg.Workers)
	}
}
