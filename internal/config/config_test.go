package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TONTINE_JWT_SECRET", "secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.DBPath != "./data/tontine.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.TokenDuration != 24*time.Hour {
		t.Errorf("TokenDuration = %v", cfg.TokenDuration)
	}
	if !cfg.MetricsEnabled {
		t.Error("expected metrics enabled by default")
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("TONTINE_JWT_SECRET", "secret")
	t.Setenv("TONTINE_PORT", "9090")
	t.Setenv("TONTINE_METRICS_ENABLED", "false")
	t.Setenv("TONTINE_TOKEN_DURATION", "1h")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.MetricsEnabled {
		t.Error("expected metrics disabled")
	}
	if cfg.TokenDuration != time.Hour {
		t.Errorf("TokenDuration = %v, want 1h", cfg.TokenDuration)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	// Registered so t.Setenv restores the absent state after godotenv sets them
	t.Setenv("TONTINE_JWT_SECRET", "")
	t.Setenv("TONTINE_APP_NAME", "")
	os.Unsetenv("TONTINE_JWT_SECRET")
	os.Unsetenv("TONTINE_APP_NAME")

	path := filepath.Join(t.TempDir(), ".env")
	content := "TONTINE_JWT_SECRET=from-file\nTONTINE_APP_NAME=Circle\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.JWTSecret != "from-file" || cfg.AppName != "Circle" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"TONTINE_JWT_SECRET": ""}},
		{"bad port", map[string]string{"TONTINE_JWT_SECRET": "s", "TONTINE_PORT": "70000"}},
		{"bad buffer", map[string]string{"TONTINE_JWT_SECRET": "s", "TONTINE_WATCH_BUFFER": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(""); err == nil {
				t.Error("expected error")
			}
		})
	}
}
