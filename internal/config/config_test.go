package config_test

import (
	"strings"
	"testing"

	"firststeps/internal/config"
)

// setRequired sets the env vars without which Load refuses to return a config.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "firststeps_test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.AppName != "first-steps" {
		t.Errorf("AppName = %q, want %q", cfg.AppName, "first-steps")
	}
	if !cfg.DebugMode {
		t.Error("DebugMode = false, want true by default")
	}
	if cfg.Env != "local" {
		t.Errorf("Env = %q, want %q", cfg.Env, "local")
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want %q", cfg.Host, "0.0.0.0")
	}
	if cfg.Port != 8000 {
		t.Errorf("Port = %d, want 8000", cfg.Port)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_NAME", "my-api")
	t.Setenv("DEBUG_MODE", "false")
	t.Setenv("ENV", "prod")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.AppName != "my-api" {
		t.Errorf("AppName = %q, want %q", cfg.AppName, "my-api")
	}
	if cfg.DebugMode {
		t.Error("DebugMode = true, want false")
	}
	if cfg.Env != "prod" {
		t.Errorf("Env = %q, want %q", cfg.Env, "prod")
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
}

func TestLoad_MissingMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB", "firststeps_test")

	_, err := config.Load()
	if err == nil {
		t.Fatal("Load() error = nil, want missing MONGO_URI error")
	}
	if !strings.Contains(err.Error(), "MONGO_URI") {
		t.Errorf("error = %q, want it to name MONGO_URI", err)
	}
}

func TestLoad_MissingMongoDB(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "")

	_, err := config.Load()
	if err == nil {
		t.Fatal("Load() error = nil, want missing MONGO_DB error")
	}
	if !strings.Contains(err.Error(), "MONGO_DB") {
		t.Errorf("error = %q, want it to name MONGO_DB", err)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "70000")

	_, err := config.Load()
	if err == nil {
		t.Fatal("Load() error = nil, want port validation error")
	}
}

func TestAddr(t *testing.T) {
	cfg := &config.Config{Host: "0.0.0.0", Port: 8000}
	if got := cfg.Addr(); got != "0.0.0.0:8000" {
		t.Errorf("Addr() = %q, want %q", got, "0.0.0.0:8000")
	}
}
