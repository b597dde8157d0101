package config

import (
	"os"
	"testing"
)

func TestConfigLoad_Defaults(t *testing.T) {
	_ = os.Setenv("FITLIFE_JWT_SECRET", "test-secret")
	defer func() { _ = os.Unsetenv("FITLIFE_JWT_SECRET") }()
	_ = os.Unsetenv("FITLIFE_PORT")
	_ = os.Unsetenv("FITLIFE_ENVIRONMENT")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port: %s", cfg.Port)
	}
	if cfg.IsProduction() {
		t.Fatal("development must be the default environment")
	}
}

func TestConfigLoad_RequiresJWTSecret(t *testing.T) {
	_ = os.Unsetenv("FITLIFE_JWT_SECRET")

	if _, err := New(); err == nil {
		t.Fatal("expected error when FITLIFE_JWT_SECRET is unset")
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("FITLIFE_JWT_SECRET", "test-secret")
	_ = os.Setenv("FITLIFE_PORT", "9999")
	_ = os.Setenv("FITLIFE_ENVIRONMENT", "production")
	defer func() {
		_ = os.Unsetenv("FITLIFE_JWT_SECRET")
		_ = os.Unsetenv("FITLIFE_PORT")
		_ = os.Unsetenv("FITLIFE_ENVIRONMENT")
	}()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.Port != "9999" {
		t.Fatalf("port env override failed, got %s", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Fatal("environment env override failed")
	}
}
