package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestProductionRequiresPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_PASSWORD", "")
	if _, err := Load(); err == nil {
		t.Error("production with default DB password should fail to load")
	}
}

func TestDSN(t *testing.T) {
	t.Setenv("POSTGRES_USER", "taxi")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_DB", "taxidb")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := "postgres://taxi:secret@db:5433/taxidb?sslmode=disable"
	if cfg.DSN() != want {
		t.Errorf("DSN() = %q, want %q", cfg.DSN(), want)
	}
}

func TestSchedulerIntervalParsing(t *testing.T) {
	t.Setenv("SCHEDULER_INTERVAL_SECONDS", "300")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SchedulerInterval != 300 {
		t.Errorf("SchedulerInterval = %d, want 300", cfg.SchedulerInterval)
	}

	t.Setenv("SCHEDULER_INTERVAL_SECONDS", "notanumber")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SchedulerInterval != 60 {
		t.Errorf("SchedulerInterval = %d, want fallback 60", cfg.SchedulerInterval)
	}
}
