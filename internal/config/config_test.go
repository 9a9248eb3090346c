package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// viper treats empty variables as unset, so defaults apply
	t.Setenv("SHOWRUNNER_ENV", "")
	t.Setenv("SHOWRUNNER_TOKEN", "")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Environment != "prod" || cfg.Token != "" || cfg.RequestTimeout != 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SHOWRUNNER_ENV", "staging")
	t.Setenv("SHOWRUNNER_TOKEN", "tok")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Environment != "staging" || cfg.Token != "tok" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("RequestTimeout = %s", cfg.RequestTimeout)
	}
	if cfg.Redacted().Token != "***" || cfg.Token != "tok" {
		t.Fatalf("Redacted must mask the token on a copy only")
	}
}

func TestLoadRejectsNegativeTimeout(t *testing.T) {
	t.Setenv("SHOWRUNNER_ENV", "prod")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "-1")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative timeout")
	}
}
