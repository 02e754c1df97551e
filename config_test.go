package theseed

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"THESEED_URL",
		"THESEED_TOKEN",
		"THESEED_TIMEOUT",
		"THESEED_USER_AGENT",
		"THESEED_MIN_INTERVAL",
		"THESEED_MAX_EDIT_ATTEMPTS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_RequiredVariables(t *testing.T) {
	clearEnv(t)

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error when THESEED_URL is missing")
	}

	t.Setenv("THESEED_URL", "https://namu.wiki/api")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected error when THESEED_TOKEN is missing")
	}

	t.Setenv("THESEED_TOKEN", "secret")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.BaseURL != "https://namu.wiki/api" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Token != "secret" {
		t.Errorf("Token = %q", cfg.Token)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("THESEED_URL", "https://namu.wiki/api")
	t.Setenv("THESEED_TOKEN", "secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want 30s", cfg.Timeout)
	}
	if cfg.MinInterval != 0 {
		t.Errorf("MinInterval = %s, want 0 (pacing disabled)", cfg.MinInterval)
	}
	if cfg.MaxEditAttempts != 3 {
		t.Errorf("MaxEditAttempts = %d, want 3", cfg.MaxEditAttempts)
	}
	if cfg.UserAgent == "" {
		t.Error("UserAgent must have a default")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("THESEED_URL", "https://namu.wiki/api/") // trailing slash trimmed
	t.Setenv("THESEED_TOKEN", "secret")
	t.Setenv("THESEED_TIMEOUT", "5s")
	t.Setenv("THESEED_MIN_INTERVAL", "1s")
	t.Setenv("THESEED_MAX_EDIT_ATTEMPTS", "5")
	t.Setenv("THESEED_USER_AGENT", "mybot/2.0")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.BaseURL != "https://namu.wiki/api" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %s", cfg.Timeout)
	}
	if cfg.MinInterval != time.Second {
		t.Errorf("MinInterval = %s", cfg.MinInterval)
	}
	if cfg.MaxEditAttempts != 5 {
		t.Errorf("MaxEditAttempts = %d", cfg.MaxEditAttempts)
	}
	if cfg.UserAgent != "mybot/2.0" {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
}

func TestLoadConfig_IgnoresInvalidOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("THESEED_URL", "https://namu.wiki/api")
	t.Setenv("THESEED_TOKEN", "secret")
	t.Setenv("THESEED_TIMEOUT", "not-a-duration")
	t.Setenv("THESEED_MAX_EDIT_ATTEMPTS", "-2")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want default kept", cfg.Timeout)
	}
	if cfg.MaxEditAttempts != 3 {
		t.Errorf("MaxEditAttempts = %d, want default kept", cfg.MaxEditAttempts)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (&Config{Token: "t"}).Validate(); err == nil {
		t.Error("expected error for missing BaseURL")
	}
	if err := (&Config{BaseURL: "https://x"}).Validate(); err == nil {
		t.Error("expected error for missing Token")
	}
	if err := (&Config{BaseURL: "https://x", Token: "t"}).Validate(); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
}
