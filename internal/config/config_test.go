package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load("", home)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.HomeDir != home {
		t.Errorf("HomeDir = %q, want %q", cfg.HomeDir, home)
	}
	if cfg.API.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty (client supplies the default)", cfg.API.BaseURL)
	}
	if cfg.Timeout() != 20*time.Second {
		t.Errorf("Timeout() = %v, want 20s", cfg.Timeout())
	}
	if cfg.Output.IntroWidth != 120 {
		t.Errorf("IntroWidth = %d, want 120", cfg.Output.IntroWidth)
	}
}

func TestLoad_File(t *testing.T) {
	home := t.TempDir()
	content := `
[api]
base_url = "https://mirror.example"
timeout_seconds = 5

[account]
address = "me@example.mail.tm"

[output]
intro_width = 60
`
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("", home)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.BaseURL != "https://mirror.example" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("Timeout() = %v, want 5s", cfg.Timeout())
	}
	if cfg.Account.Address != "me@example.mail.tm" {
		t.Errorf("Address = %q", cfg.Account.Address)
	}
	if cfg.Output.IntroWidth != 60 {
		t.Errorf("IntroWidth = %d, want 60", cfg.Output.IntroWidth)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	home := t.TempDir()
	content := "[api]\ntimeout_seconds = -3\n\n[output]\nintro_width = 0\n"
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("", home)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Timeout() != 20*time.Second {
		t.Errorf("Timeout() = %v, want default 20s", cfg.Timeout())
	}
	if cfg.Output.IntroWidth != 120 {
		t.Errorf("IntroWidth = %d, want default 120", cfg.Output.IntroWidth)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load("", home); err == nil {
		t.Fatal("Load() succeeded on malformed TOML")
	}
}

func TestDefaultHome_EnvOverride(t *testing.T) {
	t.Setenv("MAILTM_HOME", "/tmp/custom-mailtm")
	if got := DefaultHome(); got != "/tmp/custom-mailtm" {
		t.Errorf("DefaultHome() = %q", got)
	}
}
