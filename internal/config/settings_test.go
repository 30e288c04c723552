package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if s != Defaults() {
		t.Fatalf("Load without file = %+v, want defaults", s)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	content := `
ssh:
  port: "2323"
  idle_timeout: 45s
scores:
  path: /var/lib/dodge/scores.yaml
input:
  key_hold: 80ms
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SSH_PORT", "2424")
	t.Setenv("LOG_LEVEL", "debug")

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.SSH.Port != "2424" {
		t.Errorf("SSH.Port = %q, want env override 2424", s.SSH.Port)
	}
	if s.SSH.IdleTimeout != 45*time.Second {
		t.Errorf("SSH.IdleTimeout = %s, want 45s", s.SSH.IdleTimeout)
	}
	if s.Scores.Path != "/var/lib/dodge/scores.yaml" {
		t.Errorf("Scores.Path = %q", s.Scores.Path)
	}
	if s.Input.KeyHold != 80*time.Millisecond {
		t.Errorf("Input.KeyHold = %s, want 80ms", s.Input.KeyHold)
	}
	if s.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", s.Log.Level)
	}
	if s.SSH.Host != Defaults().SSH.Host {
		t.Errorf("SSH.Host = %q, want default", s.SSH.Host)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("KEY_HOLD_MS", "soon")
	if _, err := Load(""); err == nil {
		t.Fatal("expected an error for a non-numeric KEY_HOLD_MS")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("DODGE_TEST_VALUE", "set")
	if got := GetEnv("DODGE_TEST_VALUE", "fallback"); got != "set" {
		t.Fatalf("GetEnv = %q", got)
	}
	if got := GetEnv("DODGE_TEST_UNSET_VALUE", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv = %q", got)
	}
}
