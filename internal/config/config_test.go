package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if len(cfg.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(cfg.Sources))
	}
	if cfg.Sources[0].Name != "remotive" || cfg.Sources[1].Name != "arbeitnow" {
		t.Errorf("unexpected source order: %v", cfg.Sources)
	}
	for _, s := range cfg.Sources {
		if !s.Enabled {
			t.Errorf("expected %s enabled by default", s.Name)
		}
	}
	if cfg.HTTP.Timeout != 20*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.HTTP.Timeout)
	}
	if cfg.Retry.MaxRetries != 3 || cfg.Retry.BaseDelay != 2*time.Second {
		t.Errorf("unexpected retry defaults: %+v", cfg.Retry)
	}
	if err := validate(cfg); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
sources:
  - name: remotive
    enabled: false
  - name: arbeitnow
    enabled: true
http:
  timeout: 45s
retry:
  max_retries: 5
  base_delay: 500ms
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Sources[0].Enabled {
		t.Error("expected remotive disabled")
	}
	if cfg.HTTP.Timeout != 45*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.HTTP.Timeout)
	}
	if cfg.Retry.MaxRetries != 5 || cfg.Retry.BaseDelay != 500*time.Millisecond {
		t.Errorf("unexpected retry config: %+v", cfg.Retry)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
http:
  timeout: 10s
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Timeout != 10*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.HTTP.Timeout)
	}
	if len(cfg.Sources) != 2 {
		t.Errorf("expected default sources to remain, got %v", cfg.Sources)
	}
	if cfg.Retry.MaxRetries != 3 {
		t.Errorf("expected default retries, got %d", cfg.Retry.MaxRetries)
	}
}

func TestLoad_UnknownSource(t *testing.T) {
	path := writeConfig(t, `
sources:
  - name: linkedin
    enabled: true
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown source")
	}
}

func TestLoad_NoEnabledSources(t *testing.T) {
	path := writeConfig(t, `
sources:
  - name: remotive
    enabled: false
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error when no source is enabled")
	}
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, `
http:
  timeout: soon
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unparseable duration")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("JOBSIFT_TIMEOUT", "30s")
	path := writeConfig(t, `
http:
  timeout: ${JOBSIFT_TIMEOUT}
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Timeout != 30*time.Second {
		t.Errorf("expected env expansion, got %v", cfg.HTTP.Timeout)
	}
}

func TestLoad_NegativeRetries(t *testing.T) {
	path := writeConfig(t, `
retry:
  max_retries: -1
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for negative max_retries")
	}
}
