package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Provider = %q, want %q", cfg.Provider, ProviderOpenAI)
	}
	if cfg.Port != 8722 {
		t.Errorf("Port = %d, want 8722", cfg.Port)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claimpilot.yml")
	content := "provider: ollama\nmodel: llama3\nport: 9000\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderOllama {
		t.Errorf("Provider = %q, want ollama", cfg.Provider)
	}
	if cfg.Model != "llama3" {
		t.Errorf("Model = %q, want llama3", cfg.Model)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	// Untouched fields keep their defaults.
	if cfg.DBPath != "claimpilot.db" {
		t.Errorf("DBPath = %q, want claimpilot.db", cfg.DBPath)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CLAIMPILOT_MODEL", "gpt-4o-mini")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want gpt-4o-mini", cfg.Model)
	}
}

func TestValidateRejectsBadProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "watson"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider, got nil")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claimpilot.yml")
	cfg := DefaultConfig()
	cfg.Model = "llama3"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Model != "llama3" {
		t.Errorf("Model = %q, want llama3", loaded.Model)
	}
}
