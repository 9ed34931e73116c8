package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.PageSize != 10 {
		t.Errorf("Expected page size 10, got %d", cfg.PageSize)
	}
	if cfg.DebounceMs != 300 {
		t.Errorf("Expected debounce 300ms, got %d", cfg.DebounceMs)
	}
	if cfg.ExportDir != "." {
		t.Errorf("Expected export dir '.', got %q", cfg.ExportDir)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kontaudit.yaml")
	content := "environment_id: env-42\npage_size: 25\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.EnvironmentID != "env-42" {
		t.Errorf("Expected environment id 'env-42', got %q", cfg.EnvironmentID)
	}
	if cfg.PageSize != 25 {
		t.Errorf("Expected page size 25, got %d", cfg.PageSize)
	}
	// Unset fields pick up defaults.
	if cfg.DebounceMs != 300 {
		t.Errorf("Expected default debounce, got %d", cfg.DebounceMs)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kontaudit.yaml")
	if err := os.WriteFile(path, []byte("page_size: -3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("Expected negative page_size to be rejected")
	}
}

func TestLoadOrDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := LoadOrDefault(missing, false)
	if err != nil {
		t.Fatalf("Expected fallback to defaults, got error %v", err)
	}
	if cfg.PageSize != 10 {
		t.Errorf("Expected defaults, got page size %d", cfg.PageSize)
	}

	if _, err := LoadOrDefault(missing, true); err == nil {
		t.Error("Expected explicit missing config to be an error")
	}
}
