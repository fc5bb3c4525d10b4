package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.SchoolID != "" || cfg.DefaultTerm != "" || cfg.AccentColor != "" {
		t.Errorf("expected empty defaults, got %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	cfg := &AppConfig{
		SchoolID:    "1967",
		DefaultTerm: "2025 Fall De Anza",
		AccentColor: "#7D56F4",
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tempDir, ".deanza-planner.json")); err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if loaded.SchoolID != cfg.SchoolID {
		t.Errorf("SchoolID = %q, want %q", loaded.SchoolID, cfg.SchoolID)
	}
	if loaded.DefaultTerm != cfg.DefaultTerm {
		t.Errorf("DefaultTerm = %q, want %q", loaded.DefaultTerm, cfg.DefaultTerm)
	}
	if loaded.AccentColor != cfg.AccentColor {
		t.Errorf("AccentColor = %q, want %q", loaded.AccentColor, cfg.AccentColor)
	}
}

func TestLoadRejectsCorruptJSON(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	path := filepath.Join(tempDir, ".deanza-planner.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for corrupt config file, got nil")
	}
}
