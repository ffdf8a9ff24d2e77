package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_DefaultsWhenMissing(t *testing.T) {
	cm := NewConfigurationManager(t.TempDir())

	cfg, err := cm.LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataFile != "tasklist.json" {
		t.Errorf("expected default data file tasklist.json, got %s", cfg.DataFile)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("expected default color mode auto, got %s", cfg.ColorMode)
	}
	if !cfg.EventsEnabled {
		t.Error("expected events enabled by default")
	}
	if cfg.EventsFile != ".tasklist_events.jsonl" {
		t.Errorf("expected default events file, got %s", cfg.EventsFile)
	}
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `data:
  file: my-tasks.json
color:
  mode: never
events:
  enabled: false
`
	if err := os.WriteFile(filepath.Join(dir, ".tasklistrc"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := NewConfigurationManager(dir).LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataFile != "my-tasks.json" {
		t.Errorf("expected my-tasks.json, got %s", cfg.DataFile)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("expected never, got %s", cfg.ColorMode)
	}
	if cfg.EventsEnabled {
		t.Error("expected events disabled")
	}
	// Unset keys keep their defaults.
	if cfg.EventsFile != ".tasklist_events.jsonl" {
		t.Errorf("expected default events file, got %s", cfg.EventsFile)
	}
}

func TestLoadConfig_RejectsUnknownColorMode(t *testing.T) {
	dir := t.TempDir()
	content := "color:\n  mode: sometimes\n"
	if err := os.WriteFile(filepath.Join(dir, ".tasklistrc"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := NewConfigurationManager(dir).LoadConfig(); err == nil {
		t.Error("expected error for unknown color mode")
	}
}
