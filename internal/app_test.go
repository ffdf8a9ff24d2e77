package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewApp_FreshDirectory(t *testing.T) {
	dir := t.TempDir()

	a, err := NewApp(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	if a.DataFile.Path() != filepath.Join(dir, "tasklist.json") {
		t.Errorf("unexpected data file path: %s", a.DataFile.Path())
	}
	if a.EventLog == nil {
		t.Error("expected event log enabled by default")
	}
}

func TestNewApp_CorruptTaskFileDoesNotBlockStartup(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tasklist.json"), []byte("{corrupt"), 0o644); err != nil {
		t.Fatalf("seeding task file: %v", err)
	}

	// Only the interactive session reads the task file, so wiring must
	// still succeed here and leave subcommands like validate usable.
	a, err := NewApp(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	if _, err := a.DataFile.Load(); err == nil {
		t.Error("expected load error for corrupt task file")
	}
}

func TestResolveBasePath_EnvOverride(t *testing.T) {
	t.Setenv("TASKLIST_HOME", "/tmp/tasklist-home")

	if got := ResolveBasePath(); got != "/tmp/tasklist-home" {
		t.Errorf("expected env override, got %s", got)
	}
}

func TestResolveBasePath_DefaultsToWorkingDirectory(t *testing.T) {
	t.Setenv("TASKLIST_HOME", "")

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if got := ResolveBasePath(); got != cwd {
		t.Errorf("expected %s, got %s", cwd, got)
	}
}
