package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/drapaimern/tasklist/pkg/models"
)

func TestValidateCmd_ValidFile(t *testing.T) {
	setupDataFile(t, []models.Task{
		{Description: "fine", DueDate: "2024-03-05", DueTime: "09:05", Priority: models.PriorityNormal},
	})

	var out bytes.Buffer
	validateCmd.SetOut(&out)
	defer validateCmd.SetOut(nil)

	if err := validateCmd.RunE(validateCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "is valid") {
		t.Errorf("expected valid verdict, got:\n%s", out.String())
	}
}

func TestValidateCmd_AbsentFile(t *testing.T) {
	setupDataFile(t, nil)

	var out bytes.Buffer
	validateCmd.SetOut(&out)
	defer validateCmd.SetOut(nil)

	if err := validateCmd.RunE(validateCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "does not exist") {
		t.Errorf("expected absent-file notice, got:\n%s", out.String())
	}
}

func TestValidateCmd_NullEntriesAreLegal(t *testing.T) {
	setupDataFile(t, nil)
	content := `[null, {"description": "d", "dueDate": "2024-01-01", "dueTime": "08:00", "priority": "C"}]`
	if err := os.WriteFile(DataFile.Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	var out bytes.Buffer
	validateCmd.SetOut(&out)
	defer validateCmd.SetOut(nil)

	if err := validateCmd.RunE(validateCmd, []string{}); err != nil {
		t.Errorf("null entries must validate, got: %v", err)
	}
}

func TestValidateCmd_BadEntryFails(t *testing.T) {
	setupDataFile(t, nil)
	content := `[{"description": "d", "dueDate": "2024-1-1", "dueTime": "08:00", "priority": "Z"}]`
	if err := os.WriteFile(DataFile.Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	if err := validateCmd.RunE(validateCmd, []string{}); err == nil {
		t.Error("expected validation failure for bad entry")
	}
}

func TestValidateCmd_CorruptJSONFails(t *testing.T) {
	setupDataFile(t, nil)
	if err := os.WriteFile(DataFile.Path(), []byte("{oops"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	err := validateCmd.RunE(validateCmd, []string{})
	if err == nil {
		t.Fatal("expected error for corrupt JSON")
	}
	if !strings.Contains(err.Error(), "not valid JSON") {
		t.Errorf("unexpected error: %v", err)
	}
}
