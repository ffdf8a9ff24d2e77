package cli

import (
	"os"
	"strings"
	"testing"
)

func TestRootCmd_CorruptTaskFileFailsBeforeSession(t *testing.T) {
	setupDataFile(t, nil)
	if err := os.WriteFile(DataFile.Path(), []byte("{corrupt"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	err := rootCmd.RunE(rootCmd, []string{})
	if err == nil {
		t.Fatal("expected error for corrupt task file")
	}
	if !strings.Contains(err.Error(), "tasklist validate") {
		t.Errorf("expected the error to point at the validate command, got: %v", err)
	}
}

func TestRootCmd_CorruptTaskFileLeavesValidateUsable(t *testing.T) {
	setupDataFile(t, nil)
	if err := os.WriteFile(DataFile.Path(), []byte("{corrupt"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	if err := rootCmd.RunE(rootCmd, []string{}); err == nil {
		t.Fatal("expected error for corrupt task file")
	}

	// The session refused the file, but validate must still be able to
	// inspect it and report a diagnosis instead of crashing.
	err := validateCmd.RunE(validateCmd, []string{})
	if err == nil {
		t.Fatal("expected a validation error for corrupt JSON")
	}
	if !strings.Contains(err.Error(), "not valid JSON") {
		t.Errorf("unexpected error: %v", err)
	}
}
