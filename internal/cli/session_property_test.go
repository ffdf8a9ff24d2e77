package cli

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/drapaimern/tasklist/internal/render"
	"github.com/drapaimern/tasklist/internal/storage"
)

// Feature: tasklist, Property 7: Adds Append in Order and End Persists Them
// For any sequence of valid add commands, the store holds exactly those tasks
// in entry order, and the file saved by end round-trips to the same sequence.
func TestProperty_AddSequencePersists(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		descriptions := rapid.SliceOfN(rapid.StringMatching(`[a-z][a-z ]{0,30}[a-z]`), 1, 15).Draw(rt, "descriptions")
		codes := rapid.SliceOfN(rapid.SampledFrom([]string{"c", "h", "n", "l"}), len(descriptions), len(descriptions)).Draw(rt, "codes")

		var script strings.Builder
		for i, desc := range descriptions {
			fmt.Fprintf(&script, "add\n%s\n2024-6-%d\n%d:30\n%s\n\n", codes[i], i%28+1, i%24, desc)
		}
		script.WriteString("end\n")

		store := storage.NewTaskStore()
		file := storage.NewTaskFile(filepath.Join(t.TempDir(), "tasklist.json"))
		var out bytes.Buffer
		session := NewSession(strings.NewReader(script.String()), &out, store, file, render.New(false), nil)
		if err := session.Run(); err != nil {
			t.Fatalf("session failed: %v", err)
		}

		if store.Size() != len(descriptions) {
			t.Fatalf("expected %d tasks, got %d", len(descriptions), store.Size())
		}
		for i, desc := range descriptions {
			task, err := store.Get(i)
			if err != nil {
				t.Fatalf("Get(%d): %v", i, err)
			}
			if task.Description != desc {
				t.Fatalf("index %d: expected %q, got %q", i, desc, task.Description)
			}
		}

		saved, err := file.Load()
		if err != nil {
			t.Fatalf("loading saved file: %v", err)
		}
		if len(saved) != store.Size() {
			t.Fatalf("saved %d tasks, store has %d", len(saved), store.Size())
		}
		for i := range saved {
			inMemory, _ := store.Get(i)
			if saved[i] != inMemory {
				t.Fatalf("index %d: saved %+v differs from store %+v", i, saved[i], inMemory)
			}
		}
	})
}
