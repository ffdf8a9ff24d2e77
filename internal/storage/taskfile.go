package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/drapaimern/tasklist/pkg/models"
)

// TaskFile persists the task list as a JSON array at a fixed path. Load and
// Save are each called exactly once per session: Load at startup, Save on the
// end command.
type TaskFile struct {
	path string
}

// NewTaskFile creates a TaskFile for the given path.
func NewTaskFile(path string) *TaskFile {
	return &TaskFile{path: path}
}

// Path returns the location of the persisted file.
func (f *TaskFile) Path() string {
	return f.path
}

// Load reads the persisted task list. An absent file or a null top level
// yields an empty list. A null element inside the array is skipped rather
// than failing the whole load. Corrupt JSON is an error: the file is left
// untouched and the caller gets a diagnostic instead of a silently empty list.
func (f *TaskFile) Load() ([]models.Task, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading task list: %w", err)
	}

	var raw []*models.Task
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("loading task list: %s is not a valid task array: %w", f.path, err)
	}

	tasks := make([]models.Task, 0, len(raw))
	for _, t := range raw {
		if t == nil {
			continue
		}
		tasks = append(tasks, *t)
	}
	return tasks, nil
}

// Save writes the task list as an indented JSON array with a trailing newline.
func (f *TaskFile) Save(tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("saving task list: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("saving task list: writing %s: %w", f.path, err)
	}
	return nil
}
