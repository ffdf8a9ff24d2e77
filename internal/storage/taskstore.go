// Package storage provides the in-memory task store and its JSON file
// persistence.
package storage

import (
	"errors"
	"fmt"

	"github.com/drapaimern/tasklist/pkg/models"
)

// ErrIndexOutOfRange is returned by index-based store operations when the
// index falls outside [0, Size).
var ErrIndexOutOfRange = errors.New("index out of range")

// TaskStore defines the ordered, index-addressed task collection for a
// session. Position is the only identity a task has: insertions and removals
// shift every subsequent index, so callers must re-resolve positions before
// each operation.
type TaskStore interface {
	Add(task models.Task)
	ReplaceAt(index int, task models.Task) error
	RemoveAt(index int) error
	Get(index int) (models.Task, error)
	Size() int
	All() []models.Task
}

// memoryTaskStore implements TaskStore with a plain slice. No deduplication,
// no sorting: pure ordered append/replace/remove semantics.
type memoryTaskStore struct {
	tasks []models.Task
}

// NewTaskStore creates an empty TaskStore.
func NewTaskStore() TaskStore {
	return &memoryTaskStore{}
}

// NewTaskStoreWith creates a TaskStore seeded with the given tasks, in order.
func NewTaskStoreWith(tasks []models.Task) TaskStore {
	s := &memoryTaskStore{tasks: make([]models.Task, len(tasks))}
	copy(s.tasks, tasks)
	return s
}

func (s *memoryTaskStore) Add(task models.Task) {
	s.tasks = append(s.tasks, task)
}

func (s *memoryTaskStore) ReplaceAt(index int, task models.Task) error {
	if err := s.check(index); err != nil {
		return fmt.Errorf("replacing task: %w", err)
	}
	s.tasks[index] = task
	return nil
}

func (s *memoryTaskStore) RemoveAt(index int) error {
	if err := s.check(index); err != nil {
		return fmt.Errorf("removing task: %w", err)
	}
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	return nil
}

func (s *memoryTaskStore) Get(index int) (models.Task, error) {
	if err := s.check(index); err != nil {
		return models.Task{}, err
	}
	return s.tasks[index], nil
}

func (s *memoryTaskStore) Size() int {
	return len(s.tasks)
}

// All returns a copy of the task sequence in insertion order.
func (s *memoryTaskStore) All() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *memoryTaskStore) check(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, len(s.tasks))
	}
	return nil
}
