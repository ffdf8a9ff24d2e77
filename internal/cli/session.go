package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/drapaimern/tasklist/internal/core"
	"github.com/drapaimern/tasklist/internal/observability"
	"github.com/drapaimern/tasklist/internal/render"
	"github.com/drapaimern/tasklist/internal/storage"
	"github.com/drapaimern/tasklist/pkg/models"
)

// Session drives the interactive command loop over a task store. All reads go
// through a single bufio.Reader and all output through a single writer, so
// tests can run a whole session from a scripted string.
type Session struct {
	in    *bufio.Reader
	out   io.Writer
	store storage.TaskStore
	file  *storage.TaskFile
	rend  *render.Renderer
	log   observability.EventLog
	now   func() time.Time
}

// NewSession wires a Session. log may be nil to disable event recording.
func NewSession(in io.Reader, out io.Writer, store storage.TaskStore, file *storage.TaskFile, rend *render.Renderer, log observability.EventLog) *Session {
	return &Session{
		in:    bufio.NewReader(in),
		out:   out,
		store: store,
		file:  file,
		rend:  rend,
		log:   log,
		now:   time.Now,
	}
}

// Run reads commands until "end" persists the list and terminates the loop.
// EOF on input is the abnormal-exit path: the loop stops without saving.
func (s *Session) Run() error {
	for {
		fmt.Fprint(s.out, "> ")
		line, err := s.readLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		// Tolerate a pasted prompt decoration in front of the command.
		command := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "> "))

		switch strings.ToLower(command) {
		case "add":
			err = s.handleAdd()
		case "print":
			err = s.handlePrint()
		case "edit":
			err = s.handleEdit()
		case "delete":
			err = s.handleDelete()
		case "end":
			return s.handleEnd()
		default:
			fmt.Fprintln(s.out, "The input action is invalid")
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			// Final line without trailing newline still counts.
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// handleAdd prompts for priority, date, time, and a multi-line description,
// then appends the task. A whitespace-only description discards the task.
func (s *Session) handleAdd() error {
	priority, err := s.promptPriority()
	if err != nil {
		return err
	}
	date, err := s.promptDate()
	if err != nil {
		return err
	}
	dueTime, err := s.promptTime()
	if err != nil {
		return err
	}
	description, err := s.promptDescription()
	if err != nil {
		return err
	}

	if core.ValidateDescription(description) != nil {
		fmt.Fprintln(s.out, "The task is blank")
		return nil
	}

	s.store.Add(models.Task{
		Description: description,
		DueDate:     date,
		DueTime:     dueTime,
		Priority:    priority,
	})
	s.record(observability.EventTaskAdded, map[string]any{"position": s.store.Size()})
	return nil
}

func (s *Session) handlePrint() error {
	for _, line := range s.rend.Lines(s.store.All(), s.now()) {
		fmt.Fprintln(s.out, line)
	}
	return nil
}

// handleEdit selects a task, asks which field to change, re-acquires that one
// field, and replaces the task in place. Untouched fields carry over.
func (s *Session) handleEdit() error {
	index, ok, err := s.promptSelection()
	if err != nil || !ok {
		return err
	}
	task, err := s.store.Get(index)
	if err != nil {
		return err
	}

	for {
		fmt.Fprint(s.out, "Enter the field to change (priority, date, time, task): ")
		field, err := s.readLine()
		if err != nil {
			return err
		}

		parsed, parseErr := core.ParseEditField(field)
		if parseErr != nil {
			continue
		}
		switch parsed {
		case core.FieldPriority:
			task.Priority, err = s.promptPriority()
		case core.FieldDate:
			task.DueDate, err = s.promptDate()
		case core.FieldTime:
			task.DueTime, err = s.promptTime()
		case core.FieldTask:
			task.Description, err = s.promptFilledDescription()
		}
		if err != nil {
			return err
		}
		break
	}

	if err := s.store.ReplaceAt(index, task); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "The task is changed")
	s.record(observability.EventTaskEdited, map[string]any{"position": index + 1})
	return nil
}

func (s *Session) handleDelete() error {
	index, ok, err := s.promptSelection()
	if err != nil || !ok {
		return err
	}
	if err := s.store.RemoveAt(index); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "The task is deleted")
	s.record(observability.EventTaskDeleted, map[string]any{"position": index + 1})
	return nil
}

// handleEnd persists the store and terminates the session. A save failure is
// the one fatal error: it surfaces instead of silently losing the list.
func (s *Session) handleEnd() error {
	if err := s.file.Save(s.store.All()); err != nil {
		return err
	}
	s.record(observability.EventListSaved, map[string]any{"tasks": s.store.Size()})
	fmt.Fprintln(s.out, "Tasklist exiting!")
	return nil
}

// promptSelection renders the table and asks for a 1-based task number,
// re-prompting indefinitely on invalid input. On an empty store it prints the
// no-tasks message and reports ok=false without prompting. The returned index
// is 0-based.
func (s *Session) promptSelection() (index int, ok bool, err error) {
	if s.store.Size() == 0 {
		fmt.Fprintln(s.out, render.NoTasksMessage)
		return 0, false, nil
	}
	if err := s.handlePrint(); err != nil {
		return 0, false, err
	}

	size := s.store.Size()
	for {
		fmt.Fprintf(s.out, "Select the task number [1-%d]: ", size)
		line, err := s.readLine()
		if err != nil {
			return 0, false, err
		}

		index, parseErr := core.ParseSelection(line, size)
		if parseErr != nil {
			fmt.Fprintf(s.out, "Invalid selection. Enter a number between 1 and %d.\n", size)
			continue
		}
		return index, true, nil
	}
}

// promptPriority repeats the same question until a valid one-letter code is
// entered.
func (s *Session) promptPriority() (models.Priority, error) {
	for {
		fmt.Fprint(s.out, "Enter the priority (C, H, N, L): ")
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		priority, parseErr := core.ParsePriority(line)
		if parseErr != nil {
			continue
		}
		return priority, nil
	}
}

func (s *Session) promptDate() (string, error) {
	for {
		fmt.Fprint(s.out, "Enter the date (Y-M-D): ")
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		date, parseErr := core.NormalizeDate(strings.TrimSpace(line))
		if parseErr != nil {
			fmt.Fprintln(s.out, "invalid date")
			continue
		}
		return date, nil
	}
}

func (s *Session) promptTime() (string, error) {
	for {
		fmt.Fprint(s.out, "Enter the time (H:M): ")
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		normalized, parseErr := core.NormalizeTime(strings.TrimSpace(line))
		if parseErr != nil {
			fmt.Fprintln(s.out, "invalid time")
			continue
		}
		return normalized, nil
	}
}

// promptDescription reads description lines until a blank line and joins them
// with newlines. The result may be blank; add decides what that means.
func (s *Session) promptDescription() (string, error) {
	fmt.Fprintln(s.out, "Enter the task (finish with an empty line):")
	var lines []string
	for {
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// promptFilledDescription re-prompts until the description is non-blank; used
// by edit, where discarding the task is not an option.
func (s *Session) promptFilledDescription() (string, error) {
	for {
		description, err := s.promptDescription()
		if err != nil {
			return "", err
		}
		if core.ValidateDescription(description) == nil {
			return description, nil
		}
		fmt.Fprintln(s.out, "The task is blank")
	}
}

func (s *Session) record(eventType string, data map[string]any) {
	if s.log == nil {
		return
	}
	// Non-blocking: a failed event write never disturbs the session.
	_ = s.log.Write(observability.Event{
		Time:    s.now().UTC(),
		Level:   "INFO",
		Type:    eventType,
		Message: eventType,
		Data:    data,
	})
}
