// Package internal provides the App struct that wires all components of
// Tasklist together and initializes the CLI layer.
package internal

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/drapaimern/tasklist/internal/cli"
	"github.com/drapaimern/tasklist/internal/core"
	"github.com/drapaimern/tasklist/internal/observability"
	"github.com/drapaimern/tasklist/internal/render"
	"github.com/drapaimern/tasklist/internal/storage"
)

// App holds all service dependencies for a Tasklist session.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager

	// Storage layer
	DataFile *storage.TaskFile

	// Presentation
	Rend *render.Renderer

	// Observability
	EventLog observability.EventLog
}

// NewApp creates and wires all components of Tasklist. basePath is the
// directory holding the persisted task file (the working directory unless
// TASKLIST_HOME overrides it). The task file itself is not read here: only
// the interactive session loads it, so recovery subcommands like validate
// still run against a file a session would refuse.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.LoadConfig()
	if err != nil {
		return nil, err
	}

	// --- Storage layer ---
	app.DataFile = storage.NewTaskFile(filepath.Join(basePath, cfg.DataFile))

	// --- Presentation ---
	color := cfg.ColorMode == core.ColorAlways
	if cfg.ColorMode == core.ColorAuto {
		color = isatty.IsTerminal(os.Stdout.Fd())
	}
	app.Rend = render.New(color)

	// --- Observability ---
	if cfg.EventsEnabled {
		app.EventLog, err = observability.NewJSONLEventLog(filepath.Join(basePath, cfg.EventsFile))
		if err != nil {
			// Non-fatal: disable event recording if the log can't be created.
			app.EventLog = nil
		}
	}

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.DataFile = app.DataFile
	cli.Rend = app.Rend
	cli.EventLog = app.EventLog

	return app, nil
}

// Close releases resources held by the App, such as the event log file
// handle. It is safe to call Close on an App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the directory holding the persisted task file.
// TASKLIST_HOME wins; otherwise the working directory is used.
func ResolveBasePath() string {
	if home := os.Getenv("TASKLIST_HOME"); home != "" {
		return home
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
