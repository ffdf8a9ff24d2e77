package cli

import (
	"github.com/drapaimern/tasklist/internal/observability"
	"github.com/drapaimern/tasklist/internal/render"
	"github.com/drapaimern/tasklist/internal/storage"
)

// Service instances for the commands, set during app initialization in
// app.go. Store is populated by the root command once the task file has
// been read.
var (
	BasePath string
	Store    storage.TaskStore
	DataFile *storage.TaskFile
	Rend     *render.Renderer
	EventLog observability.EventLog
)
