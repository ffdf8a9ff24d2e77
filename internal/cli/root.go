package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drapaimern/tasklist/internal/storage"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "tasklist",
	Short: "Tasklist - interactive terminal task list manager",
	Long: `Tasklist is a single-user terminal task list manager. Run it without
arguments to enter the interactive session: add, print, edit, and delete
tasks with a due date, due time, and priority, then persist the list with
the end command.

The list is stored as a JSON file in the working directory between runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The task file is read only here, not at startup, so subcommands
		// like validate still work when the file is unreadable.
		tasks, err := DataFile.Load()
		if err != nil {
			return fmt.Errorf("run 'tasklist validate' for details: %w", err)
		}
		Store = storage.NewTaskStoreWith(tasks)
		session := NewSession(os.Stdin, os.Stdout, Store, DataFile, Rend, EventLog)
		return session.Run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tasklist %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
