package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the persisted task list to stdout",
	Long: `Export reads the persisted task list and writes it to stdout in the
requested format, leaving the file untouched. Useful for piping the list
into other tools or for backups in a friendlier format.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := DataFile.Load()
		if err != nil {
			return err
		}

		var out []byte
		switch exportFormat {
		case "json":
			out, err = json.MarshalIndent(tasks, "", "  ")
			if err == nil {
				out = append(out, '\n')
			}
		case "yaml":
			out, err = yaml.Marshal(tasks)
		default:
			return fmt.Errorf("unknown format %q: want json or yaml", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("encoding task list: %w", err)
		}

		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json or yaml")
	rootCmd.AddCommand(exportCmd)
}
