package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/cobra"
)

// taskFileSchema describes the persisted task array. A null element is legal:
// the loader skips such entries instead of failing the whole file.
const taskFileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": ["array", "null"],
  "items": {
    "type": ["object", "null"],
    "required": ["description", "dueDate", "dueTime", "priority"],
    "properties": {
      "description": {"type": "string", "minLength": 1},
      "dueDate": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
      "dueTime": {"type": "string", "pattern": "^\\d{2}:\\d{2}$"},
      "priority": {"type": "string", "enum": ["C", "H", "N", "L"]}
    },
    "additionalProperties": false
  }
}`

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the persisted task file against its schema",
	Long: `Validate parses the persisted task file and checks every entry against
the task schema, reporting what a later interactive session would trip
over. The file is never modified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		data, err := os.ReadFile(DataFile.Path())
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(out, "%s does not exist; a new session starts empty\n", DataFile.Path())
				return nil
			}
			return fmt.Errorf("reading task file: %w", err)
		}

		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%s is not valid JSON: %w", DataFile.Path(), err)
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("tasklist.schema.json", strings.NewReader(taskFileSchema)); err != nil {
			return fmt.Errorf("loading task schema: %w", err)
		}
		schema, err := compiler.Compile("tasklist.schema.json")
		if err != nil {
			return fmt.Errorf("compiling task schema: %w", err)
		}

		if err := schema.Validate(doc); err != nil {
			return fmt.Errorf("%s failed validation:\n%v", DataFile.Path(), err)
		}

		fmt.Fprintf(out, "%s is valid\n", DataFile.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
