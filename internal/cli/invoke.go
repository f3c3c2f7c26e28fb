package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newInvokeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "invoke [command]",
		Short: "Run one roster command and print the result",
		Long: `Executes a single command through the unified tool without an MCP client.

Examples:
  roster invoke ""              Load the default agent
  roster invoke analyst         Load the analyst agent
  roster invoke '*party-mode'   Execute the party-mode workflow
  roster invoke '*list-agents'  List all agents`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, _, exec, err := loadStack(log)
			if err != nil {
				return err
			}

			command := ""
			if len(args) > 0 {
				command = args[0]
			}

			result := exec.Execute(command)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			if !result.Success {
				fmt.Fprintln(os.Stderr, result.Error)
				if len(result.Suggestions) > 0 {
					fmt.Fprintf(os.Stderr, "\nSuggestions: %s\n", strings.Join(result.Suggestions, ", "))
				}
				return &ExitError{Code: 2}
			}

			if result.Content != "" {
				fmt.Println(result.Content)
			} else {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	return cmd
}
