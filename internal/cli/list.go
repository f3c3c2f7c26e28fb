package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog contents",
	}

	cmd.AddCommand(newListAgentsCmd())
	cmd.AddCommand(newListWorkflowsCmd())
	cmd.AddCommand(newListTasksCmd())
	return cmd
}

func newListAgentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "List all agents in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cat, _, _, err := loadStack(log)
			if err != nil {
				return err
			}
			for _, a := range cat.Agents() {
				fmt.Printf("%-20s %-16s %s\n", a.Name, a.DisplayName, a.Title)
			}
			return nil
		},
	}
}

func newListWorkflowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workflows",
		Short: "List all workflows in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cat, _, _, err := loadStack(log)
			if err != nil {
				return err
			}
			for _, w := range cat.Workflows() {
				fmt.Printf("%-24s %s\n", w.Name, w.Description)
			}
			return nil
		},
	}
}

func newListTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List all tasks in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cat, _, _, err := loadStack(log)
			if err != nil {
				return err
			}
			for _, t := range cat.Tasks() {
				fmt.Printf("%-24s %s\n", t.Name, t.Description)
			}
			return nil
		},
	}
}
