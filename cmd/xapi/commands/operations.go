package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewOperationsCommand creates the operations command.
func NewOperationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "operations",
		Aliases: []string{"ops"},
		Short:   "List available operations",
		Long:    "List every named operation in the gateway registry with its path and parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperationsCommand()
		},
	}
}

func runOperationsCommand() error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	operations := client.Operations()

	switch OutputFormat() {
	case OutputFormatJSON:
		return EncodeJSON(operations)
	case OutputFormatYAML:
		return EncodeYAML(operations)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Operation", "Method", "Path", "Required", "Optional")

		for _, op := range operations {
			_ = table.Append(op.Name, op.Method, op.Path,
				strings.Join(op.Required, ", "),
				strings.Join(op.Optional, ", "))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
