package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/xapi-client/pkg/xapi"
)

// Common static errors used throughout the commands package.
var (
	ErrInvalidParam = errors.New("invalid parameter")
)

// CallOptions holds the options for invoking an operation.
type CallOptions struct {
	Params []string
}

// NewCallCommand creates the call command.
func NewCallCommand() *cobra.Command {
	var opts CallOptions

	cmd := &cobra.Command{
		Use:   "call OPERATION",
		Short: "Invoke a named operation",
		Long: `Invoke a named gateway operation with structured parameters.

Examples:
  xapi call user-by-username --param username=XDevelopers
  xapi call tweets-batch --param ids=1,2,3
  xapi call search-recent --param query=golang --param max_results=25`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCallCommand(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Params, "param", "p", nil, "operation parameter as KEY=VALUE (repeatable)")

	return cmd
}

func runCallCommand(ctx context.Context, operation string, opts CallOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	args := xapi.Args{}

	for _, pair := range opts.Params {
		key, value, err := ParseParam(pair)
		if err != nil {
			return err
		}

		args[key] = value
	}

	result, err := client.Dispatch(ctx, operation, args)
	if err != nil {
		return describeFailure(err)
	}

	switch OutputFormat() {
	case OutputFormatYAML:
		return EncodeYAML(result)
	case OutputFormatTable:
		return outputResultSummary(result)
	default:
		return EncodeJSON(result)
	}
}

// outputResultSummary prints the envelope shape; the payload itself is
// printed as JSON since its fields vary per operation.
func outputResultSummary(result *xapi.Result) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")
	_ = table.Append("Partial errors", fmt.Sprintf("%d", len(result.PartialErrors)))
	_ = table.Append("Next cursor", result.NextCursor())

	if result.Meta != nil && result.Meta.ResultCount > 0 {
		_ = table.Append("Result count", fmt.Sprintf("%d", result.Meta.ResultCount))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return EncodeJSON(result)
}

// describeFailure adds rate-limit context when present; the error already
// carries its kind, operation name, and upstream detail.
func describeFailure(err error) error {
	if wait, ok := xapi.RetryAfter(err); ok {
		return fmt.Errorf("%w (retry after %s)", err, wait)
	}

	return err
}
