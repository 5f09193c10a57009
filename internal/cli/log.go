package cli

import (
	"fmt"

	"github.com/KirkDiggler/initiative/internal/app"
	"github.com/KirkDiggler/initiative/internal/services/messaging"
	"github.com/KirkDiggler/initiative/internal/services/table"
	"github.com/spf13/cobra"
)

// LogOptions holds flags for the log command.
type LogOptions struct {
	*RootOptions
	Limit int
}

// NewLogCommand creates the log command.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent rolls, turns and notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withServices(func(services *app.Services) error {
				ctx := cmd.Context()

				tableID, err := ensureTable(ctx, services, opts.Table)
				if err != nil {
					return err
				}

				output, err := services.Table.GetLog(ctx, &table.GetLogInput{
					TableID: tableID,
					Limit:   opts.Limit,
				})
				if err != nil {
					return err
				}

				if len(output.Entries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing has happened at this table yet.")
					return nil
				}

				for _, line := range messaging.FormatLog(output.Entries, nil) {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "l", 10, "how many entries to show (0 for all)")

	return cmd
}
