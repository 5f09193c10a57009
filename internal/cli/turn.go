package cli

import (
	"fmt"

	"github.com/KirkDiggler/initiative/internal/app"
	"github.com/KirkDiggler/initiative/internal/services/messaging"
	"github.com/KirkDiggler/initiative/internal/services/table"
	"github.com/spf13/cobra"
)

// NewTurnCommand creates the turn command and its subcommands.
func NewTurnCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "turn",
		Short: "Move the turn along the order",
	}

	cmd.AddCommand(newTurnMoveCommand(opts, "next", "Pass the turn to the next character", true))
	cmd.AddCommand(newTurnMoveCommand(opts, "prev", "Hand the turn back to the previous character", false))

	return cmd
}

func newTurnMoveCommand(opts *RootOptions, use, short string, forward bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withServices(func(services *app.Services) error {
				ctx := cmd.Context()

				tableID, err := ensureTable(ctx, services, opts.Table)
				if err != nil {
					return err
				}

				input := &messaging.GetTurnMessageInput{}
				if forward {
					output, err := services.Table.NextTurn(ctx, &table.NextTurnInput{TableID: tableID})
					if err != nil {
						return err
					}
					input.Character = output.Character
					input.Round = output.Table.Round
					input.NewRound = output.NewRound
				} else {
					output, err := services.Table.PreviousTurn(ctx, &table.PreviousTurnInput{TableID: tableID})
					if err != nil {
						return err
					}
					input.Character = output.Character
					input.Round = output.Table.Round
				}

				message, err := services.Messaging.GetTurnMessage(ctx, input)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), message.Message)
				return showRoster(ctx, cmd.OutOrStdout(), services, tableID)
			})
		},
	}
}
