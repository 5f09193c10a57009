package cli

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/initiative/internal/app"
	"github.com/KirkDiggler/initiative/internal/services/messaging"
	"github.com/KirkDiggler/initiative/internal/services/table"
	"github.com/spf13/cobra"
)

// NoteOptions holds flags for the note command.
type NoteOptions struct {
	*RootOptions
	Name string
}

// NewNoteCommand creates the note command.
func NewNoteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NoteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "note [text...]",
		Short: "Set a character's notes; no text clears them",
		Long: `Set a character's notes. Without --name the note goes to whoever's turn it is.

Example:
  initiative note concentrating on bless
  initiative note --name Goblin prone`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withServices(func(services *app.Services) error {
				ctx := cmd.Context()

				tableID, err := ensureTable(ctx, services, opts.Table)
				if err != nil {
					return err
				}

				noted, err := services.Table.SetNote(ctx, &table.SetNoteInput{
					TableID: tableID,
					Name:    opts.Name,
					Note:    strings.Join(args, " "),
				})
				if err != nil {
					return err
				}

				message, err := services.Messaging.GetNoteMessage(ctx, &messaging.GetNoteMessageInput{
					Character: noted.Character,
				})
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), message.Message)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "character to note (default: whoever's turn it is)")

	return cmd
}
