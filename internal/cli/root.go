package cli

import (
	"github.com/KirkDiggler/initiative/internal/app"
	"github.com/KirkDiggler/initiative/internal/config"
	"github.com/spf13/cobra"
)

// Connector builds the services a command runs against. The returned func
// releases them.
type Connector func(opts *RootOptions) (*app.Services, func(), error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	// Table names the table to work on
	Table string

	// Seed fixes the dice; 0 picks a random seed
	Seed int64

	connect Connector
}

// NewRootCommand creates the root command for the initiative CLI.
func NewRootCommand(cfg *config.Config, connect Connector) *cobra.Command {
	opts := &RootOptions{connect: connect}

	cmd := &cobra.Command{
		Use:   "initiative",
		Short: "Dice rolls and turn order for tabletop encounters",
		Long: `Roll dice expressions and keep track of whose turn it is.

Tables live in Redis and are shared with the Discord bot; a table is created
the first time a command names it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.Table, "table", "t", cfg.Table.Name, "table to work on")
	cmd.PersistentFlags().Int64Var(&opts.Seed, "seed", cfg.Dice.Seed, "seed for the dice (0 picks a random one)")

	// Add subcommands
	cmd.AddCommand(NewRollCommand(opts))
	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewTurnCommand(opts))
	cmd.AddCommand(NewNoteCommand(opts))
	cmd.AddCommand(NewLogCommand(opts))

	return cmd
}

// withServices connects, runs fn and releases the connection
func (o *RootOptions) withServices(fn func(services *app.Services) error) error {
	services, release, err := o.connect(o)
	if err != nil {
		return err
	}
	defer release()

	return fn(services)
}
