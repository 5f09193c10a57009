package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/KirkDiggler/initiative/internal/app"
	"github.com/KirkDiggler/initiative/internal/services/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Party is the layout of a roster file:
//
//	characters:
//	  - name: Aria
//	    hp: 24/24
//	    notes: blessed
type Party struct {
	Characters []table.SeedCharacter `yaml:"characters"`
}

// NewTableCommand creates the table command and its subcommands.
func NewTableCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show and edit a table's roster",
	}

	cmd.AddCommand(newTableShowCommand(opts))
	cmd.AddCommand(newTableAddCommand(opts))
	cmd.AddCommand(newTableRemoveCommand(opts))
	cmd.AddCommand(newTableSeedCommand(opts))

	return cmd
}

func newTableShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the turn order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withServices(func(services *app.Services) error {
				tableID, err := ensureTable(cmd.Context(), services, opts.Table)
				if err != nil {
					return err
				}
				return showRoster(cmd.Context(), cmd.OutOrStdout(), services, tableID)
			})
		},
	}
}

// TableAddOptions holds flags for the table add command.
type TableAddOptions struct {
	*RootOptions
	HP    string
	Notes string
}

func newTableAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TableAddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a character to the bottom of the turn order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withServices(func(services *app.Services) error {
				tableID, err := ensureTable(cmd.Context(), services, opts.Table)
				if err != nil {
					return err
				}

				added, err := services.Table.AddCharacter(cmd.Context(), &table.AddCharacterInput{
					TableID: tableID,
					Name:    args[0],
					HP:      opts.HP,
					Notes:   opts.Notes,
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", added.Character.Name)
				return showRoster(cmd.Context(), cmd.OutOrStdout(), services, tableID)
			})
		},
	}

	cmd.Flags().StringVar(&opts.HP, "hp", "", "hit points, e.g. 24/24")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "conditions or reminders")

	return cmd
}

func newTableRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a character from the turn order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withServices(func(services *app.Services) error {
				tableID, err := ensureTable(cmd.Context(), services, opts.Table)
				if err != nil {
					return err
				}

				removed, err := services.Table.RemoveCharacter(cmd.Context(), &table.RemoveCharacterInput{
					TableID: tableID,
					Name:    args[0],
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", removed.Character.Name)
				return showRoster(cmd.Context(), cmd.OutOrStdout(), services, tableID)
			})
		},
	}
}

// TableSeedOptions holds flags for the table seed command.
type TableSeedOptions struct {
	*RootOptions
	File string
}

func newTableSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TableSeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the roster with the characters in a YAML file",
		Long: `Replace the roster with the characters in a YAML file and restart at round 1.

Example party.yaml:
  characters:
    - name: Aria
      hp: 24/24
    - name: Goblin
      hp: "7"
      notes: dazed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			party, err := loadParty(opts.File)
			if err != nil {
				return err
			}

			return opts.withServices(func(services *app.Services) error {
				return seedTable(cmd.Context(), cmd, services, opts.Table, party)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "party.yaml", "roster file")

	return cmd
}

func loadParty(path string) (*Party, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var party Party
	if err := yaml.Unmarshal(data, &party); err != nil {
		return nil, fmt.Errorf("failed to parse roster file %s: %w", path, err)
	}

	return &party, nil
}

func seedTable(ctx context.Context, cmd *cobra.Command, services *app.Services, tableName string, party *Party) error {
	tableID, err := ensureTable(ctx, services, tableName)
	if err != nil {
		return err
	}

	seeded, err := services.Table.SeedTable(ctx, &table.SeedTableInput{
		TableID:    tableID,
		Characters: party.Characters,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d characters\n", len(seeded.Characters))
	return showRoster(ctx, cmd.OutOrStdout(), services, tableID)
}
