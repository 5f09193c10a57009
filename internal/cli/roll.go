package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/initiative/internal/app"
	"github.com/KirkDiggler/initiative/internal/dice"
	"github.com/KirkDiggler/initiative/internal/expression"
	"github.com/KirkDiggler/initiative/internal/models"
	"github.com/KirkDiggler/initiative/internal/services/messaging"
	"github.com/KirkDiggler/initiative/internal/services/roller"
	"github.com/spf13/cobra"
)

// ErrInvalidRoll is returned after the "meh" for an expression that could not be rolled
var ErrInvalidRoll = errors.New("invalid dice expression")

// NewRollCommand creates the roll command.
func NewRollCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roll <expression...>",
		Short: "Roll a dice expression",
		Long: `Roll a dice expression built from NdS dice, whole numbers, + - * / and parentheses.

Without --table the roll needs no server. With --table it is recorded in that table's log.

Example:
  initiative roll 2d6 + 3
  initiative roll --seed 42 "(1d8 + 2) * 2"
  initiative --table crypt roll 1d20`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if cmd.Flags().Changed("table") {
				return opts.withServices(func(services *app.Services) error {
					return recordedRoll(cmd.Context(), cmd.OutOrStdout(), services, opts.Table, text)
				})
			}
			return standaloneRoll(cmd.Context(), cmd.OutOrStdout(), opts.Seed, text)
		},
	}

	return cmd
}

// standaloneRoll evaluates text locally without touching Redis
func standaloneRoll(ctx context.Context, w io.Writer, seed int64, text string) error {
	messagingService, err := messaging.NewService(&messaging.Config{Seed: seed})
	if err != nil {
		return err
	}

	evaluator, err := expression.New(&expression.Config{
		Roller: dice.New(&dice.Config{Seed: seed}),
	})
	if err != nil {
		return err
	}

	result, err := evaluator.Evaluate(text)
	if err != nil {
		if printErr := printInvalidRoll(ctx, w, messagingService, text, err); printErr != nil {
			return printErr
		}
		return fmt.Errorf("%w: %w", ErrInvalidRoll, err)
	}

	roll := &models.Roll{
		Expression: text,
		Total:      result.Total,
	}
	for _, group := range result.Dice {
		roll.Dice = append(roll.Dice, models.DiceGroup{
			Count:  group.Count,
			Faces:  group.Faces,
			Values: group.Values,
			Total:  group.Total,
		})
	}

	return printRoll(ctx, w, messagingService, roll)
}

// recordedRoll rolls through the roller service so the table's log keeps it
func recordedRoll(ctx context.Context, w io.Writer, services *app.Services, tableName, text string) error {
	tableID, err := ensureTable(ctx, services, tableName)
	if err != nil {
		return err
	}

	output, err := services.Roller.Roll(ctx, &roller.RollInput{
		TableID:    tableID,
		Expression: text,
	})
	if err != nil {
		if !errors.Is(err, roller.ErrInvalidExpression) {
			return err
		}
		if printErr := printInvalidRoll(ctx, w, services.Messaging, text, err); printErr != nil {
			return printErr
		}
		return fmt.Errorf("%w: %w", ErrInvalidRoll, err)
	}

	return printRoll(ctx, w, services.Messaging, output.Roll)
}
