package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/KirkDiggler/initiative/internal/app"
	"github.com/KirkDiggler/initiative/internal/models"
	"github.com/KirkDiggler/initiative/internal/services/messaging"
	"github.com/KirkDiggler/initiative/internal/services/table"
)

// printRoll writes the headline, the dice and any flavour line
func printRoll(ctx context.Context, w io.Writer, messagingService messaging.Service, roll *models.Roll) error {
	result, err := messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		Roll: roll,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(w, result.Title)
	if result.Detail != "" {
		fmt.Fprintf(w, "  %s\n", result.Detail)
	}
	if result.Message != "" {
		fmt.Fprintln(w, result.Message)
	}
	return nil
}

// printInvalidRoll writes the "meh" for an expression that could not be rolled
func printInvalidRoll(ctx context.Context, w io.Writer, messagingService messaging.Service, text string, rollErr error) error {
	invalid, err := messagingService.GetInvalidRollMessage(ctx, &messaging.GetInvalidRollMessageInput{
		Expression: text,
		Err:        rollErr,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(w, invalid.Title)
	fmt.Fprintln(w, invalid.Message)
	return nil
}

// printRoster writes the round and the turn order
func printRoster(w io.Writer, roster *table.GetRosterOutput) {
	fmt.Fprintf(w, "Round %d\n", roster.Table.Round)
	if len(roster.Characters) == 0 {
		fmt.Fprintln(w, "Nobody is at the table yet.")
		return
	}
	for _, line := range messaging.FormatRoster(roster.Characters, roster.CurrentIndex) {
		fmt.Fprintln(w, line)
	}
}

// ensureTable returns the ID of the named table, creating it on first use
func ensureTable(ctx context.Context, services *app.Services, name string) (string, error) {
	found, err := services.Table.GetTableByChannel(ctx, &table.GetTableByChannelInput{
		ChannelID: name,
	})
	if err == nil {
		return found.Table.ID, nil
	}
	if !errors.Is(err, table.ErrTableNotFound) {
		return "", err
	}

	created, err := services.Table.CreateTable(ctx, &table.CreateTableInput{
		ChannelID: name,
	})
	if err != nil {
		return "", err
	}
	return created.Table.ID, nil
}

// showRoster prints the current roster of a table
func showRoster(ctx context.Context, w io.Writer, services *app.Services, tableID string) error {
	roster, err := services.Table.GetRoster(ctx, &table.GetRosterInput{
		TableID: tableID,
	})
	if err != nil {
		return err
	}

	printRoster(w, roster)
	return nil
}
