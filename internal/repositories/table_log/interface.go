package table_log

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/initiative/internal/repositories/table_log Repository

import (
	"context"
)

// Repository defines the interface for table log persistence
type Repository interface {
	// AppendEntry adds an entry to the end of a table's log
	AppendEntry(ctx context.Context, input *AppendEntryInput) error

	// ListEntries retrieves the most recent entries of a table's log, oldest first
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)

	// ClearEntries deletes a table's log
	ClearEntries(ctx context.Context, input *ClearEntriesInput) error
}
