package table_log

import "github.com/KirkDiggler/initiative/internal/models"

// AppendEntryInput contains parameters for appending a log entry
type AppendEntryInput struct {
	Entry *models.LogEntry
}

// ListEntriesInput contains parameters for listing log entries
type ListEntriesInput struct {
	TableID string

	// Limit caps how many of the newest entries are returned; 0 means all
	Limit int
}

// ListEntriesOutput contains the entries of a table's log
type ListEntriesOutput struct {
	Entries []*models.LogEntry
}

// ClearEntriesInput contains parameters for clearing a table's log
type ClearEntriesInput struct {
	TableID string
}
