package models

import (
	"time"
)

// LogEntryKind represents what a log entry records
type LogEntryKind string

const (
	// LogEntryKindRoll records an evaluated dice expression
	LogEntryKindRoll LogEntryKind = "roll"

	// LogEntryKindTurn records a change of turn
	LogEntryKindTurn LogEntryKind = "turn"

	// LogEntryKindNote records a note added to a character
	LogEntryKindNote LogEntryKind = "note"
)

// LogEntry is one line of a table's log
type LogEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// TableID is the table the entry belongs to
	TableID string

	// Kind is what the entry records
	Kind LogEntryKind

	// Message is the rendered log line, e.g. "Rolling: 2d6 -> 7"
	Message string

	// Roll is set for roll entries
	Roll *Roll `json:",omitempty"`

	// CreatedAt is when the entry was written
	CreatedAt time.Time
}
