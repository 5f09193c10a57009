package table

import (
	"github.com/KirkDiggler/initiative/internal/common/clock"
	"github.com/KirkDiggler/initiative/internal/common/uuid"
	"github.com/KirkDiggler/initiative/internal/models"
	characterRepo "github.com/KirkDiggler/initiative/internal/repositories/character"
	tableRepo "github.com/KirkDiggler/initiative/internal/repositories/table"
	tableLogRepo "github.com/KirkDiggler/initiative/internal/repositories/table_log"
)

// Config holds configuration for the table service
type Config struct {
	// Repository dependencies
	TableRepo     tableRepo.Repository
	CharacterRepo characterRepo.Repository
	TableLogRepo  tableLogRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateTableInput contains parameters for creating a table
type CreateTableInput struct {
	// ChannelID is the Discord channel ID or CLI table name
	ChannelID string
}

// CreateTableOutput contains the created table
type CreateTableOutput struct {
	Table *models.Table
}

// GetTableByChannelInput contains parameters for finding a table
type GetTableByChannelInput struct {
	ChannelID string
}

// GetTableByChannelOutput contains the table bound to the channel
type GetTableByChannelOutput struct {
	Table *models.Table
}

// AddCharacterInput contains parameters for adding a character
type AddCharacterInput struct {
	TableID string
	Name    string
	HP      string
	Notes   string
}

// AddCharacterOutput contains the added character
type AddCharacterOutput struct {
	Character *models.Character
}

// RemoveCharacterInput contains parameters for removing a character
type RemoveCharacterInput struct {
	TableID string

	// Name is matched case-insensitively against the roster
	Name string
}

// RemoveCharacterOutput contains the removed character
type RemoveCharacterOutput struct {
	Character *models.Character
}

// SeedCharacter describes one character of a seeded roster
type SeedCharacter struct {
	Name  string `yaml:"name"`
	HP    string `yaml:"hp"`
	Notes string `yaml:"notes"`
}

// SeedTableInput contains the roster that replaces the current one
type SeedTableInput struct {
	TableID    string
	Characters []SeedCharacter
}

// SeedTableOutput contains the new roster in turn order
type SeedTableOutput struct {
	Characters []*models.Character
}

// NextTurnInput contains parameters for advancing the turn
type NextTurnInput struct {
	TableID string
}

// NextTurnOutput contains the table after advancing
type NextTurnOutput struct {
	Table *models.Table

	// Character is whose turn it is now
	Character *models.Character

	// NewRound is set when the turn wrapped back to the top
	NewRound bool
}

// PreviousTurnInput contains parameters for rewinding the turn
type PreviousTurnInput struct {
	TableID string
}

// PreviousTurnOutput contains the table after rewinding
type PreviousTurnOutput struct {
	Table     *models.Table
	Character *models.Character
}

// SetNoteInput contains parameters for setting a note
type SetNoteInput struct {
	TableID string

	// Name selects the character; empty means whoever's turn it is
	Name string

	Note string
}

// SetNoteOutput contains the updated character
type SetNoteOutput struct {
	Character *models.Character
}

// GetRosterInput contains parameters for reading the roster
type GetRosterInput struct {
	TableID string
}

// GetRosterOutput contains the roster in turn order
type GetRosterOutput struct {
	Table      *models.Table
	Characters []*models.Character

	// CurrentIndex is the position in Characters whose turn it is, -1 when empty
	CurrentIndex int
}

// GetLogInput contains parameters for reading the log
type GetLogInput struct {
	TableID string

	// Limit caps the number of entries; 0 means all that are kept
	Limit int
}

// GetLogOutput contains log entries, oldest first
type GetLogOutput struct {
	Entries []*models.LogEntry
}
