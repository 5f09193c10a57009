package table

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/initiative/internal/services/table Service

import "context"

// Service defines the interface for initiative table operations
type Service interface {
	// CreateTable starts a new table in a channel
	CreateTable(ctx context.Context, input *CreateTableInput) (*CreateTableOutput, error)

	// GetTableByChannel finds the table bound to a channel
	GetTableByChannel(ctx context.Context, input *GetTableByChannelInput) (*GetTableByChannelOutput, error)

	// AddCharacter appends a character to the bottom of the turn order
	AddCharacter(ctx context.Context, input *AddCharacterInput) (*AddCharacterOutput, error)

	// RemoveCharacter takes a character out of the turn order
	RemoveCharacter(ctx context.Context, input *RemoveCharacterInput) (*RemoveCharacterOutput, error)

	// SeedTable replaces the whole roster
	SeedTable(ctx context.Context, input *SeedTableInput) (*SeedTableOutput, error)

	// NextTurn passes the turn down the order
	NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error)

	// PreviousTurn hands the turn back up the order
	PreviousTurn(ctx context.Context, input *PreviousTurnInput) (*PreviousTurnOutput, error)

	// SetNote replaces a character's notes
	SetNote(ctx context.Context, input *SetNoteInput) (*SetNoteOutput, error)

	// GetRoster returns the characters in turn order
	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)

	// GetLog returns the newest entries of the table's log
	GetLog(ctx context.Context, input *GetLogInput) (*GetLogOutput, error)
}
