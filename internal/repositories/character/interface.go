package character

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/initiative/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/initiative/internal/models"
)

// Repository defines the interface for character data persistence
type Repository interface {
	// SaveCharacter persists a character
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) error

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*models.Character, error)

	// GetCharactersAtTable retrieves all characters seated at a table
	GetCharactersAtTable(ctx context.Context, input *GetCharactersAtTableInput) (*GetCharactersAtTableOutput, error)

	// DeleteCharacter removes a character
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) error
}
