package character

import "github.com/KirkDiggler/initiative/internal/models"

// SaveCharacterInput contains parameters for saving a character
type SaveCharacterInput struct {
	Character *models.Character
}

// GetCharacterInput contains parameters for retrieving a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharactersAtTableInput contains parameters for retrieving the characters at a table
type GetCharactersAtTableInput struct {
	TableID string
}

// GetCharactersAtTableOutput holds the characters at a table keyed by ID
type GetCharactersAtTableOutput struct {
	Characters map[string]*models.Character
}

// DeleteCharacterInput contains parameters for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}
