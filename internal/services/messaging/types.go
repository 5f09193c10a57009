package messaging

import (
	"github.com/KirkDiggler/initiative/internal/models"
)

// Config holds configuration for the messaging service
type Config struct {
	// Seed fixes the flavour text picks; 0 picks a random seed
	Seed int64
}

// GetRollResultMessageInput contains the roll to describe
type GetRollResultMessageInput struct {
	Roll *models.Roll
}

// GetRollResultMessageOutput contains the text for a roll
type GetRollResultMessageOutput struct {
	// Title is the headline, e.g. "Aria rolled 17"
	Title string

	// Message is a flavour line; empty when nothing notable happened
	Message string

	// Detail lists every die, e.g. "2d6 [2, 5] = 7"
	Detail string
}

// GetInvalidRollMessageInput contains the rejected expression
type GetInvalidRollMessageInput struct {
	Expression string
	Err        error
}

// GetInvalidRollMessageOutput contains the text for a rejected expression
type GetInvalidRollMessageOutput struct {
	Title   string
	Message string
}

// GetTurnMessageInput contains the new turn
type GetTurnMessageInput struct {
	Character *models.Character
	Round     int
	NewRound  bool
}

// GetTurnMessageOutput contains the turn announcement
type GetTurnMessageOutput struct {
	Message string
}

// GetNoteMessageInput contains the character whose note changed
type GetNoteMessageInput struct {
	Character *models.Character
}

// GetNoteMessageOutput contains the note confirmation
type GetNoteMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains the error to explain
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains a user-friendly explanation
type GetErrorMessageOutput struct {
	Message string
}
