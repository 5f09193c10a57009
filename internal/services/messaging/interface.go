package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRollResultMessage returns the text shown for a successful roll
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)

	// GetInvalidRollMessage returns the text shown when an expression cannot be rolled
	GetInvalidRollMessage(ctx context.Context, input *GetInvalidRollMessageInput) (*GetInvalidRollMessageOutput, error)

	// GetTurnMessage returns the text announcing whose turn it is
	GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error)

	// GetNoteMessage returns the text confirming a note
	GetNoteMessage(ctx context.Context, input *GetNoteMessageInput) (*GetNoteMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
