package roller

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/initiative/internal/services/roller Service

import "context"

// Service defines the interface for rolling dice expressions
type Service interface {
	// Roll evaluates a dice expression, recording it in the table's log when a table is given
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)
}
