package table

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/initiative/internal/repositories/table Repository

import (
	"context"

	"github.com/KirkDiggler/initiative/internal/models"
)

// Repository defines the interface for table data persistence
type Repository interface {
	// SaveTable persists a table
	SaveTable(ctx context.Context, input *SaveTableInput) error

	// GetTable retrieves a table by ID
	GetTable(ctx context.Context, input *GetTableInput) (*models.Table, error)

	// GetTableByChannel retrieves a table by channel ID
	GetTableByChannel(ctx context.Context, input *GetTableByChannelInput) (*models.Table, error)

	// DeleteTable removes a table
	DeleteTable(ctx context.Context, input *DeleteTableInput) error
}
