package roller

import (
	"github.com/KirkDiggler/initiative/internal/common/clock"
	"github.com/KirkDiggler/initiative/internal/common/uuid"
	"github.com/KirkDiggler/initiative/internal/dice"
	"github.com/KirkDiggler/initiative/internal/models"
	tableLogRepo "github.com/KirkDiggler/initiative/internal/repositories/table_log"
)

// Config holds configuration for the roller service
type Config struct {
	// DiceRoller supplies every die the service rolls
	DiceRoller dice.Roller

	// Repository dependencies
	TableLogRepo tableLogRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// RollInput contains parameters for a roll
type RollInput struct {
	// TableID is the table whose log records the roll; empty rolls off the record
	TableID string

	// Expression is the text to evaluate, e.g. "2d6 + 3"
	Expression string

	// RolledBy is the name shown next to the roll
	RolledBy string
}

// RollOutput contains the result of a roll
type RollOutput struct {
	Roll *models.Roll

	// Message is the log line for the roll, "Rolling: <expression> -> <total>"
	Message string
}
