package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/initiative/internal/common/uuid UUID

// UUID hands out identifiers for tables, characters and log entries
type UUID interface {
	NewUUID() string
}

// RandomUUID generates version 4 UUIDs
type RandomUUID struct{}

func New() *RandomUUID {
	return &RandomUUID{}
}

// NewUUID returns a new random UUID string
func (d *RandomUUID) NewUUID() string {
	return uuid.NewString()
}
