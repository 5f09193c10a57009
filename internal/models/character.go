package models

import (
	"time"
)

// Character is an entry in a table's turn order, a player character or a monster
type Character struct {
	// ID is the unique identifier for the character
	ID string

	// TableID is the table the character belongs to
	TableID string

	// Name is the display name of the character
	Name string

	// HP is free-form hit point text such as "24/24"
	HP string

	// Notes holds conditions and reminders, e.g. "dazed"
	Notes string

	// CreatedAt is when the character was added
	CreatedAt time.Time
}
