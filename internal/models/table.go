package models

import (
	"time"
)

// Table tracks one encounter and whose turn it is
type Table struct {
	// ID is the unique identifier for the table
	ID string

	// ChannelID is the Discord channel or CLI table name the table is bound to
	ChannelID string

	// CharacterIDs is the turn order
	CharacterIDs []string

	// TurnIndex is the position in CharacterIDs of the character whose turn it is
	TurnIndex int

	// Round counts completed passes through the turn order, starting at 1
	Round int

	// CreatedAt is when the table was created
	CreatedAt time.Time

	// UpdatedAt is when the table was last updated
	UpdatedAt time.Time
}

// CurrentCharacterID returns the ID of the character whose turn it is
func (t *Table) CurrentCharacterID() string {
	if len(t.CharacterIDs) == 0 {
		return ""
	}
	return t.CharacterIDs[t.clampedIndex()]
}

// Advance moves to the next character, wrapping to the top and starting a new round
func (t *Table) Advance() {
	if len(t.CharacterIDs) == 0 {
		return
	}
	t.TurnIndex = t.clampedIndex() + 1
	if t.TurnIndex >= len(t.CharacterIDs) {
		t.TurnIndex = 0
		t.Round++
	}
}

// Rewind moves to the previous character, wrapping to the bottom of the previous round
func (t *Table) Rewind() {
	if len(t.CharacterIDs) == 0 {
		return
	}
	t.TurnIndex = t.clampedIndex() - 1
	if t.TurnIndex < 0 {
		t.TurnIndex = len(t.CharacterIDs) - 1
		if t.Round > 1 {
			t.Round--
		}
	}
}

// RemoveCharacter drops id from the turn order, keeping the turn on the same
// character when possible. It reports whether id was present.
func (t *Table) RemoveCharacter(id string) bool {
	for i, cid := range t.CharacterIDs {
		if cid != id {
			continue
		}
		t.CharacterIDs = append(t.CharacterIDs[:i], t.CharacterIDs[i+1:]...)
		if i < t.TurnIndex {
			t.TurnIndex--
		}
		if t.TurnIndex >= len(t.CharacterIDs) {
			t.TurnIndex = 0
		}
		return true
	}
	return false
}

func (t *Table) clampedIndex() int {
	if t.TurnIndex < 0 || t.TurnIndex >= len(t.CharacterIDs) {
		return 0
	}
	return t.TurnIndex
}
