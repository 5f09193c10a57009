package messaging

import (
	"testing"
	"time"

	"github.com/KirkDiggler/initiative/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatRoster(t *testing.T) {
	characters := []*models.Character{
		{Name: "Aria", HP: "24/24", Notes: "blessed"},
		{Name: "Goblin", HP: "7"},
		{Name: "Borin", HP: "31/31", Notes: "prone"},
	}

	assert.Equal(t, []string{
		" Aria.... 24/24 blessed",
		">Goblin.. 7",
		" Borin... 31/31 prone",
	}, FormatRoster(characters, 1))
}

func TestFormatRosterCountsRunes(t *testing.T) {
	characters := []*models.Character{
		{Name: "Zoë", HP: "9"},
		{Name: "Al", HP: "3"},
	}

	assert.Equal(t, []string{
		">Zoë.. 9",
		" Al... 3",
	}, FormatRoster(characters, 0))
}

func TestFormatRosterEmpty(t *testing.T) {
	assert.Empty(t, FormatRoster(nil, -1))
}

func TestFormatLog(t *testing.T) {
	entries := []*models.LogEntry{
		{Message: "Turn: Aria", CreatedAt: time.Date(2025, 4, 19, 9, 5, 0, 0, time.UTC)},
		{Message: "Rolling: 1d20 -> 17", CreatedAt: time.Date(2025, 4, 19, 9, 6, 0, 0, time.UTC)},
	}

	assert.Equal(t, []string{
		"09:05 Turn: Aria",
		"09:06 Rolling: 1d20 -> 17",
	}, FormatLog(entries, nil))
}
