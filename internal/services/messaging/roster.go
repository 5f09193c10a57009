package messaging

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KirkDiggler/initiative/internal/models"
)

// FormatRoster renders one line per character in turn order. The character
// whose turn it is gets a ">" marker; names are dot-padded so HP lines up:
//
//	>Aria...... 24/24 blessed
//	 Goblin.... 7
func FormatRoster(characters []*models.Character, currentIndex int) []string {
	longest := 0
	for _, character := range characters {
		if n := utf8.RuneCountInString(character.Name); n > longest {
			longest = n
		}
	}

	lines := make([]string, 0, len(characters))
	for i, character := range characters {
		marker := " "
		if i == currentIndex {
			marker = ">"
		}
		dots := strings.Repeat(".", longest-utf8.RuneCountInString(character.Name)+2)
		line := fmt.Sprintf("%s%s%s %s %s", marker, character.Name, dots, character.HP, character.Notes)
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}

// FormatLog renders log entries oldest first as "15:04 message"
func FormatLog(entries []*models.LogEntry, loc *time.Location) []string {
	if loc == nil {
		loc = time.UTC
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s %s", entry.CreatedAt.In(loc).Format("15:04"), entry.Message))
	}
	return lines
}
