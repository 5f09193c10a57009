package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/KirkDiggler/initiative/internal/dice"
	"github.com/KirkDiggler/initiative/internal/expression"
	"github.com/KirkDiggler/initiative/internal/models"
	"github.com/KirkDiggler/initiative/internal/services/roller"
	"github.com/KirkDiggler/initiative/internal/services/table"
)

// invalidRollTitle is what a rejected expression reads as in chat
const invalidRollTitle = "meh"

// service implements the Service interface
type service struct {
	mu sync.Mutex

	// Random number generator for selecting flavour lines
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(cfg *Config) (Service, error) {
	seed := dice.RandomSeed()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetRollResultMessage returns the text shown for a successful roll
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil || input.Roll == nil {
		return nil, errors.New("roll cannot be nil")
	}

	roll := input.Roll

	title := fmt.Sprintf("Rolling: %s -> %d", roll.Expression, roll.Total)
	if roll.RolledBy != "" {
		title = fmt.Sprintf("%s rolled %d", roll.RolledBy, roll.Total)
	}

	var message string
	switch {
	case rolledNatural(roll, 20, 20):
		message = s.pick([]string{
			"Natural 20! The dice gods smile upon you.",
			"A crit! Somebody write this down.",
			"Twenty! Describe it, slowly.",
		})
	case rolledNatural(roll, 20, 1):
		message = s.pick([]string{
			"Natural 1. The dice have chosen violence.",
			"A one. It happens to the best of us. Mostly to you, though.",
			"Fumble! Roll for dignity.",
		})
	}

	return &GetRollResultMessageOutput{
		Title:   title,
		Message: message,
		Detail:  FormatDice(roll.Dice),
	}, nil
}

// GetInvalidRollMessage returns the text shown when an expression cannot be rolled
func (s *service) GetInvalidRollMessage(ctx context.Context, input *GetInvalidRollMessageInput) (*GetInvalidRollMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var reason string
	var fault *expression.Fault
	switch {
	case errors.As(input.Err, &fault):
		reason = fmt.Sprintf("%v (%s error at %d)", fault.Err, fault.Class, fault.Position)
	case errors.Is(input.Err, roller.ErrEmptyExpression):
		reason = "there was nothing to roll"
	default:
		reason = "that is not something I can roll"
	}

	return &GetInvalidRollMessageOutput{
		Title:   invalidRollTitle,
		Message: fmt.Sprintf("Couldn't roll %q: %s", input.Expression, reason),
	}, nil
}

// GetTurnMessage returns the text announcing whose turn it is
func (s *service) GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.New("character cannot be nil")
	}

	message := fmt.Sprintf("Turn: %s", input.Character.Name)
	if input.NewRound {
		message = fmt.Sprintf("Round %d! %s", input.Round, message)
	}

	flavour := s.pick([]string{
		"You're up.",
		"What do you do?",
		"The table turns to you.",
		"Make it count.",
	})

	return &GetTurnMessageOutput{
		Message: fmt.Sprintf("%s. %s", message, flavour),
	}, nil
}

// GetNoteMessage returns the text confirming a note
func (s *service) GetNoteMessage(ctx context.Context, input *GetNoteMessageInput) (*GetNoteMessageOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.New("character cannot be nil")
	}

	if input.Character.Notes == "" {
		return &GetNoteMessageOutput{
			Message: fmt.Sprintf("Cleared notes for %s", input.Character.Name),
		}, nil
	}

	return &GetNoteMessageOutput{
		Message: fmt.Sprintf("Note: %s: %s", input.Character.Name, input.Character.Notes),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch {
	case errors.Is(input.Err, table.ErrTableNotFound):
		message = "There's no table here yet. Start one with `/initiative start`."
	case errors.Is(input.Err, table.ErrTableAlreadyExists):
		message = "This channel already has a table."
	case errors.Is(input.Err, table.ErrEmptyRoster):
		message = "Nobody is at the table. Add someone with `/initiative add`."
	case errors.Is(input.Err, table.ErrCharacterNotFound):
		message = "I couldn't find anyone by that name at the table."
	case errors.Is(input.Err, table.ErrCharacterExists):
		message = "Someone with that name is already at the table."
	case errors.Is(input.Err, table.ErrInvalidCharacterName):
		message = "Characters need a name."
	default:
		message = s.pick([]string{
			"Something went wrong. The goblins are looking into it.",
			"That didn't work. Try again in a moment.",
		})
	}

	return &GetErrorMessageOutput{
		Message: message,
	}, nil
}

// FormatDice renders each dice group, e.g. "2d6 [2, 5] = 7 | 1d20 [13] = 13"
func FormatDice(groups []models.DiceGroup) string {
	parts := make([]string, 0, len(groups))
	for _, group := range groups {
		values := make([]string, 0, len(group.Values))
		for _, v := range group.Values {
			values = append(values, fmt.Sprintf("%d", v))
		}
		parts = append(parts, fmt.Sprintf("%dd%d [%s] = %d", group.Count, group.Faces, strings.Join(values, ", "), group.Total))
	}
	return strings.Join(parts, " | ")
}

// rolledNatural reports whether any die with the given faces came up value
func rolledNatural(roll *models.Roll, faces, value uint32) bool {
	for _, group := range roll.Dice {
		if group.Faces != faces {
			continue
		}
		for _, v := range group.Values {
			if v == value {
				return true
			}
		}
	}
	return false
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
