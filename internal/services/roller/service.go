package roller

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/initiative/internal/common/clock"
	"github.com/KirkDiggler/initiative/internal/common/uuid"
	"github.com/KirkDiggler/initiative/internal/expression"
	"github.com/KirkDiggler/initiative/internal/models"
	tableLogRepo "github.com/KirkDiggler/initiative/internal/repositories/table_log"
)

// service implements the Service interface
type service struct {
	evaluator    *expression.Evaluator
	tableLogRepo tableLogRepo.Repository
	clock        clock.Clock
	uuid         uuid.UUID
}

// New creates a new roller service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.TableLogRepo == nil {
		return nil, ErrNilTableLogRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	evaluator, err := expression.New(&expression.Config{
		Roller: cfg.DiceRoller,
	})
	if err != nil {
		return nil, err
	}

	return &service{
		evaluator:    evaluator,
		tableLogRepo: cfg.TableLogRepo,
		clock:        cfg.Clock,
		uuid:         cfg.UUIDGenerator,
	}, nil
}

// Roll evaluates a dice expression. Malformed expressions return an error
// matching both ErrInvalidExpression and the underlying *expression.Fault.
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	text := strings.TrimSpace(input.Expression)
	if text == "" {
		return nil, ErrEmptyExpression
	}

	result, err := s.evaluator.Evaluate(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExpression, err)
	}

	roll := &models.Roll{
		Expression: text,
		Total:      result.Total,
		Dice:       make([]models.DiceGroup, 0, len(result.Dice)),
		RolledBy:   input.RolledBy,
	}
	for _, group := range result.Dice {
		roll.Dice = append(roll.Dice, models.DiceGroup{
			Count:  group.Count,
			Faces:  group.Faces,
			Values: group.Values,
			Total:  group.Total,
		})
	}

	message := fmt.Sprintf("Rolling: %s -> %d", text, roll.Total)

	if input.TableID != "" {
		err := s.tableLogRepo.AppendEntry(ctx, &tableLogRepo.AppendEntryInput{
			Entry: &models.LogEntry{
				ID:        s.uuid.NewUUID(),
				TableID:   input.TableID,
				Kind:      models.LogEntryKindRoll,
				Message:   message,
				Roll:      roll,
				CreatedAt: s.clock.Now(),
			},
		})
		if err != nil {
			// The roll itself stands even if the log could not record it
			log.Printf("Failed to log roll for table %s: %v", input.TableID, err)
		}
	}

	return &RollOutput{
		Roll:    roll,
		Message: message,
	}, nil
}
