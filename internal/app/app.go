package app

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/initiative/internal/common/clock"
	"github.com/KirkDiggler/initiative/internal/common/uuid"
	"github.com/KirkDiggler/initiative/internal/dice"
	"github.com/KirkDiggler/initiative/internal/repositories/character"
	"github.com/KirkDiggler/initiative/internal/repositories/table"
	"github.com/KirkDiggler/initiative/internal/repositories/table_log"
	"github.com/KirkDiggler/initiative/internal/services/messaging"
	"github.com/KirkDiggler/initiative/internal/services/roller"
	tableService "github.com/KirkDiggler/initiative/internal/services/table"
	"github.com/redis/go-redis/v9"
)

// Config holds what the services are built from
type Config struct {
	// Redis client shared by every repository
	RedisClient *redis.Client

	// DiceRoller rolls for the roller service; nil uses a randomly seeded RandomRoller
	DiceRoller dice.Roller

	// MaxLogEntries is how many log lines each table keeps
	MaxLogEntries int

	// MessagingSeed fixes the flavour text picks; 0 picks a random seed
	MessagingSeed int64
}

// Services are the front-end facing services backed by Redis
type Services struct {
	Table     tableService.Service
	Roller    roller.Service
	Messaging messaging.Service
}

// New initializes the repositories and services
func New(cfg *Config) (*Services, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Initialize repositories
	tableRepo, err := table.NewRedis(&table.Config{
		RedisClient: cfg.RedisClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create table repository: %w", err)
	}

	characterRepo, err := character.NewRedis(&character.Config{
		RedisClient: cfg.RedisClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}

	tableLogRepo, err := table_log.NewRedis(&table_log.Config{
		RedisClient: cfg.RedisClient,
		MaxEntries:  cfg.MaxLogEntries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create table log repository: %w", err)
	}

	diceRoller := cfg.DiceRoller
	if diceRoller == nil {
		diceRoller = dice.New(&dice.Config{})
	}

	systemClock := clock.New()
	uuidGenerator := uuid.New()

	// Initialize services
	tableSvc, err := tableService.New(&tableService.Config{
		TableRepo:     tableRepo,
		CharacterRepo: characterRepo,
		TableLogRepo:  tableLogRepo,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create table service: %w", err)
	}

	rollerSvc, err := roller.New(&roller.Config{
		DiceRoller:    diceRoller,
		TableLogRepo:  tableLogRepo,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create roller service: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.Config{
		Seed: cfg.MessagingSeed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &Services{
		Table:     tableSvc,
		Roller:    rollerSvc,
		Messaging: messagingSvc,
	}, nil
}
