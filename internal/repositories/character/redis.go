package character

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/initiative/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	characterKeyPrefix       = "character:"
	tableCharactersKeyPrefix = "table_characters:"
)

// ErrCharacterNotFound is returned when a character is not found
var ErrCharacterNotFound = errors.New("character not found")

// Config holds configuration for the Redis character repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveCharacter persists a character to Redis
func (r *redisRepository) SaveCharacter(ctx context.Context, input *SaveCharacterInput) error {
	if input == nil || input.Character == nil {
		return errors.New("input and character cannot be nil")
	}

	character := input.Character

	if character.ID == "" {
		return errors.New("character ID cannot be empty")
	}

	characterJSON, err := json.Marshal(character)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.TxPipeline()

	characterKey := fmt.Sprintf("%s%s", characterKeyPrefix, character.ID)
	pipe.Set(ctx, characterKey, characterJSON, 0)

	// Index the character under its table
	if character.TableID != "" {
		tableCharactersKey := fmt.Sprintf("%s%s", tableCharactersKeyPrefix, character.TableID)
		pipe.SAdd(ctx, tableCharactersKey, character.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}

	return nil
}

// GetCharacter retrieves a character by ID from Redis
func (r *redisRepository) GetCharacter(ctx context.Context, input *GetCharacterInput) (*models.Character, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.New("input and character ID cannot be empty")
	}

	characterKey := fmt.Sprintf("%s%s", characterKeyPrefix, input.CharacterID)
	characterJSON, err := r.client.Get(ctx, characterKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var character models.Character
	if err := json.Unmarshal([]byte(characterJSON), &character); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}

	return &character, nil
}

// GetCharactersAtTable retrieves all characters at a table from Redis
func (r *redisRepository) GetCharactersAtTable(ctx context.Context, input *GetCharactersAtTableInput) (*GetCharactersAtTableOutput, error) {
	if input == nil || input.TableID == "" {
		return nil, errors.New("input and table ID cannot be empty")
	}

	tableCharactersKey := fmt.Sprintf("%s%s", tableCharactersKeyPrefix, input.TableID)
	characterIDs, err := r.client.SMembers(ctx, tableCharactersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get character IDs for table: %w", err)
	}

	if len(characterIDs) == 0 {
		return &GetCharactersAtTableOutput{
			Characters: map[string]*models.Character{},
		}, nil
	}

	// Fetch every character in one round trip
	pipe := r.client.Pipeline()
	characterCommands := make(map[string]*redis.StringCmd)

	for _, characterID := range characterIDs {
		characterKey := fmt.Sprintf("%s%s", characterKeyPrefix, characterID)
		characterCommands[characterID] = pipe.Get(ctx, characterKey)
	}

	// redis.Nil for a missing member is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get characters: %w", err)
	}

	characters := make(map[string]*models.Character, len(characterIDs))
	for characterID, cmd := range characterCommands {
		characterJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Character was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get character %s: %w", characterID, err)
		}

		var character models.Character
		if err := json.Unmarshal([]byte(characterJSON), &character); err != nil {
			return nil, fmt.Errorf("failed to unmarshal character %s: %w", characterID, err)
		}

		characters[characterID] = &character
	}

	return &GetCharactersAtTableOutput{
		Characters: characters,
	}, nil
}

// DeleteCharacter removes a character and its table index entry from Redis
func (r *redisRepository) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) error {
	if input == nil || input.CharacterID == "" {
		return errors.New("input and character ID cannot be empty")
	}

	character, err := r.GetCharacter(ctx, &GetCharacterInput{
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()

	characterKey := fmt.Sprintf("%s%s", characterKeyPrefix, character.ID)
	pipe.Del(ctx, characterKey)

	if character.TableID != "" {
		tableCharactersKey := fmt.Sprintf("%s%s", tableCharactersKeyPrefix, character.TableID)
		pipe.SRem(ctx, tableCharactersKey, character.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}
