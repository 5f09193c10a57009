package table_log

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/initiative/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	tableLogKeyPrefix = "table_log:"

	// DefaultMaxEntries is how many entries a log keeps when Config.MaxEntries is unset
	DefaultMaxEntries = 500
)

// Config holds configuration for the Redis table log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// MaxEntries is how many entries each table keeps; older ones are trimmed
	MaxEntries int
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	maxEntries int
}

// NewRedis creates a new Redis-backed table log repository
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

	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		maxEntries: maxEntries,
	}, nil
}

// AppendEntry pushes an entry onto the table's log and trims it to the configured size
func (r *redisRepository) AppendEntry(ctx context.Context, input *AppendEntryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	entry := input.Entry

	if entry.ID == "" {
		return errors.New("log entry ID cannot be empty")
	}

	if entry.TableID == "" {
		return errors.New("log entry table ID cannot be empty")
	}

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	pipe := r.client.TxPipeline()

	logKey := fmt.Sprintf("%s%s", tableLogKeyPrefix, entry.TableID)
	pipe.RPush(ctx, logKey, entryJSON)
	pipe.LTrim(ctx, logKey, int64(-r.maxEntries), -1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}

	return nil
}

// ListEntries retrieves the newest entries of a table's log, oldest first
func (r *redisRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	if input == nil || input.TableID == "" {
		return nil, errors.New("input and table ID cannot be empty")
	}

	start := int64(0)
	if input.Limit > 0 {
		start = int64(-input.Limit)
	}

	logKey := fmt.Sprintf("%s%s", tableLogKeyPrefix, input.TableID)
	entriesJSON, err := r.client.LRange(ctx, logKey, start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get log entries: %w", err)
	}

	entries := make([]*models.LogEntry, 0, len(entriesJSON))
	for _, entryJSON := range entriesJSON {
		var entry models.LogEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal log entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}

// ClearEntries deletes a table's log from Redis
func (r *redisRepository) ClearEntries(ctx context.Context, input *ClearEntriesInput) error {
	if input == nil || input.TableID == "" {
		return errors.New("input and table ID cannot be empty")
	}

	logKey := fmt.Sprintf("%s%s", tableLogKeyPrefix, input.TableID)
	if err := r.client.Del(ctx, logKey).Err(); err != nil {
		return fmt.Errorf("failed to clear log entries: %w", err)
	}

	return nil
}
