package table

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
	tableKeyPrefix   = "table:"
	channelKeyPrefix = "channel:"
)

// ErrTableNotFound is returned when a table is not found
var ErrTableNotFound = errors.New("table not found")

// Config holds configuration for the Redis table repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed table repository
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

// SaveTable persists a table to Redis
func (r *redisRepository) SaveTable(ctx context.Context, input *SaveTableInput) error {
	if input == nil || input.Table == nil {
		return errors.New("input and table cannot be nil")
	}

	if input.Table.ID == "" {
		return errors.New("table ID cannot be empty")
	}

	tableJSON, err := json.Marshal(input.Table)
	if err != nil {
		return fmt.Errorf("failed to marshal table: %w", err)
	}

	pipe := r.client.TxPipeline()

	tableKey := fmt.Sprintf("%s%s", tableKeyPrefix, input.Table.ID)
	pipe.Set(ctx, tableKey, tableJSON, 0)

	// Keep the channel-to-table mapping current
	if input.Table.ChannelID != "" {
		channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, input.Table.ChannelID)
		pipe.Set(ctx, channelKey, input.Table.ID, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save table: %w", err)
	}

	return nil
}

// GetTable retrieves a table by ID from Redis
func (r *redisRepository) GetTable(ctx context.Context, input *GetTableInput) (*models.Table, error) {
	if input == nil || input.TableID == "" {
		return nil, errors.New("input and table ID cannot be empty")
	}

	tableKey := fmt.Sprintf("%s%s", tableKeyPrefix, input.TableID)
	tableJSON, err := r.client.Get(ctx, tableKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}

	var table models.Table
	if err := json.Unmarshal([]byte(tableJSON), &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal table: %w", err)
	}

	return &table, nil
}

// GetTableByChannel retrieves a table by channel ID from Redis
func (r *redisRepository) GetTableByChannel(ctx context.Context, input *GetTableByChannelInput) (*models.Table, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, input.ChannelID)
	tableID, err := r.client.Get(ctx, channelKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to get table ID for channel: %w", err)
	}

	return r.GetTable(ctx, &GetTableInput{
		TableID: tableID,
	})
}

// DeleteTable removes a table and its channel mapping from Redis
func (r *redisRepository) DeleteTable(ctx context.Context, input *DeleteTableInput) error {
	if input == nil || input.TableID == "" {
		return errors.New("input and table ID cannot be empty")
	}

	table, err := r.GetTable(ctx, &GetTableInput{
		TableID: input.TableID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()

	tableKey := fmt.Sprintf("%s%s", tableKeyPrefix, input.TableID)
	pipe.Del(ctx, tableKey)

	if table.ChannelID != "" {
		channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, table.ChannelID)
		pipe.Del(ctx, channelKey)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}

	return nil
}
