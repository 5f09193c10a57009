package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Dice    DiceConfig
	Table   TableConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// DiceConfig holds dice roller configuration
type DiceConfig struct {
	// Seed makes every roll reproducible; 0 picks a random seed
	Seed int64 `env:"DICE_SEED" envDefault:"0"`
}

// TableConfig holds initiative table configuration
type TableConfig struct {
	// MaxLogEntries is how many log lines each table keeps
	MaxLogEntries int `env:"LOG_MAX_ENTRIES" envDefault:"500"`

	// Name is the table the CLI works on when --table is not given
	Name string `env:"INITIATIVE_TABLE" envDefault:"default"`
}

// Load reads a .env file if there is one, then parses the environment
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	} else {
		log.Println("Loaded .env file")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Table.MaxLogEntries <= 0 {
		return nil, fmt.Errorf("LOG_MAX_ENTRIES must be positive, got %d", cfg.Table.MaxLogEntries)
	}

	return &cfg, nil
}

// ValidateDiscord checks the settings the Discord bot cannot start without
func (c *Config) ValidateDiscord() error {
	if c.Discord.Token == "" {
		return errors.New("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return errors.New("DISCORD_APP_ID is required")
	}
	return nil
}
