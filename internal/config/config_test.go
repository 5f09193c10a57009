package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// missingEnvFile points Load at a file that does not exist so a developer's .env cannot leak in
func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, int64(0), cfg.Dice.Seed)
	assert.Equal(t, 500, cfg.Table.MaxLogEntries)
	assert.Equal(t, "default", cfg.Table.Name)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("DICE_SEED", "1234")
	t.Setenv("LOG_MAX_ENTRIES", "50")
	t.Setenv("INITIATIVE_TABLE", "crypt")
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "redis:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, int64(1234), cfg.Dice.Seed)
	assert.Equal(t, 50, cfg.Table.MaxLogEntries)
	assert.Equal(t, "crypt", cfg.Table.Name)
	assert.Equal(t, "token", cfg.Discord.Token)
}

func TestLoadFromDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("INITIATIVE_TABLE=tavern\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("INITIATIVE_TABLE") })

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tavern", cfg.Table.Name)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	_, err := Load(missingEnvFile(t))
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveLogSize(t *testing.T) {
	t.Setenv("LOG_MAX_ENTRIES", "0")
	_, err := Load(missingEnvFile(t))
	assert.Error(t, err)
}

func TestValidateDiscord(t *testing.T) {
	cfg := &Config{}
	assert.EqualError(t, cfg.ValidateDiscord(), "DISCORD_TOKEN is required")

	cfg.Discord.Token = "token"
	assert.EqualError(t, cfg.ValidateDiscord(), "DISCORD_APP_ID is required")

	cfg.Discord.AppID = "app"
	assert.NoError(t, cfg.ValidateDiscord())
}
