package cli

import (
	"github.com/KirkDiggler/initiative/internal/app"
	"github.com/KirkDiggler/initiative/internal/config"
	"github.com/KirkDiggler/initiative/internal/dice"
	"github.com/redis/go-redis/v9"
)

// RedisConnector connects to the Redis server named in cfg
func RedisConnector(cfg *config.Config) Connector {
	return func(opts *RootOptions) (*app.Services, func(), error) {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		services, err := app.New(&app.Config{
			RedisClient:   client,
			DiceRoller:    dice.New(&dice.Config{Seed: opts.Seed}),
			MaxLogEntries: cfg.Table.MaxLogEntries,
			MessagingSeed: opts.Seed,
		})
		if err != nil {
			client.Close()
			return nil, nil, err
		}

		return services, func() { client.Close() }, nil
	}
}
