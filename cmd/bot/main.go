package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/initiative/internal/app"
	"github.com/KirkDiggler/initiative/internal/config"
	"github.com/KirkDiggler/initiative/internal/dice"
	"github.com/KirkDiggler/initiative/internal/handlers/discord"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.ValidateDiscord(); err != nil {
		log.Fatalf("Invalid Discord configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	services, err := app.New(&app.Config{
		RedisClient:   redisClient,
		DiceRoller:    dice.New(&dice.Config{Seed: cfg.Dice.Seed}),
		MaxLogEntries: cfg.Table.MaxLogEntries,
		MessagingSeed: cfg.Dice.Seed,
	})
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.Discord.Token,
		ApplicationID:    cfg.Discord.AppID,
		GuildID:          cfg.Discord.GuildID,
		TableService:     services.Table,
		RollerService:    services.Roller,
		MessagingService: services.Messaging,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
