package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/initiative/internal/services/messaging"
	"github.com/KirkDiggler/initiative/internal/services/roller"
	"github.com/KirkDiggler/initiative/internal/services/table"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session           *discordgo.Session
	commands          map[string]CommandHandler
	commandIDs        map[string]string // Maps command name to command ID
	rollCommand       *RollCommand
	initiativeCommand *InitiativeCommand
	config            *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Services
	TableService     table.Service
	RollerService    roller.Service
	MessagingService messaging.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.TableService == nil {
		return nil, errors.New("table service cannot be nil")
	}

	if cfg.RollerService == nil {
		return nil, errors.New("roller service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:           session,
		commands:          make(map[string]CommandHandler),
		commandIDs:        make(map[string]string),
		rollCommand:       NewRollCommand(cfg.TableService, cfg.RollerService, cfg.MessagingService),
		initiativeCommand: NewInitiativeCommand(cfg.TableService, cfg.MessagingService),
		config:            cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range []CommandHandler{b.rollCommand, b.initiativeCommand} {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), b.config.GuildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons
		response, err := b.componentResponse(context.Background(), i)
		if err != nil {
			log.Printf("Error handling component interaction: %v", err)
			return
		}
		if err := s.InteractionRespond(i.Interaction, response); err != nil {
			log.Printf("Error responding to component interaction: %v", err)
		}
	}
}

// componentResponse routes a button click by its custom ID
func (b *Bot) componentResponse(ctx context.Context, i *discordgo.InteractionCreate) (*discordgo.InteractionResponse, error) {
	customID := i.MessageComponentData().CustomID

	switch {
	case customID == ButtonNextTurn:
		return b.initiativeCommand.handleTurnButton(ctx, i.ChannelID, true)
	case customID == ButtonPreviousTurn:
		return b.initiativeCommand.handleTurnButton(ctx, i.ChannelID, false)
	case strings.HasPrefix(customID, ButtonRerollPrefix):
		expression := strings.TrimPrefix(customID, ButtonRerollPrefix)
		return b.rollCommand.roll(ctx, i.ChannelID, interactionUserName(i), expression)
	default:
		return ephemeralResponse(fmt.Sprintf("Unknown button: %s", customID)), nil
	}
}
