package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/initiative/internal/services/messaging"
	"github.com/KirkDiggler/initiative/internal/services/table"
	"github.com/bwmarrin/discordgo"
)

// defaultLogLimit is how many log entries /initiative log shows without a limit option
const defaultLogLimit = 10

// InitiativeCommand handles the /initiative command
type InitiativeCommand struct {
	BaseCommand
	tableService     table.Service
	messagingService messaging.Service
}

// NewInitiativeCommand creates a new initiative command handler
func NewInitiativeCommand(tableService table.Service, messagingService messaging.Service) *InitiativeCommand {
	nameOption := func(description string, required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "name",
			Description: description,
			Required:    required,
		}
	}

	return &InitiativeCommand{
		BaseCommand: BaseCommand{
			Name:        "initiative",
			Description: "Track turn order for an encounter",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a table in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Add a character to the bottom of the order",
					Options: []*discordgo.ApplicationCommandOption{
						nameOption("Character name", true),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "hp",
							Description: "Hit points, e.g. 24/24",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "notes",
							Description: "Conditions or reminders",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Remove a character from the order",
					Options: []*discordgo.ApplicationCommandOption{
						nameOption("Character name", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "next",
					Description: "Pass the turn to the next character",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "prev",
					Description: "Hand the turn back to the previous character",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show the turn order",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "note",
					Description: "Set a character's notes",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "text",
							Description: "The note; omit to clear",
						},
						nameOption("Character name; defaults to whoever's turn it is", false),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "log",
					Description: "Show recent rolls, turns and notes",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "limit",
							Description: "How many entries to show",
						},
					},
				},
			},
		},
		tableService:     tableService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the initiative command
func (c *InitiativeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	response, err := c.buildResponse(context.Background(), i.ChannelID, data)
	if err != nil {
		return err
	}

	return s.InteractionRespond(i.Interaction, response)
}

// buildResponse runs a subcommand. Table errors become ephemeral replies;
// only unexpected failures are returned.
func (c *InitiativeCommand) buildResponse(ctx context.Context, channelID string, data discordgo.ApplicationCommandInteractionData) (*discordgo.InteractionResponse, error) {
	if len(data.Options) == 0 {
		return nil, errors.New("missing subcommand")
	}

	subcommand := data.Options[0]
	options := optionMap(subcommand.Options)

	var response *discordgo.InteractionResponse
	var err error
	switch subcommand.Name {
	case "start":
		response, err = c.handleStart(ctx, channelID)
	case "add":
		response, err = c.handleAdd(ctx, channelID, &table.AddCharacterInput{
			Name:  stringOption(options, "name"),
			HP:    stringOption(options, "hp"),
			Notes: stringOption(options, "notes"),
		})
	case "remove":
		response, err = c.handleRemove(ctx, channelID, stringOption(options, "name"))
	case "next", "prev":
		var turnData *discordgo.InteractionResponseData
		turnData, err = c.turn(ctx, channelID, subcommand.Name == "next")
		if err == nil {
			response = messageResponse(turnData)
		}
	case "show":
		response, err = c.handleShow(ctx, channelID)
	case "note":
		response, err = c.handleNote(ctx, channelID, stringOption(options, "name"), stringOption(options, "text"))
	case "log":
		limit := defaultLogLimit
		if option, ok := options["limit"]; ok && option.IntValue() > 0 {
			limit = int(option.IntValue())
		}
		response, err = c.handleLog(ctx, channelID, limit)
	default:
		return nil, fmt.Errorf("unknown subcommand: %s", subcommand.Name)
	}

	if err != nil {
		return c.errorResponse(ctx, err)
	}
	return response, nil
}

func (c *InitiativeCommand) handleStart(ctx context.Context, channelID string) (*discordgo.InteractionResponse, error) {
	created, err := c.tableService.CreateTable(ctx, &table.CreateTableInput{
		ChannelID: channelID,
	})
	if err != nil {
		return nil, err
	}

	return c.rosterResponse(ctx, created.Table.ID, "A new table is ready. Add characters with `/initiative add`.")
}

func (c *InitiativeCommand) handleAdd(ctx context.Context, channelID string, input *table.AddCharacterInput) (*discordgo.InteractionResponse, error) {
	tableID, err := c.tableID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	input.TableID = tableID
	added, err := c.tableService.AddCharacter(ctx, input)
	if err != nil {
		return nil, err
	}

	return c.rosterResponse(ctx, tableID, fmt.Sprintf("Added %s", added.Character.Name))
}

func (c *InitiativeCommand) handleRemove(ctx context.Context, channelID, name string) (*discordgo.InteractionResponse, error) {
	tableID, err := c.tableID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	removed, err := c.tableService.RemoveCharacter(ctx, &table.RemoveCharacterInput{
		TableID: tableID,
		Name:    name,
	})
	if err != nil {
		return nil, err
	}

	return c.rosterResponse(ctx, tableID, fmt.Sprintf("Removed %s", removed.Character.Name))
}

func (c *InitiativeCommand) handleShow(ctx context.Context, channelID string) (*discordgo.InteractionResponse, error) {
	tableID, err := c.tableID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	return c.rosterResponse(ctx, tableID, "")
}

func (c *InitiativeCommand) handleNote(ctx context.Context, channelID, name, text string) (*discordgo.InteractionResponse, error) {
	tableID, err := c.tableID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	noted, err := c.tableService.SetNote(ctx, &table.SetNoteInput{
		TableID: tableID,
		Name:    name,
		Note:    text,
	})
	if err != nil {
		return nil, err
	}

	message, err := c.messagingService.GetNoteMessage(ctx, &messaging.GetNoteMessageInput{
		Character: noted.Character,
	})
	if err != nil {
		return nil, err
	}

	return c.rosterResponse(ctx, tableID, message.Message)
}

func (c *InitiativeCommand) handleLog(ctx context.Context, channelID string, limit int) (*discordgo.InteractionResponse, error) {
	tableID, err := c.tableID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	output, err := c.tableService.GetLog(ctx, &table.GetLogInput{
		TableID: tableID,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}

	return messageResponse(&discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{renderLog(output.Entries)},
	}), nil
}

// turn moves the turn forward or back and renders the announcement above the roster
func (c *InitiativeCommand) turn(ctx context.Context, channelID string, forward bool) (*discordgo.InteractionResponseData, error) {
	tableID, err := c.tableID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	input := &messaging.GetTurnMessageInput{}
	if forward {
		output, err := c.tableService.NextTurn(ctx, &table.NextTurnInput{TableID: tableID})
		if err != nil {
			return nil, err
		}
		input.Character = output.Character
		input.Round = output.Table.Round
		input.NewRound = output.NewRound
	} else {
		output, err := c.tableService.PreviousTurn(ctx, &table.PreviousTurnInput{TableID: tableID})
		if err != nil {
			return nil, err
		}
		input.Character = output.Character
		input.Round = output.Table.Round
	}

	message, err := c.messagingService.GetTurnMessage(ctx, input)
	if err != nil {
		return nil, err
	}

	roster, err := c.tableService.GetRoster(ctx, &table.GetRosterInput{TableID: tableID})
	if err != nil {
		return nil, err
	}

	return rosterData(message.Message, roster), nil
}

// handleTurnButton answers a Next or Previous click by updating the roster message in place
func (c *InitiativeCommand) handleTurnButton(ctx context.Context, channelID string, forward bool) (*discordgo.InteractionResponse, error) {
	data, err := c.turn(ctx, channelID, forward)
	if err != nil {
		return c.errorResponse(ctx, err)
	}
	return updateResponse(data), nil
}

func (c *InitiativeCommand) tableID(ctx context.Context, channelID string) (string, error) {
	output, err := c.tableService.GetTableByChannel(ctx, &table.GetTableByChannelInput{
		ChannelID: channelID,
	})
	if err != nil {
		return "", err
	}
	return output.Table.ID, nil
}

func (c *InitiativeCommand) rosterResponse(ctx context.Context, tableID, content string) (*discordgo.InteractionResponse, error) {
	roster, err := c.tableService.GetRoster(ctx, &table.GetRosterInput{
		TableID: tableID,
	})
	if err != nil {
		return nil, err
	}

	return messageResponse(rosterData(content, roster)), nil
}

// errorResponse explains a failed subcommand to the user who ran it
func (c *InitiativeCommand) errorResponse(ctx context.Context, err error) (*discordgo.InteractionResponse, error) {
	var tableErr table.TableError
	if !errors.As(err, &tableErr) {
		log.Printf("Error handling initiative command: %v", err)
	}

	message, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Err: err,
	})
	if msgErr != nil {
		return nil, msgErr
	}

	return ephemeralResponse(message.Message), nil
}
