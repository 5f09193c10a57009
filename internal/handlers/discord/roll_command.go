package discord

import (
	"context"
	"errors"
	"log"

	"github.com/KirkDiggler/initiative/internal/services/messaging"
	"github.com/KirkDiggler/initiative/internal/services/roller"
	"github.com/KirkDiggler/initiative/internal/services/table"
	"github.com/bwmarrin/discordgo"
)

// RollCommand handles the /roll command
type RollCommand struct {
	BaseCommand
	tableService     table.Service
	rollerService    roller.Service
	messagingService messaging.Service
}

// NewRollCommand creates a new roll command handler
func NewRollCommand(tableService table.Service, rollerService roller.Service, messagingService messaging.Service) *RollCommand {
	return &RollCommand{
		BaseCommand: BaseCommand{
			Name:        "roll",
			Description: "Roll a dice expression such as 2d6 + 3",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "expression",
					Description: "Dice and arithmetic, e.g. 1d20 + 5 or (2d6 + 1) * 2",
					Required:    true,
				},
			},
		},
		tableService:     tableService,
		rollerService:    rollerService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the roll command
func (c *RollCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	expression := stringOption(optionMap(data.Options), "expression")

	response, err := c.roll(context.Background(), i.ChannelID, interactionUserName(i), expression)
	if err != nil {
		return err
	}

	return s.InteractionRespond(i.Interaction, response)
}

// roll evaluates an expression, recording it at the channel's table if there is one
func (c *RollCommand) roll(ctx context.Context, channelID, rolledBy, expression string) (*discordgo.InteractionResponse, error) {
	var tableID string
	existing, err := c.tableService.GetTableByChannel(ctx, &table.GetTableByChannelInput{
		ChannelID: channelID,
	})
	switch {
	case err == nil:
		tableID = existing.Table.ID
	case !errors.Is(err, table.ErrTableNotFound):
		// Roll anyway; only the log entry is lost
		log.Printf("Error looking up table for channel %s: %v", channelID, err)
	}

	output, rollErr := c.rollerService.Roll(ctx, &roller.RollInput{
		TableID:    tableID,
		Expression: expression,
		RolledBy:   rolledBy,
	})
	if rollErr != nil {
		if !errors.Is(rollErr, roller.ErrInvalidExpression) && !errors.Is(rollErr, roller.ErrEmptyExpression) {
			return nil, rollErr
		}

		invalid, err := c.messagingService.GetInvalidRollMessage(ctx, &messaging.GetInvalidRollMessageInput{
			Expression: expression,
			Err:        rollErr,
		})
		if err != nil {
			return nil, err
		}

		return messageResponse(&discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{renderInvalidRoll(invalid)},
		}), nil
	}

	result, err := c.messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		Roll: output.Roll,
	})
	if err != nil {
		return nil, err
	}

	return messageResponse(&discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{renderRoll(result)},
		Components: rerollButtons(output.Roll.Expression),
	}), nil
}
