package discord

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/initiative/internal/models"
	"github.com/KirkDiggler/initiative/internal/services/messaging"
	"github.com/KirkDiggler/initiative/internal/services/table"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorRoster = 0x5865f2
	colorRoll   = 0x00ff00
	colorMeh    = 0x808080
	colorLog    = 0xffa500
)

// Discord's limits on embed text, in characters
const (
	maxEmbedTitle       = 256
	maxEmbedDescription = 4096
	maxEmbedFieldValue  = 1024
)

// Button IDs
const (
	ButtonNextTurn     = "next_turn"
	ButtonPreviousTurn = "previous_turn"

	// ButtonRerollPrefix is followed by the expression to roll again
	ButtonRerollPrefix = "reroll:"
)

// maxCustomID is Discord's limit on a component custom ID
const maxCustomID = 100

// renderRoster renders the turn order as a code block so the padding lines up
func renderRoster(roster *table.GetRosterOutput) *discordgo.MessageEmbed {
	description := "Nobody is at the table yet. Add someone with `/initiative add`."
	if len(roster.Characters) > 0 {
		lines := messaging.FormatRoster(roster.Characters, roster.CurrentIndex)
		description = codeBlock(lines)
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Initiative, round %d", roster.Table.Round),
		Description: description,
		Color:       colorRoster,
	}
}

// turnButtons renders the Previous and Next controls under a roster
func turnButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Previous",
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonPreviousTurn,
					Emoji: &discordgo.ComponentEmoji{
						Name: "⬆️",
					},
				},
				discordgo.Button{
					Label:    "Next",
					Style:    discordgo.PrimaryButton,
					CustomID: ButtonNextTurn,
					Emoji: &discordgo.ComponentEmoji{
						Name: "⬇️",
					},
				},
			},
		},
	}
}

// rosterData renders a roster message with an optional line of text above it
func rosterData(content string, roster *table.GetRosterOutput) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content:    content,
		Embeds:     []*discordgo.MessageEmbed{renderRoster(roster)},
		Components: turnButtons(),
	}
}

// renderRoll renders a successful roll
func renderRoll(output *messaging.GetRollResultMessageOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       truncate(output.Title, maxEmbedTitle),
		Description: truncate(output.Message, maxEmbedDescription),
		Color:       colorRoll,
	}

	if output.Detail != "" {
		embed.Fields = []*discordgo.MessageEmbedField{
			{
				Name:  "Dice",
				Value: truncate(output.Detail, maxEmbedFieldValue),
			},
		}
	}

	return embed
}

// rerollButtons offers to roll the same expression again, when it fits in a custom ID
func rerollButtons(expression string) []discordgo.MessageComponent {
	customID := ButtonRerollPrefix + expression
	if len(customID) > maxCustomID {
		return nil
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Roll Again",
					Style:    discordgo.PrimaryButton,
					CustomID: customID,
					Emoji: &discordgo.ComponentEmoji{
						Name: "🎲",
					},
				},
			},
		},
	}
}

// renderInvalidRoll renders an expression that could not be rolled
func renderInvalidRoll(output *messaging.GetInvalidRollMessageOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       truncate(output.Title, maxEmbedTitle),
		Description: truncate(output.Message, maxEmbedDescription),
		Color:       colorMeh,
	}
}

// renderLog renders the newest log entries, dropping the oldest ones that do not fit
func renderLog(entries []*models.LogEntry) *discordgo.MessageEmbed {
	description := "Nothing has happened at this table yet."
	if len(entries) > 0 {
		lines := messaging.FormatLog(entries, nil)
		for len(lines) > 1 && len(codeBlock(lines)) > maxEmbedDescription {
			lines = lines[1:]
		}
		description = codeBlock(lines)
	}

	return &discordgo.MessageEmbed{
		Title:       "Table log",
		Description: description,
		Color:       colorLog,
	}
}

func codeBlock(lines []string) string {
	return "```\n" + strings.Join(lines, "\n") + "\n```"
}

// truncate cuts s to at most limit characters, ending in an ellipsis when cut
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}
