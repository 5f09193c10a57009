package table

import "github.com/KirkDiggler/initiative/internal/models"

type SaveTableInput struct {
	Table *models.Table
}

type GetTableInput struct {
	TableID string
}

type GetTableByChannelInput struct {
	ChannelID string
}

type DeleteTableInput struct {
	TableID string
}
