package app

import (
	"context"
	"testing"

	"github.com/KirkDiggler/initiative/internal/dice"
	"github.com/KirkDiggler/initiative/internal/models"
	"github.com/KirkDiggler/initiative/internal/services/roller"
	"github.com/KirkDiggler/initiative/internal/services/table"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type AppTestSuite struct {
	suite.Suite
	mr       *miniredis.Miniredis
	client   *redis.Client
	services *Services
	ctx      context.Context
}

func (s *AppTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	services, err := New(&Config{
		RedisClient:   s.client,
		DiceRoller:    dice.NewSequenceRoller(3, 4),
		MaxLogEntries: 100,
		MessagingSeed: 1,
	})
	s.Require().NoError(err)
	s.services = services
	s.ctx = context.Background()
}

func (s *AppTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *AppTestSuite) TestEncounter() {
	created, err := s.services.Table.CreateTable(s.ctx, &table.CreateTableInput{ChannelID: "channel-1"})
	s.Require().NoError(err)
	tableID := created.Table.ID

	_, err = s.services.Table.SeedTable(s.ctx, &table.SeedTableInput{
		TableID: tableID,
		Characters: []table.SeedCharacter{
			{Name: "Aria", HP: "24/24"},
			{Name: "Goblin", HP: "7"},
		},
	})
	s.Require().NoError(err)

	next, err := s.services.Table.NextTurn(s.ctx, &table.NextTurnInput{TableID: tableID})
	s.Require().NoError(err)
	s.Equal("Goblin", next.Character.Name)

	rolled, err := s.services.Roller.Roll(s.ctx, &roller.RollInput{
		TableID:    tableID,
		Expression: "2d6 + 1",
		RolledBy:   "Goblin",
	})
	s.Require().NoError(err)
	s.Equal(uint32(8), rolled.Roll.Total)

	_, err = s.services.Table.SetNote(s.ctx, &table.SetNoteInput{TableID: tableID, Note: "prone"})
	s.Require().NoError(err)

	wrapped, err := s.services.Table.NextTurn(s.ctx, &table.NextTurnInput{TableID: tableID})
	s.Require().NoError(err)
	s.True(wrapped.NewRound)
	s.Equal(2, wrapped.Table.Round)

	roster, err := s.services.Table.GetRoster(s.ctx, &table.GetRosterInput{TableID: tableID})
	s.Require().NoError(err)
	s.Require().Len(roster.Characters, 2)
	s.Equal(0, roster.CurrentIndex)
	s.Equal("prone", roster.Characters[1].Notes)

	logged, err := s.services.Table.GetLog(s.ctx, &table.GetLogInput{TableID: tableID})
	s.Require().NoError(err)

	messages := make([]string, 0, len(logged.Entries))
	for _, entry := range logged.Entries {
		messages = append(messages, entry.Message)
	}
	s.Equal([]string{
		"Turn: Goblin",
		"Rolling: 2d6 + 1 -> 8",
		"Note: Goblin: prone",
		"Turn: Aria",
	}, messages)
	s.Equal(models.LogEntryKindRoll, logged.Entries[1].Kind)
	s.Equal([]uint32{3, 4}, logged.Entries[1].Roll.Dice[0].Values)
}

func (s *AppTestSuite) TestTableSurvivesReconnect() {
	created, err := s.services.Table.CreateTable(s.ctx, &table.CreateTableInput{ChannelID: "channel-1"})
	s.Require().NoError(err)

	_, err = s.services.Table.AddCharacter(s.ctx, &table.AddCharacterInput{TableID: created.Table.ID, Name: "Aria"})
	s.Require().NoError(err)

	reconnected, err := New(&Config{RedisClient: s.client, MaxLogEntries: 100})
	s.Require().NoError(err)

	found, err := reconnected.Table.GetTableByChannel(s.ctx, &table.GetTableByChannelInput{ChannelID: "channel-1"})
	s.Require().NoError(err)
	s.Equal(created.Table.ID, found.Table.ID)
	s.Len(found.Table.CharacterIDs, 1)
}
