package table

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/initiative/internal/common/clock"
	"github.com/KirkDiggler/initiative/internal/common/uuid"
	"github.com/KirkDiggler/initiative/internal/models"
	characterRepo "github.com/KirkDiggler/initiative/internal/repositories/character"
	tableRepo "github.com/KirkDiggler/initiative/internal/repositories/table"
	tableLogRepo "github.com/KirkDiggler/initiative/internal/repositories/table_log"
	"golang.org/x/sync/errgroup"
)

// service implements the Service interface
type service struct {
	tableRepo     tableRepo.Repository
	characterRepo characterRepo.Repository
	tableLogRepo  tableLogRepo.Repository
	clock         clock.Clock
	uuid          uuid.UUID
}

// New creates a new table service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TableRepo == nil {
		return nil, ErrNilTableRepo
	}

	if cfg.CharacterRepo == nil {
		return nil, ErrNilCharacterRepo
	}

	if cfg.TableLogRepo == nil {
		return nil, ErrNilTableLogRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		tableRepo:     cfg.TableRepo,
		characterRepo: cfg.CharacterRepo,
		tableLogRepo:  cfg.TableLogRepo,
		clock:         cfg.Clock,
		uuid:          cfg.UUIDGenerator,
	}, nil
}

// CreateTable starts a new table in a channel
func (s *service) CreateTable(ctx context.Context, input *CreateTableInput) (*CreateTableOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.ChannelID == "" {
		return nil, ErrMissingChannelID
	}

	// Only one table per channel
	_, err := s.tableRepo.GetTableByChannel(ctx, &tableRepo.GetTableByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err == nil {
		return nil, ErrTableAlreadyExists
	}
	if !errors.Is(err, tableRepo.ErrTableNotFound) {
		return nil, fmt.Errorf("failed to look up table: %w", err)
	}

	now := s.clock.Now()
	table := &models.Table{
		ID:           s.uuid.NewUUID(),
		ChannelID:    input.ChannelID,
		CharacterIDs: []string{},
		Round:        1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.tableRepo.SaveTable(ctx, &tableRepo.SaveTableInput{
		Table: table,
	}); err != nil {
		return nil, fmt.Errorf("failed to save table: %w", err)
	}

	log.Printf("Created table %s in channel %s", table.ID, table.ChannelID)

	return &CreateTableOutput{
		Table: table,
	}, nil
}

// GetTableByChannel finds the table bound to a channel
func (s *service) GetTableByChannel(ctx context.Context, input *GetTableByChannelInput) (*GetTableByChannelOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.ChannelID == "" {
		return nil, ErrMissingChannelID
	}

	table, err := s.tableRepo.GetTableByChannel(ctx, &tableRepo.GetTableByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}

	return &GetTableByChannelOutput{
		Table: table,
	}, nil
}

// AddCharacter appends a character to the bottom of the turn order
func (s *service) AddCharacter(ctx context.Context, input *AddCharacterInput) (*AddCharacterOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidCharacterName
	}

	table, err := s.getTable(ctx, input.TableID)
	if err != nil {
		return nil, err
	}

	roster, err := s.loadRoster(ctx, table)
	if err != nil {
		return nil, err
	}

	if findByName(roster, name) != nil {
		return nil, ErrCharacterExists
	}

	character := s.newCharacter(table.ID, name, input.HP, input.Notes)
	if err := s.characterRepo.SaveCharacter(ctx, &characterRepo.SaveCharacterInput{
		Character: character,
	}); err != nil {
		return nil, fmt.Errorf("failed to save character: %w", err)
	}

	table.CharacterIDs = append(table.CharacterIDs, character.ID)
	if err := s.saveTable(ctx, table); err != nil {
		return nil, err
	}

	return &AddCharacterOutput{
		Character: character,
	}, nil
}

// RemoveCharacter takes a character out of the turn order
func (s *service) RemoveCharacter(ctx context.Context, input *RemoveCharacterInput) (*RemoveCharacterOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	table, err := s.getTable(ctx, input.TableID)
	if err != nil {
		return nil, err
	}

	roster, err := s.loadRoster(ctx, table)
	if err != nil {
		return nil, err
	}

	character := findByName(roster, input.Name)
	if character == nil {
		return nil, ErrCharacterNotFound
	}

	table.RemoveCharacter(character.ID)
	if err := s.saveTable(ctx, table); err != nil {
		return nil, err
	}

	if err := s.characterRepo.DeleteCharacter(ctx, &characterRepo.DeleteCharacterInput{
		CharacterID: character.ID,
	}); err != nil {
		// The table no longer references it, so a leftover record is harmless
		log.Printf("Failed to delete character %s: %v", character.ID, err)
	}

	return &RemoveCharacterOutput{
		Character: character,
	}, nil
}

// SeedTable replaces the whole roster and restarts the encounter at round 1
func (s *service) SeedTable(ctx context.Context, input *SeedTableInput) (*SeedTableOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	seen := make(map[string]bool, len(input.Characters))
	for _, seed := range input.Characters {
		name := strings.ToLower(strings.TrimSpace(seed.Name))
		if name == "" {
			return nil, ErrInvalidCharacterName
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %s", ErrCharacterExists, seed.Name)
		}
		seen[name] = true
	}

	table, err := s.getTable(ctx, input.TableID)
	if err != nil {
		return nil, err
	}

	characters := make([]*models.Character, 0, len(input.Characters))
	characterIDs := make([]string, 0, len(input.Characters))
	for _, seed := range input.Characters {
		character := s.newCharacter(table.ID, strings.TrimSpace(seed.Name), seed.HP, seed.Notes)
		if err := s.characterRepo.SaveCharacter(ctx, &characterRepo.SaveCharacterInput{
			Character: character,
		}); err != nil {
			s.discardCharacters(ctx, characterIDs)
			return nil, fmt.Errorf("failed to save character: %w", err)
		}
		characters = append(characters, character)
		characterIDs = append(characterIDs, character.ID)
	}

	oldIDs, oldIndex, oldRound := table.CharacterIDs, table.TurnIndex, table.Round
	table.CharacterIDs = characterIDs
	table.TurnIndex = 0
	table.Round = 1
	if err := s.saveTable(ctx, table); err != nil {
		table.CharacterIDs, table.TurnIndex, table.Round = oldIDs, oldIndex, oldRound
		s.discardCharacters(ctx, characterIDs)
		return nil, err
	}

	// The table no longer references the old roster, so a failed delete only leaves a stray record
	if err := s.deleteCharacters(ctx, oldIDs); err != nil {
		log.Printf("Failed to clear old roster of table %s: %v", table.ID, err)
	}

	log.Printf("Seeded table %s with %d characters", table.ID, len(characters))

	return &SeedTableOutput{
		Characters: characters,
	}, nil
}

// NextTurn passes the turn down the order, wrapping to the top for a new round
func (s *service) NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	table, err := s.getTable(ctx, input.TableID)
	if err != nil {
		return nil, err
	}

	if len(table.CharacterIDs) == 0 {
		return nil, ErrEmptyRoster
	}

	round := table.Round
	table.Advance()

	character, err := s.changeTurn(ctx, table)
	if err != nil {
		return nil, err
	}

	return &NextTurnOutput{
		Table:     table,
		Character: character,
		NewRound:  table.Round > round,
	}, nil
}

// PreviousTurn hands the turn back up the order
func (s *service) PreviousTurn(ctx context.Context, input *PreviousTurnInput) (*PreviousTurnOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	table, err := s.getTable(ctx, input.TableID)
	if err != nil {
		return nil, err
	}

	if len(table.CharacterIDs) == 0 {
		return nil, ErrEmptyRoster
	}

	table.Rewind()

	character, err := s.changeTurn(ctx, table)
	if err != nil {
		return nil, err
	}

	return &PreviousTurnOutput{
		Table:     table,
		Character: character,
	}, nil
}

// SetNote replaces a character's notes
func (s *service) SetNote(ctx context.Context, input *SetNoteInput) (*SetNoteOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	table, err := s.getTable(ctx, input.TableID)
	if err != nil {
		return nil, err
	}

	roster, err := s.loadRoster(ctx, table)
	if err != nil {
		return nil, err
	}

	var character *models.Character
	if strings.TrimSpace(input.Name) == "" {
		if len(roster) == 0 {
			return nil, ErrEmptyRoster
		}
		character = findByID(roster, table.CurrentCharacterID())
	} else {
		character = findByName(roster, input.Name)
	}
	if character == nil {
		return nil, ErrCharacterNotFound
	}

	character.Notes = strings.TrimSpace(input.Note)
	if err := s.characterRepo.SaveCharacter(ctx, &characterRepo.SaveCharacterInput{
		Character: character,
	}); err != nil {
		return nil, fmt.Errorf("failed to save character: %w", err)
	}

	s.appendLog(ctx, table.ID, models.LogEntryKindNote, fmt.Sprintf("Note: %s: %s", character.Name, character.Notes))

	return &SetNoteOutput{
		Character: character,
	}, nil
}

// GetRoster returns the characters in turn order
func (s *service) GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	table, err := s.getTable(ctx, input.TableID)
	if err != nil {
		return nil, err
	}

	roster, err := s.loadRoster(ctx, table)
	if err != nil {
		return nil, err
	}

	currentIndex := -1
	currentID := table.CurrentCharacterID()
	for i, character := range roster {
		if character.ID == currentID {
			currentIndex = i
			break
		}
	}

	return &GetRosterOutput{
		Table:        table,
		Characters:   roster,
		CurrentIndex: currentIndex,
	}, nil
}

// GetLog returns the newest entries of the table's log
func (s *service) GetLog(ctx context.Context, input *GetLogInput) (*GetLogOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.TableID == "" {
		return nil, ErrMissingTableID
	}

	output, err := s.tableLogRepo.ListEntries(ctx, &tableLogRepo.ListEntriesInput{
		TableID: input.TableID,
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get log: %w", err)
	}

	return &GetLogOutput{
		Entries: output.Entries,
	}, nil
}

// changeTurn saves a table whose turn just moved and logs who is up
func (s *service) changeTurn(ctx context.Context, table *models.Table) (*models.Character, error) {
	character, err := s.characterRepo.GetCharacter(ctx, &characterRepo.GetCharacterInput{
		CharacterID: table.CurrentCharacterID(),
	})
	if err != nil {
		if errors.Is(err, characterRepo.ErrCharacterNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	if err := s.saveTable(ctx, table); err != nil {
		return nil, err
	}

	s.appendLog(ctx, table.ID, models.LogEntryKindTurn, fmt.Sprintf("Turn: %s", character.Name))

	return character, nil
}

func (s *service) getTable(ctx context.Context, tableID string) (*models.Table, error) {
	if tableID == "" {
		return nil, ErrMissingTableID
	}

	table, err := s.tableRepo.GetTable(ctx, &tableRepo.GetTableInput{
		TableID: tableID,
	})
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}

	return table, nil
}

func (s *service) saveTable(ctx context.Context, table *models.Table) error {
	table.UpdatedAt = s.clock.Now()
	if err := s.tableRepo.SaveTable(ctx, &tableRepo.SaveTableInput{
		Table: table,
	}); err != nil {
		return fmt.Errorf("failed to save table: %w", err)
	}
	return nil
}

// loadRoster returns the table's characters in turn order
func (s *service) loadRoster(ctx context.Context, table *models.Table) ([]*models.Character, error) {
	output, err := s.characterRepo.GetCharactersAtTable(ctx, &characterRepo.GetCharactersAtTableInput{
		TableID: table.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get characters: %w", err)
	}

	roster := make([]*models.Character, 0, len(table.CharacterIDs))
	for _, id := range table.CharacterIDs {
		if character, ok := output.Characters[id]; ok {
			roster = append(roster, character)
		}
	}

	return roster, nil
}

func (s *service) newCharacter(tableID, name, hp, notes string) *models.Character {
	return &models.Character{
		ID:        s.uuid.NewUUID(),
		TableID:   tableID,
		Name:      name,
		HP:        strings.TrimSpace(hp),
		Notes:     strings.TrimSpace(notes),
		CreatedAt: s.clock.Now(),
	}
}

// appendLog records a line in the table's log. Failures are logged, not returned:
// the state change they describe has already been saved.
func (s *service) appendLog(ctx context.Context, tableID string, kind models.LogEntryKind, message string) {
	err := s.tableLogRepo.AppendEntry(ctx, &tableLogRepo.AppendEntryInput{
		Entry: &models.LogEntry{
			ID:        s.uuid.NewUUID(),
			TableID:   tableID,
			Kind:      kind,
			Message:   message,
			CreatedAt: s.clock.Now(),
		},
	})
	if err != nil {
		log.Printf("Failed to append log entry to table %s: %v", tableID, err)
	}
}

func findByName(roster []*models.Character, name string) *models.Character {
	name = strings.TrimSpace(name)
	for _, character := range roster {
		if strings.EqualFold(character.Name, name) {
			return character
		}
	}
	return nil
}

func findByID(roster []*models.Character, id string) *models.Character {
	for _, character := range roster {
		if character.ID == id {
			return character
		}
	}
	return nil
}

// deleteCharacters removes character records concurrently
func (s *service) deleteCharacters(ctx context.Context, ids []string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			err := s.characterRepo.DeleteCharacter(ctx, &characterRepo.DeleteCharacterInput{
				CharacterID: id,
			})
			if err != nil && !errors.Is(err, characterRepo.ErrCharacterNotFound) {
				return fmt.Errorf("failed to delete character %s: %w", id, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// discardCharacters removes characters saved for a seed that did not complete
func (s *service) discardCharacters(ctx context.Context, ids []string) {
	if err := s.deleteCharacters(ctx, ids); err != nil {
		log.Printf("Failed to discard partial roster: %v", err)
	}
}
