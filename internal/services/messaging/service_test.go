package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/initiative/internal/expression"
	"github.com/KirkDiggler/initiative/internal/models"
	"github.com/KirkDiggler/initiative/internal/services/roller"
	"github.com/KirkDiggler/initiative/internal/services/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	svc, err := NewService(&Config{Seed: 42})
	require.NoError(t, err)
	return svc
}

func TestGetRollResultMessage(t *testing.T) {
	svc := newTestService(t)

	output, err := svc.GetRollResultMessage(context.Background(), &GetRollResultMessageInput{
		Roll: &models.Roll{
			Expression: "2d6 + 3",
			Total:      10,
			Dice:       []models.DiceGroup{{Count: 2, Faces: 6, Values: []uint32{2, 5}, Total: 7}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Rolling: 2d6 + 3 -> 10", output.Title)
	assert.Equal(t, "2d6 [2, 5] = 7", output.Detail)
	assert.Empty(t, output.Message)
}

func TestGetRollResultMessageNaturals(t *testing.T) {
	svc := newTestService(t)

	crit, err := svc.GetRollResultMessage(context.Background(), &GetRollResultMessageInput{
		Roll: &models.Roll{
			Expression: "1d20 + 5",
			Total:      25,
			RolledBy:   "Aria",
			Dice:       []models.DiceGroup{{Count: 1, Faces: 20, Values: []uint32{20}, Total: 20}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Aria rolled 25", crit.Title)
	assert.NotEmpty(t, crit.Message)

	fumble, err := svc.GetRollResultMessage(context.Background(), &GetRollResultMessageInput{
		Roll: &models.Roll{
			Expression: "1d20",
			Total:      1,
			Dice:       []models.DiceGroup{{Count: 1, Faces: 20, Values: []uint32{1}, Total: 1}},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, fumble.Message)
	assert.NotEqual(t, crit.Message, fumble.Message)
}

func TestGetInvalidRollMessage(t *testing.T) {
	svc := newTestService(t)

	_, faultErr := expression.Tokenize("2x6")
	require.Error(t, faultErr)

	testCases := []struct {
		name     string
		err      error
		contains string
	}{
		{"expression fault", fmt.Errorf("%w: %w", roller.ErrInvalidExpression, faultErr), "unrecognized character"},
		{"empty", roller.ErrEmptyExpression, "nothing to roll"},
		{"unknown", errors.New("boom"), "not something I can roll"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := svc.GetInvalidRollMessage(context.Background(), &GetInvalidRollMessageInput{
				Expression: "2x6",
				Err:        tc.err,
			})

			require.NoError(t, err)
			assert.Equal(t, "meh", output.Title)
			assert.Contains(t, output.Message, tc.contains)
		})
	}
}

func TestGetTurnMessage(t *testing.T) {
	svc := newTestService(t)
	aria := &models.Character{Name: "Aria"}

	output, err := svc.GetTurnMessage(context.Background(), &GetTurnMessageInput{Character: aria, Round: 1})
	require.NoError(t, err)
	assert.Contains(t, output.Message, "Turn: Aria")
	assert.NotContains(t, output.Message, "Round")

	output, err = svc.GetTurnMessage(context.Background(), &GetTurnMessageInput{Character: aria, Round: 3, NewRound: true})
	require.NoError(t, err)
	assert.Contains(t, output.Message, "Round 3! Turn: Aria")
}

func TestGetNoteMessage(t *testing.T) {
	svc := newTestService(t)

	output, err := svc.GetNoteMessage(context.Background(), &GetNoteMessageInput{
		Character: &models.Character{Name: "Goblin", Notes: "prone"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Note: Goblin: prone", output.Message)

	output, err = svc.GetNoteMessage(context.Background(), &GetNoteMessageInput{
		Character: &models.Character{Name: "Goblin"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Cleared notes for Goblin", output.Message)
}

func TestGetErrorMessage(t *testing.T) {
	svc := newTestService(t)

	output, err := svc.GetErrorMessage(context.Background(), &GetErrorMessageInput{
		Err: fmt.Errorf("wrapped: %w", table.ErrTableNotFound),
	})
	require.NoError(t, err)
	assert.Contains(t, output.Message, "/initiative start")

	output, err = svc.GetErrorMessage(context.Background(), &GetErrorMessageInput{
		Err: table.ErrEmptyRoster,
	})
	require.NoError(t, err)
	assert.Contains(t, output.Message, "Nobody is at the table")
}

func TestFormatDice(t *testing.T) {
	assert.Equal(t, "", FormatDice(nil))
	assert.Equal(t, "2d6 [2, 5] = 7 | 1d20 [13] = 13", FormatDice([]models.DiceGroup{
		{Count: 2, Faces: 6, Values: []uint32{2, 5}, Total: 7},
		{Count: 1, Faces: 20, Values: []uint32{13}, Total: 13},
	}))
}
