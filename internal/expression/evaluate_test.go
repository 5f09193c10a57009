package expression

import (
	"testing"

	"github.com/KirkDiggler/initiative/internal/dice"
	"github.com/KirkDiggler/initiative/internal/dice/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEvaluatePostfix(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   uint32
	}{
		{
			name:   "single number",
			tokens: []Token{Number(5)},
			want:   5,
		},
		{
			name:   "b is the right hand operand",
			tokens: []Token{Number(8), Number(3), Op(OpSubtract)},
			want:   5,
		},
		{
			name:   "division truncates",
			tokens: []Token{Number(7), Number(2), Op(OpDivide)},
			want:   3,
		},
		{
			name:   "zero dice sum to zero",
			tokens: []Token{DiceRoll(0, 6), Number(4), Op(OpAdd)},
			want:   4,
		},
		{
			name:   "dice count at the cap",
			tokens: []Token{DiceRoll(MaxDiceCount, 1)},
			want:   MaxDiceCount,
		},
		{
			name:   "max roller dice",
			tokens: []Token{DiceRoll(3, 8)},
			want:   24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluatePostfix(tt.tokens, dice.MaxRoller{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluatePostfix_Faults(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []Token
		wantErr error
	}{
		{
			name:    "operator without operands",
			tokens:  []Token{Op(OpAdd)},
			wantErr: ErrStackUnderflow,
		},
		{
			name:    "operator with one operand",
			tokens:  []Token{Number(1), Op(OpMultiply)},
			wantErr: ErrStackUnderflow,
		},
		{
			name:    "divide by zero",
			tokens:  []Token{Number(1), Number(0), Op(OpDivide)},
			wantErr: ErrDivideByZero,
		},
		{
			name:    "nothing to evaluate",
			tokens:  []Token{},
			wantErr: ErrEmptyResult,
		},
		{
			name:    "two values left",
			tokens:  []Token{Number(1), Number(2)},
			wantErr: ErrUnconsumedOperands,
		},
		{
			name:    "subtraction below zero",
			tokens:  []Token{Number(2), Number(3), Op(OpSubtract)},
			wantErr: ErrNegativeResult,
		},
		{
			name:    "addition overflow",
			tokens:  []Token{Number(4294967295), Number(1), Op(OpAdd)},
			wantErr: ErrOverflow,
		},
		{
			name:    "multiplication overflow",
			tokens:  []Token{Number(65536), Number(65536), Op(OpMultiply)},
			wantErr: ErrOverflow,
		},
		{
			name:    "dice sum overflow",
			tokens:  []Token{DiceRoll(2, 4294967295)},
			wantErr: ErrOverflow,
		},
		{
			name:    "zero faced die",
			tokens:  []Token{DiceRoll(1, 0)},
			wantErr: ErrZeroFaces,
		},
		{
			name:    "zero faced die with no rolls",
			tokens:  []Token{DiceRoll(0, 0)},
			wantErr: ErrZeroFaces,
		},
		{
			name:    "one die over the cap",
			tokens:  []Token{DiceRoll(MaxDiceCount+1, 6)},
			wantErr: ErrTooManyDice,
		},
		{
			name:    "huge count of one-faced dice",
			tokens:  []Token{DiceRoll(4294967295, 1)},
			wantErr: ErrTooManyDice,
		},
		{
			name:    "group marker in postfix",
			tokens:  []Token{Number(1), OpenGroup()},
			wantErr: ErrUnexpectedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluatePostfix(tt.tokens, dice.MaxRoller{})
			require.Error(t, err)
			assert.Zero(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, ClassEvaluation, ClassOf(err))
		})
	}
}

func TestEvaluatePostfix_RollsEachDie(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mocks.NewMockRoller(ctrl)

	gomock.InOrder(
		roller.EXPECT().Roll(uint32(6)).Return(uint32(2)),
		roller.EXPECT().Roll(uint32(6)).Return(uint32(5)),
		roller.EXPECT().Roll(uint32(4)).Return(uint32(3)),
	)

	got, err := EvaluatePostfix([]Token{DiceRoll(2, 6), DiceRoll(1, 4), Op(OpAdd)}, roller)
	require.NoError(t, err)
	assert.Equal(t, uint32(10), got)
}

func TestEvaluatePostfix_ZeroFacesNeverReachesRoller(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mocks.NewMockRoller(ctrl)

	_, err := EvaluatePostfix([]Token{DiceRoll(3, 0)}, roller)
	assert.ErrorIs(t, err, ErrZeroFaces)
}

func TestEvaluatePostfix_TooManyDiceNeverReachesRoller(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mocks.NewMockRoller(ctrl)

	_, err := EvaluatePostfix([]Token{DiceRoll(100000000, 1)}, roller)
	assert.ErrorIs(t, err, ErrTooManyDice)
}
