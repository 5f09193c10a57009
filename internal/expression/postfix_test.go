package expression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPostfix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "simple add",
			input: "1 + 2",
			want:  []Token{Number(1), Number(2), Op(OpAdd)},
		},
		{
			name:  "multiplication binds tighter",
			input: "1 + 2 * 3",
			want:  []Token{Number(1), Number(2), Number(3), Op(OpMultiply), Op(OpAdd)},
		},
		{
			name:  "parentheses",
			input: "(1 + 2) * 3",
			want:  []Token{Number(1), Number(2), Op(OpAdd), Number(3), Op(OpMultiply)},
		},
		{
			name:  "subtraction is left associative",
			input: "8 - 3 - 2",
			want:  []Token{Number(8), Number(3), Op(OpSubtract), Number(2), Op(OpSubtract)},
		},
		{
			name:  "division is left associative",
			input: "16 / 4 / 2",
			want:  []Token{Number(16), Number(4), Op(OpDivide), Number(2), Op(OpDivide)},
		},
		{
			name:  "mixed same level",
			input: "6 / 2 * 3",
			want:  []Token{Number(6), Number(2), Op(OpDivide), Number(3), Op(OpMultiply)},
		},
		{
			name:  "dice are operands",
			input: "2d6 + 1d4 - 3 * (2 + 1)",
			want: []Token{
				DiceRoll(2, 6), DiceRoll(1, 4), Op(OpAdd),
				Number(3), Number(2), Number(1), Op(OpAdd), Op(OpMultiply),
				Op(OpSubtract),
			},
		},
		{
			name:  "nested groups",
			input: "((1))",
			want:  []Token{Number(1)},
		},
		{
			name:  "empty",
			input: "",
			want:  []Token{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)

			got, err := ToPostfix(tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToPostfix_IsPure(t *testing.T) {
	tokens, err := Tokenize("2d6 + 3 * (4 - 1) / 2")
	require.NoError(t, err)

	first, err := ToPostfix(tokens)
	require.NoError(t, err)
	second, err := ToPostfix(tokens)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestToPostfix_UnbalancedParentheses(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
	}{
		{
			name:   "unmatched close",
			tokens: []Token{Number(1), Op(OpAdd), Number(2), CloseGroup()},
		},
		{
			name:   "close before open",
			tokens: []Token{CloseGroup(), OpenGroup()},
		},
		{
			name:   "unmatched open",
			tokens: []Token{OpenGroup(), Number(1), Op(OpAdd), Number(2)},
		},
		{
			name:   "extra close after group",
			tokens: []Token{OpenGroup(), Number(1), CloseGroup(), CloseGroup()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToPostfix(tt.tokens)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrUnbalancedParentheses)
			assert.Equal(t, ClassStructural, ClassOf(err))
		})
	}
}
