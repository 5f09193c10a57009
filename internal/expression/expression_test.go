package expression

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/initiative/internal/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvaluator(t *testing.T, roller dice.Roller) *Evaluator {
	t.Helper()
	e, err := New(&Config{Roller: roller})
	require.NoError(t, err)
	return e
}

func TestNew_NilRoller(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilRoller)

	_, err = New(&Config{})
	assert.ErrorIs(t, err, ErrNilRoller)
}

func TestEvaluator_Eval(t *testing.T) {
	tests := []struct {
		name   string
		roller dice.Roller
		input  string
		want   uint32
	}{
		{name: "left associative", roller: dice.MaxRoller{}, input: "8 - 3 - 2", want: 3},
		{name: "precedence", roller: dice.MaxRoller{}, input: "1 + 2 * 3", want: 7},
		{name: "parentheses", roller: dice.MaxRoller{}, input: "(1 + 2) * 3", want: 9},
		{name: "single die", roller: dice.MaxRoller{}, input: "1d6", want: 6},
		{name: "multiple dice", roller: dice.MaxRoller{}, input: "2d6", want: 12},
		{name: "different dice", roller: dice.MaxRoller{}, input: "1d4 + 1d6", want: 10},
		{name: "addition", roller: dice.MaxRoller{}, input: "1d6 + 2", want: 8},
		{name: "subtraction", roller: dice.MaxRoller{}, input: "1d6 - 2", want: 4},
		{name: "minimum dice", roller: dice.MinRoller{}, input: "3d6", want: 3},
		{name: "full example", roller: dice.MaxRoller{}, input: "2d6 + 1d4 - 3 * (2 + 1)", want: 7},
		{name: "truncating division", roller: dice.MaxRoller{}, input: "1d20 / 3", want: 6},
		{name: "zero dice", roller: dice.MinRoller{}, input: "0d6 + 1", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := newEvaluator(t, tt.roller).Eval(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluator_EvalRejects(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   error
		wantClass Class
	}{
		{name: "unrecognized character", input: "x22", wantErr: ErrUnrecognizedCharacter, wantClass: ClassLex},
		{name: "missing faces", input: "3d + 1", wantErr: ErrMissingFaces, wantClass: ClassLex},
		{name: "unmatched close", input: "1 + 2)", wantErr: ErrUnbalancedParentheses, wantClass: ClassStructural},
		{name: "unmatched open", input: "(1 + 2", wantErr: ErrUnbalancedParentheses, wantClass: ClassStructural},
		{name: "dangling operator", input: "1 +", wantErr: ErrStackUnderflow, wantClass: ClassEvaluation},
		{name: "unary minus", input: "-1", wantErr: ErrStackUnderflow, wantClass: ClassEvaluation},
		{name: "divide by zero", input: "4 / (2 - 2)", wantErr: ErrDivideByZero, wantClass: ClassEvaluation},
		{name: "juxtaposed numbers", input: "1 2", wantErr: ErrUnconsumedOperands, wantClass: ClassEvaluation},
		{name: "empty input", input: "", wantErr: ErrEmptyResult, wantClass: ClassEvaluation},
		{name: "empty group", input: "()", wantErr: ErrEmptyResult, wantClass: ClassEvaluation},
		{name: "negative result", input: "1d6 - 7", wantErr: ErrNegativeResult, wantClass: ClassEvaluation},
		{name: "zero faced die", input: "1d0", wantErr: ErrZeroFaces, wantClass: ClassEvaluation},
		{name: "too many dice", input: "4294967295d1", wantErr: ErrTooManyDice, wantClass: ClassEvaluation},
		{name: "too many dice inside a group", input: "2 * (1001d6 + 1)", wantErr: ErrTooManyDice, wantClass: ClassEvaluation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEvaluator(t, dice.MaxRoller{})

			got, ok := e.Eval(tt.input)
			assert.False(t, ok)
			assert.Zero(t, got)

			result, err := e.Evaluate(tt.input)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantClass, ClassOf(err))
		})
	}
}

func TestEvaluator_WhitespaceInsensitive(t *testing.T) {
	e := newEvaluator(t, dice.MaxRoller{})

	compact, ok := e.Eval("1+2")
	require.True(t, ok)
	spaced, ok := e.Eval(" 1 +   2 ")
	require.True(t, ok)

	assert.Equal(t, compact, spaced)
}

func TestEvaluator_MatchesIntegerArithmetic(t *testing.T) {
	e := newEvaluator(t, dice.MinRoller{})

	for a := uint32(0); a <= 12; a++ {
		for b := uint32(1); b <= 6; b++ {
			for c := uint32(0); c <= 5; c++ {
				cases := map[string]uint32{
					fmt.Sprintf("%d + %d * %d", a, b, c):     a + b*c,
					fmt.Sprintf("(%d + %d) * %d", a, b, c):   (a + b) * c,
					fmt.Sprintf("%d * %d / %d", a, c, b):     a * c / b,
					fmt.Sprintf("%d / %d + %d", a, b, c):     a/b + c,
					fmt.Sprintf("%d + %d - %d", a, b+c, c):   a + b,
					fmt.Sprintf("(%d + %d) / %d", a, c, b):   (a + c) / b,
					fmt.Sprintf("%d * (%d + %d)", a, b, c):   a * (b + c),
					fmt.Sprintf("%d+%d*%d-%d", b, a, c, c*a): b + a*c - c*a,
				}

				for input, want := range cases {
					got, ok := e.Eval(input)
					require.True(t, ok, input)
					assert.Equal(t, want, got, input)
				}
			}
		}
	}
}

func TestEvaluator_EvaluateRecordsDice(t *testing.T) {
	e := newEvaluator(t, dice.NewSequenceRoller(2, 5, 3))

	result, err := e.Evaluate("2d6 + 1d4 + 1")
	require.NoError(t, err)

	assert.Equal(t, "2d6 + 1d4 + 1", result.Input)
	assert.Equal(t, uint32(11), result.Total)
	require.Len(t, result.Dice, 2)
	assert.Equal(t, DiceGroup{Count: 2, Faces: 6, Values: []uint32{2, 5}, Total: 7}, result.Dice[0])
	assert.Equal(t, DiceGroup{Count: 1, Faces: 4, Values: []uint32{3}, Total: 3}, result.Dice[1])
}

func TestEval_ProductionRoller(t *testing.T) {
	seen := make(map[uint32]bool)
	for i := 0; i < 5000 && len(seen) < 6; i++ {
		got, ok := Eval("1d6")
		require.True(t, ok)
		require.GreaterOrEqual(t, got, uint32(1))
		require.LessOrEqual(t, got, uint32(6))
		seen[got] = true
	}

	assert.Len(t, seen, 6)
}

func TestEval_BackToBackCallsDiffer(t *testing.T) {
	seen := make(map[uint32]bool)
	for i := 0; i < 10; i++ {
		got, ok := Eval("1d1000000000")
		require.True(t, ok)
		seen[got] = true
	}

	assert.Greater(t, len(seen), 1)
}

func TestEval_TooManyDice(t *testing.T) {
	got, ok := Eval("100000000d1")
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestEval_Rejects(t *testing.T) {
	got, ok := Eval("x22")
	assert.False(t, ok)
	assert.Zero(t, got)
}
