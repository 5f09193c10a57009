// Package expression parses and evaluates dice arithmetic such as
// "2d6 + 1d4 - 3 * (2 + 1)".
//
// Evaluation runs in three stages: Tokenize, ToPostfix and EvaluatePostfix.
// Every stage reports malformed input as a *Fault; nothing panics.
package expression

import (
	"errors"

	"github.com/KirkDiggler/initiative/internal/dice"
)

// ErrNilRoller is returned by New when no roller is configured
var ErrNilRoller = errors.New("dice roller cannot be nil")

// Config holds the dependencies of an Evaluator
type Config struct {
	Roller dice.Roller
}

// Result is a successful evaluation
type Result struct {
	Input string
	Total uint32

	// Dice holds each NdS term in evaluation order
	Dice []DiceGroup
}

// Evaluator evaluates expressions against one roller
type Evaluator struct {
	roller dice.Roller
}

// New creates an Evaluator
func New(cfg *Config) (*Evaluator, error) {
	if cfg == nil || cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	return &Evaluator{
		roller: cfg.Roller,
	}, nil
}

// Evaluate runs the full pipeline on input
func (e *Evaluator) Evaluate(input string) (*Result, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	postfix, err := ToPostfix(tokens)
	if err != nil {
		return nil, err
	}

	total, groups, err := evaluate(postfix, e.roller, true)
	if err != nil {
		return nil, err
	}

	return &Result{
		Input: input,
		Total: total,
		Dice:  groups,
	}, nil
}

// Eval returns the value of input, or false if it is not a valid expression
func (e *Evaluator) Eval(input string) (uint32, bool) {
	result, err := e.Evaluate(input)
	if err != nil {
		return 0, false
	}
	return result.Total, true
}

// Eval evaluates input with a new RandomRoller seeded by dice.RandomSeed
func Eval(input string) (uint32, bool) {
	evaluator := &Evaluator{roller: dice.New(nil)}
	return evaluator.Eval(input)
}
