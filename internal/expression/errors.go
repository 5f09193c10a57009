package expression

import (
	"errors"
	"fmt"
)

// ExpressionError is a sentinel error for a malformed or unevaluable expression
type ExpressionError string

// Error implements the error interface
func (e ExpressionError) Error() string {
	return string(e)
}

// Lex faults
const (
	ErrUnrecognizedCharacter ExpressionError = "unrecognized character"
	ErrMissingFaces          ExpressionError = "dice roll is missing its face count"
	ErrNumberOutOfRange      ExpressionError = "number is too large"
)

// Structural faults
const (
	ErrUnbalancedParentheses ExpressionError = "unbalanced parentheses"
)

// Evaluation faults
const (
	ErrStackUnderflow     ExpressionError = "operator is missing an operand"
	ErrDivideByZero       ExpressionError = "division by zero"
	ErrUnconsumedOperands ExpressionError = "operands left without an operator"
	ErrEmptyResult        ExpressionError = "expression has no value"
	ErrOverflow           ExpressionError = "result is too large"
	ErrNegativeResult     ExpressionError = "result would be negative"
	ErrZeroFaces          ExpressionError = "dice must have at least one face"
	ErrTooManyDice        ExpressionError = "too many dice in one roll"
	ErrUnexpectedToken    ExpressionError = "unexpected token in postfix sequence"
)

// Class groups faults by the pipeline stage that raised them
type Class string

const (
	ClassLex        Class = "lex"
	ClassStructural Class = "structural"
	ClassEvaluation Class = "evaluation"
)

// Fault is returned by every stage of the pipeline when the input cannot produce a value
type Fault struct {
	Class Class

	// Err is one of the ExpressionError constants
	Err error

	// Position is the byte offset in the input for lex faults, the token
	// index for structural and evaluation faults
	Position int
}

// Error implements the error interface
func (f *Fault) Error() string {
	return fmt.Sprintf("%s fault at %d: %v", f.Class, f.Position, f.Err)
}

// Unwrap returns the sentinel error
func (f *Fault) Unwrap() error {
	return f.Err
}

// ClassOf reports the fault class of err, or "" if err is not a Fault
func ClassOf(err error) Class {
	var fault *Fault
	if errors.As(err, &fault) {
		return fault.Class
	}
	return ""
}

func lexFault(err error, pos int) *Fault {
	return &Fault{Class: ClassLex, Err: err, Position: pos}
}

func structuralFault(err error, pos int) *Fault {
	return &Fault{Class: ClassStructural, Err: err, Position: pos}
}

func evaluationFault(err error, pos int) *Fault {
	return &Fault{Class: ClassEvaluation, Err: err, Position: pos}
}
