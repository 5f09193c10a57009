package expression

import "fmt"

// Kind identifies which variant a Token holds
type Kind int

const (
	// KindNumber is an integer literal
	KindNumber Kind = iota

	// KindOperator is one of + - * /
	KindOperator

	// KindOpenGroup is a left parenthesis
	KindOpenGroup

	// KindCloseGroup is a right parenthesis
	KindCloseGroup

	// KindDiceRoll is an NdS roll
	KindDiceRoll
)

// Operator is a binary arithmetic operator symbol
type Operator byte

const (
	OpAdd      Operator = '+'
	OpSubtract Operator = '-'
	OpMultiply Operator = '*'
	OpDivide   Operator = '/'
)

// precedence returns how tightly the operator binds. Higher binds tighter.
func (o Operator) precedence() int {
	switch o {
	case OpMultiply, OpDivide:
		return 3
	case OpAdd, OpSubtract:
		return 2
	default:
		return 0
	}
}

// Token is a single lexical unit of a dice expression.
// Only the fields that belong to Kind are set, so tokens compare with ==.
type Token struct {
	Kind Kind

	// Value is set for KindNumber
	Value uint32

	// Op is set for KindOperator
	Op Operator

	// Count and Faces are set for KindDiceRoll
	Count uint32
	Faces uint32
}

// Number creates a literal token
func Number(value uint32) Token {
	return Token{Kind: KindNumber, Value: value}
}

// Op creates an operator token
func Op(op Operator) Token {
	return Token{Kind: KindOperator, Op: op}
}

// OpenGroup creates a left parenthesis token
func OpenGroup() Token {
	return Token{Kind: KindOpenGroup}
}

// CloseGroup creates a right parenthesis token
func CloseGroup() Token {
	return Token{Kind: KindCloseGroup}
}

// DiceRoll creates an NdS token
func DiceRoll(count, faces uint32) Token {
	return Token{Kind: KindDiceRoll, Count: count, Faces: faces}
}

func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return fmt.Sprintf("%d", t.Value)
	case KindOperator:
		return string(t.Op)
	case KindOpenGroup:
		return "("
	case KindCloseGroup:
		return ")"
	case KindDiceRoll:
		return fmt.Sprintf("%dd%d", t.Count, t.Faces)
	default:
		return fmt.Sprintf("Token(%d)", t.Kind)
	}
}
