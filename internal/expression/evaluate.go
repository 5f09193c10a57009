package expression

import (
	"math"

	"github.com/KirkDiggler/initiative/internal/dice"
)

// MaxDiceCount is the most dice a single NdS term may roll
const MaxDiceCount = 1000

// DiceGroup is the outcome of one NdS term
type DiceGroup struct {
	Count  uint32
	Faces  uint32
	Values []uint32
	Total  uint32
}

// EvaluatePostfix computes the value of a postfix sequence, rolling dice
// with roller. Arithmetic never wraps: results outside uint32 are faults.
func EvaluatePostfix(tokens []Token, roller dice.Roller) (uint32, error) {
	total, _, err := evaluate(tokens, roller, false)
	return total, err
}

func evaluate(tokens []Token, roller dice.Roller, record bool) (uint32, []DiceGroup, error) {
	stack := make([]uint32, 0, len(tokens))
	var groups []DiceGroup

	for i, token := range tokens {
		switch token.Kind {
		case KindNumber:
			stack = append(stack, token.Value)

		case KindDiceRoll:
			group, err := rollGroup(token, roller, record)
			if err != nil {
				return 0, nil, evaluationFault(err, i)
			}
			if record {
				groups = append(groups, group)
			}
			stack = append(stack, group.Total)

		case KindOperator:
			if len(stack) < 2 {
				return 0, nil, evaluationFault(ErrStackUnderflow, i)
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			result, err := apply(token.Op, a, b)
			if err != nil {
				return 0, nil, evaluationFault(err, i)
			}
			stack = append(stack, result)

		default:
			return 0, nil, evaluationFault(ErrUnexpectedToken, i)
		}
	}

	switch len(stack) {
	case 0:
		return 0, nil, evaluationFault(ErrEmptyResult, len(tokens))
	case 1:
		return stack[0], groups, nil
	default:
		return 0, nil, evaluationFault(ErrUnconsumedOperands, len(tokens))
	}
}

func rollGroup(token Token, roller dice.Roller, record bool) (DiceGroup, error) {
	group := DiceGroup{Count: token.Count, Faces: token.Faces}
	// rejected even for 0d0, where nothing would be rolled
	if token.Faces == 0 {
		return group, ErrZeroFaces
	}
	if token.Count > MaxDiceCount {
		return group, ErrTooManyDice
	}

	var sum uint64
	for n := uint32(0); n < token.Count; n++ {
		v := roller.Roll(token.Faces)
		sum += uint64(v)
		if sum > math.MaxUint32 {
			return group, ErrOverflow
		}
		if record {
			group.Values = append(group.Values, v)
		}
	}

	group.Total = uint32(sum)
	return group, nil
}

func apply(op Operator, a, b uint32) (uint32, error) {
	switch op {
	case OpAdd:
		if a > math.MaxUint32-b {
			return 0, ErrOverflow
		}
		return a + b, nil
	case OpSubtract:
		if b > a {
			return 0, ErrNegativeResult
		}
		return a - b, nil
	case OpMultiply:
		product := uint64(a) * uint64(b)
		if product > math.MaxUint32 {
			return 0, ErrOverflow
		}
		return uint32(product), nil
	case OpDivide:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	default:
		return 0, ErrUnexpectedToken
	}
}
