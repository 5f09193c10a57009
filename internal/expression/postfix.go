package expression

// ToPostfix reorders infix tokens into postfix order with the shunting-yard
// algorithm. Grouping markers never reach the output; a ')' without a
// matching '(' or a '(' left open at the end is a structural fault.
func ToPostfix(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	stack := make([]Token, 0, len(tokens)/2)

	for i, token := range tokens {
		switch token.Kind {
		case KindNumber, KindDiceRoll:
			output = append(output, token)

		case KindOperator:
			// >= keeps same-precedence chains left-associative: 8-3-2 is 8 3 - 2 -
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != KindOperator || top.Op.precedence() < token.Op.precedence() {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, token)

		case KindOpenGroup:
			stack = append(stack, token)

		case KindCloseGroup:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == KindOpenGroup {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, structuralFault(ErrUnbalancedParentheses, i)
			}

		default:
			return nil, structuralFault(ErrUnexpectedToken, i)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == KindOpenGroup {
			return nil, structuralFault(ErrUnbalancedParentheses, len(tokens))
		}
		output = append(output, top)
	}

	return output, nil
}
