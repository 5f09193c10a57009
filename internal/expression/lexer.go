package expression

import (
	"errors"
	"strconv"
)

// Tokenize splits input into tokens in one left-to-right pass.
// Only the space character is skipped; anything that is not an operator,
// a parenthesis or the start of a digit run rejects the whole input.
func Tokenize(input string) ([]Token, error) {
	tokens := make([]Token, 0, len(input)/2+1)

	pos := 0
	for pos < len(input) {
		switch c := input[pos]; c {
		case ' ':
			pos++
		case '(':
			tokens = append(tokens, OpenGroup())
			pos++
		case ')':
			tokens = append(tokens, CloseGroup())
			pos++
		case '+', '-', '*', '/':
			tokens = append(tokens, Op(Operator(c)))
			pos++
		default:
			token, next, err := scanNumberOrRoll(input, pos)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)
			pos = next
		}
	}

	return tokens, nil
}

// scanNumberOrRoll reads a digit run starting at pos, and a face count after
// it when the run is followed by 'd'. It returns the offset after the token.
func scanNumberOrRoll(input string, pos int) (Token, int, error) {
	count, next, err := scanDigits(input, pos)
	if err != nil {
		return Token{}, 0, err
	}

	if next < len(input) && input[next] == 'd' {
		faces, end, err := scanDigits(input, next+1)
		if err != nil {
			if errors.Is(err, ErrUnrecognizedCharacter) {
				return Token{}, 0, lexFault(ErrMissingFaces, next+1)
			}
			return Token{}, 0, err
		}
		// d0 is kept here; the evaluator decides what a zero-faced die means
		return DiceRoll(count, faces), end, nil
	}

	return Number(count), next, nil
}

// scanDigits consumes the longest run of ASCII digits at pos
func scanDigits(input string, pos int) (uint32, int, error) {
	end := pos
	for end < len(input) && isDigit(input[end]) {
		end++
	}

	if end == pos {
		return 0, 0, lexFault(ErrUnrecognizedCharacter, pos)
	}

	n, err := strconv.ParseUint(input[pos:end], 10, 32)
	if err != nil {
		return 0, 0, lexFault(ErrNumberOutOfRange, pos)
	}

	return uint32(n), end, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
