package docscan

import "github.com/emmetio/py-emmet/internal/charscan"

// SplitCSSValue splits a CSS property value into space/operator-delimited
// token ranges, treating parenthesized expressions as a single unit.
func SplitCSSValue(value string, offset int) [][2]int {
	start := -1
	expression := 0
	s := charscan.New(value)
	var result [][2]int

	for !s.Eof() {
		pos := s.Pos
		if s.EatPred(charscan.IsSpace) || s.EatPred(isCSSValueOperator) || isMinusOperator(s) {
			if expression == 0 && start != -1 {
				result = append(result, [2]int{offset + start, offset + pos})
				start = -1
			}
			s.EatWhile(charscan.IsSpace)
		} else {
			if start == -1 {
				start = s.Pos
			}
			if s.Eat('(') {
				expression++
			} else if s.Eat(')') {
				expression--
			} else if !cssLiteral(s) {
				s.Pos++
			}
		}
	}

	if start != -1 && start != s.Pos {
		result = append(result, [2]int{offset + start, offset + s.Pos})
	}

	return result
}

// NB: no minus operator here, it's handled separately since CSS allows
// dashes inside keyword names like `no-repeat`.
func isCSSValueOperator(ch byte) bool {
	switch ch {
	case '+', '/', '*', ',':
		return true
	}
	return false
}

func isMinusOperator(s *charscan.Scanner) bool {
	start := s.Pos
	if s.Eat('-') && s.EatPred(charscan.IsSpace) {
		return true
	}
	s.Pos = start
	return false
}
