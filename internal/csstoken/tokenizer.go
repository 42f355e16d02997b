package csstoken

import (
	"strconv"

	"github.com/emmetio/py-emmet/internal/charscan"
)

var operatorMap = map[byte]OperatorKind{
	'+': OpSibling,
	'!': OpImportant,
	',': OpArgumentDelimiter,
	'-': OpValueDelimiter,
	':': OpPropertyDelimiter,
}

// Tokenize splits a stylesheet abbreviation into tokens. isValue disables
// the "short" literal notation used when scanning top-level keywords
// (property/section names) versus already-inside-a-value text.
func Tokenize(source string, isValue bool) ([]Token, error) {
	s := charscan.New(source)
	brackets := 0
	var result []Token

	for !s.Eof() {
		token, err := nextToken(s, brackets == 0 && !isValue)
		if err != nil {
			return nil, err
		}
		if token == nil {
			return nil, s.Error("Unexpected character")
		}

		if br, ok := token.(Bracket); ok {
			if brackets == 0 && br.Open {
				result = mergeTokens(s, result)
			}
			if br.Open {
				brackets++
			} else {
				brackets--
			}
			if brackets < 0 {
				return nil, s.ErrorAt("Unexpected bracket", br.Start)
			}
		}

		result = append(result, token)

		if shouldConsumeDashAfter(token) {
			if op := operator(s); op != nil {
				result = append(result, op)
			}
		}
	}

	return result, nil
}

func nextToken(s *charscan.Scanner, short bool) (Token, error) {
	if t, err := field(s); err != nil {
		return nil, err
	} else if t != nil {
		return *t, nil
	}
	if t, err := numberValue(s); err != nil {
		return nil, err
	} else if t != nil {
		return *t, nil
	}
	if t, err := colorValue(s); err != nil {
		return nil, err
	} else if t != nil {
		return t, nil
	}
	if t := stringValue(s); t != nil {
		return *t, nil
	}
	if t := bracket(s); t != nil {
		return *t, nil
	}
	if t := operator(s); t != nil {
		return *t, nil
	}
	if t := whiteSpace(s); t != nil {
		return *t, nil
	}
	if t := literal(s, short); t != nil {
		return *t, nil
	}
	return nil, nil
}

func field(s *charscan.Scanner) (*Field, error) {
	start := s.Pos
	if s.Eat('$') && s.Eat('{') {
		s.Start = s.Pos
		name := ""
		index := 0
		hasIndex := false

		if s.EatWhile(charscan.IsNumber) {
			n, _ := strconv.Atoi(s.Current())
			index = n
			hasIndex = true
			if s.Eat(':') {
				var err error
				name, err = consumePlaceholder(s)
				if err != nil {
					return nil, err
				}
			}
		} else if charscan.IsAlpha(s.Peek()) {
			var err error
			name, err = consumePlaceholder(s)
			if err != nil {
				return nil, err
			}
		}

		if s.Eat('}') {
			return &Field{base{start, s.Pos}, name, index, hasIndex}, nil
		}
		return nil, s.Error("Expecting }")
	}
	s.Pos = start
	return nil, nil
}

func consumePlaceholder(s *charscan.Scanner) (string, error) {
	var stack []int
	s.Start = s.Pos
	for !s.Eof() {
		if s.Eat('{') {
			stack = append(stack, s.Pos)
		} else if s.Eat('}') {
			if len(stack) == 0 {
				s.Pos--
				break
			}
			stack = stack[:len(stack)-1]
		} else {
			s.Pos++
		}
	}
	if len(stack) > 0 {
		s.Pos = stack[len(stack)-1]
		return "", s.Error("Expecting }")
	}
	return s.Current(), nil
}

func isIdentPrefix(ch byte) bool { return ch == '@' || ch == '$' }
func isHex(ch byte) bool {
	return charscan.IsNumber(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
func isKeyword(ch byte) bool { return charscan.IsAlphaNumericWord(ch) || ch == '-' }
func isBracket(ch byte) bool { return ch == '(' || ch == ')' }
func isLiteral(ch byte) bool { return charscan.IsAlphaWord(ch) || ch == '%' }

func literal(s *charscan.Scanner, short bool) *Literal {
	start := s.Pos
	if s.EatPred(isIdentPrefix) {
		if start == 0 {
			s.EatWhile(isLiteral)
		} else {
			s.EatWhile(isKeyword)
		}
	} else if s.EatPred(charscan.IsAlphaWord) {
		if short {
			s.EatWhile(isLiteral)
		} else {
			s.EatWhile(isKeyword)
		}
	} else {
		s.Eat('.')
		s.EatWhile(isLiteral)
	}

	if start != s.Pos {
		s.Start = start
		return createLiteral(s, start, s.Pos)
	}
	return nil
}

func createLiteral(s *charscan.Scanner, start, end int) *Literal {
	return &Literal{base{start, end}, s.Substring(start, end)}
}

func numberValue(s *charscan.Scanner) (*NumberValue, error) {
	start := s.Pos
	if consumeNumber(s) {
		s.Start = start
		rawValue := s.Current()
		value, err := strconv.ParseFloat(rawValue, 64)
		if err != nil {
			return nil, s.ErrorAt("Invalid number", start)
		}

		s.Start = s.Pos
		if !s.Eat('%') {
			s.EatWhile(charscan.IsAlphaWord)
		}
		return &NumberValue{base{start, s.Pos}, value, rawValue, s.Current()}, nil
	}
	return nil, nil
}

func consumeNumber(s *charscan.Scanner) bool {
	start := s.Pos
	s.Eat('-')
	afterNegative := s.Pos

	hasDecimal := s.EatWhile(charscan.IsNumber)

	prevPos := s.Pos
	if s.Eat('.') {
		hasFloat := s.EatWhile(charscan.IsNumber)
		if !hasDecimal && !hasFloat {
			s.Pos = prevPos
		}
	}

	if s.Pos == afterNegative {
		s.Pos = start
	}

	return s.Pos != start
}

func stringValue(s *charscan.Scanner) *StringValue {
	ch := s.Peek()
	start := s.Pos
	finished := false

	if charscan.IsQuote(ch) {
		s.Pos++
		for !s.Eof() {
			if s.Eat(ch) {
				finished = true
				break
			}
			s.Pos++
		}

		s.Start = start
		valueStart := start + 1
		valueEnd := s.Pos
		if finished {
			valueEnd--
		}
		quote := "double"
		if ch == '\'' {
			quote = "single"
		}
		return &StringValue{base{start, s.Pos}, s.Substring(valueStart, valueEnd), quote}
	}
	return nil
}

func colorValue(s *charscan.Scanner) (Token, error) {
	start := s.Pos
	if s.Eat('#') {
		valueStart := s.Pos
		color := ""
		alpha := ""

		if s.EatWhile(isHex) {
			color = s.Substring(valueStart, s.Pos)
			alpha = colorAlpha(s)
		} else if s.Eat('t') {
			color = "0"
			alpha = colorAlpha(s)
			if alpha == "" {
				alpha = "0"
			}
		} else {
			alpha = colorAlpha(s)
		}

		if color != "" || alpha != "" || s.Eof() {
			r, g, b, a := parseColor(color, alpha)
			return ColorValue{base{start, s.Pos}, r, g, b, a, s.Substring(start+1, s.Pos)}, nil
		}
		return *createLiteral(s, start, start), nil
	}
	s.Pos = start
	return nil, nil
}

func colorAlpha(s *charscan.Scanner) string {
	start := s.Pos
	if s.Eat('.') {
		s.Start = start
		if s.EatWhile(charscan.IsNumber) {
			return s.Current()
		}
		return "1"
	}
	return ""
}

func whiteSpace(s *charscan.Scanner) *WhiteSpace {
	start := s.Pos
	if s.EatWhile(charscan.IsWhiteSpace) {
		return &WhiteSpace{base{start, s.Pos}}
	}
	return nil
}

func bracket(s *charscan.Scanner) *Bracket {
	ch := s.Peek()
	if isBracket(ch) {
		start := s.Pos
		s.Pos++
		return &Bracket{base{start, s.Pos}, ch == '('}
	}
	return nil
}

func operator(s *charscan.Scanner) *Operator {
	if kind, ok := operatorMap[s.Peek()]; ok {
		start := s.Pos
		s.Pos++
		return &Operator{base{start, s.Pos}, kind}
	}
	return nil
}

func parseColor(value, alpha string) (r, g, b int, a float64) {
	a = 1
	if alpha != "" {
		if v, err := strconv.ParseFloat(alpha, 64); err == nil {
			a = v
		}
	}

	switch len(value) {
	case 0:
		// no digits: black
	case 1:
		n := hexDigit(value[0])
		r, g, b = n*16+n, n*16+n, n*16+n
	case 2:
		n := hexByte(value)
		r, g, b = n, n, n
	case 3:
		r = hexDigit(value[0]) * 17
		g = hexDigit(value[1]) * 17
		b = hexDigit(value[2]) * 17
	default:
		padded := value
		for len(padded) < 6 {
			padded = "0" + padded
		}
		r = hexByte(padded[0:2])
		g = hexByte(padded[2:4])
		b = hexByte(padded[4:6])
	}

	return r, g, b, a
}

func hexDigit(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	}
	return 0
}

func hexByte(s string) int {
	n, _ := strconv.ParseInt(s, 16, 32)
	return int(n)
}

func shouldConsumeDashAfter(t Token) bool {
	switch v := t.(type) {
	case ColorValue:
		return true
	case NumberValue:
		return v.Unit == ""
	}
	return false
}

// mergeTokens collapses a trailing run of Literal/NumberValue tokens
// into a single Literal, undoing the split that happens when a function
// name like `scale3d` tokenizes as `scale` + `3d` right before an open
// paren.
func mergeTokens(s *charscan.Scanner, tokenList []Token) []Token {
	start, end := 0, 0

	for len(tokenList) > 0 {
		last := tokenList[len(tokenList)-1]
		var s0, e0 int
		switch v := last.(type) {
		case Literal:
			s0, e0 = v.Start, v.End
		case NumberValue:
			s0, e0 = v.Start, v.End
		default:
			s0, e0 = -1, -1
		}
		if s0 < 0 {
			break
		}
		start = s0
		if end == 0 {
			end = e0
		}
		tokenList = tokenList[:len(tokenList)-1]
	}

	if start != end {
		tokenList = append(tokenList, *createLiteral(s, start, end))
	}
	return tokenList
}
