package marktoken

import (
	"strconv"

	"github.com/emmetio/py-emmet/internal/charscan"
)

// context tracks the bracket nesting and active quote character needed to
// disambiguate literals from operators as the scanner walks forward.
type context struct {
	group      int
	attribute  int
	expression int
	quote      byte
}

// Tokenize splits a markup abbreviation source into its token stream.
func Tokenize(source string) ([]Token, error) {
	s := charscan.New(source)
	var result []Token
	var ctx context

	for !s.Eof() {
		ch := s.Peek()
		tok, err := field(s, &ctx)
		if err != nil {
			return nil, err
		}
		if tok == nil {
			if t := repeaterPlaceholder(s); t != nil {
				tok = t
			} else if t := repeaterNumber(s); t != nil {
				tok = t
			} else if t := repeater(s); t != nil {
				tok = t
			} else if t := whiteSpace(s); t != nil {
				tok = t
			} else if t := literal(s, &ctx); t != nil {
				tok = t
			} else if t := operator(s); t != nil {
				tok = t
			} else if t := quote(s); t != nil {
				tok = t
			} else if t := bracket(s); t != nil {
				tok = t
			}
		}

		if tok == nil {
			return nil, s.Error("Unexpected character")
		}

		result = append(result, tok)
		switch t := tok.(type) {
		case Quote:
			if ch == ctx.quote {
				ctx.quote = 0
			} else {
				ctx.quote = ch
			}
		case Bracket:
			delta := -1
			if t.Open {
				delta = 1
			}
			switch t.Context {
			case CtxGroup:
				ctx.group += delta
			case CtxAttribute:
				ctx.attribute += delta
			case CtxExpression:
				ctx.expression += delta
			}
		}
	}

	if ctx.attribute > 0 {
		return nil, s.Error("Unclosed attribute bracket")
	}

	return result, nil
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func escaped(s *charscan.Scanner) bool {
	if s.Eat('\\') {
		s.Start = s.Pos
		if !s.Eof() {
			s.Pos++
		}
		return true
	}
	return false
}

func literal(s *charscan.Scanner, ctx *context) Token {
	start := s.Pos
	var value []byte

	for !s.Eof() {
		if escaped(s) {
			value = append(value, s.Current()...)
			continue
		}

		ch := s.Peek()

		if ch == '/' && ctx.quote == 0 && ctx.expression == 0 && ctx.attribute == 0 {
			// Special case for `/` between digits in class names, e.g. `.w1/2`
			prev := s.PeekAt(-1)
			next := s.PeekAt(1)
			if isDigit(prev) && isDigit(next) {
				value = append(value, s.Next())
				continue
			}
		}

		if ch == ctx.quote || ch == '$' || isAllowedOperator(ch, ctx) {
			break
		}

		if ctx.expression > 0 {
			if ch == '{' {
				ctx.expression++
			} else if ch == '}' {
				if ctx.expression == 1 {
					break
				}
				ctx.expression--
			}
		}

		if ctx.quote == 0 && ctx.expression == 0 {
			if ctx.attribute == 0 && !isElementName(ch) {
				break
			}
			if isAllowedSpace(ch, ctx) || isAllowedRepeater(ch, ctx) || charscan.IsQuote(ch) || bracketContext(ch) != nil {
				break
			}
		}

		value = append(value, s.Next())
	}

	if start != s.Pos {
		s.Start = start
		return Literal{base{start, s.Pos}, string(value)}
	}
	return nil
}

func whiteSpace(s *charscan.Scanner) Token {
	start := s.Pos
	if s.EatWhile(charscan.IsSpace) {
		return WhiteSpace{base{start, s.Pos}}
	}
	return nil
}

func quote(s *charscan.Scanner) Token {
	ch := s.Peek()
	if charscan.IsQuote(ch) {
		start := s.Pos
		s.Pos++
		return Quote{base{start, s.Pos}, ch == '\''}
	}
	return nil
}

func bracket(s *charscan.Scanner) Token {
	ch := s.Peek()
	ctx := bracketContext(ch)
	if ctx == nil {
		return nil
	}
	start := s.Pos
	s.Pos++
	return Bracket{base{start, s.Pos}, isOpenBracket(ch), *ctx}
}

func operator(s *charscan.Scanner) Token {
	op, ok := operatorKind(s.Peek())
	if !ok {
		return nil
	}
	start := s.Pos
	s.Pos++
	return Operator{base{start, s.Pos}, op}
}

func repeater(s *charscan.Scanner) Token {
	start := s.Pos
	if !s.Eat('*') {
		return nil
	}
	s.Start = s.Pos
	count := 1
	implicit := false
	if s.EatWhile(charscan.IsNumber) {
		count, _ = strconv.Atoi(s.Current())
	} else {
		implicit = true
	}
	return Repeater{base{start, s.Pos}, count, 0, implicit}
}

func repeaterPlaceholder(s *charscan.Scanner) Token {
	start := s.Pos
	if s.Eat('$') && s.Eat('#') {
		return RepeaterPlaceholder{base{start, s.Pos}}
	}
	s.Pos = start
	return nil
}

func repeaterNumber(s *charscan.Scanner) Token {
	start := s.Pos
	if !s.EatWhile(func(ch byte) bool { return ch == '$' }) {
		return nil
	}
	size := s.Pos - start
	reverse := false
	base_ := 1
	parent := 0

	if s.Eat('@') {
		for s.Eat('^') {
			parent++
		}
		reverse = s.Eat('-')
		s.Start = s.Pos
		if s.EatWhile(charscan.IsNumber) {
			base_, _ = strconv.Atoi(s.Current())
		}
	}

	s.Start = start
	return RepeaterNumber{base{start, s.Pos}, size, reverse, base_, parent}
}

func field(s *charscan.Scanner, ctx *context) (Token, error) {
	start := s.Pos
	if (ctx.expression > 0 || ctx.attribute > 0) && s.Eat('$') && s.Eat('{') {
		s.Start = s.Pos
		index := -1
		hasIx := false
		name := ""

		if s.EatWhile(charscan.IsNumber) {
			hasIx = true
			index, _ = strconv.Atoi(s.Current())
			if s.Eat(':') {
				n, err := consumePlaceholder(s)
				if err != nil {
					return nil, err
				}
				name = n
			}
		} else if charscan.IsAlpha(s.Peek()) {
			n, err := consumePlaceholder(s)
			if err != nil {
				return nil, err
			}
			name = n
		}

		if s.Eat('}') {
			return Field{base{start, s.Pos}, name, index, hasIx}, nil
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

	if len(stack) != 0 {
		s.Pos = stack[len(stack)-1]
		return "", s.Error("Expecting }")
	}

	return s.Current(), nil
}

func isAllowedOperator(ch byte, ctx *context) bool {
	op, ok := operatorKind(ch)
	if !ok || ctx.quote != 0 || ctx.expression > 0 {
		return false
	}
	return ctx.attribute == 0 || op == OpEqual
}

func isAllowedSpace(ch byte, ctx *context) bool {
	return charscan.IsSpace(ch) && ctx.expression == 0
}

func isAllowedRepeater(ch byte, ctx *context) bool {
	return ch == '*' && ctx.attribute == 0 && ctx.expression == 0
}

func bracketContext(ch byte) *BracketContext {
	var c BracketContext
	switch ch {
	case '(', ')':
		c = CtxGroup
	case '[', ']':
		c = CtxAttribute
	case '{', '}':
		c = CtxExpression
	default:
		return nil
	}
	return &c
}

func operatorKind(ch byte) (OperatorKind, bool) {
	switch ch {
	case '>':
		return OpChild, true
	case '+':
		return OpSibling, true
	case '^':
		return OpClimb, true
	case '.':
		return OpClass, true
	case '#':
		return OpID, true
	case '/':
		return OpClose, true
	case '=':
		return OpEqual, true
	default:
		return 0, false
	}
}

func isOpenBracket(ch byte) bool { return ch == '{' || ch == '[' || ch == '(' }

func isElementName(ch byte) bool {
	return charscan.IsAlphaNumericWord(ch) || ch == '-' || ch == ':' || ch == '!'
}
