// Package markparse turns a marktoken.Token stream into a tree of
// TokenGroup/TokenElement nodes, a direct port of
// emmet/abbreviation/parser.
package markparse

import (
	"fmt"

	"github.com/emmetio/py-emmet/internal/marktoken"
	"github.com/emmetio/py-emmet/internal/tokenscan"
)

// Node is implemented by TokenElement and TokenGroup.
type Node interface{ isNode() }

// TokenAttribute is a parsed `name="value"` or `name` or bare-quoted
// default-attribute value, still holding raw token slices.
type TokenAttribute struct {
	Name       []marktoken.Token
	Value      []marktoken.Token
	Expression bool
}

// TokenElement is a single abbreviation node: `tag.class#id[attr]*N{text}`.
type TokenElement struct {
	Name       []marktoken.Token
	Attributes []*TokenAttribute
	Value      []marktoken.Token
	Repeat     *marktoken.Repeater
	SelfClose  bool
	Elements   []Node
}

func (*TokenElement) isNode() {}

// TokenGroup is a parenthesized `(...)`-group, optionally repeated.
type TokenGroup struct {
	Elements []Node
	Repeat   *marktoken.Repeater
}

func (*TokenGroup) isNode() {}

// Options configures dialect-specific grammar extensions.
type Options struct {
	JSX bool
}

type scanner = tokenscan.Scanner[marktoken.Token]

// Parse consumes the full token stream into a root TokenGroup.
func Parse(source string, tokens []marktoken.Token, options Options) (*TokenGroup, error) {
	s := tokenscan.New(tokens)
	result, err := statements(source, s, options)
	if err != nil {
		return nil, err
	}
	if s.Readable() {
		return nil, s.Error(source, "Unexpected character")
	}
	return result, nil
}

func statements(source string, s *scanner, options Options) (*TokenGroup, error) {
	result := &TokenGroup{}
	var ctx Node = result
	var stack []Node

	for s.Readable() {
		node, err := element(source, s, options)
		if err != nil {
			return nil, err
		}
		if node == nil {
			g, err := group(source, s, options)
			if err != nil {
				return nil, err
			}
			if g != nil {
				node = g
			}
		}
		if node == nil {
			break
		}

		appendChild(ctx, node)

		if s.Consume(isChildOperator) {
			stack = append(stack, ctx)
			ctx = node
		} else if s.Consume(isSiblingOperator) {
			continue
		} else if tok, ok := s.Peek(); ok && isClimbOperator(tok) {
			for s.Consume(isClimbOperator) {
				if len(stack) > 0 {
					ctx = stack[len(stack)-1]
					stack = stack[:len(stack)-1]
				}
			}
		}
	}

	return result, nil
}

func appendChild(ctx Node, node Node) {
	switch c := ctx.(type) {
	case *TokenGroup:
		c.Elements = append(c.Elements, node)
	case *TokenElement:
		c.Elements = append(c.Elements, node)
	}
}

func group(source string, s *scanner, options Options) (*TokenGroup, error) {
	if !s.Consume(isGroupStart) {
		return nil, nil
	}
	result, err := statements(source, s, options)
	if err != nil {
		return nil, err
	}
	if !s.Consume(func(tok marktoken.Token) bool { return isBracket(tok, marktoken.CtxGroup, boolPtr(false)) }) {
		return nil, s.Error(source, "Unclosed group")
	}
	result.Repeat = repeater(s)
	return result, nil
}

func element(source string, s *scanner, options Options) (*TokenElement, error) {
	elem := &TokenElement{}

	if elementName(s, options) {
		elem.Name = s.Slice()
	}

	for s.Readable() {
		s.Start = s.Pos
		if elem.Repeat == nil && !isEmpty(elem) && s.Consume(isRepeater) {
			elem.Repeat = s.Tokens[s.Pos-1].(marktoken.Repeater).Clone()
		} else if elem.Value == nil && text(s) {
			elem.Value = getText(s)
		} else {
			attr, err := shortAttribute(source, s, marktoken.OpID, options)
			if err != nil {
				return nil, err
			}
			if attr == nil {
				attr, err = shortAttribute(source, s, marktoken.OpClass, options)
				if err != nil {
					return nil, err
				}
			}
			var attrs []*TokenAttribute
			if attr != nil {
				attrs = []*TokenAttribute{attr}
			} else {
				set, err := attributeSet(source, s)
				if err != nil {
					return nil, err
				}
				attrs = set
			}

			if attrs != nil {
				elem.Attributes = append(elem.Attributes, attrs...)
			} else {
				if !isEmpty(elem) && s.Consume(isCloseOperator) {
					elem.SelfClose = true
					if elem.Repeat == nil && s.Consume(isRepeater) {
						elem.Repeat = s.Tokens[s.Pos-1].(marktoken.Repeater).Clone()
					}
				}
				break
			}
		}
	}

	if isEmpty(elem) {
		return nil, nil
	}
	return elem, nil
}

func attributeSet(source string, s *scanner) ([]*TokenAttribute, error) {
	if !s.Consume(isAttributeSetStart) {
		return nil, nil
	}
	var attributes []*TokenAttribute
	for s.Readable() {
		attr, err := attribute(source, s)
		if err != nil {
			return nil, err
		}
		if attr != nil {
			attributes = append(attributes, attr)
		} else if s.Consume(isAttributeSetEnd) {
			break
		} else if !s.Consume(isWhiteSpace) {
			tok, _ := s.Peek()
			return nil, s.Error(source, fmt.Sprintf("Unexpected %T token", tok))
		}
	}
	return attributes, nil
}

func shortAttribute(source string, s *scanner, kind marktoken.OperatorKind, options Options) (*TokenAttribute, error) {
	tok, ok := s.Peek()
	if !ok || !isOperator(tok, &kind) {
		return nil, nil
	}
	s.Pos++
	name := attrKindName(kind)
	attr := &TokenAttribute{Name: []marktoken.Token{marktoken.Literal{Value: name}}}

	if options.JSX && text(s) {
		attr.Value = getText(s)
		attr.Expression = true
	} else if literal(s, false) {
		attr.Value = s.Slice()
	}

	return attr, nil
}

func attrKindName(kind marktoken.OperatorKind) string {
	if kind == marktoken.OpID {
		return "id"
	}
	return "class"
}

func attribute(source string, s *scanner) (*TokenAttribute, error) {
	ok, err := quoted(source, s)
	if err != nil {
		return nil, err
	}
	if ok {
		return &TokenAttribute{Value: s.Slice()}, nil
	}

	if literal(s, true) {
		name := s.Slice()
		var value []marktoken.Token
		if s.Consume(isEquals) {
			q, err := quoted(source, s)
			if err != nil {
				return nil, err
			}
			if q || literal(s, true) {
				value = s.Slice()
			}
		}
		return &TokenAttribute{Name: name, Value: value}, nil
	}

	return nil, nil
}

func repeater(s *scanner) *marktoken.Repeater {
	tok, ok := s.Peek()
	if ok && isRepeaterTok(tok) {
		s.Pos++
		r := tok.(marktoken.Repeater)
		return r.Clone()
	}
	return nil
}

func quoted(source string, s *scanner) (bool, error) {
	start := s.Pos
	tok, ok := s.Peek()
	if !ok {
		return false, nil
	}
	q, isQuote := tok.(marktoken.Quote)
	if !isQuote {
		return false, nil
	}
	s.Pos++
	for s.Readable() {
		next, _ := s.Next()
		if nq, ok := next.(marktoken.Quote); ok && nq.Single == q.Single {
			s.Start = start
			return true, nil
		}
	}
	return false, s.Error(source, "Unclosed quote")
}

func literal(s *scanner, allowBrackets bool) bool {
	start := s.Pos
	var attrDepth, exprDepth, groupDepth int

	for s.Readable() {
		tok, _ := s.Peek()
		switch {
		case exprDepth > 0:
			if b, ok := tok.(marktoken.Bracket); ok && b.Context == marktoken.CtxExpression {
				if b.Open {
					exprDepth++
				} else {
					exprDepth--
				}
			}
		case isQuoteTok(tok) || isOperatorTok(tok) || isWhiteSpaceTok(tok) || isRepeaterTok(tok):
			return finishLiteral(s, start)
		default:
			if b, ok := tok.(marktoken.Bracket); ok {
				if !allowBrackets {
					return finishLiteral(s, start)
				}
				depth := bracketDepth(&attrDepth, &exprDepth, &groupDepth, b.Context)
				if b.Open {
					*depth++
				} else if *depth == 0 {
					return finishLiteral(s, start)
				} else {
					*depth--
				}
			}
		}
		s.Pos++
	}

	return finishLiteral(s, start)
}

func finishLiteral(s *scanner, start int) bool {
	if start != s.Pos {
		s.Start = start
		return true
	}
	return false
}

func bracketDepth(attr, expr, group *int, ctx marktoken.BracketContext) *int {
	switch ctx {
	case marktoken.CtxAttribute:
		return attr
	case marktoken.CtxExpression:
		return expr
	default:
		return group
	}
}

func elementName(s *scanner, options Options) bool {
	start := s.Pos

	if options.JSX && s.Consume(isCapitalizedLiteral) {
		for s.Readable() {
			pos := s.Pos
			if !s.Consume(isClassNameOperator) || !s.Consume(isCapitalizedLiteral) {
				s.Pos = pos
				break
			}
		}
	}

	for s.Readable() && s.Consume(isElementNameTok) {
	}

	if s.Pos != start {
		s.Start = start
		return true
	}
	return false
}

func text(s *scanner) bool {
	start := s.Pos
	if !s.Consume(isTextStart) {
		return false
	}
	var brackets int
	for s.Readable() {
		tok, _ := s.Next()
		if b, ok := tok.(marktoken.Bracket); ok && b.Context == marktoken.CtxExpression {
			if b.Open {
				brackets++
			} else if brackets == 0 {
				break
			} else {
				brackets--
			}
		}
	}
	s.Start = start
	return true
}

func getText(s *scanner) []marktoken.Token {
	start := s.Start
	end := s.Pos
	if b, ok := s.Tokens[start].(marktoken.Bracket); ok && b.Context == marktoken.CtxExpression && b.Open {
		start++
	}
	if b, ok := s.Tokens[end-1].(marktoken.Bracket); ok && b.Context == marktoken.CtxExpression && !b.Open {
		end--
	}
	return s.SliceRange(start, end)
}

func isEmpty(e *TokenElement) bool {
	return e.Name == nil && e.Value == nil && e.Attributes == nil
}

func boolPtr(b bool) *bool { return &b }

func isBracket(tok marktoken.Token, context marktoken.BracketContext, open *bool) bool {
	b, ok := tok.(marktoken.Bracket)
	if !ok || b.Context != context {
		return false
	}
	return open == nil || b.Open == *open
}

func isOperator(tok marktoken.Token, kind *marktoken.OperatorKind) bool {
	op, ok := tok.(marktoken.Operator)
	if !ok {
		return false
	}
	return kind == nil || op.Kind == *kind
}

func isOperatorTok(tok marktoken.Token) bool { return isOperator(tok, nil) }

func isQuoteTok(tok marktoken.Token) bool {
	_, ok := tok.(marktoken.Quote)
	return ok
}

func isWhiteSpaceTok(tok marktoken.Token) bool {
	_, ok := tok.(marktoken.WhiteSpace)
	return ok
}

func isWhiteSpace(tok marktoken.Token) bool { return isWhiteSpaceTok(tok) }

func isEquals(tok marktoken.Token) bool {
	k := marktoken.OpEqual
	return isOperator(tok, &k)
}

func isRepeaterTok(tok marktoken.Token) bool {
	_, ok := tok.(marktoken.Repeater)
	return ok
}

func isRepeater(tok marktoken.Token) bool { return isRepeaterTok(tok) }

func isLiteralTok(tok marktoken.Token) (marktoken.Literal, bool) {
	l, ok := tok.(marktoken.Literal)
	return l, ok
}

func isCapitalizedLiteral(tok marktoken.Token) bool {
	l, ok := isLiteralTok(tok)
	if !ok || l.Value == "" {
		return false
	}
	return l.Value[0] >= 'A' && l.Value[0] <= 'Z'
}

func isElementNameTok(tok marktoken.Token) bool {
	if _, ok := isLiteralTok(tok); ok {
		return true
	}
	if _, ok := tok.(marktoken.RepeaterNumber); ok {
		return true
	}
	if _, ok := tok.(marktoken.RepeaterPlaceholder); ok {
		return true
	}
	return false
}

func isClassNameOperator(tok marktoken.Token) bool {
	k := marktoken.OpClass
	return isOperator(tok, &k)
}

func isAttributeSetStart(tok marktoken.Token) bool {
	return isBracket(tok, marktoken.CtxAttribute, boolPtr(true))
}

func isAttributeSetEnd(tok marktoken.Token) bool {
	return isBracket(tok, marktoken.CtxAttribute, boolPtr(false))
}

func isTextStart(tok marktoken.Token) bool {
	return isBracket(tok, marktoken.CtxExpression, boolPtr(true))
}

func isGroupStart(tok marktoken.Token) bool {
	return isBracket(tok, marktoken.CtxGroup, boolPtr(true))
}

func isChildOperator(tok marktoken.Token) bool {
	k := marktoken.OpChild
	return isOperator(tok, &k)
}

func isSiblingOperator(tok marktoken.Token) bool {
	k := marktoken.OpSibling
	return isOperator(tok, &k)
}

func isClimbOperator(tok marktoken.Token) bool {
	k := marktoken.OpClimb
	return isOperator(tok, &k)
}

func isCloseOperator(tok marktoken.Token) bool {
	k := marktoken.OpClose
	return isOperator(tok, &k)
}
