// Package cssparse turns a csstoken.Token slice into a flat list of
// CSSProperty declarations, each holding a CSSValue made of literals,
// numbers, colors, strings, fields, and nested FunctionCalls. Grounded
// on css_abbreviation/parser.py.
package cssparse

import (
	"github.com/emmetio/py-emmet/internal/csstoken"
	"github.com/emmetio/py-emmet/internal/tokenscan"
)

// FunctionCall is a value token shaped like `name(arg, arg, ...)`, e.g.
// `rgb(0,0,0)`.
type FunctionCall struct {
	Name      string
	Arguments []*CSSValue
}

// CSSValue is one fragment of a property's value list, e.g. the `1px` in
// `border: 1px solid red`.
type CSSValue struct {
	Value []any // csstoken.Token or FunctionCall
}

// CSSProperty is a single parsed declaration, e.g. `p10-20` ->
// {Name: "p", Value: [10, 20]}.
type CSSProperty struct {
	Name      string
	HasName   bool
	Value     []*CSSValue
	Important bool

	// Snippet is set by internal/cssresolve once this property has been
	// matched against a snippet (or marked as the gradient shortcut);
	// left nil for an abbreviation fragment that resolved to nothing.
	Snippet any
}

type scanner = tokenscan.Scanner[csstoken.Token]

// Options configures parsing; ValueMode treats the whole token stream
// as a single value fragment with no leading property name.
type Options struct {
	ValueMode bool
}

// Parse consumes every property out of tokens, grounded on parser.py's
// top-level parser() loop.
func Parse(source string, tokens []csstoken.Token, opts Options) ([]*CSSProperty, error) {
	s := tokenscan.New(tokens)
	var result []*CSSProperty

	for s.Readable() {
		prop, err := consumeProperty(source, s, opts)
		if err != nil {
			return nil, err
		}
		if prop != nil {
			result = append(result, prop)
		} else if !s.Consume(isSiblingOperator) {
			return nil, s.Error(source, "Unexpected token")
		}
	}

	return result, nil
}

func consumeProperty(source string, s *scanner, opts Options) (*CSSProperty, error) {
	prop := &CSSProperty{}

	if !opts.ValueMode {
		if tok, ok := s.Peek(); ok {
			if lit, isLit := tok.(csstoken.Literal); isLit && !isFunctionStart(s) {
				s.Pos++
				prop.Name = lit.Value
				prop.HasName = true
				s.Consume(isValueDelimiter)
			}
		}
	}

	if opts.ValueMode {
		s.Consume(isWhiteSpace)
	}

	for s.Readable() {
		if s.Consume(isImportant) {
			prop.Important = true
			continue
		}
		fragment, err := consumeValue(source, s, opts.ValueMode)
		if err != nil {
			return nil, err
		}
		if fragment != nil {
			prop.Value = append(prop.Value, fragment)
		} else if !s.Consume(isFragmentDelimiter) {
			break
		}
	}

	if prop.HasName || len(prop.Value) > 0 || prop.Important {
		return prop, nil
	}
	return nil, nil
}

func consumeValue(source string, s *scanner, inArgument bool) (*CSSValue, error) {
	var result []any

	for s.Readable() {
		tok, _ := s.Peek()
		if isValueToken(tok) {
			s.Pos++
			if lit, isLit := tok.(csstoken.Literal); isLit {
				args, err := consumeArguments(source, s)
				if err != nil {
					return nil, err
				}
				if args != nil {
					result = append(result, FunctionCall{Name: lit.Value, Arguments: args})
					continue
				}
			}
			result = append(result, tok)
		} else if isValueDelimiter(tok) || (inArgument && isWhiteSpace(tok)) {
			s.Pos++
		} else {
			break
		}
	}

	if len(result) > 0 {
		return &CSSValue{Value: result}, nil
	}
	return nil, nil
}

func consumeArguments(source string, s *scanner) ([]*CSSValue, error) {
	if !s.Consume(isOpenBracket) {
		return nil, nil
	}

	var args []*CSSValue
	for s.Readable() && !s.Consume(isCloseBracket) {
		value, err := consumeValue(source, s, true)
		if err != nil {
			return nil, err
		}
		if value != nil {
			args = append(args, value)
		} else if !s.Consume(isWhiteSpace) && !s.Consume(isArgumentDelimiter) {
			return nil, s.Error(source, "Unexpected token")
		}
	}

	if args == nil {
		args = []*CSSValue{}
	}
	return args, nil
}

func isLiteral(t csstoken.Token) bool { _, ok := t.(csstoken.Literal); return ok }

func isBracket(t csstoken.Token) bool { _, ok := t.(csstoken.Bracket); return ok }

func isOpenBracket(t csstoken.Token) bool {
	b, ok := t.(csstoken.Bracket)
	return ok && b.Open
}

func isCloseBracket(t csstoken.Token) bool {
	b, ok := t.(csstoken.Bracket)
	return ok && !b.Open
}

func isWhiteSpace(t csstoken.Token) bool { _, ok := t.(csstoken.WhiteSpace); return ok }

func isOperatorKind(t csstoken.Token, kind csstoken.OperatorKind) bool {
	op, ok := t.(csstoken.Operator)
	return ok && op.Kind == kind
}

func isSiblingOperator(t csstoken.Token) bool { return isOperatorKind(t, csstoken.OpSibling) }

func isArgumentDelimiter(t csstoken.Token) bool {
	return isOperatorKind(t, csstoken.OpArgumentDelimiter)
}

func isFragmentDelimiter(t csstoken.Token) bool { return isArgumentDelimiter(t) }

func isImportant(t csstoken.Token) bool { return isOperatorKind(t, csstoken.OpImportant) }

func isValueToken(t csstoken.Token) bool {
	switch t.(type) {
	case csstoken.StringValue, csstoken.ColorValue, csstoken.NumberValue, csstoken.Literal, csstoken.Field:
		return true
	}
	return false
}

func isValueDelimiter(t csstoken.Token) bool {
	return isOperatorKind(t, csstoken.OpPropertyDelimiter) || isOperatorKind(t, csstoken.OpValueDelimiter)
}

func isFunctionStart(s *scanner) bool {
	maxIx := len(s.Tokens) - 1
	if s.Pos < maxIx {
		t1 := s.Tokens[s.Pos]
		t2 := s.Tokens[s.Pos+1]
		return isLiteral(t1) && isBracket(t2)
	}
	return false
}
