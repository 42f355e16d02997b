package docscan

import (
	"strings"

	"github.com/emmetio/py-emmet/internal/charscan"
)

// AttributeToken is one name (optionally name=value) pair found by
// Attributes.
type AttributeToken struct {
	Name                 string
	NameStart, NameEnd   int
	Value                string
	HasValue             bool
	ValueStart, ValueEnd int
}

// Attributes parses src as a list of HTML attributes. If name is
// non-empty, src must be a full opening tag (`<a foo="bar">`); otherwise
// it should be the fragment between the element name and the closing
// angle bracket (`foo="bar"`).
func Attributes(src string, name string) []AttributeToken {
	start, end := 0, len(src)
	if name != "" {
		start = len(name) + 1
		if strings.HasSuffix(src, "/>") {
			end -= 2
		} else {
			end--
		}
	}

	s := &charscan.Scanner{String: src, Pos: start, Start: start, End: end}
	var result []AttributeToken

	for !s.Eof() {
		s.EatWhile(charscan.IsSpace)
		if attributeName(s) {
			tok := AttributeToken{Name: s.Current(), NameStart: s.Start, NameEnd: s.Pos}
			if s.Eat('=') && attributeValue(s) {
				tok.Value = s.Current()
				tok.HasValue = true
				tok.ValueStart = s.Start
				tok.ValueEnd = s.Pos
			}
			result = append(result, tok)
		} else {
			s.Pos++
		}
	}

	return result
}

func attributeName(s *charscan.Scanner) bool {
	start := s.Pos
	if s.Eat('*') || s.Eat('#') {
		htmlIdent(s)
		s.Start = start
		return true
	}
	if consumePaired(s) {
		return true
	}
	return htmlIdent(s)
}

func attributeValue(s *charscan.Scanner) bool {
	if ok, _ := charscan.EatQuoted(s, charscan.EatQuotedOptions{}); ok {
		return true
	}
	if consumePaired(s) {
		return true
	}
	return unquotedValue(s)
}

// AttributeValueOf returns the clean (unquoted) value of the name
// attribute, if present.
func AttributeValueOf(attrs []AttributeToken, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			if !a.HasValue {
				return "", false
			}
			return unquote(a.Value), true
		}
	}
	return "", false
}

func unquotedValue(s *charscan.Scanner) bool {
	start := s.Pos
	if s.EatWhile(isUnquotedChar) {
		s.Start = start
		return true
	}
	return false
}

func isUnquotedChar(ch byte) bool {
	return ch != 0 && !charscan.IsQuote(ch) && !charscan.IsSpace(ch) && !isTerminator(ch)
}

func consumePaired(s *charscan.Scanner) bool {
	opt := charscan.EatQuotedOptions{}
	if ok, _ := charscan.EatPair(s, '<', '>', opt); ok {
		return true
	}
	if ok, _ := charscan.EatPair(s, '(', ')', opt); ok {
		return true
	}
	if ok, _ := charscan.EatPair(s, '[', ']', opt); ok {
		return true
	}
	if ok, _ := charscan.EatPair(s, '{', '}', opt); ok {
		return true
	}
	return false
}

func unquote(value string) string {
	if value == "" {
		return value
	}
	if charscan.IsQuote(value[0]) {
		value = value[1:]
	}
	if len(value) > 0 && charscan.IsQuote(value[len(value)-1]) {
		value = value[:len(value)-1]
	}
	return value
}
