package docscan

import "github.com/emmetio/py-emmet/internal/charscan"

// ElementType discriminates an open, close, or self-closing tag found by
// ScanHTML.
type ElementType int

const (
	ElementOpen ElementType = iota + 1
	ElementClose
	ElementSelfClose
)

// SpecialTag marks a tag (script/style) whose body should be skipped
// during scanning, optionally gated on its `type` attribute value.
type SpecialTag struct {
	Always bool
	Types  []string
}

// DefaultSpecialTags mirrors html_matcher's default_special table.
func DefaultSpecialTags() map[string]SpecialTag {
	return map[string]SpecialTag{
		"style": {Always: true},
		"script": {Types: []string{
			"", "text/javascript", "application/x-javascript", "javascript",
			"typescript", "ts", "coffee", "coffeescript",
		}},
	}
}

// DefaultEmptyElements mirrors html_matcher's default_empty list.
func DefaultEmptyElements() []string {
	return []string{"img", "meta", "link", "br", "base", "hr", "area", "wbr", "col", "embed", "input", "param", "source", "track"}
}

// ScannerOptions configures ScanHTML/Match/BalancedOutward/BalancedInward.
type ScannerOptions struct {
	XML     bool
	Special map[string]SpecialTag
	Empty   []string
}

// DefaultScannerOptions returns HTML (non-XML) scanning defaults.
func DefaultScannerOptions() ScannerOptions {
	return ScannerOptions{Special: DefaultSpecialTags(), Empty: DefaultEmptyElements()}
}

// HTMLCallback receives each tag found by ScanHTML. Returning false stops
// the scan early.
type HTMLCallback func(name string, elemType ElementType, start, end int) bool

const (
	cdataOpen    = "<![CDATA["
	cdataClose   = "]]>"
	commentOpen  = "<!--"
	commentClose = "-->"
	piStart      = "<?"
	piEnd        = "?>"
)

// ScanHTML performs a fast scan of source, invoking callback with each
// tag's name, type, and range. special lists tags (script/style) whose
// body should be skipped until a matching closing tag is found.
func ScanHTML(source string, special map[string]SpecialTag, callback HTMLCallback) {
	s := charscan.New(source)

	for !s.Eof() {
		if htmlCDATA(s) || htmlComment(s) || htmlProcessingInstruction(s) {
			continue
		}

		start := s.Pos
		if !s.Eat('<') {
			s.Pos++
			continue
		}

		elemType := ElementOpen
		if s.Eat('/') {
			elemType = ElementClose
		}
		nameStart := s.Pos

		if !htmlIdent(s) {
			continue
		}
		nameEnd := s.Pos

		if elemType != ElementClose {
			skipAttributes(s)
			s.EatWhile(charscan.IsSpace)
			if s.Eat('/') {
				elemType = ElementSelfClose
			}
		}

		if !s.Eat('>') {
			continue
		}

		name := s.Substring(nameStart, nameEnd)
		if !callback(name, elemType, start, s.Pos) {
			return
		}

		if elemType == ElementOpen && special != nil && isSpecialTag(special, name, source, start, s.Pos) {
			found := false
			var tagStart, tagEnd int
			for !s.Eof() {
				if ok, cs, ce := consumeClosing(s, name); ok {
					found, tagStart, tagEnd = true, cs, ce
					break
				}
				s.Pos++
			}
			if found && !callback(name, ElementClose, tagStart, tagEnd) {
				return
			}
		}
	}
}

func skipAttributes(s *charscan.Scanner) {
	for !s.Eof() {
		s.EatWhile(charscan.IsSpace)
		if attributeName(s) {
			if s.Eat('=') {
				attributeValue(s)
			}
		} else if isTerminator(s.Peek()) {
			break
		} else {
			s.Pos++
		}
	}
}

func consumeClosing(s *charscan.Scanner, name string) (ok bool, start, end int) {
	start = s.Pos
	if s.Eat('<') && s.Eat('/') && consumeArray(s, name) && s.Eat('>') {
		return true, start, s.Pos
	}
	s.Pos = start
	return false, 0, 0
}

func consumeArray(s *charscan.Scanner, str string) bool {
	start := s.Pos
	for i := 0; i < len(str); i++ {
		if !s.Eat(str[i]) {
			s.Pos = start
			return false
		}
	}
	return true
}

func consumeSection(s *charscan.Scanner, prefix, suffix string, allowUnclosed bool) bool {
	start := s.Pos
	if consumeArray(s, prefix) {
		for !s.Eof() {
			if consumeArray(s, suffix) {
				s.Start = start
				return true
			}
			s.Pos++
		}
		if allowUnclosed {
			s.Start = start
			return true
		}
		s.Pos = start
		return false
	}
	s.Pos = start
	return false
}

func htmlCDATA(s *charscan.Scanner) bool   { return consumeSection(s, cdataOpen, cdataClose, true) }
func htmlComment(s *charscan.Scanner) bool { return consumeSection(s, commentOpen, commentClose, true) }

func htmlProcessingInstruction(s *charscan.Scanner) bool {
	if !consumeArray(s, piStart) {
		return false
	}
	for !s.Eof() {
		if consumeArray(s, piEnd) {
			break
		}
		if ok, _ := charscan.EatQuoted(s, charscan.EatQuotedOptions{}); !ok {
			s.Pos++
		}
	}
	return true
}

func htmlIdent(s *charscan.Scanner) bool {
	start := s.Pos
	if s.EatPred(nameStartChar) {
		s.EatWhile(nameChar)
		s.Start = start
		return true
	}
	return false
}

// nameStartChar/nameChar follow the ASCII subset of the XML NameStartChar
// / NameChar productions; the wider Unicode ranges the original scans
// over are not reachable through byte-oriented tag/attribute names in
// practice and are left unhandled here.
func nameStartChar(ch byte) bool { return charscan.IsAlpha(ch) || ch == ':' || ch == '_' }

func nameChar(ch byte) bool {
	return nameStartChar(ch) || ch == '-' || ch == '.' || charscan.IsNumber(ch)
}

func isTerminator(ch byte) bool { return ch == '>' || ch == '/' }

func isSpecialTag(special map[string]SpecialTag, name, source string, start, end int) bool {
	st, ok := special[name]
	if !ok {
		return false
	}
	if st.Always {
		return true
	}
	frag := source[start+len(name)+1 : end-1]
	attrs := Attributes(frag, "")
	value, _ := AttributeValueOf(attrs, "type")
	for _, t := range st.Types {
		if t == value {
			return true
		}
	}
	return false
}
