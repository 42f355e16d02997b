package docscan

import "github.com/emmetio/py-emmet/internal/charscan"

// CSSTokenType discriminates the kind of structural range ScanCSS found.
type CSSTokenType int

const (
	CSSSelector CSSTokenType = iota
	CSSPropertyName
	CSSPropertyValue
	CSSBlockEnd
)

// CSSCallback receives each token found by ScanCSS. Returning false stops
// the scan early.
type CSSCallback func(tokenType CSSTokenType, start, end, delimiter int) bool

type cssScanState struct {
	start, end                                    int
	propertyStart, propertyEnd, propertyDelimiter int
	expression                                    int
}

func newCSSScanState() *cssScanState {
	return &cssScanState{start: -1, end: -1, propertyStart: -1, propertyEnd: -1, propertyDelimiter: -1}
}

func (st *cssScanState) reset() {
	st.start, st.end = -1, -1
	st.propertyStart, st.propertyEnd, st.propertyDelimiter = -1, -1, -1
}

// ScanCSS performs a fast scan of a stylesheet source, determining
// document structure (selector, property name/value, block end) without
// parsing individual CSS atoms.
func ScanCSS(source string, callback CSSCallback) {
	s := charscan.New(source)
	st := newCSSScanState()

	notify := func(tokenType CSSTokenType, delimiter, start, end int) bool {
		return !callback(tokenType, start, end, delimiter)
	}

	for !s.Eof() {
		if cssComment(s) || s.EatWhile(charscan.IsSpace) {
			continue
		}

		s.Start = s.Pos
		blockEnd := s.Eat('}')
		switch {
		case blockEnd || s.Eat(';'):
			if st.propertyStart != -1 {
				if notify(CSSPropertyName, st.propertyDelimiter, st.propertyStart, st.propertyEnd) {
					return
				}
				if st.start == -1 {
					st.start, st.end = s.Start, s.Start
				}
				if notify(CSSPropertyValue, s.Start, st.start, st.end) {
					return
				}
			} else if st.start != -1 && notify(CSSPropertyName, s.Start, st.start, st.end) {
				return
			}

			if blockEnd {
				st.start, st.end = s.Start, s.Pos
				if notify(CSSBlockEnd, s.Start, st.start, st.end) {
					return
				}
			}
			st.reset()
		case s.Eat('{'):
			if st.start == -1 && st.propertyStart == -1 {
				st.start, st.end = s.Pos, s.Pos
			}
			if st.propertyStart != -1 {
				st.start = st.propertyStart
			}
			if notify(CSSSelector, s.Start, st.start, st.end) {
				return
			}
			st.reset()
		case s.Eat(':') && !isKnownSelectorColon(s, st):
			if st.propertyStart == -1 {
				st.propertyStart = st.start
			}
			st.propertyEnd = st.end
			st.propertyDelimiter = s.Pos - 1
			st.start, st.end = -1, -1
		default:
			if st.start == -1 {
				st.start = s.Pos
			}
			if s.Eat('(') {
				st.expression++
			} else if s.Eat(')') {
				st.expression--
			} else if !cssLiteral(s) {
				s.Pos++
			}
			st.end = s.Pos
		}
	}

	if st.propertyStart != -1 {
		if notify(CSSPropertyName, st.propertyDelimiter, st.propertyStart, st.propertyEnd) {
			return
		}
	}

	if st.start != -1 {
		tt := CSSPropertyName
		if st.propertyStart != -1 {
			tt = CSSPropertyValue
		}
		notify(tt, -1, st.start, st.end)
	}
}

func cssComment(s *charscan.Scanner) bool {
	start := s.Pos
	if s.Eat('/') && s.Eat('*') {
		s.Start = start
		for !s.Eof() {
			if s.Eat('*') {
				if s.Eat('/') {
					return true
				}
				continue
			}
			s.Pos++
		}
		return true
	}
	s.Pos = start
	return false
}

func cssLiteral(s *charscan.Scanner) bool {
	ch := s.Peek()
	if !charscan.IsQuote(ch) {
		return false
	}
	s.Start = s.Pos
	s.Pos++
	for !s.Eof() {
		if s.Eat(ch) || s.Eat('\n') || s.Eat('\r') {
			break
		}
		s.Eat('\\')
		s.Pos++
	}
	return true
}

// isKnownSelectorColon reports whether a just-consumed ':' belongs to an
// expression (`(min-width: 10px)`) or pseudo-element (`::before`) rather
// than a property delimiter.
func isKnownSelectorColon(s *charscan.Scanner, st *cssScanState) bool {
	if st.expression != 0 {
		return true
	}
	return s.EatWhile(func(ch byte) bool { return ch == ':' })
}
