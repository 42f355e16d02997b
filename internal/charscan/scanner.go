// Package charscan provides the forward and backward byte-position cursors
// shared by the markup and stylesheet tokenizers, the backward extractor,
// and the document scanners. It is a direct port of emmet's Scanner /
// BackwardScanner pair (scanner.py, extract_abbreviation/reader.py).
package charscan

import "github.com/emmetio/py-emmet/internal/logger"

// Pred is either satisfied by a single byte or used with EatWhile to consume
// a run of matching bytes.
type Pred func(ch byte) bool

// Scanner is a forward cursor over a string.
type Scanner struct {
	String     string
	Pos, Start int
	End        int
}

// New creates a scanner over the whole string.
func New(source string) *Scanner {
	return &Scanner{String: source, End: len(source)}
}

// Eof reports whether the cursor has reached End.
func (s *Scanner) Eof() bool { return s.Pos >= s.End }

// Peek returns the byte at Pos, or 0 at eof.
func (s *Scanner) Peek() byte {
	if s.Pos < s.End {
		return s.String[s.Pos]
	}
	return 0
}

// PeekAt returns the byte at Pos+offset, or 0 out of range.
func (s *Scanner) PeekAt(offset int) byte {
	p := s.Pos + offset
	if p >= 0 && p < s.End {
		return s.String[p]
	}
	return 0
}

// Next consumes and returns the current byte, or 0 at eof.
func (s *Scanner) Next() byte {
	if s.Pos < s.End {
		ch := s.String[s.Pos]
		s.Pos++
		return ch
	}
	return 0
}

// Eat consumes the current byte if it equals ch.
func (s *Scanner) Eat(ch byte) bool {
	if s.Peek() == ch {
		s.Pos++
		return true
	}
	return false
}

// EatPred consumes the current byte if pred matches it.
func (s *Scanner) EatPred(pred Pred) bool {
	if !s.Eof() && pred(s.Peek()) {
		s.Pos++
		return true
	}
	return false
}

// EatWhile repeatedly consumes bytes matching pred; reports whether any were
// consumed.
func (s *Scanner) EatWhile(pred Pred) bool {
	start := s.Pos
	for s.Pos < s.End && pred(s.Peek()) {
		s.Pos++
	}
	return s.Pos != start
}

// Current returns the substring between Start and Pos.
func (s *Scanner) Current() string { return s.String[s.Start:s.Pos] }

// Substring returns String[a:b].
func (s *Scanner) Substring(a, b int) string { return s.String[a:b] }

// Error snapshots the current position into a ScannerError.
func (s *Scanner) Error(message string) *logger.ScannerError {
	return logger.NewScannerError(s.String, s.Pos, message)
}

// ErrorAt snapshots pos (rather than the live cursor) into a ScannerError.
func (s *Scanner) ErrorAt(message string, pos int) *logger.ScannerError {
	return logger.NewScannerError(s.String, pos, message)
}

// IsQuote reports whether ch is a single or double quote.
func IsQuote(ch byte) bool { return ch == '"' || ch == '\'' }

// IsSpace reports whether ch is whitespace including line breaks.
func IsSpace(ch byte) bool {
	return IsWhiteSpace(ch) || ch == '\n' || ch == '\r'
}

// IsWhiteSpace reports whether ch is a space character without line breaks.
func IsWhiteSpace(ch byte) bool { return ch == ' ' || ch == '\t' }

// IsNumber reports whether ch is an ASCII digit.
func IsNumber(ch byte) bool { return ch >= '0' && ch <= '9' }

// IsAlpha reports whether ch is an ASCII letter.
func IsAlpha(ch byte) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }

// IsAlphaNumeric reports whether ch is a letter or digit.
func IsAlphaNumeric(ch byte) bool { return IsNumber(ch) || IsAlpha(ch) }

// IsAlphaWord reports whether ch is a letter or underscore.
func IsAlphaWord(ch byte) bool { return ch == '_' || IsAlpha(ch) }

// IsAlphaNumericWord reports whether ch is a digit or IsAlphaWord.
func IsAlphaNumericWord(ch byte) bool { return IsNumber(ch) || IsAlphaWord(ch) }

// EatQuotedOptions configures EatQuoted / EatPair.
type EatQuotedOptions struct {
	Escape byte // defaults to '\\' when zero
	Throws bool
}

func (o EatQuotedOptions) escape() byte {
	if o.Escape == 0 {
		return '\\'
	}
	return o.Escape
}

// EatQuoted consumes a 'single' or "double"-quoted string, if present. On
// success, s.Current() is the full quoted run including the quotes.
func EatQuoted(s *Scanner, opt EatQuotedOptions) (bool, error) {
	start := s.Pos
	quote := s.Peek()
	if !s.EatPred(IsQuote) {
		return false, nil
	}
	for !s.Eof() {
		if s.Eat(quote) {
			s.Start = start
			return true, nil
		}
		if s.Peek() == opt.escape() {
			s.Pos++
		}
		s.Pos++
	}
	s.Pos = start
	if opt.Throws {
		return false, s.Error("Unable to consume quoted string")
	}
	return false, nil
}

// EatPair consumes a balanced openCh/closeCh run, treating quoted regions as
// opaque. On success s.Current() is the full paired run.
func EatPair(s *Scanner, openCh, closeCh byte, opt EatQuotedOptions) (bool, error) {
	start := s.Pos
	if !s.Eat(openCh) {
		return false, nil
	}
	stack := 1
	for !s.Eof() {
		if ok, err := EatQuoted(s, opt); err != nil {
			return false, err
		} else if ok {
			continue
		}
		ch := s.Next()
		switch ch {
		case openCh:
			stack++
		case closeCh:
			stack--
			if stack == 0 {
				s.Start = start
				return true, nil
			}
		case opt.escape():
			s.Pos++
		}
	}
	s.Pos = start
	if opt.Throws {
		return false, s.ErrorAt("Unable to find matching pair for "+string(openCh), start)
	}
	return false, nil
}
