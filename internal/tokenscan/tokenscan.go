// Package tokenscan provides a generic cursor over an already-tokenized
// slice, used by both the markup parser and the stylesheet parser. It is a
// direct port of emmet's TokenScanner (token_scanner.py) generalized with
// Go's type parameters instead of Python's duck typing.
package tokenscan

import "github.com/emmetio/py-emmet/internal/logger"

// Positioned is implemented by token types that know their own source
// offsets, so Error() can report a location.
type Positioned interface {
	Pos() (start, end int)
}

// Scanner walks a slice of tokens left to right.
type Scanner[T Positioned] struct {
	Tokens     []T
	Start, Pos int
}

// New wraps a token slice.
func New[T Positioned](tokens []T) *Scanner[T] {
	return &Scanner[T]{Tokens: tokens}
}

// Readable reports whether there is a token left to read.
func (s *Scanner[T]) Readable() bool { return s.Pos < len(s.Tokens) }

// Peek returns the current token and true, or the zero value and false at
// end of stream.
func (s *Scanner[T]) Peek() (T, bool) {
	var zero T
	if s.Readable() {
		return s.Tokens[s.Pos], true
	}
	return zero, false
}

// Next consumes and returns the current token.
func (s *Scanner[T]) Next() (T, bool) {
	tok, ok := s.Peek()
	s.Pos++
	return tok, ok
}

// Slice returns Tokens[Start:Pos].
func (s *Scanner[T]) Slice() []T { return s.Tokens[s.Start:s.Pos] }

// SliceRange returns Tokens[a:b].
func (s *Scanner[T]) SliceRange(a, b int) []T { return s.Tokens[a:b] }

// Consume advances past the current token if test accepts it.
func (s *Scanner[T]) Consume(test func(T) bool) bool {
	tok, ok := s.Peek()
	if ok && test(tok) {
		s.Pos++
		return true
	}
	return false
}

// ConsumeWhile repeatedly applies Consume; reports whether any matched.
func (s *Scanner[T]) ConsumeWhile(test func(T) bool) bool {
	start := s.Pos
	for s.Consume(test) {
	}
	return s.Pos != start
}

// Error builds a TokenScannerError positioned at the current token (or, if
// the stream is exhausted, with no position).
func (s *Scanner[T]) Error(source, message string) *logger.TokenScannerError {
	if tok, ok := s.Peek(); ok {
		start, _ := tok.Pos()
		return logger.NewTokenScannerError(source, start, message)
	}
	return logger.NewTokenScannerError(source, -1, message)
}
