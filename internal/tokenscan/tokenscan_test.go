package tokenscan_test

import (
	"testing"

	"github.com/emmetio/py-emmet/internal/tokenscan"
)

type fakeToken struct{ start, end int }

func (f fakeToken) Pos() (int, int) { return f.start, f.end }

func TestScannerConsumeWhile(t *testing.T) {
	s := tokenscan.New([]fakeToken{{0, 1}, {1, 2}, {2, 3}})
	isEarly := func(tok fakeToken) bool { return tok.start < 2 }

	if !s.ConsumeWhile(isEarly) {
		t.Fatal("expected to consume matching tokens")
	}
	if len(s.Slice()) != 2 {
		t.Fatalf("expected 2 tokens consumed, got %d", len(s.Slice()))
	}
	if !s.Readable() {
		t.Fatal("expected one token left")
	}
	tok, ok := s.Next()
	if !ok || tok.start != 2 {
		t.Fatalf("got %v, %v", tok, ok)
	}
	if s.Readable() {
		t.Fatal("expected stream exhausted")
	}
}

func TestScannerErrorAtExhaustedStream(t *testing.T) {
	s := tokenscan.New([]fakeToken{})
	err := s.Error("src", "boom")
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestScannerErrorPositioned(t *testing.T) {
	s := tokenscan.New([]fakeToken{{3, 5}})
	err := s.Error("01234567", "boom")
	if err == nil {
		t.Fatal("expected an error")
	}
}
