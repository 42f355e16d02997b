package csstoken_test

import (
	"testing"

	"github.com/emmetio/py-emmet/internal/csstoken"
)

func TestTokenizeNumberWithUnit(t *testing.T) {
	toks, err := csstoken.Tokenize("10px", false)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	n, ok := toks[0].(csstoken.NumberValue)
	if !ok {
		t.Fatalf("expected NumberValue, got %T", toks[0])
	}
	if n.Value != 10 || n.Unit != "px" {
		t.Fatalf("got value=%v unit=%q", n.Value, n.Unit)
	}
}

func TestTokenizeShortHexColor(t *testing.T) {
	toks, err := csstoken.Tokenize("#fc0", false)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	c, ok := toks[0].(csstoken.ColorValue)
	if !ok {
		t.Fatalf("expected ColorValue, got %T", toks[0])
	}
	if c.R != 0xff || c.G != 0xcc || c.B != 0 || c.A != 1 {
		t.Fatalf("expected #ffcc00 opaque, got %+v", c)
	}
}

func TestTokenizeTransparentShorthand(t *testing.T) {
	toks, err := csstoken.Tokenize("#t", false)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	c, ok := toks[0].(csstoken.ColorValue)
	if !ok || c.A != 0 {
		t.Fatalf("expected fully transparent color, got %+v", toks[0])
	}
}

func TestTokenizeDashAfterNumberIsValueDelimiter(t *testing.T) {
	toks, err := csstoken.Tokenize("10-20", false)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("expected number, delimiter, number; got %d tokens: %#v", len(toks), toks)
	}
	op, ok := toks[1].(csstoken.Operator)
	if !ok || op.Kind != csstoken.OpValueDelimiter {
		t.Fatalf("expected a value-delimiter operator between the numbers, got %#v", toks[1])
	}
}

func TestTokenizeFunctionNameMerge(t *testing.T) {
	toks, err := csstoken.Tokenize("scale3d(1,1,1)", false)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	lit, ok := toks[0].(csstoken.Literal)
	if !ok || lit.Value != "scale3d" {
		t.Fatalf("expected function name literal merged with trailing digits, got %#v", toks[0])
	}
}

func TestTokenizeString(t *testing.T) {
	toks, err := csstoken.Tokenize(`"hello"`, false)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	s, ok := toks[0].(csstoken.StringValue)
	if !ok || s.Value != "hello" || s.Quote != "double" {
		t.Fatalf("got %#v", toks[0])
	}
}
