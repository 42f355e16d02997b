package marktoken_test

import (
	"testing"

	"github.com/emmetio/py-emmet/internal/marktoken"
)

func kinds(t *testing.T, toks []marktoken.Token) []string {
	t.Helper()
	out := make([]string, len(toks))
	for i, tok := range toks {
		switch v := tok.(type) {
		case marktoken.Literal:
			out[i] = "Literal:" + v.Value
		case marktoken.Operator:
			out[i] = "Operator"
		case marktoken.Repeater:
			out[i] = "Repeater"
		case marktoken.Bracket:
			out[i] = "Bracket"
		case marktoken.Quote:
			out[i] = "Quote"
		case marktoken.Field:
			out[i] = "Field"
		case marktoken.RepeaterNumber:
			out[i] = "RepeaterNumber"
		case marktoken.RepeaterPlaceholder:
			out[i] = "RepeaterPlaceholder"
		case marktoken.WhiteSpace:
			out[i] = "WhiteSpace"
		default:
			out[i] = "?"
		}
	}
	return out
}

func TestTokenizeElementChildSibling(t *testing.T) {
	toks, err := marktoken.Tokenize("ul>li")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	got := kinds(t, toks)
	want := []string{"Literal:ul", "Operator", "Literal:li"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestTokenizeRepeater(t *testing.T) {
	toks, err := marktoken.Tokenize("li*3")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	last := toks[len(toks)-1]
	rep, ok := last.(marktoken.Repeater)
	if !ok {
		t.Fatalf("expected trailing Repeater token, got %T", last)
	}
	if rep.Count != 3 {
		t.Fatalf("expected count 3, got %d", rep.Count)
	}
}

func TestTokenizeSlashInsideLiteral(t *testing.T) {
	// "/" between two digits stays part of the literal (e.g. "w-1/2").
	toks, err := marktoken.Tokenize("w-1/2")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	lit, ok := toks[0].(marktoken.Literal)
	if !ok || lit.Value != "w-1/2" {
		t.Fatalf("expected single literal w-1/2, got %#v", toks)
	}
}

func TestTokenizeUnclosedBracketErrors(t *testing.T) {
	if _, err := marktoken.Tokenize("div[foo"); err == nil {
		t.Fatal("expected an error for an unclosed attribute bracket")
	}
}

func TestTokenizeEscapedCharacter(t *testing.T) {
	toks, err := marktoken.Tokenize(`a\.b`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	lit, ok := toks[0].(marktoken.Literal)
	if !ok || lit.Value != "a.b" {
		t.Fatalf("expected escaped literal a.b, got %#v", toks)
	}
}
