package extract_test

import (
	"testing"

	"github.com/emmetio/py-emmet/internal/extract"
)

func TestExtractSimple(t *testing.T) {
	line := "hello div.foo>span"
	res, ok := extract.Extract(line, len(line), extract.Options{Type: "markup"})
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Abbreviation != "div.foo>span" {
		t.Fatalf("got %q", res.Abbreviation)
	}
}

func TestExtractStopsAtSpace(t *testing.T) {
	line := "foo bar"
	res, ok := extract.Extract(line, len(line), extract.Options{Type: "markup"})
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Abbreviation != "bar" {
		t.Fatalf("got %q", res.Abbreviation)
	}
}

func TestExtractNoMatch(t *testing.T) {
	line := "   "
	_, ok := extract.Extract(line, len(line), extract.Options{Type: "markup"})
	if ok {
		t.Fatal("expected no match on whitespace")
	}
}

func TestExtractBracketed(t *testing.T) {
	line := "a[href=foo]"
	res, ok := extract.Extract(line, len(line), extract.Options{Type: "markup"})
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Abbreviation != "a[href=foo]" {
		t.Fatalf("got %q", res.Abbreviation)
	}
}

func TestExtractLookAhead(t *testing.T) {
	line := "div(foo)"
	pos := len("div(foo")
	res, ok := extract.Extract(line, pos, extract.Options{Type: "markup", LookAhead: true})
	if !ok {
		t.Fatal("expected a match")
	}
	if res.End != len(line) {
		t.Fatalf("expected lookahead to consume trailing ')', got end=%d", res.End)
	}
}

func TestExtractPrefixBoundsPastTagLikeText(t *testing.T) {
	line := "<foo>bar"
	res, ok := extract.Extract(line, len(line), extract.Options{Type: "markup", Prefix: "<"})
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Abbreviation != "foo>bar" || res.Start != 0 || res.End != len(line) {
		t.Fatalf("got %+v", res)
	}
}

func TestExtractPrefixRequiredAndAbsent(t *testing.T) {
	line := "foobar"
	if _, ok := extract.Extract(line, len(line), extract.Options{Type: "markup", Prefix: "<"}); ok {
		t.Fatal("expected no match when prefix doesn't occur")
	}
}

func TestExtractPrefixWithNestedBrackets(t *testing.T) {
	line := `<foo>bar[a b="c"]>baz`
	res, ok := extract.Extract(line, len(line), extract.Options{Type: "markup", Prefix: "<"})
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Abbreviation != `foo>bar[a b="c"]>baz` || res.Start != 0 {
		t.Fatalf("got %+v", res)
	}
}
