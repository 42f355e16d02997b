package abbr_test

import (
	"testing"

	"github.com/emmetio/py-emmet/internal/abbr"
)

func TestConvertRepeaterNumbering(t *testing.T) {
	tree, err := abbr.Parse("li.item$*3", abbr.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tree.Children) != 3 {
		t.Fatalf("expected 3 unrolled li nodes, got %d", len(tree.Children))
	}
	for i, n := range tree.Children {
		if len(n.Attributes) != 1 {
			t.Fatalf("node %d: expected one class attribute, got %d", i, len(n.Attributes))
		}
		want := abbr.TextPart("item" + string(rune('1'+i)))
		if len(n.Attributes[0].Value) != 1 || n.Attributes[0].Value[0] != want {
			t.Fatalf("node %d: expected class value %v, got %v", i, want, n.Attributes[0].Value)
		}
	}
}

func TestConvertMaxRepeatGuard(t *testing.T) {
	tree, err := abbr.Parse("a*10", abbr.ParseOptions{MaxRepeat: 5})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tree.Children) != 5 {
		t.Fatalf("expected guard to cap at 5 nodes, got %d", len(tree.Children))
	}
}

func TestConvertMaxRepeatAlwaysEmitsOne(t *testing.T) {
	tree, err := abbr.Parse("a*10", abbr.ParseOptions{MaxRepeat: -1})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tree.Children) == 0 {
		t.Fatal("expected at least one node even with a degenerate guard")
	}
}

func TestConvertHrefFromText(t *testing.T) {
	tree, err := abbr.Parse("a", abbr.ParseOptions{
		HasText:    true,
		Text:       abbr.PlainText("http://emmet.io"),
		MarkupHref: true,
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a := tree.Children[0]
	var hasHref bool
	for _, at := range a.Attributes {
		if at.Name == "href" {
			hasHref = true
		}
	}
	if !hasHref {
		t.Fatalf("expected an auto-inserted href attribute, got %#v", a.Attributes)
	}
}

func TestConvertImplicitRepeaterFromTextList(t *testing.T) {
	tree, err := abbr.Parse("li*", abbr.ParseOptions{
		HasText: true,
		Text:    abbr.LineText([]string{"one", "two", "three"}),
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tree.Children) != 3 {
		t.Fatalf("expected implicit repeat count from 3-line text, got %d", len(tree.Children))
	}
}
