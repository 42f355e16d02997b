package markparse_test

import (
	"testing"

	"github.com/emmetio/py-emmet/internal/markparse"
	"github.com/emmetio/py-emmet/internal/marktoken"
)

func parse(t *testing.T, source string, opts markparse.Options) *markparse.TokenGroup {
	t.Helper()
	toks, err := marktoken.Tokenize(source)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", source, err)
	}
	tree, err := markparse.Parse(source, toks, opts)
	if err != nil {
		t.Fatalf("Parse(%q): %v", source, err)
	}
	return tree
}

func TestParseChildSibling(t *testing.T) {
	tree := parse(t, "ul>li+li", markparse.Options{})
	if len(tree.Elements) != 1 {
		t.Fatalf("expected one root element, got %d", len(tree.Elements))
	}
	ul, ok := tree.Elements[0].(*markparse.TokenElement)
	if !ok {
		t.Fatalf("expected *TokenElement, got %T", tree.Elements[0])
	}
	if len(ul.Elements) != 2 {
		t.Fatalf("expected 2 li children under ul, got %d", len(ul.Elements))
	}
}

func TestParseGroupWithRepeater(t *testing.T) {
	tree := parse(t, "(div>span)*2", markparse.Options{})
	group, ok := tree.Elements[0].(*markparse.TokenGroup)
	if !ok {
		t.Fatalf("expected *TokenGroup, got %T", tree.Elements[0])
	}
	if group.Repeat == nil || group.Repeat.Count != 2 {
		t.Fatalf("expected a repeater of count 2, got %#v", group.Repeat)
	}
}

func TestParseClimbOperator(t *testing.T) {
	tree := parse(t, "div>span^p", markparse.Options{})
	if len(tree.Elements) != 2 {
		t.Fatalf("expected climb to produce 2 root siblings, got %d", len(tree.Elements))
	}
}

func TestParseUnclosedGroupErrors(t *testing.T) {
	toks, err := marktoken.Tokenize("(div")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if _, err := markparse.Parse("(div", toks, markparse.Options{}); err == nil {
		t.Fatal("expected an error for an unclosed group")
	}
}

func TestParseJSXComponentName(t *testing.T) {
	tree := parse(t, "Foo.Bar", markparse.Options{JSX: true})
	el, ok := tree.Elements[0].(*markparse.TokenElement)
	if !ok || len(el.Name) == 0 {
		t.Fatalf("expected a named JSX element, got %#v", tree.Elements[0])
	}
}
