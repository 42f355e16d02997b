package marksnippet_test

import (
	"testing"

	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
	"github.com/emmetio/py-emmet/internal/marksnippet"
)

func TestResolveSnippetMergesAttributes(t *testing.T) {
	cfg := config.New(config.TypeMarkup, config.SyntaxHTML, config.Overrides{}, config.Overrides{
		Snippets: map[string]string{"a": "a[href]"},
	})
	tree, err := abbr.Parse(`a.link{click here}`, abbr.ParseOptions{Variables: cfg.Variables})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := marksnippet.Resolve(tree, cfg); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(tree.Children) != 1 {
		t.Fatalf("expected one resolved root, got %d", len(tree.Children))
	}
	a := tree.Children[0]
	if a.Name != "a" {
		t.Fatalf("expected node name a, got %q", a.Name)
	}
	var hasHref, hasClass bool
	for _, attr := range a.Attributes {
		if attr.Name == "href" {
			hasHref = true
		}
		if attr.Name == "class" {
			hasClass = true
		}
	}
	if !hasHref || !hasClass {
		t.Fatalf("expected merged href+class attributes, got %#v", a.Attributes)
	}
	if !a.HasValue {
		t.Fatal("expected the original inline value to survive onto the snippet's deepest node")
	}
}

func TestResolveSelfReferentialSnippetDoesNotRecurse(t *testing.T) {
	cfg := config.New(config.TypeMarkup, config.SyntaxHTML, config.Overrides{}, config.Overrides{
		Snippets: map[string]string{"img": "img[src alt]/"},
	})
	tree, err := abbr.Parse("img", abbr.ParseOptions{Variables: cfg.Variables})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if err := marksnippet.Resolve(tree, cfg); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(tree.Children) != 1 || tree.Children[0].Name != "img" {
		t.Fatalf("expected a single resolved img element, got %#v", tree.Children)
	}
}

func TestResolveLeavesNonMatchingNodesAlone(t *testing.T) {
	cfg := config.New(config.TypeMarkup, config.SyntaxHTML, config.Overrides{}, config.Overrides{})
	tree, err := abbr.Parse("custom-widget", abbr.ParseOptions{Variables: cfg.Variables})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := marksnippet.Resolve(tree, cfg); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if tree.Children[0].Name != "custom-widget" {
		t.Fatalf("expected node left unresolved, got %q", tree.Children[0].Name)
	}
}
