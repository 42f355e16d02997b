package markfmt_test

import (
	"strings"
	"testing"

	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
	"github.com/emmetio/py-emmet/internal/markfmt"
	"github.com/emmetio/py-emmet/internal/marksnippet"
	"github.com/emmetio/py-emmet/internal/marktransform"
)

func expand(t *testing.T, source string, syntax config.Syntax) string {
	t.Helper()
	cfg := config.New(config.TypeMarkup, syntax, config.Overrides{}, config.Overrides{})
	tree, err := abbr.Parse(source, abbr.ParseOptions{
		Variables:  cfg.Variables,
		MarkupHref: cfg.Options.MarkupHref,
	})
	if err != nil {
		t.Fatalf("Parse(%q): %v", source, err)
	}
	if err := marksnippet.Resolve(tree, cfg); err != nil {
		t.Fatalf("Resolve(%q): %v", source, err)
	}
	marktransform.Transform(tree, cfg)
	return markfmt.Format(tree, cfg)
}

func TestHTMLList(t *testing.T) {
	out := expand(t, "ul>li*3", config.SyntaxHTML)
	if strings.Count(out, "<li>") != 3 {
		t.Fatalf("expected 3 <li> tags, got:\n%s", out)
	}
	if !strings.Contains(out, "<ul>") || !strings.Contains(out, "</ul>") {
		t.Fatalf("expected wrapping <ul>...</ul>, got:\n%s", out)
	}
}

func TestHTMLSelfClosing(t *testing.T) {
	out := expand(t, "img[src]", config.SyntaxHTML)
	if !strings.Contains(out, "<img src=") {
		t.Fatalf("expected self-closing img tag, got:\n%s", out)
	}
}

func TestHAMLClassShorthand(t *testing.T) {
	out := expand(t, "div.foo", config.SyntaxHaml)
	if !strings.Contains(out, ".foo") || strings.Contains(out, "%div") {
		t.Fatalf("expected bare .foo without %%div, got:\n%s", out)
	}
}

func TestPugAttribute(t *testing.T) {
	out := expand(t, "a[href=/]", config.SyntaxPug)
	if !strings.Contains(out, `href="/"`) {
		t.Fatalf("expected href attribute in parens, got:\n%s", out)
	}
}

func TestSlimNesting(t *testing.T) {
	out := expand(t, "ul>li", config.SyntaxSlim)
	if !strings.Contains(out, "ul") || !strings.Contains(out, "li") {
		t.Fatalf("expected nested ul/li, got:\n%s", out)
	}
}
