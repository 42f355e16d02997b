package marktransform_test

import (
	"strings"
	"testing"

	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
	"github.com/emmetio/py-emmet/internal/markfmt"
	"github.com/emmetio/py-emmet/internal/marksnippet"
	"github.com/emmetio/py-emmet/internal/marktransform"
)

func transform(t *testing.T, source string, patch func(*config.Options)) string {
	t.Helper()
	cfg := config.New(config.TypeMarkup, config.SyntaxHTML, config.Overrides{}, config.Overrides{Options: patch})
	tree, err := abbr.Parse(source, abbr.ParseOptions{Variables: cfg.Variables, MarkupHref: cfg.Options.MarkupHref})
	if err != nil {
		t.Fatalf("Parse(%q): %v", source, err)
	}
	if err := marksnippet.Resolve(tree, cfg); err != nil {
		t.Fatalf("Resolve(%q): %v", source, err)
	}
	marktransform.Transform(tree, cfg)
	return markfmt.Format(tree, cfg)
}

func TestImplicitTagInsideList(t *testing.T) {
	out := transform(t, "ul>.item", nil)
	if !strings.Contains(out, "<li class=\"item\">") {
		t.Fatalf("expected implicit <li> tag, got:\n%s", out)
	}
}

func TestImplicitTagDefaultsToDiv(t *testing.T) {
	out := transform(t, ".box", nil)
	if !strings.Contains(out, "<div class=\"box\">") {
		t.Fatalf("expected a bare .box to default to div, got:\n%s", out)
	}
}

func TestBEMExpandsBlockAndModifier(t *testing.T) {
	out := transform(t, ".b_m", func(o *config.Options) { o.BEMEnabled = true })
	if !strings.Contains(out, `class="b b_m"`) {
		t.Fatalf("expected BEM block+modifier classes, got:\n%s", out)
	}
}

func TestJSXRenamesClassAndFor(t *testing.T) {
	out := transform(t, "label[for=x].icon", func(o *config.Options) { o.JSXEnabled = true })
	if !strings.Contains(out, "htmlFor") || strings.Contains(out, " for=") {
		t.Fatalf("expected htmlFor in place of for, got:\n%s", out)
	}
	if !strings.Contains(out, "className") {
		t.Fatalf("expected className in place of class, got:\n%s", out)
	}
}

func TestLoremGeneratesWords(t *testing.T) {
	out := transform(t, "p>lorem5", nil)
	if strings.Contains(out, "lorem5") {
		t.Fatalf("expected lorem placeholder replaced with generated text, got:\n%s", out)
	}
	if strings.Count(out, " ") < 3 {
		t.Fatalf("expected several generated words, got:\n%s", out)
	}
}

func TestXSLDropsSelectWhenNodeHasChildren(t *testing.T) {
	cfg := config.New(config.TypeMarkup, config.SyntaxXSL, config.Overrides{}, config.Overrides{})
	tree, err := abbr.Parse(`xsl:variable[select=foo]>span`, abbr.ParseOptions{Variables: cfg.Variables})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := marksnippet.Resolve(tree, cfg); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	marktransform.Transform(tree, cfg)
	out := markfmt.Format(tree, cfg)
	if strings.Contains(out, "select=") {
		t.Fatalf("expected select attribute dropped once the node has children, got:\n%s", out)
	}
}

func TestAttributeMergeConcatenatesClasses(t *testing.T) {
	out := transform(t, "div.a.b", nil)
	if !strings.Contains(out, `class="a b"`) {
		t.Fatalf("expected merged class list, got:\n%s", out)
	}
}
