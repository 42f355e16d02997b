package cssresolve_test

import (
	"testing"

	"github.com/emmetio/py-emmet/internal/config"
	"github.com/emmetio/py-emmet/internal/cssfmt"
	"github.com/emmetio/py-emmet/internal/cssparse"
	"github.com/emmetio/py-emmet/internal/cssresolve"
	"github.com/emmetio/py-emmet/internal/csstoken"
)

func expand(t *testing.T, source string) string {
	t.Helper()
	cfg := config.New(config.TypeStylesheet, config.SyntaxCSS, config.Overrides{}, config.Overrides{})

	snippets, err := cssresolve.BuildSnippets(cfg.Snippets)
	if err != nil {
		t.Fatalf("BuildSnippets: %v", err)
	}

	isValue := cssresolve.IsValueScope(cfg)
	toks, err := csstoken.Tokenize(source, isValue)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", source, err)
	}
	props, err := cssparse.Parse(source, toks, cssparse.Options{ValueMode: isValue})
	if err != nil {
		t.Fatalf("Parse(%q): %v", source, err)
	}
	if err := cssresolve.Resolve(props, snippets.ForScope(cfg), cfg); err != nil {
		t.Fatalf("Resolve(%q): %v", source, err)
	}
	return cssfmt.Format(props, cfg)
}

func TestResolveBorderShorthand(t *testing.T) {
	got := expand(t, "bd1-s#fc0")
	if got != "border: 1px solid #fc0;" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveColorWithAlpha(t *testing.T) {
	got := expand(t, "c#f.5")
	if got != "color: rgba(255, 255, 255, 0.5);" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveDefaultUnit(t *testing.T) {
	got := expand(t, "p10")
	if got != "padding: 10px;" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveUnitlessPropertyKeepsBareNumber(t *testing.T) {
	got := expand(t, "z10")
	if got != "z-index: 10;" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveGradientShortcut(t *testing.T) {
	got := expand(t, "lg(red, blue)")
	if got != "background-image: linear-gradient(red, blue);" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveUnmatchedAbbreviationSkipped(t *testing.T) {
	cfg := config.New(config.TypeStylesheet, config.SyntaxCSS, config.Overrides{}, config.Overrides{
		Options: func(o *config.Options) { o.StylesheetSkipUnmatched = true },
	})
	snippets, err := cssresolve.BuildSnippets(cfg.Snippets)
	if err != nil {
		t.Fatalf("BuildSnippets: %v", err)
	}
	toks, err := csstoken.Tokenize("zzzznotaprop10", false)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	props, err := cssparse.Parse("zzzznotaprop10", toks, cssparse.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := cssresolve.Resolve(props, snippets.ForScope(cfg), cfg); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if props[0].Snippet != nil {
		t.Fatalf("expected no snippet match for a nonsense abbreviation, got %#v", props[0].Snippet)
	}
	if got := cssfmt.Format(props, cfg); got != "" {
		t.Fatalf("expected skipUnmatched to drop the property, got %q", got)
	}
}
