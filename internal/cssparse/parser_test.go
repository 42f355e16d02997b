package cssparse_test

import (
	"testing"

	"github.com/emmetio/py-emmet/internal/cssparse"
	"github.com/emmetio/py-emmet/internal/csstoken"
)

func parse(t *testing.T, source string, opts cssparse.Options) []*cssparse.CSSProperty {
	t.Helper()
	toks, err := csstoken.Tokenize(source, opts.ValueMode)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", source, err)
	}
	props, err := cssparse.Parse(source, toks, opts)
	if err != nil {
		t.Fatalf("Parse(%q): %v", source, err)
	}
	return props
}

func TestParseNameAndValue(t *testing.T) {
	props := parse(t, "p10-20", cssparse.Options{})
	if len(props) != 1 || !props[0].HasName || props[0].Name != "p" {
		t.Fatalf("expected a single named property p, got %#v", props)
	}
	if len(props[0].Value) != 1 || len(props[0].Value[0].Value) != 2 {
		t.Fatalf("expected one value fragment holding 2 tokens (10 and 20), got %#v", props[0].Value)
	}
}

func TestParseImportantFlag(t *testing.T) {
	props := parse(t, "c#f!", cssparse.Options{})
	if len(props) != 1 || !props[0].Important {
		t.Fatalf("expected the important flag set, got %#v", props)
	}
}

func TestParseFunctionCall(t *testing.T) {
	props := parse(t, "lg(red, blue)", cssparse.Options{})
	if len(props) != 1 || len(props[0].Value) != 1 {
		t.Fatalf("expected one value, got %#v", props)
	}
	fn, ok := props[0].Value[0].Value[0].(cssparse.FunctionCall)
	if !ok || fn.Name != "lg" || len(fn.Arguments) != 2 {
		t.Fatalf("expected an lg(...) function call with 2 arguments, got %#v", props[0].Value[0])
	}
}

func TestParseValueModeSkipsNameExtraction(t *testing.T) {
	props := parse(t, "red", cssparse.Options{ValueMode: true})
	if len(props) != 1 || props[0].HasName {
		t.Fatalf("expected a nameless value-only property, got %#v", props)
	}
}

func TestParseMultipleSiblingProperties(t *testing.T) {
	props := parse(t, "c#f+bg#000", cssparse.Options{})
	if len(props) != 2 {
		t.Fatalf("expected 2 sibling properties, got %d", len(props))
	}
}
