package emmet_test

import (
	"strings"
	"testing"

	"github.com/emmetio/py-emmet/pkg/emmet"
)

func TestExpandMarkupList(t *testing.T) {
	out, err := emmet.Expand("ul>li.item$*2", emmet.Config{}, emmet.Config{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if !strings.Contains(out, `class="item1"`) || !strings.Contains(out, `class="item2"`) {
		t.Fatalf("expected numbered item1/item2 classes, got %q", out)
	}
	if !strings.Contains(out, "<ul>") || !strings.Contains(out, "<li") {
		t.Fatalf("expected a ul>li tree, got %q", out)
	}
}

func TestExpandMarkupAutoHref(t *testing.T) {
	out, err := emmet.Expand("a", emmet.Config{
		HasText: true,
		Text:    emmet.PlainText("https://example.com"),
	}, emmet.Config{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if !strings.Contains(out, `href="https://example.com"`) {
		t.Fatalf("expected an auto-inserted href, got %q", out)
	}
}

func TestExpandMarkupRepeatedTextPlaceholder(t *testing.T) {
	out, err := emmet.Expand(`input[value="text$"]*2`, emmet.Config{}, emmet.Config{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if !strings.Contains(out, `value="text1"`) || !strings.Contains(out, `value="text2"`) {
		t.Fatalf("expected the $ placeholder numbered per repetition, got %q", out)
	}
}

func TestExpandStylesheetBorderShorthand(t *testing.T) {
	out, err := emmet.Expand("bd1-s#fc0", emmet.Config{Type: emmet.TypeStylesheet}, emmet.Config{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if out != "border: 1px solid #fc0;" {
		t.Fatalf("got %q", out)
	}
}

func TestExpandStylesheetColorAlpha(t *testing.T) {
	out, err := emmet.Expand("c#f.5", emmet.Config{Type: emmet.TypeStylesheet}, emmet.Config{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if out != "color: rgba(255, 255, 255, 0.5);" {
		t.Fatalf("got %q", out)
	}
}

func TestExpandMarkupBEM(t *testing.T) {
	out, err := emmet.Expand("div.block>div.-elem_mod", emmet.Config{
		Options: func(o *emmet.Options) { o.BEMEnabled = true },
	}, emmet.Config{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if !strings.Contains(out, `class="block__elem block__elem_mod"`) {
		t.Fatalf("expected BEM-expanded element+modifier classes, got:\n%s", out)
	}
}

func TestExpandJSXAttributeRenaming(t *testing.T) {
	out, err := emmet.Expand("div.foo", emmet.Config{Syntax: emmet.SyntaxJSX}, emmet.Config{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if !strings.Contains(out, "className") {
		t.Fatalf("expected class renamed to className under JSX, got %q", out)
	}
}

func TestExpandStylesheetWithCache(t *testing.T) {
	cache := emmet.NewCache()
	cfg := emmet.Config{Type: emmet.TypeStylesheet, Cache: cache}

	first, err := emmet.Expand("p10", cfg, emmet.Config{})
	if err != nil {
		t.Fatalf("Expand (first): %v", err)
	}
	second, err := emmet.Expand("p10", cfg, emmet.Config{})
	if err != nil {
		t.Fatalf("Expand (second): %v", err)
	}
	if first != second || first != "padding: 10px;" {
		t.Fatalf("expected consistent output across cached calls, got %q and %q", first, second)
	}
}

func TestExtractFindsAbbreviation(t *testing.T) {
	res, ok := emmet.Extract("div>ul>li", 9, emmet.ExtractOptions{Type: "markup"})
	if !ok {
		t.Fatal("expected an abbreviation to be found")
	}
	if res.Abbreviation != "div>ul>li" {
		t.Fatalf("got %q", res.Abbreviation)
	}
}

func TestExtractNoAbbreviation(t *testing.T) {
	if _, ok := emmet.Extract("   ", 2, emmet.ExtractOptions{Type: "markup"}); ok {
		t.Fatal("expected no abbreviation in blank text")
	}
}

func TestEvaluateMath(t *testing.T) {
	got, err := emmet.EvaluateMath("10+2*3")
	if err != nil {
		t.Fatalf("EvaluateMath: %v", err)
	}
	if got != 16 {
		t.Fatalf("got %v, want 16", got)
	}
}

func TestExtractMath(t *testing.T) {
	text := "width: 10+2*3"
	start, end, ok := emmet.ExtractMath(text, len(text))
	if !ok {
		t.Fatal("expected a math expression to be found")
	}
	if text[start:end] != "10+2*3" {
		t.Fatalf("got %q", text[start:end])
	}
}

func TestMatchMarkupTag(t *testing.T) {
	source := `<div class="a"><span>x</span></div>`
	pos := len(`<div class="a">`) + 1
	m, ok := emmet.Match(emmet.DocMarkup, source, pos)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Name != "span" {
		t.Fatalf("got %q", m.Name)
	}
}

func TestMatchStylesheetProperty(t *testing.T) {
	source := "a{color:red}"
	pos := len("a{color:r")
	m, ok := emmet.Match(emmet.DocStylesheet, source, pos)
	if !ok || m.Name != "property" {
		t.Fatalf("got %+v, ok=%v", m, ok)
	}
	if source[m.BodyStart:m.BodyEnd] != "red" {
		t.Fatalf("got body %q", source[m.BodyStart:m.BodyEnd])
	}
}

func TestBalancedOutwardMarkup(t *testing.T) {
	source := "<div><span>x</span></div>"
	pos := len("<div><span>")
	ranges := emmet.BalancedOutward(emmet.DocMarkup, source, pos)
	if len(ranges) != 2 {
		t.Fatalf("got %d ranges, want 2: %v", len(ranges), ranges)
	}
}

func TestCSSSectionAtWithProperties(t *testing.T) {
	source := ".a { color: red; }"
	section, ok := emmet.CSSSectionAt(source, 8, true)
	if !ok {
		t.Fatalf("expected a section")
	}
	if section.Start != 0 || section.End != len(source) {
		t.Fatalf("got %+v", section)
	}
	if len(section.Properties) != 1 {
		t.Fatalf("got %d properties, want 1: %+v", len(section.Properties), section.Properties)
	}
	prop := section.Properties[0]
	if source[prop.Name[0]:prop.Name[1]] != "color" || source[prop.Value[0]:prop.Value[1]] != "red" {
		t.Fatalf("got %+v", prop)
	}
}

func TestHTMLAttributeAtFindsValue(t *testing.T) {
	source := `<div class="a" id="b">`
	attr, ok := emmet.HTMLAttributeAt(source, 12)
	if !ok {
		t.Fatalf("expected an attribute")
	}
	if attr.TagName != "div" || attr.Name != "class" || source[attr.ValueStart:attr.ValueEnd] != `"a"` {
		t.Fatalf("got %+v", attr)
	}
}

func TestHTMLAttributeAtOutsideTag(t *testing.T) {
	if _, ok := emmet.HTMLAttributeAt(`<div class="a"></div>`, 100); ok {
		t.Fatalf("expected no attribute past the end of the source")
	}
}
