package docscan

import "testing"

func TestScanCSSBasic(t *testing.T) {
	var kinds []CSSTokenType
	ScanCSS("a{color:red}", func(tokenType CSSTokenType, start, end, delimiter int) bool {
		kinds = append(kinds, tokenType)
		return true
	})

	want := []CSSTokenType{CSSSelector, CSSPropertyName, CSSPropertyValue, CSSBlockEnd}
	if len(kinds) != len(want) {
		t.Fatalf("got %v tokens, want %v", kinds, want)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("token %d = %v, want %v", i, kinds[i], k)
		}
	}
}

func TestCSSMatchProperty(t *testing.T) {
	source := "a{color:red}"
	pos := len("a{color:r")
	result := CSSMatch(source, pos)
	if result == nil {
		t.Fatal("expected a match")
	}
	if result.Type != "property" {
		t.Errorf("type = %q, want property", result.Type)
	}
	if source[result.BodyStart:result.BodyEnd] != "red" {
		t.Errorf("body = %q, want red", source[result.BodyStart:result.BodyEnd])
	}
}

func TestCSSMatchSelector(t *testing.T) {
	source := "a{color:red}"
	pos := len("a")
	result := CSSMatch(source, pos)
	if result == nil || result.Type != "selector" {
		t.Fatalf("got %+v, want a selector match", result)
	}
}

func TestSplitCSSValue(t *testing.T) {
	ranges := SplitCSSValue("1px solid red", 0)
	if len(ranges) != 3 {
		t.Fatalf("got %d ranges, want 3: %v", len(ranges), ranges)
	}
}

func TestScanHTMLBasic(t *testing.T) {
	type event struct {
		name string
		typ  ElementType
	}
	var events []event
	ScanHTML("<div><span>x</span></div>", nil, func(name string, elemType ElementType, start, end int) bool {
		events = append(events, event{name, elemType})
		return true
	})

	want := []event{
		{"div", ElementOpen},
		{"span", ElementOpen},
		{"span", ElementClose},
		{"div", ElementClose},
	}
	if len(events) != len(want) {
		t.Fatalf("got %v, want %v", events, want)
	}
	for i, w := range want {
		if events[i] != w {
			t.Errorf("event %d = %+v, want %+v", i, events[i], w)
		}
	}
}

func TestHTMLMatch(t *testing.T) {
	source := `<div class="a"><span>x</span></div>`
	pos := len(`<div class="a">`) + 1
	result := HTMLMatch(source, pos, DefaultScannerOptions())
	if result == nil {
		t.Fatal("expected a match")
	}
	if result.Name != "span" {
		t.Errorf("name = %q, want span", result.Name)
	}
	if result.Close == nil {
		t.Error("expected a close range")
	}
}

func TestHTMLBalancedOutward(t *testing.T) {
	source := "<div><span>x</span></div>"
	pos := len("<div><span>")
	tags := HTMLBalancedOutward(source, pos, DefaultScannerOptions())
	if len(tags) != 2 {
		t.Fatalf("got %d tags, want 2: %+v", len(tags), tags)
	}
	if tags[0].Name != "span" || tags[1].Name != "div" {
		t.Errorf("got %+v", tags)
	}
}

func TestAttributesParsing(t *testing.T) {
	attrs := Attributes(`<div class="a" id="b">`, "div")
	if len(attrs) != 2 {
		t.Fatalf("got %d attrs, want 2: %+v", len(attrs), attrs)
	}
	if attrs[0].Name != "class" || attrs[0].Value != `"a"` {
		t.Errorf("got %+v", attrs[0])
	}
	value, ok := AttributeValueOf(attrs, "id")
	if !ok || value != "b" {
		t.Errorf("id value = %q, ok=%v", value, ok)
	}
}

func TestSelfCloseTagTreatedAsEmpty(t *testing.T) {
	var typ ElementType
	ScanHTML(`<img src="a.png">`, nil, func(name string, elemType ElementType, start, end int) bool {
		typ = elemType
		return true
	})
	// ScanHTML itself doesn't know about the empty-element list; that's
	// applied by Match/BalancedOutward/BalancedInward via ScannerOptions.
	if typ != ElementOpen {
		t.Errorf("got %v, want ElementOpen (raw scan, pre-empty-list)", typ)
	}

	result := HTMLMatch(`<img src="a.png">`, 2, DefaultScannerOptions())
	if result == nil || result.Close != nil {
		t.Errorf("got %+v, want a self-closing match", result)
	}
}
