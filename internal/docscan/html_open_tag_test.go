package docscan

import "testing"

func TestOpenTagAtFindsAttributes(t *testing.T) {
	code := `<div class="a" id="b">`
	tag, ok := OpenTagAt(code, 12, DefaultScannerOptions())
	if !ok {
		t.Fatalf("OpenTagAt(%q, 12) found nothing", code)
	}
	if tag.Name != "div" || tag.Type != ElementOpen {
		t.Fatalf("got %+v", tag)
	}
	if len(tag.Attributes) != 2 {
		t.Fatalf("got %d attrs, want 2: %+v", len(tag.Attributes), tag.Attributes)
	}
	if tag.Attributes[0].Name != "class" || code[tag.Attributes[0].ValueStart:tag.Attributes[0].ValueEnd] != `"a"` {
		t.Errorf("got %+v", tag.Attributes[0])
	}
}

func TestOpenTagAtOutsideAnyTag(t *testing.T) {
	if _, ok := OpenTagAt(`<div class="a"></div>`, 100, DefaultScannerOptions()); ok {
		t.Fatalf("expected no tag past the end of the source")
	}
}
