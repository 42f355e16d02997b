package outstream

import (
	"testing"

	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
)

func newTestConfig() *config.Config {
	return config.New(config.TypeMarkup, config.SyntaxHTML, config.Overrides{}, config.Overrides{})
}

func TestPushString(t *testing.T) {
	s := New(newTestConfig(), 1)
	s.PushString("foo\nbar")
	want := "foo\n\tbar"
	if got := s.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPushIndent(t *testing.T) {
	s := New(newTestConfig(), 2)
	s.PushIndent(2)
	if got := s.String(); got != "\t\t" {
		t.Errorf("got %q", got)
	}
}

func TestPushNewlineUsesLevel(t *testing.T) {
	s := New(newTestConfig(), 3)
	s.PushNewline(true)
	if got := s.String(); got != "\n\t\t\t" {
		t.Errorf("got %q", got)
	}
}

func TestPushField(t *testing.T) {
	s := New(newTestConfig(), 0)
	s.PushField(1, "foo")
	if got := s.String(); got != "foo" {
		t.Errorf("default field renderer should drop markers, got %q", got)
	}
}

func TestAttrQuoteExpression(t *testing.T) {
	cfg := newTestConfig()
	attr := &abbr.Attribute{Name: "class", ValueType: abbr.ValueExpression}
	if got := AttrQuote(attr, cfg, true); got != "{" {
		t.Errorf("got %q", got)
	}
	if got := AttrQuote(attr, cfg, false); got != "}" {
		t.Errorf("got %q", got)
	}
}

func TestAttrQuoteDefault(t *testing.T) {
	cfg := newTestConfig()
	attr := &abbr.Attribute{Name: "class"}
	if got := AttrQuote(attr, cfg, true); got != `"` {
		t.Errorf("got %q", got)
	}
}

func TestIsBooleanAttribute(t *testing.T) {
	cfg := newTestConfig()
	if !IsBooleanAttribute(&abbr.Attribute{Name: "disabled"}, cfg) {
		t.Error("disabled should be boolean by default table")
	}
	if IsBooleanAttribute(&abbr.Attribute{Name: "href"}, cfg) {
		t.Error("href should not be boolean")
	}
	if !IsBooleanAttribute(&abbr.Attribute{Name: "foo", Boolean: true}, cfg) {
		t.Error("explicit boolean flag should win regardless of name")
	}
}

func TestSelfClose(t *testing.T) {
	cfg := newTestConfig()
	cfg.Options.OutputSelfClosingStyle = config.SelfClosingXHTML
	if got := SelfClose(cfg); got != " /" {
		t.Errorf("got %q", got)
	}
	cfg.Options.OutputSelfClosingStyle = config.SelfClosingHTML
	if got := SelfClose(cfg); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestIsInline(t *testing.T) {
	cfg := newTestConfig()
	span := &abbr.Node{Name: "span", HasName: true}
	if !IsInline(span, cfg) {
		t.Error("span should be inline")
	}
	div := &abbr.Node{Name: "div", HasName: true}
	if IsInline(div, cfg) {
		t.Error("div should not be inline")
	}
	text := &abbr.Node{HasValue: true}
	if !IsInline(text, cfg) {
		t.Error("text-only node without attributes should be inline")
	}
}

func TestStrCase(t *testing.T) {
	if got := StrCase("Foo", config.TagCaseUp); got != "FOO" {
		t.Errorf("got %q", got)
	}
	if got := StrCase("Foo", config.TagCaseLow); got != "foo" {
		t.Errorf("got %q", got)
	}
	if got := StrCase("Foo", config.TagCaseAsIs); got != "Foo" {
		t.Errorf("got %q", got)
	}
}
