// Package outstream implements the indent/newline/field-aware text sink
// every formatter writes through: plain pushes, line-wrapped string
// pushes that track line/column state, and tab-stop field markers.
// Grounded on output_stream.py.
package outstream

import (
	"strings"

	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
)

// Stream accumulates formatted output while tracking enough position
// state (offset, line, column) for a config's text/field processors to
// use, and a nesting Level that PushNewline reads by default.
type Stream struct {
	Level  int
	Offset int
	Line   int
	Column int

	cfg     *config.Config
	builder strings.Builder
}

// New creates a Stream at the given nesting level.
func New(cfg *config.Config, level int) *Stream {
	return &Stream{cfg: cfg, Level: level}
}

// String returns everything pushed so far.
func (s *Stream) String() string {
	return s.builder.String()
}

// push appends text without running it through the text processor.
func (s *Stream) push(text string) {
	s.builder.WriteString(text)
	s.Offset += len(text)
	s.Column += len(text)
}

// Push appends plain text, routed through the config's output.text
// processor, without newline handling.
func (s *Stream) Push(text string) {
	processed := text
	if s.cfg.Options.OutputText != nil {
		processed = s.cfg.Options.OutputText(text)
	}
	s.push(processed)
}

// PushString pushes value, splitting on embedded newlines and routing
// each line break through PushNewline so line/column state stays
// accurate.
func (s *Stream) PushString(value string) {
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		if i > 0 {
			s.PushNewline(true)
		}
		s.Push(line)
	}
}

// PushNewline pushes a newline plus the config's base indent. If indent
// is true it also pushes the stream's current Level of indentation.
func (s *Stream) PushNewline(indent bool) {
	s.pushNewlineIndent(indent, s.Level)
}

// PushNewlineIndent is like PushNewline but with an explicit indent size
// instead of the stream's current Level.
func (s *Stream) PushNewlineIndent(size int) {
	s.pushNewlineIndent(true, size)
}

func (s *Stream) pushNewlineIndent(indent bool, size int) {
	baseIndent := s.cfg.Options.OutputBaseIndent
	newline := s.cfg.Options.OutputNewline
	s.Push(newline + baseIndent)
	s.Line++
	s.Column = len(baseIndent)
	if indent {
		s.PushIndent(size)
	}
}

// PushIndent pushes size levels of the config's indent string, clamped
// to zero.
func (s *Stream) PushIndent(size int) {
	if size < 0 {
		size = 0
	}
	s.Push(strings.Repeat(s.cfg.Options.OutputIndent, size))
}

// PushField pushes a tab-stop field marker, routed through the config's
// output.field renderer. Uses the raw push, not Push, so the field
// renderer's own output bypasses the text processor.
func (s *Stream) PushField(index int, placeholder string) {
	render := s.cfg.Options.OutputField
	if render == nil {
		render = func(_ int, ph string) string { return ph }
	}
	s.push(render(index, placeholder))
}

// TagName formats name per the config's output.tagCase.
func TagName(name string, cfg *config.Config) string {
	return StrCase(name, cfg.Options.OutputTagCase)
}

// AttrName formats name per the config's output.attributeCase.
func AttrName(name string, cfg *config.Config) string {
	return StrCase(name, cfg.Options.OutputAttributeCase)
}

// AttrQuote returns the quote character to wrap attr's value in.
// isOpen distinguishes the opening brace from the closing one for
// expression-valued attributes.
func AttrQuote(attr *abbr.Attribute, cfg *config.Config, isOpen bool) string {
	if attr.ValueType == abbr.ValueExpression {
		if isOpen {
			return "{"
		}
		return "}"
	}
	if cfg.Options.OutputAttributeQuotes == config.QuoteSingle {
		return "'"
	}
	return `"`
}

// IsBooleanAttribute reports whether attr should render without a value,
// either because it was parsed as boolean (trailing `.`) or because its
// name is in the config's boolean attribute list.
func IsBooleanAttribute(attr *abbr.Attribute, cfg *config.Config) bool {
	if attr.Boolean {
		return true
	}
	name := strings.ToLower(attr.Name)
	for _, b := range cfg.Options.OutputBooleanAttrs {
		if b == name {
			return true
		}
	}
	return false
}

// SelfClose returns the token used to close a self-closing tag, per the
// config's output.selfClosingStyle.
func SelfClose(cfg *config.Config) string {
	switch cfg.Options.OutputSelfClosingStyle {
	case config.SelfClosingXHTML:
		return " /"
	case config.SelfClosingXML:
		return "/"
	default:
		return ""
	}
}

// IsInlineName reports whether name is registered as an inline element.
func IsInlineName(name string, cfg *config.Config) bool {
	lower := strings.ToLower(name)
	for _, el := range cfg.Options.InlineElements {
		if el == lower {
			return true
		}
	}
	return false
}

// IsInline reports whether node is inline: either it has a name that is
// itself inline, or it's a text-only node with no attributes.
func IsInline(node *abbr.Node, cfg *config.Config) bool {
	if node.HasName {
		return IsInlineName(node.Name, cfg)
	}
	return node.HasValue && len(node.Attributes) == 0
}

// StrCase upper- or lower-cases text, or leaves it untouched when
// caseType is empty.
func StrCase(text string, caseType config.TagCase) string {
	switch caseType {
	case config.TagCaseUp:
		return strings.ToUpper(text)
	case config.TagCaseLow:
		return strings.ToLower(text)
	default:
		return text
	}
}
