// Package markfmt renders a resolved markup tree to text: a block-aware
// HTML formatter and a shared indent-based formatter parameterized for
// HAML, Pug and Slim. Grounded on markup/format/{html,indent_format,
// utils,walk,comment,template}.py.
package markfmt

import (
	"regexp"
	"strings"

	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
	"github.com/emmetio/py-emmet/internal/outstream"
)

// caret is the default field token emitted in place of an empty value,
// so the caret lands inside the element the user just expanded.
var caret = []abbr.ValuePart{abbr.FieldPart{Index: 0}}

// isSnippet reports whether node carries neither a name nor attributes,
// meaning it only exists to hold a text value or group children.
func isSnippet(node *abbr.Node) bool {
	return !node.HasName && len(node.Attributes) == 0
}

// isInlineElement reports whether node should be considered inline for
// adjacency-based line-break decisions.
func isInlineElement(node *abbr.Node, cfg *config.Config) bool {
	return outstream.IsInline(node, cfg)
}

// pushTokens writes value through out, stringifying TextPart runs as-is
// and routing FieldPart runs through PushField with a field index
// offset by base. It returns the field index one past the largest one
// emitted (or base, if value had none).
func pushTokens(value []abbr.ValuePart, out *outstream.Stream, base int) int {
	next := base
	for _, part := range value {
		switch t := part.(type) {
		case abbr.TextPart:
			out.PushString(string(t))
		case abbr.FieldPart:
			index := base + t.Index
			out.PushField(index, t.Name)
			if index+1 > next {
				next = index + 1
			}
		}
	}
	return next
}

// splitByLines breaks value into one slice per source line, splitting
// TextPart runs on embedded newlines and leaving FieldPart runs intact.
func splitByLines(value []abbr.ValuePart) [][]abbr.ValuePart {
	var result [][]abbr.ValuePart
	var current []abbr.ValuePart

	for _, part := range value {
		text, ok := part.(abbr.TextPart)
		if !ok {
			current = append(current, part)
			continue
		}
		lines := strings.Split(string(text), "\n")
		for i, line := range lines {
			if i > 0 {
				result = append(result, current)
				current = nil
			}
			if line != "" {
				current = append(current, abbr.TextPart(line))
			}
		}
	}
	result = append(result, current)
	return result
}

// shouldOutputAttribute skips only an implied, raw-typed, empty-valued
// attribute: an implicit attribute nobody ever gave a value to.
func shouldOutputAttribute(attr *abbr.Attribute) bool {
	if !attr.Implied || attr.ValueType != abbr.ValueRaw {
		return true
	}
	return len(attr.Value) > 0
}

func valueLength(value []abbr.ValuePart) int {
	n := 0
	for _, part := range value {
		if t, ok := part.(abbr.TextPart); ok {
			n += len(string(t))
		}
	}
	return n
}

var reHTMLTag = regexp.MustCompile(`^<([\w:-]+)[\s>]`)

func startsWithBlockTag(text string, cfg *config.Config) bool {
	m := reHTMLTag.FindStringSubmatch(text)
	if m == nil {
		return false
	}
	return !outstream.IsInlineName(m[1], cfg)
}

func hasNewline(node *abbr.Node) bool {
	for _, part := range node.Value {
		if t, ok := part.(abbr.TextPart); ok && strings.Contains(string(t), "\n") {
			return true
		}
	}
	for _, c := range node.Children {
		if hasNewline(c) {
			return true
		}
	}
	return false
}

func isField(value []abbr.ValuePart) bool {
	if len(value) != 1 {
		return false
	}
	_, ok := value[0].(abbr.FieldPart)
	return ok
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
