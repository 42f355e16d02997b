package markfmt

import (
	"strings"

	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
	"github.com/emmetio/py-emmet/internal/outstream"
)

// templatePart is either literal text or a `[NAME]`-style placeholder
// naming an attribute to substitute, grounded on format/template.go.
type templatePart struct {
	text        string
	isPlacehold bool
	before      string
	after       string
	name        string
}

// parseTemplate splits a comment-before/after template string into
// literal and placeholder parts.
func parseTemplate(text string) []templatePart {
	var result []templatePart
	i := 0
	for i < len(text) {
		start := strings.IndexByte(text[i:], '[')
		if start < 0 {
			result = append(result, templatePart{text: text[i:]})
			break
		}
		start += i
		end := strings.IndexByte(text[start:], ']')
		if end < 0 {
			result = append(result, templatePart{text: text[i:]})
			break
		}
		end += start

		if start > i {
			result = append(result, templatePart{text: text[i:start]})
		}

		inner := text[start+1 : end]
		name, before, after := splitPlaceholder(inner)
		result = append(result, templatePart{isPlacehold: true, name: name, before: before, after: after})
		i = end + 1
	}
	return result
}

// splitPlaceholder pulls the uppercase attribute name out of a
// placeholder body like "#ID." or "%CLASS", keeping any leading/trailing
// decoration as before/after literal text.
func splitPlaceholder(inner string) (name, before, after string) {
	start := 0
	for start < len(inner) && !isNameChar(inner[start]) {
		start++
	}
	end := start
	for end < len(inner) && isNameChar(inner[end]) {
		end++
	}
	return inner[start:end], inner[:start], inner[end:]
}

func isNameChar(ch byte) bool {
	return ch == '_' || ch == '-' || (ch >= '0' && ch <= '9') || (ch >= 'A' && ch <= 'Z')
}

// shouldComment reports whether node should be wrapped in a trigger
// comment: comments are enabled, the node has a name, and it carries at
// least one of the configured trigger attributes.
func shouldComment(node *abbr.Node, cfg *config.Config) bool {
	if !cfg.Options.CommentEnabled || !node.HasName {
		return false
	}
	for _, attr := range node.Attributes {
		if contains(cfg.Options.CommentTrigger, attr.Name) {
			return true
		}
	}
	return false
}

func commentAttrs(node *abbr.Node) map[string]string {
	out := map[string]string{}
	for _, attr := range node.Attributes {
		out[strings.ToUpper(attr.Name)] = stringifyValue(attr.Value)
	}
	return out
}

func writeComment(out *outstream.Stream, template string, node *abbr.Node) {
	if template == "" {
		return
	}
	attrs := commentAttrs(node)
	for _, part := range parseTemplate(template) {
		if !part.isPlacehold {
			out.Push(part.text)
			continue
		}
		if value, ok := attrs[part.name]; ok && value != "" {
			out.Push(part.before + value + part.after)
		}
	}
}

func stringifyValue(value []abbr.ValuePart) string {
	var b strings.Builder
	for _, part := range value {
		if t, ok := part.(abbr.TextPart); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
