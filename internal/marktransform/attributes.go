package marktransform

import (
	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
)

// MergeAttributes de-duplicates a node's attributes by name, joining
// repeated `class` values with a space and letting later declarations of
// any other attribute win (subject to output.reverseAttributes).
func MergeAttributes(node *abbr.Node, cfg *config.Config) {
	if len(node.Attributes) == 0 {
		return
	}

	var result []*abbr.Attribute
	lookup := map[string]*abbr.Attribute{}

	for _, attr := range node.Attributes {
		if attr.Name == "" {
			result = append(result, attr)
			continue
		}
		if prev, ok := lookup[attr.Name]; ok {
			if attr.Name == "class" {
				prev.Value = mergeValue(prev.Value, attr.Value, " ")
			} else {
				mergeDeclarations(prev, attr, cfg)
			}
		} else {
			copy := *attr
			lookup[attr.Name] = &copy
			result = append(result, &copy)
		}
	}

	node.Attributes = result
}

// mergeValue concatenates two value-part lists, merging adjacent
// TextPart runs together and inserting glue only when both sides have
// content.
func mergeValue(prev, next []abbr.ValuePart, glue string) []abbr.ValuePart {
	if prev == nil && next == nil {
		return nil
	}
	if prev == nil {
		return append([]abbr.ValuePart{}, next...)
	}
	if next == nil {
		return append([]abbr.ValuePart{}, prev...)
	}

	result := append([]abbr.ValuePart{}, prev...)
	if len(result) > 0 && glue != "" {
		result = appendTextPart(result, glue)
	}
	for _, part := range next {
		if tp, ok := part.(abbr.TextPart); ok {
			result = appendTextPart(result, string(tp))
		} else {
			result = append(result, part)
		}
	}
	return result
}

func appendTextPart(parts []abbr.ValuePart, text string) []abbr.ValuePart {
	if len(parts) > 0 {
		if last, ok := parts[len(parts)-1].(abbr.TextPart); ok {
			parts[len(parts)-1] = last + abbr.TextPart(text)
			return parts
		}
	}
	return append(parts, abbr.TextPart(text))
}

func mergeDeclarations(dest, src *abbr.Attribute, cfg *config.Config) {
	dest.Name = src.Name
	if !cfg.Options.OutputReverseAttrs {
		dest.Value = src.Value
	}
	if !dest.Implied {
		dest.Implied = src.Implied
	}
	if !dest.Boolean {
		dest.Boolean = src.Boolean
	}
	if dest.ValueType != abbr.ValueExpression {
		dest.ValueType = src.ValueType
	}
}
