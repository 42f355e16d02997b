package marktransform

import "github.com/emmetio/py-emmet/internal/abbr"

// Label drops a `label`'s empty `for` attribute and its paired
// `input`/`textarea`'s empty `id` attribute, since those are normally
// filled in by the field-tabstop renderer and left bare otherwise look
// like editing placeholders rather than real markup. Grounded on
// markup/addon/label.py.
func Label(node *abbr.Node) {
	if node.Name != "label" {
		return
	}
	input := find(node, func(n *abbr.Node) bool {
		return n.Name == "input" || n.Name == "textarea"
	})
	if input == nil {
		return
	}

	node.Attributes = dropEmptyAttr(node.Attributes, "for")
	input.Attributes = dropEmptyAttr(input.Attributes, "id")
}

func dropEmptyAttr(attrs []*abbr.Attribute, name string) []*abbr.Attribute {
	var kept []*abbr.Attribute
	for _, attr := range attrs {
		if attr.Name == name && isEmptyAttribute(attr) {
			continue
		}
		kept = append(kept, attr)
	}
	return kept
}

func isEmptyAttribute(attr *abbr.Attribute) bool {
	if len(attr.Value) == 0 {
		return true
	}
	if len(attr.Value) == 1 {
		if field, ok := attr.Value[0].(abbr.FieldPart); ok && field.Name == "" {
			return true
		}
	}
	return false
}
