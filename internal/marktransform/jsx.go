package marktransform

import "github.com/emmetio/py-emmet/internal/abbr"

// JSX renames `class`/`for` attributes to their JSX equivalents
// `className`/`htmlFor`. Grounded on markup/addon/jsx.py.
func JSX(node *abbr.Node) {
	for _, attr := range node.Attributes {
		switch attr.Name {
		case "class":
			attr.Name = "className"
		case "for":
			attr.Name = "htmlFor"
		}
	}
}
