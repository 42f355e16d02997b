package marktransform

import "github.com/emmetio/py-emmet/internal/abbr"

// XSL strips the `select` attribute from xsl:variable/xsl:with-param
// nodes once they gain children or an inline value, since XSL treats
// `select` and a body as mutually exclusive. Grounded on
// markup/addon/xsl.py.
func XSL(node *abbr.Node) {
	if !matchesXSLName(node.Name) || len(node.Attributes) == 0 {
		return
	}
	if len(node.Children) == 0 && !node.HasValue {
		return
	}

	var kept []*abbr.Attribute
	for _, attr := range node.Attributes {
		if attr.Name != "select" {
			kept = append(kept, attr)
		}
	}
	node.Attributes = kept
}

func matchesXSLName(name string) bool {
	return name == "xsl:variable" || name == "xsl:with-param"
}
