package marktransform

import (
	"strings"

	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
)

// elementMap resolves an unnamed node's implicit tag from its parent's
// tag name, e.g. a bare `.item` inside `ul` becomes `li.item`.
var elementMap = map[string]string{
	"p":        "span",
	"ul":       "li",
	"ol":       "li",
	"table":    "tr",
	"tr":       "td",
	"tbody":    "tr",
	"thead":    "tr",
	"tfoot":    "tr",
	"colgroup": "col",
	"select":   "option",
	"optgroup": "option",
	"audio":    "source",
	"video":    "source",
	"object":   "param",
	"map":      "area",
}

// ImplicitTag fills in node.Name when the user wrote only attributes
// (e.g. `.item`), choosing the tag based on the nearest enclosing
// element or the configured expansion context.
func ImplicitTag(node *abbr.Node, ancestors []*abbr.Node, cfg *config.Config) {
	if node.HasName || len(node.Attributes) == 0 {
		return
	}
	ResolveImplicitTag(node, ancestors, cfg)
}

// ResolveImplicitTag mirrors resolve_implicit_tag, also used directly by
// the lorem generator when it clears a node's own name.
func ResolveImplicitTag(node *abbr.Node, ancestors []*abbr.Node, cfg *config.Config) {
	parent := parentElement(ancestors)
	parentName := ""
	if parent != nil {
		parentName = strings.ToLower(parent.Name)
	} else if cfg.Context != nil {
		parentName = strings.ToLower(cfg.Context.Name)
	}

	if mapped, ok := elementMap[parentName]; ok {
		node.Name = mapped
	} else if isInlineName(parentName, cfg.Options) {
		node.Name = "span"
	} else {
		node.Name = "div"
	}
	node.HasName = true
}

// isInlineName reports whether name is configured as an inline element.
func isInlineName(name string, opts config.Options) bool {
	name = strings.ToLower(name)
	for _, el := range opts.InlineElements {
		if el == name {
			return true
		}
	}
	return false
}

// isInlineNode reports whether node would render inline: either its own
// tag is inline, or it is a text-only node without attributes.
func isInlineNode(node *abbr.Node, opts config.Options) bool {
	if node.HasName {
		return isInlineName(node.Name, opts)
	}
	return node.HasValue && len(node.Attributes) == 0
}
