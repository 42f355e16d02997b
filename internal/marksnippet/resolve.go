// Package marksnippet resolves markup snippet references: a node whose
// name matches a registered snippet (e.g. "a" -> "a[href]") is replaced
// by the parsed, recursively-resolved snippet tree, with the original
// node's attributes and inline value grafted onto the result. Grounded
// on markup/snippets.py and markup/utils.py's walk/find_deepest helpers.
package marksnippet

import (
	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
)

// Resolve rewrites every node of root whose name matches a registered
// snippet, depth-first, guarding against self-referencing snippets (an
// element like "img" whose own snippet body is "img[src alt]/" must not
// recurse forever).
func Resolve(root *abbr.Abbreviation, cfg *config.Config) error {
	resolved, err := resolveChildren(root.Children, cfg, nil)
	if err != nil {
		return err
	}
	root.Children = resolved
	return nil
}

func resolveChildren(nodes []*abbr.Node, cfg *config.Config, stack []string) ([]*abbr.Node, error) {
	var result []*abbr.Node
	for _, n := range nodes {
		rs, err := resolveNode(n, cfg, stack)
		if err != nil {
			return nil, err
		}
		result = append(result, rs...)
	}
	return result, nil
}

func resolveNode(node *abbr.Node, cfg *config.Config, stack []string) ([]*abbr.Node, error) {
	snippet, ok := "", false
	if node.HasName {
		snippet, ok = cfg.Snippets[node.Name]
	}
	if !ok || contains(stack, snippet) {
		resolved, err := resolveChildren(node.Children, cfg, stack)
		if err != nil {
			return nil, err
		}
		node.Children = resolved
		return []*abbr.Node{node}, nil
	}

	parsed, err := abbr.Parse(snippet, abbr.ParseOptions{
		JSX:        cfg.Options.JSXEnabled,
		Variables:  cfg.Variables,
		MarkupHref: cfg.Options.MarkupHref,
	})
	if err != nil {
		return nil, err
	}

	nextStack := append(append([]string{}, stack...), snippet)
	resolvedChildren, err := resolveChildren(parsed.Children, cfg, nextStack)
	if err != nil {
		return nil, err
	}
	parsed.Children = resolvedChildren

	if len(parsed.Children) > 0 {
		deepest := deepestNode(parsed.Children[len(parsed.Children)-1])
		if deepest != nil {
			graftValue(deepest, node)

			ownChildren, err := resolveChildren(node.Children, cfg, nextStack)
			if err != nil {
				return nil, err
			}
			deepest.Children = append(deepest.Children, ownChildren...)
		}
	}

	if len(node.Attributes) > 0 {
		for _, top := range parsed.Children {
			if cfg.Options.OutputReverseAttrs {
				top.Attributes = append(append([]*abbr.Attribute{}, node.Attributes...), top.Attributes...)
			} else {
				top.Attributes = append(append([]*abbr.Attribute{}, top.Attributes...), node.Attributes...)
			}
		}
	}

	return parsed.Children, nil
}

// graftValue carries the user-written node's own inline value,
// self-closing marker and repeater onto the snippet's deepest resolved
// node, so e.g. `a{click here}` keeps its text after `a` expands to
// `a[href]`.
func graftValue(deepest, original *abbr.Node) {
	if original.SelfClosing {
		deepest.SelfClosing = true
	}
	if original.HasValue {
		deepest.Value = original.Value
		deepest.HasValue = true
	}
	if original.Repeat != nil {
		deepest.Repeat = original.Repeat
	}
}

func deepestNode(node *abbr.Node) *abbr.Node {
	for node != nil && len(node.Children) > 0 {
		node = node.Children[len(node.Children)-1]
	}
	return node
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
