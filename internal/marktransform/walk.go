// Package marktransform implements the post-snippet-resolution node
// transforms run over a markup tree before formatting: implicit tag
// resolution, attribute de-duplication, lorem-ipsum generation, and the
// BEM/JSX/XSL/label addons. Grounded on markup/implicit_tag.py,
// markup/attributes.py, markup/lorem/__init__.py,
// markup/addon/{bem,jsx,xsl,label}.py and markup/utils.py's walk.
package marktransform

import "github.com/emmetio/py-emmet/internal/abbr"

// Visitor is invoked once per node during a Walk, with ancestors holding
// every enclosing node from the tree root (exclusive) down to node's
// direct parent (inclusive).
type Visitor func(node *abbr.Node, ancestors []*abbr.Node)

// Walk visits every descendant of root depth-first, pre-order, mirroring
// markup/utils.py's walk() (which takes a node already structurally like
// an Abbreviation root: only children are visited, not root itself).
func Walk(root *abbr.Abbreviation, visit Visitor) {
	var ancestors []*abbr.Node
	var recur func(node *abbr.Node)
	recur = func(node *abbr.Node) {
		visit(node, ancestors)
		ancestors = append(ancestors, node)
		for _, child := range node.Children {
			recur(child)
		}
		ancestors = ancestors[:len(ancestors)-1]
	}
	for _, child := range root.Children {
		recur(child)
	}
}

// find returns the first node in the subtree rooted at node (node
// itself included) for which test returns true, grounded on
// markup/utils.py-adjacent `find` helper used by the label addon.
func find(node *abbr.Node, test func(*abbr.Node) bool) *abbr.Node {
	if test(node) {
		return node
	}
	for _, child := range node.Children {
		if found := find(child, test); found != nil {
			return found
		}
	}
	return nil
}

func parentElement(ancestors []*abbr.Node) *abbr.Node {
	if len(ancestors) == 0 {
		return nil
	}
	return ancestors[len(ancestors)-1]
}

func findRepeater(ancestors []*abbr.Node) *abbr.Repeat {
	for i := len(ancestors) - 1; i >= 0; i-- {
		if ancestors[i].Repeat != nil {
			return ancestors[i].Repeat
		}
	}
	return nil
}
