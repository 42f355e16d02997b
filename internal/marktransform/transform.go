package marktransform

import (
	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
)

// Transform walks the resolved abbreviation tree and prepares every node
// for output: implicit tag resolution, attribute merging, lorem
// generation, and the syntax-conditional XSL/JSX/BEM addons. Grounded on
// markup/__init__.py's transform().
func Transform(root *abbr.Abbreviation, cfg *config.Config) {
	Walk(root, func(node *abbr.Node, ancestors []*abbr.Node) {
		ImplicitTag(node, ancestors, cfg)
		MergeAttributes(node, cfg)
		Lorem(node, ancestors, cfg)

		if cfg.Syntax == config.SyntaxXSL {
			XSL(node)
		}
		if cfg.Options.JSXEnabled {
			JSX(node)
		}
		if cfg.Options.BEMEnabled {
			BEM(node, ancestors, cfg)
		}

		Label(node)
	})
}
