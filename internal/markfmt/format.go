package markfmt

import (
	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
)

// Format renders root according to cfg.Syntax, dispatching to the
// HAML/Pug/Slim indent formatter for those three syntaxes and to the
// tag-based HTML formatter for everything else (html, xhtml, xml, xsl,
// jsx all share the same output shape once marktransform has applied
// their syntax-specific node rewrites).
func Format(root *abbr.Abbreviation, cfg *config.Config) string {
	switch cfg.Syntax {
	case config.SyntaxHaml:
		return HAML(root, cfg)
	case config.SyntaxPug:
		return Pug(root, cfg)
	case config.SyntaxSlim:
		return Slim(root, cfg)
	default:
		return HTML(root, cfg)
	}
}
