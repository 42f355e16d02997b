package abbr

import (
	"github.com/emmetio/py-emmet/internal/marktoken"
	"github.com/emmetio/py-emmet/internal/markparse"
)

// ParseOptions configures a full tokenize+parse+convert pass over a raw
// abbreviation string, equivalent to markup/__init__.py's inner call to
// the `abbreviation()` parse helper.
type ParseOptions struct {
	JSX        bool
	HasText    bool
	Text       Text
	Variables  map[string]string
	MaxRepeat  int
	MarkupHref bool
}

// Parse runs the full markup pipeline (tokenize, parse, convert) over a
// single abbreviation source string. It is used both for the top-level
// user abbreviation and for re-parsing snippet bodies during snippet
// resolution.
func Parse(source string, opts ParseOptions) (*Abbreviation, error) {
	tokens, err := marktoken.Tokenize(source)
	if err != nil {
		return nil, err
	}
	tree, err := markparse.Parse(source, tokens, markparse.Options{JSX: opts.JSX})
	if err != nil {
		return nil, err
	}
	return Convert(tree, Params{
		HasText:    opts.HasText,
		Text:       opts.Text,
		Variables:  opts.Variables,
		MaxRepeat:  opts.MaxRepeat,
		MarkupHref: opts.MarkupHref,
	})
}
