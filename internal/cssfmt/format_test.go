package cssfmt_test

import (
	"strings"
	"testing"

	"github.com/emmetio/py-emmet/internal/config"
	"github.com/emmetio/py-emmet/internal/cssfmt"
	"github.com/emmetio/py-emmet/internal/cssparse"
	"github.com/emmetio/py-emmet/internal/cssresolve"
	"github.com/emmetio/py-emmet/internal/csstoken"
	"github.com/stretchr/testify/assert"
)

func expand(t *testing.T, source string) string {
	t.Helper()
	cfg := config.New(config.TypeStylesheet, config.SyntaxCSS, config.Overrides{}, config.Overrides{})

	tokens, err := csstoken.Tokenize(source, false)
	assert.NoError(t, err)

	props, err := cssparse.Parse(source, tokens, cssparse.Options{})
	assert.NoError(t, err)

	snippets, err := cssresolve.BuildSnippets(cfg.Snippets)
	assert.NoError(t, err)

	assert.NoError(t, cssresolve.Resolve(props, snippets.ForScope(cfg), cfg))

	return cssfmt.Format(props, cfg)
}

func TestPaddingShorthand(t *testing.T) {
	out := expand(t, "p10-20")
	assert.Contains(t, out, "padding")
	assert.Contains(t, out, "10px")
	assert.Contains(t, out, "20px")
}

func TestGradientShortcut(t *testing.T) {
	out := expand(t, "lg(red, blue)")
	assert.True(t, strings.Contains(out, "linear-gradient"))
	assert.True(t, strings.Contains(out, "background-image"))
}

func TestImportant(t *testing.T) {
	out := expand(t, "p10!")
	assert.Contains(t, out, "!important")
}
