// Package cssfmt renders a resolved list of CSS properties back to
// stylesheet text, including the CSS-in-JS/JSON object-literal mode.
// Grounded on stylesheet/format.py.
package cssfmt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/emmetio/py-emmet/internal/config"
	"github.com/emmetio/py-emmet/internal/csscolor"
	"github.com/emmetio/py-emmet/internal/cssparse"
	"github.com/emmetio/py-emmet/internal/csssnippets"
	"github.com/emmetio/py-emmet/internal/csstoken"
	"github.com/emmetio/py-emmet/internal/outstream"
)

// Format renders props as stylesheet declarations, one per line,
// skipping unmatched abbreviations when the config asks for it.
func Format(props []*cssparse.CSSProperty, cfg *config.Config) string {
	out := outstream.New(cfg, 0)

	filtered := props
	if cfg.Options.StylesheetSkipUnmatched {
		filtered = nil
		for _, p := range props {
			if p.Snippet != nil {
				filtered = append(filtered, p)
			}
		}
	}

	field := 1
	for i, p := range filtered {
		if i > 0 {
			out.PushNewline(false)
		}
		field = pushProperty(p, out, cfg, field)
	}

	return out.String()
}

func pushProperty(node *cssparse.CSSProperty, out *outstream.Stream, cfg *config.Config, field int) int {
	if snip, ok := node.Snippet.(*csssnippets.Property); ok && node.HasName {
		_ = snip
		name := node.Name
		if cfg.Options.StylesheetJSON {
			name = toCamelCase(name)
		}
		out.Push(name)
		if len(node.Value) == 0 {
			out.PushField(field, "")
			field++
			return field
		}
		out.Push(cfg.Options.StylesheetBetween)
		field = pushValue(node, out, cfg, field)
		pushImportant(node, out)
		out.Push(cfg.Options.StylesheetAfter)
		return field
	}

	// Unnamed or raw-snippet node: emit its value tokens directly.
	field = pushValue(node, out, cfg, field)
	pushImportant(node, out)
	if node.HasName || len(node.Value) > 0 {
		out.Push(cfg.Options.StylesheetAfter)
	}
	return field
}

func pushImportant(node *cssparse.CSSProperty, out *outstream.Stream) {
	if node.Important {
		out.Push(" !important")
	}
}

func pushValue(node *cssparse.CSSProperty, out *outstream.Stream, cfg *config.Config, field int) int {
	if cfg.Options.StylesheetJSON {
		return pushJSONValue(node, out, cfg, field)
	}

	var prevEnd = -1
	for vi, v := range node.Value {
		if vi > 0 {
			out.Push(" ")
		}
		field = pushTokenList(v.Value, out, cfg, field, &prevEnd)
	}
	return field
}

func pushJSONValue(node *cssparse.CSSProperty, out *outstream.Stream, cfg *config.Config, field int) int {
	if single, ok := getSingleNumeric(node); ok {
		out.Push(strconv.FormatFloat(single, 'f', -1, 64))
		return field
	}

	quote := `'`
	if cfg.Options.StylesheetJSONDoubleQuotes {
		quote = `"`
	}

	parts := make([]string, 0, len(node.Value))
	for _, v := range node.Value {
		prevEnd := -1
		sub := outstream.New(cfg, 0)
		field = pushTokenList(v.Value, sub, cfg, field, &prevEnd)
		parts = append(parts, sub.String())
	}
	out.Push(quote + strings.Join(parts, " ") + quote)
	return field
}

// getSingleNumeric reports the bare numeric px value when node's value
// is exactly one unitless-or-px number, the JSON shortcut for e.g.
// `width: 10` instead of `width: '10px'`.
func getSingleNumeric(node *cssparse.CSSProperty) (float64, bool) {
	if len(node.Value) != 1 || len(node.Value[0].Value) != 1 {
		return 0, false
	}
	num, ok := node.Value[0].Value[0].(csstoken.NumberValue)
	if !ok || (num.Unit != "" && num.Unit != "px") {
		return 0, false
	}
	return num.Value, true
}

func pushTokenList(tokens []any, out *outstream.Stream, cfg *config.Config, field int, prevEnd *int) int {
	for _, tok := range tokens {
		field = pushToken(tok, out, cfg, field, prevEnd)
	}
	return field
}

func pushToken(tok any, out *outstream.Stream, cfg *config.Config, field int, prevEnd *int) int {
	switch t := tok.(type) {
	case csstoken.ColorValue:
		maybeSpace(out, t.Start, prevEnd)
		out.Push(csscolor.Format(t, cfg.Options.StylesheetShortHex))
		*prevEnd = t.End
	case csstoken.Literal:
		maybeSpace(out, t.Start, prevEnd)
		out.Push(t.Value)
		*prevEnd = t.End
	case csstoken.NumberValue:
		maybeSpace(out, t.Start, prevEnd)
		out.Push(frac(t.Value, 4) + t.Unit)
		*prevEnd = t.End
	case csstoken.StringValue:
		maybeSpace(out, t.Start, prevEnd)
		q := `"`
		if t.Quote == "single" {
			q = "'"
		}
		out.Push(q + t.Value + q)
		*prevEnd = t.End
	case csstoken.Field:
		idx := field + t.Index
		out.PushField(idx, t.Name)
		if idx+1 > field {
			field = idx + 1
		}
	case cssparse.FunctionCall:
		out.Push(t.Name + "(")
		for i, arg := range t.Arguments {
			if i > 0 {
				out.Push(", ")
			}
			inner := -1
			field = pushTokenList(arg.Value, out, cfg, field, &inner)
		}
		out.Push(")")
	}
	return field
}

// maybeSpace inserts a space before a token only when it isn't glued to
// the previous one (i.e. there was a gap in the source), so adjacent
// function arguments like `rgb(0,0,0)` don't grow stray whitespace.
func maybeSpace(out *outstream.Stream, start int, prevEnd *int) {
	if *prevEnd >= 0 && start > *prevEnd {
		out.Push(" ")
	}
}

var reDash = regexp.MustCompile(`-(\w)`)

func toCamelCase(name string) string {
	return reDash.ReplaceAllStringFunc(name, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

func frac(num float64, digits int) string {
	s := strconv.FormatFloat(num, 'f', digits, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}
