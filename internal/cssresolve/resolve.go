// Package cssresolve resolves a parsed CSS abbreviation tree against a
// config's snippet table: fuzzy-matching property/keyword names,
// expanding the `lg` gradient shortcut, filling in numeric units, and
// wrapping auto-inserted default values in tab-stop fields. Grounded on
// stylesheet/__init__.py.
package cssresolve

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/emmetio/py-emmet/internal/config"
	"github.com/emmetio/py-emmet/internal/csscolor"
	"github.com/emmetio/py-emmet/internal/cssparse"
	"github.com/emmetio/py-emmet/internal/cssscope"
	"github.com/emmetio/py-emmet/internal/csssnippets"
	"github.com/emmetio/py-emmet/internal/csstoken"
	"github.com/emmetio/py-emmet/internal/fuzzy"
)

const gradientName = "lg"

// Snippets is the nested, scope-filtered snippet index built once per
// Config and reused across properties.
type Snippets struct {
	all []csssnippets.Snippet
}

// BuildSnippets converts a Config's raw snippet table into a resolver
// index, nesting shorthand/longhand property dependencies.
func BuildSnippets(raw map[string]string) (*Snippets, error) {
	var created []csssnippets.Snippet
	for k, v := range raw {
		s, err := csssnippets.Create(k, v)
		if err != nil {
			return nil, err
		}
		created = append(created, s)
	}
	return &Snippets{all: csssnippets.Nest(created)}, nil
}

// ForScope narrows the index down to the snippets valid in cfg's
// current context (a bare stylesheet section, a property name
// position, or a property value position).
func (s *Snippets) ForScope(cfg *config.Config) []csssnippets.Snippet {
	if cfg.Context != nil {
		switch cfg.Context.Name {
		case string(cssscope.Section):
			return filterByKind(s.all, csssnippets.KindRaw)
		case string(cssscope.Property):
			return filterByKind(s.all, csssnippets.KindProperty)
		}
	}
	return s.all
}

func filterByKind(all []csssnippets.Snippet, kind csssnippets.Kind) []csssnippets.Snippet {
	var out []csssnippets.Snippet
	for _, s := range all {
		if s.Kind() == kind {
			out = append(out, s)
		}
	}
	return out
}

// IsValueScope reports whether the abbreviation should resolve as a
// property value rather than a property/selector name.
func IsValueScope(cfg *config.Config) bool {
	if cfg.Context != nil {
		return cfg.Context.Name == string(cssscope.Value) || !strings.HasPrefix(cfg.Context.Name, "@@")
	}
	return false
}

// Resolve resolves every property of an already-parsed abbreviation
// tree in place, grounded on resolve_node.
func Resolve(props []*cssparse.CSSProperty, snippets []csssnippets.Snippet, cfg *config.Config) error {
	for _, prop := range props {
		if err := resolveNode(prop, snippets, cfg); err != nil {
			return err
		}
	}
	return nil
}

func resolveNode(node *cssparse.CSSProperty, snippets []csssnippets.Snippet, cfg *config.Config) error {
	if !resolveGradient(node, cfg) {
		score := cfg.Options.StylesheetFuzzySearchMinScore
		if IsValueScope(cfg) {
			propName := ""
			if cfg.Context != nil {
				propName = cfg.Context.Name
			}
			var propSnippet *csssnippets.Property
			for _, s := range snippets {
				if p, ok := s.(*csssnippets.Property); ok && p.PropertyName == propName {
					propSnippet = p
					break
				}
			}
			resolveValueKeywords(node, cfg, propSnippet, score)
			if propSnippet != nil {
				node.Snippet = propSnippet
			}
		} else if node.HasName {
			matched := findBestSnippet(node.Name, snippets, score, true)
			node.Snippet = matched
			if matched != nil {
				switch snip := matched.(type) {
				case *csssnippets.Property:
					resolveAsProperty(node, snip, cfg)
				case *csssnippets.Raw:
					resolveAsSnippet(node, snip)
				}
			}
		}
	}

	if node.HasName || cfg.Context != nil {
		resolveNumericValue(node, cfg)
	}

	return nil
}

func resolveGradient(node *cssparse.CSSProperty, cfg *config.Config) bool {
	var gradientFn *cssparse.FunctionCall

	if len(node.Value) == 1 && len(node.Value[0].Value) == 1 {
		if fn, ok := node.Value[0].Value[0].(cssparse.FunctionCall); ok && fn.Name == gradientName {
			gradientFn = &fn
		}
	}

	if gradientFn == nil && node.Name != gradientName {
		return false
	}

	var args []*cssparse.CSSValue
	if gradientFn != nil {
		args = gradientFn.Arguments
	} else {
		args = []*cssparse.CSSValue{{Value: []any{csstoken.Field{Name: "", HasIndex: true, Index: 0}}}}
	}

	call := cssparse.FunctionCall{Name: "linear-gradient", Arguments: args}

	if cfg.Context == nil {
		node.Name = "background-image"
		node.HasName = true
	}
	node.Value = []*cssparse.CSSValue{{Value: []any{call}}}
	node.Snippet = true
	return true
}

func resolveAsProperty(node *cssparse.CSSProperty, snippet *csssnippets.Property, cfg *config.Config) {
	abbr := node.Name
	inlineValue := fuzzy.UnmatchedPart(abbr, snippet.KeyName)
	node.Name = snippet.PropertyName

	if inlineValue != "" {
		if len(node.Value) > 0 {
			node.Name = abbr
			node.Snippet = nil
			return
		}
		kw := resolveKeyword(inlineValue, cfg, snippet, 0)
		if kw == nil {
			if cfg.Options.StylesheetSkipUnmatched {
				node.Snippet = nil
			}
			return
		}
		node.Value = append(node.Value, &cssparse.CSSValue{Value: []any{kw}})
	}

	if len(node.Value) > 0 {
		resolveValueKeywords(node, cfg, snippet, 0)
	} else if len(snippet.Value) > 0 {
		defaultValue := snippet.Value[0]
		if len(snippet.Value) == 1 || anyHasField(defaultValue) {
			node.Value = defaultValue
		} else {
			state := &wrapState{index: 1}
			wrapped := make([]*cssparse.CSSValue, len(defaultValue))
			for i, v := range defaultValue {
				wrapped[i] = wrapWithField(v, cfg, state)
			}
			node.Value = wrapped
		}
	}
}

func resolveValueKeywords(node *cssparse.CSSProperty, cfg *config.Config, snippet *csssnippets.Property, minScore float64) {
	for _, cssVal := range node.Value {
		value := make([]any, 0, len(cssVal.Value))
		for _, tok := range cssVal.Value {
			switch t := tok.(type) {
			case csstoken.Literal:
				if kw := resolveKeyword(t.Value, cfg, snippet, minScore); kw != nil {
					value = append(value, kw)
				} else {
					value = append(value, t)
				}
			case cssparse.FunctionCall:
				match := resolveKeyword(t.Name, cfg, snippet, minScore)
				if mfn, ok := match.(cssparse.FunctionCall); ok {
					args := append(append([]*cssparse.CSSValue{}, t.Arguments...), mfn.Arguments[min(len(t.Arguments), len(mfn.Arguments)):]...)
					value = append(value, cssparse.FunctionCall{Name: mfn.Name, Arguments: args})
				} else {
					value = append(value, t)
				}
			default:
				value = append(value, tok)
			}
		}
		cssVal.Value = value
	}
}

func resolveAsSnippet(node *cssparse.CSSProperty, snippet *csssnippets.Raw) {
	var inputValue *cssparse.CSSValue
	if len(node.Value) > 0 {
		inputValue = node.Value[0]
	}

	offset := 0
	var output []any
	for _, m := range reFieldPlaceholder.FindAllStringSubmatchIndex(snippet.Value, -1) {
		start, end := m[0], m[1]
		if offset != start {
			output = append(output, csstoken.Literal{Value: snippet.Value[offset:start]})
		}
		offset = end

		if inputValue != nil && len(inputValue.Value) > 0 {
			output = append(output, inputValue.Value[0])
			inputValue.Value = inputValue.Value[1:]
		} else {
			name := ""
			if m[4] != -1 {
				name = snippet.Value[m[4]+1 : m[5]]
			}
			index, _ := strconv.Atoi(snippet.Value[m[2]:m[3]])
			output = append(output, csstoken.Field{Name: name, Index: index, HasIndex: true})
		}
	}

	tail := snippet.Value[offset:]
	if tail != "" {
		output = append(output, csstoken.Literal{Value: tail})
	}

	node.Name = ""
	node.HasName = false
	node.Value = []*cssparse.CSSValue{{Value: output}}
}

var reFieldPlaceholder = regexp.MustCompile(`\$\{(\d+)(:[^}]+)?\}`)

func findBestSnippet(abbr string, snippets []csssnippets.Snippet, minScore float64, partialMatch bool) csssnippets.Snippet {
	idx := fuzzy.BestMatch(abbr, func(i int) string { return snippets[i].Key() }, len(snippets), minScore, partialMatch)
	if idx < 0 {
		return nil
	}
	return snippets[idx]
}

func resolveKeyword(kw string, cfg *config.Config, snippet *csssnippets.Property, minScore float64) any {
	if snippet != nil {
		if v := bestKeyword(kw, snippet.KeywordOrder, snippet.Keywords, minScore); v != nil {
			return v
		}
		for _, dep := range snippet.Dependencies {
			if v := bestKeyword(kw, dep.KeywordOrder, dep.Keywords, minScore); v != nil {
				return v
			}
		}
	}

	idx := fuzzy.BestMatch(kw, func(i int) string { return cfg.Options.StylesheetKeywords[i] }, len(cfg.Options.StylesheetKeywords), minScore, false)
	if idx >= 0 {
		return csstoken.Literal{Value: cfg.Options.StylesheetKeywords[idx]}
	}
	return nil
}

func bestKeyword(kw string, order []string, table map[string]any, minScore float64) any {
	idx := fuzzy.BestMatch(kw, func(i int) string { return order[i] }, len(order), minScore, false)
	if idx < 0 {
		return nil
	}
	return table[order[idx]]
}

func resolveNumericValue(node *cssparse.CSSProperty, cfg *config.Config) {
	for _, v := range node.Value {
		for i, tok := range v.Value {
			num, ok := tok.(csstoken.NumberValue)
			if !ok {
				continue
			}
			if num.Unit != "" {
				if alias, ok := cfg.Options.StylesheetUnitAliases[num.Unit]; ok {
					num.Unit = alias
				}
			} else if num.Value != 0 && !contains(cfg.Options.StylesheetUnitless, node.Name) {
				if strings.Contains(num.RawValue, ".") {
					num.Unit = cfg.Options.StylesheetFloatUnit
				} else {
					num.Unit = cfg.Options.StylesheetIntUnit
				}
			}
			v.Value[i] = num
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func anyHasField(values []*cssparse.CSSValue) bool {
	for _, v := range values {
		if hasField(v) {
			return true
		}
	}
	return false
}

func hasField(v *cssparse.CSSValue) bool {
	for _, tok := range v.Value {
		switch t := tok.(type) {
		case csstoken.Field:
			return true
		case cssparse.FunctionCall:
			if anyHasField(t.Arguments) {
				return true
			}
		}
	}
	return false
}

type wrapState struct{ index int }

func (w *wrapState) inc() int {
	i := w.index
	w.index++
	return i
}

func wrapWithField(node *cssparse.CSSValue, cfg *config.Config, state *wrapState) *cssparse.CSSValue {
	var value []any

	for _, v := range node.Value {
		switch t := v.(type) {
		case csstoken.ColorValue:
			value = append(value, csstoken.Field{Name: csscolor.Format(t, cfg.Options.StylesheetShortHex), Index: state.inc(), HasIndex: true})
		case csstoken.Literal:
			value = append(value, csstoken.Field{Name: t.Value, Index: state.inc(), HasIndex: true})
		case csstoken.NumberValue:
			value = append(value, csstoken.Field{Name: t.RawValue + t.Unit, Index: state.inc(), HasIndex: true})
		case csstoken.StringValue:
			q := `"`
			if t.Quote == "single" {
				q = "'"
			}
			value = append(value, csstoken.Field{Name: q + t.Value + q, Index: state.inc(), HasIndex: true})
		case cssparse.FunctionCall:
			value = append(value, csstoken.Field{Name: t.Name, Index: state.inc(), HasIndex: true})
			value = append(value, csstoken.Literal{Value: "("})
			for i, arg := range t.Arguments {
				wrapped := wrapWithField(arg, cfg, state)
				value = append(value, wrapped.Value...)
				if i != len(t.Arguments)-1 {
					value = append(value, csstoken.Literal{Value: ", "})
				}
			}
			value = append(value, csstoken.Literal{Value: ")"})
		default:
			value = append(value, v)
		}
	}

	return &cssparse.CSSValue{Value: value}
}

