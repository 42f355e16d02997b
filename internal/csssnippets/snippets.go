// Package csssnippets converts the flat string->string snippet tables
// from internal/config into a resolver-ready snippet index: either a
// raw text replacement, or a CSS property with a value grammar and a
// keyword alias table, nested into a shorthand/longhand dependency
// graph (e.g. `background` depends on `background-position`). Grounded
// on stylesheet/snippets.py.
package csssnippets

import (
	"regexp"
	"sort"
	"strings"

	"github.com/emmetio/py-emmet/internal/csstoken"
	"github.com/emmetio/py-emmet/internal/cssparse"
)

// Kind discriminates the two snippet shapes.
type Kind int

const (
	KindRaw Kind = iota
	KindProperty
)

// Snippet is implemented by Raw and Property.
type Snippet interface {
	Key() string
	Kind() Kind
}

// Raw is an arbitrary text snippet with no CSS property grammar, e.g.
// a bare mixin name.
type Raw struct {
	KeyName string
	Value   string
}

func (r *Raw) Key() string { return r.KeyName }
func (r *Raw) Kind() Kind  { return KindRaw }

// Property is a CSS property snippet: a property name, its alternative
// default values (pipe-separated in the source, e.g. `p:relative|static`),
// and a keyword alias table collected from those values.
type Property struct {
	KeyName      string
	PropertyName string
	Value        [][]*cssparse.CSSValue
	KeywordOrder []string
	Keywords     map[string]any // csstoken.Literal or cssparse.FunctionCall
	Dependencies []*Property
}

func (p *Property) Key() string { return p.KeyName }
func (p *Property) Kind() Kind  { return KindProperty }

var reProperty = regexp.MustCompile(`^([a-z-]+)(?:\s*:\s*([^\n\r;]+?);*)?$`)

// Create builds a Snippet from a raw key/value pair, parsing the value
// as a CSS property grammar when it matches `name: value;` shape.
func Create(key, value string) (Snippet, error) {
	m := reProperty.FindStringSubmatch(value)
	if m == nil {
		return &Raw{KeyName: key, Value: value}, nil
	}

	var parsed [][]*cssparse.CSSValue
	if m[2] != "" {
		for _, alt := range strings.Split(m[2], "|") {
			values, err := parseValue(alt)
			if err != nil {
				return nil, err
			}
			parsed = append(parsed, values)
		}
	}

	order, keywords := collectAllKeywords(parsed)
	return &Property{
		KeyName:      key,
		PropertyName: m[1],
		Value:        parsed,
		KeywordOrder: order,
		Keywords:     keywords,
	}, nil
}

func parseValue(value string) ([]*cssparse.CSSValue, error) {
	tokens, err := csstoken.Tokenize(strings.TrimSpace(value), true)
	if err != nil {
		return nil, err
	}
	props, err := cssparse.Parse(value, tokens, cssparse.Options{ValueMode: true})
	if err != nil {
		return nil, err
	}
	if len(props) == 0 {
		return nil, nil
	}
	return props[0].Value, nil
}

func collectAllKeywords(alternatives [][]*cssparse.CSSValue) ([]string, map[string]any) {
	order := []string{}
	dest := map[string]any{}
	for _, values := range alternatives {
		for _, v := range values {
			order = collectKeywords(v, order, dest)
		}
	}
	return order, dest
}

func collectKeywords(v *cssparse.CSSValue, order []string, dest map[string]any) []string {
	for _, tok := range v.Value {
		switch t := tok.(type) {
		case csstoken.Literal:
			if _, ok := dest[t.Value]; !ok {
				order = append(order, t.Value)
			}
			dest[t.Value] = t
		case cssparse.FunctionCall:
			if _, ok := dest[t.Name]; !ok {
				order = append(order, t.Name)
			}
			dest[t.Name] = t
		case csstoken.Field:
			name := strings.TrimSpace(t.Name)
			if name != "" {
				if _, ok := dest[name]; !ok {
					order = append(order, name)
				}
				dest[name] = csstoken.Literal{Value: name}
			}
		}
	}
	return order
}

// Nest sorts snippets by key and threads more specific property
// snippets into their shorthand's Dependencies, e.g.
// `background-position-x` becomes a dependency of `background-position`,
// which becomes a dependency of `background`.
func Nest(snippets []Snippet) []Snippet {
	sorted := append([]Snippet{}, snippets...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key() < sorted[j].Key() })

	var stack []*Property
	for _, s := range sorted {
		cur, ok := s.(*Property)
		if !ok {
			continue
		}

		for len(stack) > 0 {
			prev := stack[len(stack)-1]
			if strings.HasPrefix(cur.PropertyName, prev.PropertyName) &&
				len(cur.PropertyName) > len(prev.PropertyName) &&
				cur.PropertyName[len(prev.PropertyName)] == '-' {
				prev.Dependencies = append(prev.Dependencies, cur)
				stack = append(stack, cur)
				break
			}
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			stack = append(stack, cur)
		}
	}

	return sorted
}
