package abbr

import (
	"regexp"
	"strings"

	"github.com/emmetio/py-emmet/internal/marktoken"
	"github.com/emmetio/py-emmet/internal/markparse"
)

var reURL = regexp.MustCompile(`^(?:(?:https?:|ftp:)?//|(?:www|ftp)\.)`)
var reEmail = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,5}$`)
var reScheme = regexp.MustCompile(`^\w+:`)

// Text holds the `text` convert parameter, which may be a single block of
// text (e.g. pasted into the abbreviation field) or a list of lines (one
// per implicitly-repeated element), mirroring Python's str-or-list param.
type Text struct {
	Lines  []string
	Plain  string
	IsList bool
}

// PlainText wraps a single string value.
func PlainText(s string) Text { return Text{Plain: s} }

// LineText wraps a list of lines, one per implicit repeat.
func LineText(lines []string) Text { return Text{Lines: lines, IsList: true} }

func (t Text) clean() []string {
	var out []string
	for _, l := range t.Lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// Params configures a convert pass.
type Params struct {
	HasText   bool
	Text      Text
	Variables map[string]string
	MaxRepeat int
	// MarkupHref mirrors the `markup.href` config option: automatically
	// populate an <a> element's href when text looks like a URL/email.
	MarkupHref bool
}

// State is the Go counterpart of convert.py's ConvertState: the mutable
// context threaded through a single convert pass and shared with
// stringify.go so repeater placeholders and numbering can resolve.
type State struct {
	Inserted     bool
	hasText      bool
	text         Text
	repeatGuard  int
	Repeaters    []*Repeat
	Variables    map[string]string
	textInserted bool
}

func newState(p Params) *State {
	guard := p.MaxRepeat
	if guard <= 0 {
		guard = 1000000
	}
	return &State{
		hasText:     p.HasText,
		text:        p.Text,
		repeatGuard: guard,
		Variables:   p.Variables,
	}
}

// GetText resolves `$#`/implicit-repeat text for the given repeater index.
// hasPos mirrors Python's `pos is not None`.
func (s *State) GetText(pos int, hasPos bool) string {
	s.textInserted = true
	if s.text.IsList {
		clean := s.text.clean()
		if hasPos && pos >= 0 && pos < len(clean) {
			return strings.TrimSpace(clean[pos])
		}
		if hasPos && pos >= 0 && pos < len(s.text.Lines) {
			return s.text.Lines[pos]
		}
		if hasPos {
			return ""
		}
		return strings.Join(s.text.Lines, "\n")
	}
	return s.text.Plain
}

// GetVariable resolves a `${name}` reference, falling back to the bare
// name when no substitution is configured (matching Python's dict.get
// default-to-key behavior).
func (s *State) GetVariable(name string) string {
	if s.Variables == nil {
		return name
	}
	if v, ok := s.Variables[name]; ok {
		return v
	}
	return name
}

// Convert turns a parsed token tree into a simplified, unrolled node tree.
func Convert(root *markparse.TokenGroup, params Params) (*Abbreviation, error) {
	state := newState(params)
	children, err := convertGroup(root, state)
	if err != nil {
		return nil, err
	}
	result := &Abbreviation{Children: children}

	if params.HasText && !state.textInserted && len(result.Children) > 0 {
		deepest := deepestNode(result.Children[len(result.Children)-1])
		if deepest != nil {
			tx := params.Text.Plain
			if params.Text.IsList {
				tx = strings.TrimSpace(strings.Join(params.Text.Lines, "\n"))
			} else {
				tx = strings.TrimSpace(tx)
			}
			insertText(deepest, tx)
			if deepest.Name == "a" && params.MarkupHref {
				insertHref(deepest, tx)
			}
		}
	}

	return result, nil
}

// nodeRepeat/setNodeRepeat read and write the Repeat field shared by
// TokenElement and TokenGroup, since markparse.Node itself carries no
// common accessor.
func nodeRepeat(node markparse.Node) *marktoken.Repeater {
	switch n := node.(type) {
	case *markparse.TokenElement:
		return n.Repeat
	case *markparse.TokenGroup:
		return n.Repeat
	}
	return nil
}

func setNodeRepeat(node markparse.Node, r *marktoken.Repeater) {
	switch n := node.(type) {
	case *markparse.TokenElement:
		n.Repeat = r
	case *markparse.TokenGroup:
		n.Repeat = r
	}
}

func convertNode(node markparse.Node, state *State) ([]*Node, error) {
	switch n := node.(type) {
	case *markparse.TokenGroup:
		return convertGroup(n, state)
	case *markparse.TokenElement:
		return convertElement(n, state)
	default:
		return nil, nil
	}
}

// convertStatement unrolls node's repeater (if any) and converts each
// copy, mirroring convert_statement's handling that applies identically
// to TokenElement and TokenGroup nodes.
func convertStatement(node markparse.Node, state *State) ([]*Node, error) {
	original := nodeRepeat(node)
	if original == nil {
		return convertNode(node, state)
	}

	repeat := &Repeat{Count: original.Count, Value: original.Value, Implicit: original.Implicit}

	if repeat.Implicit && state.text.IsList {
		repeat.Count = len(state.text.clean())
	} else if repeat.Count == 0 {
		repeat.Count = 1
	}

	state.Repeaters = append(state.Repeaters, repeat)

	var result []*Node
	for i := 0; i < repeat.Count; i++ {
		repeat.Value = i
		setNodeRepeat(node, &marktoken.Repeater{Count: repeat.Count, Value: repeat.Value, Implicit: repeat.Implicit})

		items, err := convertNode(node, state)
		if err != nil {
			return nil, err
		}

		if repeat.Implicit && !state.Inserted {
			var target *Node
			if len(items) > 0 {
				target = items[len(items)-1]
			}
			if deepest := deepestNode(target); deepest != nil {
				insertText(deepest, state.GetText(repeat.Value, true))
			}
		}

		result = append(result, items...)

		state.repeatGuard--
		if state.repeatGuard <= 0 {
			break
		}
	}

	state.Repeaters = state.Repeaters[:len(state.Repeaters)-1]
	setNodeRepeat(node, original)

	if repeat.Implicit {
		state.Inserted = true
	}

	return result, nil
}

func convertElement(node *markparse.TokenElement, state *State) ([]*Node, error) {
	elem := &Node{SelfClosing: node.SelfClose}

	if node.Repeat != nil {
		elem.Repeat = &Repeat{Count: node.Repeat.Count, Value: node.Repeat.Value, Implicit: node.Repeat.Implicit}
	}
	if node.Name != nil {
		name, err := stringifyName(node.Name, state)
		if err != nil {
			return nil, err
		}
		elem.Name = name
		elem.HasName = true
	}
	if node.Value != nil {
		value, err := stringifyValue(node.Value, state)
		if err != nil {
			return nil, err
		}
		elem.Value = value
		elem.HasValue = true
	}

	result := []*Node{elem}

	for _, child := range node.Elements {
		kids, err := convertStatement(child, state)
		if err != nil {
			return nil, err
		}
		elem.Children = append(elem.Children, kids...)
	}

	if node.Attributes != nil {
		elem.Attributes = make([]*Attribute, 0, len(node.Attributes))
		for _, a := range node.Attributes {
			attr, err := convertAttribute(a, state)
			if err != nil {
				return nil, err
			}
			elem.Attributes = append(elem.Attributes, attr)
		}
	}

	// A text-only snippet without attributes and without fields promotes
	// its children to siblings instead of nesting them.
	if !elem.HasName && elem.Attributes == nil && elem.HasValue && !anyField(elem.Value) {
		result = append(result, elem.Children...)
		elem.Children = nil
	}

	return result, nil
}

func convertGroup(node *markparse.TokenGroup, state *State) ([]*Node, error) {
	var result []*Node
	for _, child := range node.Elements {
		kids, err := convertStatement(child, state)
		if err != nil {
			return nil, err
		}
		result = append(result, kids...)
	}

	if node.Repeat != nil {
		repeat := &Repeat{Count: node.Repeat.Count, Value: node.Repeat.Value, Implicit: node.Repeat.Implicit}
		attachRepeater(result, repeat)
	}

	return result, nil
}

func convertAttribute(node *markparse.TokenAttribute, state *State) (*Attribute, error) {
	attr, err := createAttribute(node, state)
	if err != nil {
		return nil, err
	}

	if node.Value != nil {
		toks := append([]marktoken.Token(nil), node.Value...)

		if len(toks) > 0 {
			if q, ok := toks[0].(marktoken.Quote); ok {
				toks = toks[1:]
				if len(toks) > 0 {
					if lq, ok := toks[len(toks)-1].(marktoken.Quote); ok && lq.Single == q.Single {
						toks = toks[:len(toks)-1]
					}
				}
				if q.Single {
					attr.ValueType = ValueSingleQuote
				} else {
					attr.ValueType = ValueDoubleQuote
				}
			} else if b, ok := toks[0].(marktoken.Bracket); ok && b.Context == marktoken.CtxExpression && b.Open {
				attr.ValueType = ValueExpression
				toks = toks[1:]
				if len(toks) > 0 {
					if lb, ok := toks[len(toks)-1].(marktoken.Bracket); ok && lb.Context == marktoken.CtxExpression && !lb.Open {
						toks = toks[:len(toks)-1]
					}
				}
			}
		}

		value, err := stringifyValue(toks, state)
		if err != nil {
			return nil, err
		}
		attr.Value = value
	}

	return attr, nil
}

func createAttribute(node *markparse.TokenAttribute, state *State) (*Attribute, error) {
	var name string
	if node.Name != nil {
		n, err := stringifyName(node.Name, state)
		if err != nil {
			return nil, err
		}
		name = n
	}

	valueType := ValueRaw
	if node.Expression {
		valueType = ValueExpression
	}

	boolean := false
	implied := false
	if name != "" {
		if strings.HasSuffix(name, ".") {
			boolean = true
			name = name[:len(name)-1]
		}
		if strings.HasPrefix(name, "!") {
			implied = true
			name = name[1:]
		}
	}

	return &Attribute{Name: name, ValueType: valueType, Boolean: boolean, Implied: implied}, nil
}

func anyField(parts []ValuePart) bool {
	for _, p := range parts {
		if _, ok := p.(FieldPart); ok {
			return true
		}
	}
	return false
}

func deepestNode(node *Node) *Node {
	for node != nil && len(node.Children) > 0 {
		node = node.Children[len(node.Children)-1]
	}
	return node
}

func insertText(node *Node, text string) {
	if len(node.Value) > 0 {
		last := node.Value[len(node.Value)-1]
		if tp, ok := last.(TextPart); ok {
			node.Value[len(node.Value)-1] = tp + TextPart(text)
			return
		}
		node.Value = append(node.Value, TextPart(text))
		return
	}
	node.Value = []ValuePart{TextPart(text)}
	node.HasValue = true
}

func insertHref(node *Node, text string) {
	var href string
	switch {
	case reURL.MatchString(text):
		href = text
		if !reScheme.MatchString(href) && !strings.HasPrefix(href, "//") {
			href = "http://" + href
		}
	case reEmail.MatchString(text):
		href = "mailto:" + text
	default:
		return
	}

	var hrefAttr *Attribute
	for _, a := range node.Attributes {
		if a.Name == "href" {
			hrefAttr = a
			break
		}
	}

	if hrefAttr == nil {
		node.Attributes = append(node.Attributes, &Attribute{Name: "href", Value: []ValuePart{TextPart(href)}})
	} else if len(hrefAttr.Value) == 0 {
		hrefAttr.Value = []ValuePart{TextPart(href)}
	}
}

func attachRepeater(items []*Node, repeat *Repeat) {
	for _, item := range items {
		if item.Repeat == nil {
			item.Repeat = repeat.clone()
		}
	}
}
