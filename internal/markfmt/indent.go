package markfmt

import (
	"strings"

	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
	"github.com/emmetio/py-emmet/internal/outstream"
)

// IndentOptions parameterizes the shared line-per-node formatter shared
// by HAML, Pug and Slim: each syntax differs only in how a tag name,
// its attribute list and a self-closing marker are spelled. Grounded on
// format/indent_format.py plus the per-syntax option tables in
// format/__init__.py.
type IndentOptions struct {
	BeforeName      string
	AfterName       string
	BeforeAttribute string
	AfterAttribute  string
	GlueAttribute   string
	AttrEquals      string
	BooleanValue    func(name string) string
	SelfClose       string
}

// HAML renders root in Ruby HAML's `%tag.class#id{attr: "value"}` shape.
func HAML(root *abbr.Abbreviation, cfg *config.Config) string {
	return Indent(root, cfg, IndentOptions{
		BeforeName:      "%",
		BeforeAttribute: "{",
		AfterAttribute:  "}",
		GlueAttribute:   ", ",
		AttrEquals:      ": ",
		BooleanValue:    func(name string) string { return name + ": true" },
		SelfClose:       "/",
	})
}

// Pug renders root in Pug's `tag.class#id(attr="value")` shape.
func Pug(root *abbr.Abbreviation, cfg *config.Config) string {
	return Indent(root, cfg, IndentOptions{
		BeforeAttribute: "(",
		AfterAttribute:  ")",
		GlueAttribute:   ", ",
		AttrEquals:      "=",
		BooleanValue:    func(name string) string { return name },
	})
}

// Slim renders root in Slim's `tag.class#id attr="value"` shape.
func Slim(root *abbr.Abbreviation, cfg *config.Config) string {
	return Indent(root, cfg, IndentOptions{
		GlueAttribute: " ",
		AttrEquals:    "=",
		BooleanValue:  func(name string) string { return name + "=true" },
		SelfClose:     "/",
	})
}

// Indent renders root as a sequence of indented, one-node-per-line
// statements using opts to spell tag names, attributes and self-closing
// elements.
func Indent(root *abbr.Abbreviation, cfg *config.Config, opts IndentOptions) string {
	st := &state{out: outstream.New(cfg, 0), cfg: cfg, field: 1}
	for i, n := range root.Children {
		if i > 0 {
			st.out.PushNewline(true)
		}
		indentNode(n, st, opts)
	}
	return st.out.String()
}

func indentNode(node *abbr.Node, st *state, opts IndentOptions) {
	if node.HasName {
		pushPrimaryAttributes(node, st, opts)
		if secondary := secondaryAttributes(node); len(secondary) > 0 {
			pushSecondaryAttributes(secondary, st, opts)
		}
		if opts.SelfClose != "" && node.SelfClosing && len(node.Children) == 0 && !node.HasValue {
			st.out.Push(opts.SelfClose)
		}
	}

	pushIndentValue(node, st)

	if len(node.Children) > 0 {
		st.out.Level++
		for _, c := range node.Children {
			st.out.PushNewline(true)
			indentNode(c, st, opts)
		}
		st.out.Level--
	}
}

// pushPrimaryAttributes writes the tag name followed by `.class`/`#id`
// shorthand; a bare `div` carrying a class or id is omitted entirely,
// matching how hand-written HAML/Pug/Slim reads (`.foo` not `div.foo`).
func pushPrimaryAttributes(node *abbr.Node, st *state, opts IndentOptions) {
	var class, id string
	for _, a := range node.Attributes {
		switch a.Name {
		case "class":
			class = stringifyValue(a.Value)
		case "id":
			id = stringifyValue(a.Value)
		}
	}

	if !(strings.EqualFold(node.Name, "div") && (class != "" || id != "")) {
		st.out.Push(opts.BeforeName + outstream.TagName(node.Name, st.cfg) + opts.AfterName)
	}

	if id != "" {
		st.out.Push("#" + id)
	}
	for _, c := range strings.Fields(class) {
		st.out.Push("." + c)
	}
}

func secondaryAttributes(node *abbr.Node) []*abbr.Attribute {
	var out []*abbr.Attribute
	for _, a := range node.Attributes {
		if a.Name == "class" || a.Name == "id" {
			continue
		}
		if shouldOutputAttribute(a) {
			out = append(out, a)
		}
	}
	return out
}

func pushSecondaryAttributes(attrs []*abbr.Attribute, st *state, opts IndentOptions) {
	st.out.Push(opts.BeforeAttribute)
	for i, a := range attrs {
		if i > 0 {
			st.out.Push(opts.GlueAttribute)
		}
		pushIndentAttribute(a, st, opts)
	}
	st.out.Push(opts.AfterAttribute)
}

func pushIndentAttribute(attr *abbr.Attribute, st *state, opts IndentOptions) {
	name := outstream.AttrName(attr.Name, st.cfg)
	if outstream.IsBooleanAttribute(attr, st.cfg) {
		st.out.Push(opts.BooleanValue(name))
		return
	}

	value := attr.Value
	if len(value) == 0 {
		value = caret
	}
	st.out.Push(name + opts.AttrEquals + `"`)
	st.field = pushTokens(value, st.out, st.field)
	st.out.Push(`"`)
}

func pushIndentValue(node *abbr.Node, st *state) {
	if !node.HasValue {
		return
	}

	lines := splitByLines(node.Value)
	if len(lines) == 1 && !node.HasName {
		st.field = pushTokens(lines[0], st.out, st.field)
		return
	}

	if len(lines) == 1 {
		st.out.Push(" ")
		st.field = pushTokens(lines[0], st.out, st.field)
		return
	}

	st.out.Level++
	for _, line := range lines {
		st.out.PushNewline(true)
		st.out.Push("| ")
		st.field = pushTokens(line, st.out, st.field)
	}
	st.out.Level--
}
