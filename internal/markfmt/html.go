package markfmt

import (
	"strings"

	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
	"github.com/emmetio/py-emmet/internal/outstream"
)

// HTML renders root as HTML, XHTML, XML, XSL or JSX markup (the five
// syntaxes share one output shape; marktransform already applied the
// syntax-specific node rewrites). Grounded on format/html.py.
func HTML(root *abbr.Abbreviation, cfg *config.Config) string {
	st := &state{out: outstream.New(cfg, 0), cfg: cfg, field: 1}
	walkChildren(root.Children, nil, st, htmlElement)
	return st.out.String()
}

func htmlElement(node *abbr.Node, index int, items []*abbr.Node, ancestors []*abbr.Node, st *state, render elementFunc) {
	format := shouldFormatHTML(node, index, items, ancestors, st.cfg)
	comment := shouldComment(node, st.cfg)

	if comment {
		writeComment(st.out, st.cfg.Options.CommentBefore, node)
	}

	if node.HasName {
		name := outstream.TagName(node.Name, st.cfg)
		st.out.Push("<" + name)
		pushAttributes(node, st)

		selfClosing := node.SelfClosing && len(node.Children) == 0 && !node.HasValue
		if selfClosing {
			st.out.Push(outstream.SelfClose(st.cfg) + ">")
		} else {
			st.out.Push(">")
			st.out.Level++
			pushSnippetBody(node, ancestors, st, render, format)
			st.out.Level--
			if format && shouldBreakBeforeClose(node, st.cfg) {
				st.out.PushNewline(true)
			}
			st.out.Push("</" + name + ">")
		}
	} else {
		pushSnippetBody(node, ancestors, st, render, format)
	}

	if comment {
		writeComment(st.out, st.cfg.Options.CommentAfter, node)
	}

	if format && index != len(items)-1 {
		st.out.PushNewline(true)
	}
}

func pushAttributes(node *abbr.Node, st *state) {
	for _, attr := range node.Attributes {
		if !shouldOutputAttribute(attr) {
			continue
		}
		st.out.Push(" ")
		pushAttribute(attr, st)
	}
}

func pushAttribute(attr *abbr.Attribute, st *state) {
	name := outstream.AttrName(attr.Name, st.cfg)
	isBoolean := outstream.IsBooleanAttribute(attr, st.cfg)

	if isBoolean && st.cfg.Options.OutputCompactBoolean {
		st.out.Push(name)
		return
	}

	value := attr.Value
	if len(value) == 0 && isBoolean {
		value = []abbr.ValuePart{abbr.TextPart(name)}
	} else if len(value) == 0 {
		value = caret
	}

	st.out.Push(name + "=" + outstream.AttrQuote(attr, st.cfg, true))
	st.field = pushTokens(value, st.out, st.field)
	st.out.Push(outstream.AttrQuote(attr, st.cfg, false))
}

// pushSnippetBody interleaves node's own inline value with its children,
// in document order, field-aware. Grounded on format/utils.py's
// push_snippet.
func pushSnippetBody(node *abbr.Node, ancestors []*abbr.Node, st *state, render elementFunc, format bool) {
	nextAncestors := append(append([]*abbr.Node{}, ancestors...), node)

	if !node.HasValue {
		walkChildren(node.Children, nextAncestors, st, render)
		return
	}

	lines := splitByLines(node.Value)
	for i, line := range lines {
		if i > 0 {
			st.out.PushNewline(true)
			trimLeadingWhitespace(line)
		}
		st.field = pushTokens(line, st.out, st.field)
		if i == len(lines)-1 && len(node.Children) > 0 {
			if format {
				st.out.PushNewline(true)
			}
			walkChildren(node.Children, nextAncestors, st, render)
		}
	}
}

func trimLeadingWhitespace(line []abbr.ValuePart) {
	if len(line) == 0 {
		return
	}
	if t, ok := line[0].(abbr.TextPart); ok {
		line[0] = abbr.TextPart(strings.TrimLeft(string(t), " \t"))
	}
}

func shouldBreakBeforeClose(node *abbr.Node, cfg *config.Config) bool {
	if len(node.Children) > 0 {
		return true
	}
	return node.HasValue && hasNewline(node)
}

// shouldFormatHTML decides whether node gets its own line and indent,
// mirroring format/html.py's should_format decision tree: the format
// option gate, the very first top-level node, explicit skip/force
// lists, and inline-run adjacency counted against output.inlineBreak.
func shouldFormatHTML(node *abbr.Node, index int, items []*abbr.Node, ancestors []*abbr.Node, cfg *config.Config) bool {
	if !cfg.Options.OutputFormat {
		return false
	}

	if len(ancestors) == 0 && index == 0 && len(items) == 1 {
		return false
	}

	if isSnippet(node) && len(node.Children) == 1 && isSnippet(node.Children[0]) {
		return false
	}

	if node.HasName {
		if contains(cfg.Options.OutputFormatSkip, strings.ToLower(node.Name)) {
			return false
		}
		if contains(cfg.Options.OutputFormatForce, strings.ToLower(node.Name)) {
			return true
		}
	}

	if !isInlineElement(node, cfg) {
		return true
	}

	if !cfg.Options.OutputFormatLeafNode && len(node.Children) == 0 {
		if node.HasValue && (startsWithBlockTagValue(node, cfg) || hasNewline(node)) {
			return true
		}
		return inlineRunTooLong(items, index, cfg)
	}

	for _, c := range node.Children {
		if !isInlineElement(c, cfg) || len(c.Children) > 0 {
			return true
		}
	}

	return inlineRunTooLong(items, index, cfg)
}

func startsWithBlockTagValue(node *abbr.Node, cfg *config.Config) bool {
	for _, part := range node.Value {
		if t, ok := part.(abbr.TextPart); ok {
			return startsWithBlockTag(string(t), cfg)
		}
		break
	}
	return false
}

// inlineRunTooLong reports whether the run of inline siblings around
// index is long enough to trigger a line break, per
// output.inlineBreak (0 disables the check entirely).
func inlineRunTooLong(items []*abbr.Node, index int, cfg *config.Config) bool {
	if cfg.Options.OutputInlineBreak <= 0 {
		return false
	}

	run := 1
	for i := index - 1; i >= 0 && isInlineElement(items[i], cfg); i-- {
		run++
	}
	for i := index + 1; i < len(items) && isInlineElement(items[i], cfg); i++ {
		run++
	}
	return run >= cfg.Options.OutputInlineBreak
}
