// Package emmet is the thin public entry point over the expansion
// pipeline: tokenize, parse, resolve, format. It wires the internal
// markup and stylesheet pipelines behind the handful of calls a host
// editor actually needs (expand, extract, match, balanced select),
// translating its own exported Config into the internal, layered
// config.Config the resolvers and formatters already consume.
//
// Example usage:
//
//     package main
//
//     import (
//         "fmt"
//
//         "github.com/emmetio/py-emmet/pkg/emmet"
//     )
//
//     func main() {
//         out, err := emmet.Expand("ul>li.item$*2", emmet.Config{}, emmet.Config{})
//         if err != nil {
//             panic(err)
//         }
//         fmt.Println(out)
//     }
package emmet

import (
	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
	"github.com/emmetio/py-emmet/internal/cssfmt"
	"github.com/emmetio/py-emmet/internal/cssparse"
	"github.com/emmetio/py-emmet/internal/cssresolve"
	"github.com/emmetio/py-emmet/internal/csstoken"
	"github.com/emmetio/py-emmet/internal/docscan"
	"github.com/emmetio/py-emmet/internal/extract"
	"github.com/emmetio/py-emmet/internal/markfmt"
	"github.com/emmetio/py-emmet/internal/marksnippet"
	"github.com/emmetio/py-emmet/internal/marktransform"
	"github.com/emmetio/py-emmet/internal/mathexpr"
)

// Re-exported so callers never need to (and, since internal/config is
// unreachable from outside this module, cannot) import the internal
// config package directly.
type (
	Type           = config.Type
	Syntax         = config.Syntax
	Options        = config.Options
	ContextNode    = config.ContextNode
	FieldRenderer  = config.FieldRenderer
	TextRenderer   = config.TextRenderer
	SelfClosingStyle = config.SelfClosingStyle
	AttributeQuote = config.AttributeQuote
	TagCase        = config.TagCase
	Text           = abbr.Text
)

const (
	TypeMarkup     = config.TypeMarkup
	TypeStylesheet = config.TypeStylesheet

	SyntaxHTML  = config.SyntaxHTML
	SyntaxXHTML = config.SyntaxXHTML
	SyntaxXML   = config.SyntaxXML
	SyntaxXSL   = config.SyntaxXSL
	SyntaxJSX   = config.SyntaxJSX
	SyntaxPug   = config.SyntaxPug
	SyntaxSlim  = config.SyntaxSlim
	SyntaxHaml  = config.SyntaxHaml

	SyntaxCSS    = config.SyntaxCSS
	SyntaxSass   = config.SyntaxSass
	SyntaxSCSS   = config.SyntaxSCSS
	SyntaxLess   = config.SyntaxLess
	SyntaxSSS    = config.SyntaxSSS
	SyntaxStylus = config.SyntaxStylus
)

// PlainText and LineText build the `text` expand parameter: a single
// pasted block, or one line per implicitly-repeated element.
func PlainText(s string) Text      { return abbr.PlainText(s) }
func LineText(lines []string) Text { return abbr.LineText(lines) }

// Config is one configuration layer passed to Expand: either the
// caller's per-call `user_config` or a host editor's shared
// `global_config`. Both layers are merged, in that order, on top of the
// type/syntax built-in defaults.
type Config struct {
	Type      Type
	Syntax    Syntax
	Variables map[string]string
	Snippets  map[string]string
	// Options patches the merged option defaults. Left nil to accept
	// them as-is.
	Options func(*Options)
	// Context describes the element an abbreviation is being expanded
	// inside of (markup implicit-tag inference) or the `@@...` scope
	// sentinel for a stylesheet abbreviation (see cssscope).
	Context *ContextNode

	// Text supplies the `text` expand parameter (pasted content wrapped
	// by the abbreviation, e.g. `a` around a URL, or `*` over a list).
	Text    Text
	HasText bool
	// MaxRepeat caps total repeater unrolling; 0 uses the built-in
	// default (1,000,000).
	MaxRepeat int

	// Cache lets repeated expansions against the same stylesheet
	// snippet table skip re-parsing it. Optional; callers share one
	// Cache across calls that reuse the same Snippets map.
	Cache *Cache
}

// Expand runs the full tokenize/parse/resolve/format pipeline over
// abbreviation under the merged userConfig/globalConfig layers,
// mirroring emmet's top-level `expand(abbreviation, config)` call.
func Expand(abbreviation string, userConfig, globalConfig Config) (string, error) {
	cfg := buildConfig(userConfig, globalConfig)

	if cfg.Type == config.TypeStylesheet {
		return expandStylesheet(abbreviation, cfg, userConfig.Cache)
	}
	return expandMarkup(abbreviation, cfg, userConfig)
}

func buildConfig(user, global Config) *config.Config {
	cfg := config.New(user.Type, user.Syntax, config.Overrides{
		Variables: global.Variables,
		Snippets:  global.Snippets,
		Options:   global.Options,
	}, config.Overrides{
		Variables: user.Variables,
		Snippets:  user.Snippets,
		Options:   user.Options,
	})
	cfg.Context = user.Context
	return cfg
}

func expandMarkup(abbreviation string, cfg *config.Config, user Config) (string, error) {
	tree, err := abbr.Parse(abbreviation, abbr.ParseOptions{
		JSX:        cfg.Options.JSXEnabled,
		HasText:    user.HasText,
		Text:       user.Text,
		Variables:  cfg.Variables,
		MaxRepeat:  user.MaxRepeat,
		MarkupHref: cfg.Options.MarkupHref,
	})
	if err != nil {
		return "", err
	}

	if err := marksnippet.Resolve(tree, cfg); err != nil {
		return "", err
	}
	marktransform.Transform(tree, cfg)

	return markfmt.Format(tree, cfg), nil
}

func expandStylesheet(abbreviation string, cfg *config.Config, cache *Cache) (string, error) {
	snippets, err := cache.snippetsFor(cfg)
	if err != nil {
		return "", err
	}

	isValue := cssresolve.IsValueScope(cfg)
	tokens, err := csstoken.Tokenize(abbreviation, isValue)
	if err != nil {
		return "", err
	}
	props, err := cssparse.Parse(abbreviation, tokens, cssparse.Options{ValueMode: isValue})
	if err != nil {
		return "", err
	}

	if err := cssresolve.Resolve(props, snippets.ForScope(cfg), cfg); err != nil {
		return "", err
	}

	return cssfmt.Format(props, cfg), nil
}

// Cache holds the parsed stylesheet snippet index keyed by the
// Syntax it was built for, so a host editor can reuse one
// Expand-facing Config across many calls without re-parsing its
// snippet table every time. The zero value is ready to use; a nil
// *Cache disables caching entirely (each call parses its own index).
type Cache struct {
	entries map[config.Syntax]*cssresolve.Snippets
}

// NewCache returns an empty, ready-to-share cache.
func NewCache() *Cache { return &Cache{entries: map[config.Syntax]*cssresolve.Snippets{}} }

func (c *Cache) snippetsFor(cfg *config.Config) (*cssresolve.Snippets, error) {
	if c == nil {
		return cssresolve.BuildSnippets(cfg.Snippets)
	}
	if c.entries == nil {
		c.entries = map[config.Syntax]*cssresolve.Snippets{}
	}
	if s, ok := c.entries[cfg.Syntax]; ok {
		return s, nil
	}
	s, err := cssresolve.BuildSnippets(cfg.Snippets)
	if err != nil {
		return nil, err
	}
	c.entries[cfg.Syntax] = s
	return s, nil
}

// ExtractOptions configures Extract.
type ExtractOptions = extract.Options

// ExtractResult is the abbreviation Extract found, with its bounds in
// the host line.
type ExtractResult = extract.Result

// Extract locates the abbreviation ending at caret in line, the way an
// editor plugin finds what to expand when the user presses the expand
// key. It returns false if nothing abbreviation-shaped precedes caret.
func Extract(line string, caret int, opts ExtractOptions) (ExtractResult, bool) {
	return extract.Extract(line, caret, opts)
}

// EvaluateMath parses and reduces a small arithmetic expression
// (`10+2*3`, `(1+2)/3`, `7\2` for floor division), as used by editor
// "evaluate math expression" commands.
func EvaluateMath(expr string) (float64, error) {
	return mathexpr.Evaluate(expr)
}

// ExtractMath finds a math expression ending at pos in text, scanning
// backward, mirroring Extract but for the math subsystem.
func ExtractMath(text string, pos int) (start, end int, ok bool) {
	return mathexpr.Extract(text, pos, mathexpr.DefaultExtractOptions())
}

// DocType selects which document scanner Match/BalancedOutward/
// BalancedInward run: the HTML/XML tag scanner or the CSS
// selector/property scanner.
type DocType int

const (
	DocMarkup DocType = iota
	DocStylesheet
)

// Range is a half-open [Start, End) byte offset pair into the scanned
// document.
type Range = [2]int

// MatchResult is the tag or CSS selector/property enclosing a caret
// position, as found by Match.
type MatchResult struct {
	Name               string
	Start, End         int
	BodyStart, BodyEnd int
}

// Match finds the tag (markup) or selector/property (stylesheet)
// enclosing pos in code, for a "select enclosing tag" editor action.
func Match(doc DocType, code string, pos int) (MatchResult, bool) {
	if doc == DocStylesheet {
		m := docscan.CSSMatch(code, pos)
		if m == nil {
			return MatchResult{}, false
		}
		return MatchResult{Name: m.Type, Start: m.Start, End: m.End, BodyStart: m.BodyStart, BodyEnd: m.BodyEnd}, true
	}

	m := docscan.HTMLMatch(code, pos, docscan.DefaultScannerOptions())
	if m == nil {
		return MatchResult{}, false
	}
	r := MatchResult{Name: m.Name, Start: m.Open[0], End: m.Open[1]}
	if m.Close != nil {
		r.End = m.Close[1]
	}
	return r, true
}

// BalancedOutward returns every enclosing tag/selector range around pos,
// from innermost to outermost, for a "balanced select outward" action.
func BalancedOutward(doc DocType, code string, pos int) []Range {
	if doc == DocStylesheet {
		return docscan.CSSBalancedOutward(code, pos)
	}
	return tagRanges(docscan.HTMLBalancedOutward(code, pos, docscan.DefaultScannerOptions()))
}

// BalancedInward returns every nested tag/selector range starting at
// pos, from outermost to innermost, for a "balanced select inward"
// action.
func BalancedInward(doc DocType, code string, pos int) []Range {
	if doc == DocStylesheet {
		return docscan.CSSBalancedInward(code, pos)
	}
	return tagRanges(docscan.HTMLBalancedInward(code, pos, docscan.DefaultScannerOptions()))
}

func tagRanges(tags []docscan.BalancedTag) []Range {
	var out []Range
	for _, t := range tags {
		end := t.Open[1]
		if t.Close != nil {
			end = t.Close[1]
		}
		out = append(out, Range{t.Open[0], end})
	}
	return out
}

// CSSPropertyRange is one property found inside a CSSSection: the
// source ranges of its name and value, the value split into fragment
// tokens, and the whitespace/delimiter boundaries around it. Grounded
// on action_utils/css.py's CSSProperty.
type CSSPropertyRange struct {
	Name        Range
	Value       Range
	ValueTokens []Range
	Before      int
	After       int
}

// CSSSection is the selector block enclosing a caret position, as found
// by CSSSectionAt.
type CSSSection struct {
	Start, End         int
	BodyStart, BodyEnd int
	Properties         []CSSPropertyRange
}

// CSSSectionAt returns the CSS section (selector block) enclosing pos
// in code, for an editor "select enclosing rule" action. When
// withProperties is set, the section's direct (non-nested) properties
// are parsed and attached to the result.
func CSSSectionAt(code string, pos int, withProperties bool) (CSSSection, bool) {
	s, ok := docscan.CSSSectionAt(code, pos, withProperties)
	if !ok {
		return CSSSection{}, false
	}

	out := CSSSection{Start: s.Start, End: s.End, BodyStart: s.BodyStart, BodyEnd: s.BodyEnd}
	for _, p := range s.Properties {
		tokens := make([]Range, len(p.ValueTokens))
		for i, t := range p.ValueTokens {
			tokens[i] = Range(t)
		}
		out.Properties = append(out.Properties, CSSPropertyRange{
			Name:        Range(p.Name),
			Value:       Range(p.Value),
			ValueTokens: tokens,
			Before:      p.Before,
			After:       p.After,
		})
	}
	return out, true
}

// HTMLAttribute is the attribute (name, and value when present) whose
// source range contains a caret position, as found by HTMLAttributeAt.
type HTMLAttribute struct {
	TagName              string
	Name                 string
	NameStart, NameEnd   int
	Value                string
	HasValue             bool
	ValueStart, ValueEnd int
}

// HTMLAttributeAt returns the attribute of the open (or self-closing)
// tag enclosing pos whose own range contains pos, for an editor
// "rename/update attribute" action. It reports false when pos isn't
// inside an opening tag, or sits in the tag but outside every
// attribute. Grounded on action_utils/html.py's get_open_tag.
func HTMLAttributeAt(code string, pos int) (HTMLAttribute, bool) {
	tag, ok := docscan.OpenTagAt(code, pos, docscan.DefaultScannerOptions())
	if !ok || (tag.Type != docscan.ElementOpen && tag.Type != docscan.ElementSelfClose) {
		return HTMLAttribute{}, false
	}

	for _, a := range tag.Attributes {
		end := a.NameEnd
		if a.HasValue {
			end = a.ValueEnd
		}
		if a.NameStart <= pos && pos <= end {
			return HTMLAttribute{
				TagName:    tag.Name,
				Name:       a.Name,
				NameStart:  a.NameStart,
				NameEnd:    a.NameEnd,
				Value:      a.Value,
				HasValue:   a.HasValue,
				ValueStart: a.ValueStart,
				ValueEnd:   a.ValueEnd,
			}, true
		}
	}
	return HTMLAttribute{}, false
}
