// Package config implements the layered configuration model (spec.md's
// ambient configuration stack): syntax/type defaults, global-config
// overrides, and user-config overrides merged per key, the same way
// emmet/config.py's merged_data does it. It is grounded on config.py,
// with Options expressed as a concrete Go struct instead of a loosely
// typed dict, the way evanw-esbuild expresses its own BuildOptions.
package config

// Type distinguishes the two abbreviation families.
type Type string

const (
	TypeMarkup     Type = "markup"
	TypeStylesheet Type = "stylesheet"
)

// Syntax is a concrete dialect within a Type (html, pug, scss, ...).
type Syntax string

const (
	SyntaxHTML  Syntax = "html"
	SyntaxXHTML Syntax = "xhtml"
	SyntaxXML   Syntax = "xml"
	SyntaxXSL   Syntax = "xsl"
	SyntaxJSX   Syntax = "jsx"
	SyntaxPug   Syntax = "pug"
	SyntaxSlim  Syntax = "slim"
	SyntaxHaml  Syntax = "haml"

	SyntaxCSS    Syntax = "css"
	SyntaxSass   Syntax = "sass"
	SyntaxSCSS   Syntax = "scss"
	SyntaxLess   Syntax = "less"
	SyntaxSSS    Syntax = "sss"
	SyntaxStylus Syntax = "stylus"
)

// defaultSyntax maps a Type to its default Syntax, mirroring
// DEFAULT_SYNTAXES.
func defaultSyntax(t Type) Syntax {
	if t == TypeStylesheet {
		return SyntaxCSS
	}
	return SyntaxHTML
}

// SelfClosingStyle controls how self-closing tags are rendered.
type SelfClosingStyle string

const (
	SelfClosingHTML  SelfClosingStyle = "html"
	SelfClosingXHTML SelfClosingStyle = "xhtml"
	SelfClosingXML   SelfClosingStyle = "xml"
)

// AttributeQuote controls the quote character used around attribute
// values in output.
type AttributeQuote string

const (
	QuoteDouble AttributeQuote = "double"
	QuoteSingle AttributeQuote = "single"
)

// FieldRenderer renders an editor tab-stop into plain text, matching
// `output.field` in the Python config (default just drops the markers
// and keeps the placeholder).
type FieldRenderer func(index int, placeholder string) string

// TextRenderer post-processes literal text nodes, matching `output.text`.
type TextRenderer func(text string) string

// Options is the Go counterpart of DEFAULT_OPTIONS: every knob the
// formatters, transforms, and stylesheet resolver read.
type Options struct {
	InlineElements []string

	OutputIndent           string
	OutputBaseIndent       string
	OutputNewline          string
	OutputTagCase          TagCase
	OutputAttributeCase    TagCase
	OutputAttributeQuotes  AttributeQuote
	OutputFormat           bool
	OutputFormatLeafNode   bool
	OutputFormatSkip       []string
	OutputFormatForce      []string
	OutputInlineBreak      int
	OutputCompactBoolean   bool
	OutputBooleanAttrs     []string
	OutputReverseAttrs     bool
	OutputSelfClosingStyle SelfClosingStyle
	OutputField            FieldRenderer
	OutputText             TextRenderer

	MarkupHref bool

	CommentEnabled bool
	CommentTrigger []string
	CommentBefore  string
	CommentAfter   string

	BEMEnabled  bool
	BEMElement  string
	BEMModifier string

	JSXEnabled bool

	StylesheetKeywords            []string
	StylesheetUnitless            []string
	StylesheetShortHex            bool
	StylesheetBetween             string
	StylesheetAfter               string
	StylesheetIntUnit             string
	StylesheetFloatUnit           string
	StylesheetUnitAliases         map[string]string
	StylesheetJSON                bool
	StylesheetJSONDoubleQuotes    bool
	StylesheetFuzzySearchMinScore float64
	StylesheetSkipUnmatched       bool
}

// TagCase controls case folding of tag/attribute names ("", "upper", "lower").
type TagCase string

const (
	TagCaseAsIs TagCase = ""
	TagCaseUp   TagCase = "upper"
	TagCaseLow  TagCase = "lower"
)

// DefaultOptions returns the baseline option set, equivalent to
// DEFAULT_OPTIONS in config.py (the list options below are a
// representative, hand-curated subset rather than the full upstream
// tables, which are bulk data rather than engine behavior).
func DefaultOptions() Options {
	return Options{
		InlineElements: []string{
			"a", "abbr", "b", "bdo", "br", "button", "cite", "code", "del",
			"dfn", "em", "i", "img", "input", "ins", "kbd", "label", "map",
			"object", "q", "s", "samp", "select", "small", "span", "strong",
			"sub", "sup", "textarea", "tt", "u", "var",
		},

		OutputIndent:           "\t",
		OutputBaseIndent:       "",
		OutputNewline:          "\n",
		OutputTagCase:          TagCaseAsIs,
		OutputAttributeCase:    TagCaseAsIs,
		OutputAttributeQuotes:  QuoteDouble,
		OutputFormat:           true,
		OutputFormatLeafNode:   false,
		OutputFormatSkip:       []string{"html"},
		OutputFormatForce:      []string{"body"},
		OutputInlineBreak:      3,
		OutputCompactBoolean:   false,
		OutputBooleanAttrs:     []string{"contenteditable", "async", "autofocus", "autoplay", "checked", "controls", "defer", "disabled", "hidden", "multiple", "muted", "readonly", "required", "reversed", "selected"},
		OutputReverseAttrs:     false,
		OutputSelfClosingStyle: SelfClosingHTML,
		OutputField:            func(_ int, placeholder string) string { return placeholder },
		OutputText:             func(text string) string { return text },

		MarkupHref: true,

		CommentEnabled: false,
		CommentTrigger: []string{"id", "class"},
		CommentBefore:  "",
		CommentAfter:   "\n<!-- /[#ID][.CLASS] -->",

		BEMEnabled:  false,
		BEMElement:  "__",
		BEMModifier: "_",

		JSXEnabled: false,

		StylesheetKeywords:            []string{"auto", "inherit", "unset"},
		StylesheetUnitless:            []string{"z-index", "line-height", "opacity", "font-weight", "zoom", "flex", "flex-grow", "flex-shrink"},
		StylesheetShortHex:            true,
		StylesheetBetween:             ": ",
		StylesheetAfter:               ";",
		StylesheetIntUnit:             "px",
		StylesheetFloatUnit:           "em",
		StylesheetUnitAliases:         map[string]string{"e": "em", "p": "%", "x": "ex", "r": "rem"},
		StylesheetJSON:                false,
		StylesheetJSONDoubleQuotes:    false,
		StylesheetFuzzySearchMinScore: 0,
		StylesheetSkipUnmatched:       true,
	}
}
