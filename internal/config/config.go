package config

import "github.com/google/uuid"

// CacheID identifies a cached, parsed snippet set so repeated expansions
// against the same user config can skip re-parsing. Grounded on
// config.py's `cache` slot, which the Python port leaves as an opaque
// dict; here it is a concrete handle a caller can key a sync.Map (or any
// other cache) on.
type CacheID uuid.UUID

// NewCacheID mints a fresh cache handle.
func NewCacheID() CacheID { return CacheID(uuid.New()) }

func (c CacheID) String() string { return uuid.UUID(c).String() }

// optionOverride is a syntax- or type-scoped patch applied on top of the
// option defaults, equivalent to one `options` entry in SYNTAX_CONFIG.
type optionOverride func(*Options)

// snippetSet holds the syntax/type-scoped snippet and variable overlays,
// equivalent to the `snippets`/`variables` entries in SYNTAX_CONFIG.
type snippetSet struct {
	snippets  map[string]string
	variables map[string]string
	options   optionOverride
}

var typeDefaults = map[Type]snippetSet{
	TypeMarkup: {snippets: builtinMarkupSnippets()},
	TypeStylesheet: {snippets: builtinStylesheetSnippets()},
}

var syntaxDefaults = map[Syntax]snippetSet{
	SyntaxXHTML: {options: func(o *Options) { o.OutputSelfClosingStyle = SelfClosingXHTML }},
	SyntaxXML:   {options: func(o *Options) { o.OutputSelfClosingStyle = SelfClosingXML }},
	SyntaxXSL: {
		snippets: builtinXSLSnippets(),
		options:  func(o *Options) { o.OutputSelfClosingStyle = SelfClosingXML },
	},
	SyntaxJSX: {options: func(o *Options) { o.JSXEnabled = true }},
	SyntaxPug: {snippets: builtinPugSnippets()},
	SyntaxSass: {options: func(o *Options) { o.StylesheetAfter = "" }},
	SyntaxStylus: {options: func(o *Options) {
		o.StylesheetBetween = " "
		o.StylesheetAfter = ""
	}},
}

// Overrides carries caller-supplied global (editor-wide) and user
// (single-call) configuration layers, applied in that order on top of
// the type/syntax defaults above — the same five-layer precedence as
// merged_data: defaults, type defaults, syntax defaults, global
// type/syntax override, user config.
type Overrides struct {
	Variables map[string]string
	Snippets  map[string]string
	Options   optionOverride
}

// Config is the fully merged, ready-to-use configuration for one
// expansion call.
type Config struct {
	Type      Type
	Syntax    Syntax
	Variables map[string]string
	Snippets  map[string]string
	Options   Options
	Cache     CacheID
	// Context is the optional enclosing-element hint used by implicit-tag
	// resolution (e.g. expanding inside an existing <ul>).
	Context *ContextNode
}

// ContextNode mirrors the optional `context` user-config entry: the
// parent element an abbreviation is being expanded inside of.
type ContextNode struct {
	Name       string
	Attributes map[string]string
}

// New builds a Config by merging defaults with the global and user
// override layers, in the same order as Python's merged_data.
func New(t Type, syntax Syntax, global, user Overrides) *Config {
	if syntax == "" {
		syntax = defaultSyntax(t)
	}

	variables := mergeMaps(builtinVariables(), global.Variables, user.Variables)

	snippets := map[string]string{}
	mergeInto(snippets, typeDefaults[t].snippets)
	mergeInto(snippets, syntaxDefaults[syntax].snippets)
	mergeInto(snippets, global.Snippets)
	mergeInto(snippets, user.Snippets)

	options := DefaultOptions()
	if o := typeDefaults[t].options; o != nil {
		o(&options)
	}
	if o := syntaxDefaults[syntax].options; o != nil {
		o(&options)
	}
	if global.Options != nil {
		global.Options(&options)
	}
	if user.Options != nil {
		user.Options(&options)
	}

	return &Config{
		Type:      t,
		Syntax:    syntax,
		Variables: variables,
		Snippets:  snippets,
		Options:   options,
		Cache:     NewCacheID(),
	}
}

func mergeMaps(layers ...map[string]string) map[string]string {
	result := map[string]string{}
	for _, l := range layers {
		mergeInto(result, l)
	}
	return result
}

func mergeInto(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
