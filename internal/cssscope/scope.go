// Package cssscope names the special abbreviation-context values a
// stylesheet resolver checks to decide which snippet set and
// resolution rules apply. Grounded on stylesheet/scope.py.
package cssscope

// Scope is a context name stylesheet resolution recognizes, distinct
// from an ordinary CSS section/selector name.
type Scope string

const (
	// Global includes every possible snippet in a match.
	Global Scope = "@@global"
	// Section restricts matching to raw (non-property) snippets.
	Section Scope = "@@section"
	// Property restricts matching to property snippets.
	Property Scope = "@@property"
	// Value resolves the abbreviation as a CSS property's value.
	Value Scope = "@@value"
)
