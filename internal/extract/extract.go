// Package extract finds an abbreviation ending at a given caret
// position by scanning backward through surrounding text, the way an
// editor plugin locates what to expand when the user hits the expand
// key. Grounded on extract_abbreviation/{__init__,brackets,reader,
// is_html}.py.
package extract

import (
	"strings"

	"github.com/emmetio/py-emmet/internal/charscan"
)

// specialChars are the non-alphanumeric characters an abbreviation may
// contain, beyond brackets (checked separately).
const specialChars = "#.*:$-_!@%^+>/"

// Options configures extraction.
type Options struct {
	// Type is "markup" or "stylesheet"; stylesheet abbreviations don't
	// treat `[`/`]`/`{`/`}` as nesting brackets.
	Type string
	// LookAhead allows consuming extra characters (balancing an
	// already-typed closing bracket or quote) past Pos.
	LookAhead bool
	// Prefix, if non-empty, is a required literal that must precede the
	// abbreviation. The nearest occurrence of Prefix walking back from
	// Pos becomes a hard left boundary for the backward scan; if Prefix
	// doesn't occur at all, extraction fails.
	Prefix string
}

// Result is an abbreviation found in Line, with its bounds.
type Result struct {
	Abbreviation string
	Start, End   int
}

// Extract locates the abbreviation ending at pos in line, scanning
// backward. It returns false if no abbreviation-like text is found.
func Extract(line string, pos int, opts Options) (Result, bool) {
	if pos < 0 || pos > len(line) {
		pos = len(line)
	}

	end := pos
	if opts.LookAhead {
		end = offsetPastAutoClosed(line, pos, opts.Type)
	}

	boundary, scanPos, ok := findStart(line, end, opts)
	if !ok {
		return Result{}, false
	}

	text := line[scanPos:end]
	text = strings.TrimLeft(text, "*+>^")
	location := end - len(text)
	if text == "" {
		return Result{}, false
	}

	start := location
	if opts.Prefix != "" {
		start = boundary - len(opts.Prefix)
	}

	return Result{Abbreviation: text, Start: start, End: end}, true
}

// offsetPastAutoClosed consumes a closing quote (if it's the very next
// character) and then a run of closing brackets immediately after pos,
// letting an abbreviation like `div[foo="bar"]` extract past characters
// the editor auto-inserted ahead of the caret.
func offsetPastAutoClosed(line string, pos int, typ string) int {
	if pos < len(line) && charscan.IsQuote(line[pos]) {
		pos++
	}
	for pos < len(line) && isCloseBracket(line[pos], typ) {
		pos++
	}
	return pos
}

// findStart computes the hard left boundary for the backward scan (from
// opts.Prefix, or 0 when there's none), then scans backward from end down
// to that boundary, tracking a bracket-nesting stack. It returns the
// boundary, the final scanner position, and whether an abbreviation was
// found at all.
func findStart(line string, end int, opts Options) (boundary int, scanPos int, ok bool) {
	boundary = getStartOffset(line, end, opts.Prefix)
	if boundary == -1 {
		return 0, 0, false
	}

	r := &charscan.Backward{Text: line, Start: boundary, Pos: end}
	var stack []byte

stackLoop:
	for !r.Sol() {
		ch := r.Peek(0)

		if containsByte(stack, curlyR) {
			if ch == curlyR {
				stack = append(stack, ch)
				r.Pos--
				continue
			}
			if ch != curlyL {
				r.Pos--
				continue
			}
		}

		switch {
		case isCloseBracket(ch, opts.Type):
			stack = append(stack, ch)
		case isOpenBracket(ch, opts.Type):
			if len(stack) == 0 {
				break stackLoop
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top != bracePair(ch) {
				break stackLoop
			}
		case containsByte(stack, squareR) || containsByte(stack, curlyR):
			r.Pos--
			continue
		case isHTMLTagEnd(r) || !isAbbreviation(ch):
			break stackLoop
		}

		r.Pos--
	}

	if len(stack) > 0 || r.Pos == end {
		return 0, 0, false
	}

	return boundary, r.Pos, true
}

// getStartOffset returns the left limit in line where the backward scan
// must stop: the position right after the nearest occurrence of prefix
// walking back from pos, skipping over balanced `[...]`/`{...}` runs
// along the way. Returns -1 if prefix doesn't occur. An empty prefix
// means no limit (0). Ported from extract_abbreviation/__init__.py's
// get_start_offset.
func getStartOffset(line string, pos int, prefix string) int {
	if prefix == "" {
		return 0
	}

	r := &charscan.Backward{Text: line, Pos: pos}

	for !r.Sol() {
		if consumePair(r, squareR, squareL) || consumePair(r, curlyR, curlyL) {
			continue
		}

		result := r.Pos
		if consumeList(r, prefix) {
			return result
		}

		r.Pos--
	}

	return -1
}

// consumePair consumes a full closeCh...openCh pair ending at the
// scanner's current position, if possible.
func consumePair(r *charscan.Backward, closeCh, openCh byte) bool {
	start := r.Pos
	if r.Consume(closeCh) {
		for !r.Sol() {
			if r.Consume(openCh) {
				return true
			}
			r.Pos--
		}
	}
	r.Pos = start
	return false
}

// consumeList consumes every byte of s, right to left, if possible.
func consumeList(r *charscan.Backward, s string) bool {
	start := r.Pos
	consumed := false

	for i := len(s) - 1; i >= 0 && !r.Sol(); i-- {
		if !r.Consume(s[i]) {
			break
		}
		consumed = i == 0
	}

	if !consumed {
		r.Pos = start
	}
	return consumed
}

func containsByte(stack []byte, ch byte) bool {
	for _, b := range stack {
		if b == ch {
			return true
		}
	}
	return false
}

func isAbbreviation(ch byte) bool {
	if ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' {
		return true
	}
	return strings.IndexByte(specialChars, ch) >= 0
}

const (
	squareL = '['
	squareR = ']'
	roundL  = '('
	roundR  = ')'
	curlyL  = '{'
	curlyR  = '}'
)

func bracePair(open byte) byte {
	switch open {
	case squareL:
		return squareR
	case roundL:
		return roundR
	case curlyL:
		return curlyR
	}
	return 0
}

func isOpenBracket(ch byte, typ string) bool {
	switch ch {
	case roundL:
		return true
	case squareL, curlyL:
		return typ == "markup"
	}
	return false
}

func isCloseBracket(ch byte, typ string) bool {
	switch ch {
	case roundR:
		return true
	case squareR, curlyR:
		return typ == "markup"
	}
	return false
}

// isHTMLTagEnd reports whether r's current position points at the end
// of an HTML tag (`<div class="...">`), sharing r's Start boundary so a
// prefix-bounded scan can't "see" past it to confirm the opening `<`. r
// is left exactly as found: all consumption here is undone before
// returning. Ported from extract_abbreviation/is_html.py's is_html.
func isHTMLTagEnd(r *charscan.Backward) bool {
	start := r.Pos
	ok := false

	if r.Consume('>') {
		r.Consume('/') // possibly self-closed element

	htmlLoop:
		for !r.Sol() {
			r.ConsumeWhile(charscan.IsWhiteSpace)

			if consumeHTMLIdent(r) {
				switch {
				case r.Consume('/'):
					ok = r.Consume('<')
					break htmlLoop
				case r.Consume('<'):
					ok = true
					break htmlLoop
				case r.ConsumePred(charscan.IsWhiteSpace):
					continue htmlLoop
				case r.Consume('='):
					if consumeHTMLIdent(r) {
						continue htmlLoop
					}
					break htmlLoop
				case consumeAttributeUnquotedValue(r):
					ok = true
					break htmlLoop
				}
				break htmlLoop
			}

			if consumeHTMLAttribute(r) {
				continue htmlLoop
			}
			break htmlLoop
		}
	}

	r.Pos = start
	return ok
}

// consumeHTMLIdent consumes an HTML identifier (tag name, attribute
// name, or unquoted value fragment): letters, digits, `-`, or `:`.
func consumeHTMLIdent(r *charscan.Backward) bool {
	return r.ConsumeWhile(func(ch byte) bool {
		return ch == ':' || ch == '-' || charscan.IsAlpha(ch) || charscan.IsNumber(ch)
	})
}

// consumeHTMLAttribute consumes one `name="value"` or `name=value`
// attribute, right to left.
func consumeHTMLAttribute(r *charscan.Backward) bool {
	return consumeAttributeQuotedValue(r) || consumeAttributeUnquotedValue(r)
}

func consumeAttributeQuotedValue(r *charscan.Backward) bool {
	start := r.Pos
	if consumeHTMLQuoted(r) && r.Consume('=') && consumeHTMLIdent(r) {
		return true
	}
	r.Pos = start
	return false
}

func consumeAttributeUnquotedValue(r *charscan.Backward) bool {
	start := r.Pos
	var stack []byte

scan:
	for !r.Sol() {
		ch := r.Peek(0)
		switch {
		case isHTMLCloseBracket(ch):
			stack = append(stack, ch)
		case isHTMLOpenBracket(ch):
			if len(stack) == 0 {
				break scan
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top != bracePair(ch) {
				break scan
			}
		case !isUnquotedValueChar(ch):
			break scan
		}
		r.Pos--
	}

	if start != r.Pos && r.Consume('=') && consumeHTMLIdent(r) {
		return true
	}
	r.Pos = start
	return false
}

func consumeHTMLQuoted(r *charscan.Backward) bool {
	start := r.Pos
	quote := r.Previous()
	if charscan.IsQuote(quote) {
		for !r.Sol() {
			ch := r.Previous()
			if ch == quote && r.Peek(0) != '\\' {
				return true
			}
		}
	}
	r.Pos = start
	return false
}

func isHTMLOpenBracket(ch byte) bool { return ch == roundL || ch == squareL || ch == curlyL }
func isHTMLCloseBracket(ch byte) bool {
	return ch == roundR || ch == squareR || ch == curlyR
}

func isUnquotedValueChar(ch byte) bool {
	return ch != 0 && ch != '=' && !charscan.IsWhiteSpace(ch) && !charscan.IsQuote(ch)
}
