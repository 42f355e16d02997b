package mathexpr

import "github.com/emmetio/py-emmet/internal/charscan"

// ExtractOptions configures Extract.
type ExtractOptions struct {
	// LookAhead allows consuming a trailing run of `)` past pos, the
	// same auto-close accommodation internal/extract makes for
	// abbreviations.
	LookAhead bool
	// Whitespace allows consuming spaces within the expression.
	Whitespace bool
}

// DefaultExtractOptions matches math_expression/extract.py's defaults.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{LookAhead: true, Whitespace: true}
}

// Extract finds a math expression ending at pos in text, scanning
// backward, and returns its start/end bounds.
func Extract(text string, pos int, opts ExtractOptions) (start, end int, ok bool) {
	if pos < 0 || pos > len(text) {
		pos = len(text)
	}

	r := charscan.NewBackward(text)
	r.Pos = pos

	if opts.LookAhead && r.Pos < len(text) && text[r.Pos] == byte(OpRightPar) {
		r.Pos++
		for r.Pos < len(text) {
			ch := text[r.Pos]
			if ch != byte(OpRightPar) && !(opts.Whitespace && charscan.IsSpace(ch)) {
				break
			}
			r.Pos++
		}
	}

	end = r.Pos
	braces := 0

	for r.Pos >= 0 {
		if r.Pos == 0 {
			break
		}
		if consumeNumberBackward(r) {
			continue
		}

		ch := r.Peek(0)
		switch {
		case ch == byte(OpRightPar):
			braces++
		case ch == byte(OpLeftParen):
			if braces == 0 {
				goto done
			}
			braces--
		case (opts.Whitespace && charscan.IsSpace(ch)) || isSign(Operator(ch)) || isOperatorByte(ch):
			// consumed below
		default:
			goto done
		}
		r.Pos--
	}

done:
	if r.Pos != end && braces == 0 {
		for r.Pos < len(text) && charscan.IsSpace(text[r.Pos]) {
			r.Pos++
		}
		return r.Pos, end, true
	}
	return 0, 0, false
}

func consumeNumberBackward(r *charscan.Backward) bool {
	if !charscan.IsNumber(r.Peek(0)) {
		return false
	}
	r.Pos--
	dot := false
	for r.Pos >= 0 && !r.Sol() {
		ch := r.Peek(0)
		if ch == '.' {
			if dot {
				break
			}
			dot = true
		} else if !charscan.IsNumber(ch) {
			break
		}
		r.Pos--
	}
	return true
}
