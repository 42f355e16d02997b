package docscan

// CSSProperty is one property found inside a CSSSection: the source
// ranges of its name and value, the value split into fragment tokens,
// and the boundaries of the whitespace/delimiters surrounding it.
// Grounded on action_utils/css.py's CSSProperty.
type CSSProperty struct {
	Name        [2]int
	Value       [2]int
	ValueTokens [][2]int
	Before      int
	After       int
}

func newCSSProperty(fragment string, name cssRange, before, start, end, delimiter, offset int) CSSProperty {
	return CSSProperty{
		Name:        [2]int{offset + name.start, offset + name.end},
		Value:       [2]int{offset + start, offset + end},
		ValueTokens: SplitCSSValue(fragment[start:end], offset+start),
		Before:      before,
		After:       offset + delimiter + 1,
	}
}

type cssPropertyState struct {
	pendingName *cssRange
	nested      int
	before      int
}

// ParseCSSProperties parses the properties found directly inside
// code[parseFrom:parseTo] — content expected to sit *inside* a section's
// braces (or top-level code) — ignoring anything inside a nested
// section. Grounded on action_utils/css.py's parse_properties.
func ParseCSSProperties(code string, parseFrom, parseTo int) []CSSProperty {
	if parseTo < 0 {
		parseTo = len(code)
	}
	fragment := code[parseFrom:parseTo]
	var result []CSSProperty
	state := &cssPropertyState{before: parseFrom}

	ScanCSS(fragment, func(tokenType CSSTokenType, start, end, delimiter int) bool {
		switch tokenType {
		case CSSSelector:
			state.nested++
		case CSSBlockEnd:
			state.nested--
			state.before = parseFrom + end
		default:
			if state.nested != 0 {
				return true
			}
			switch tokenType {
			case CSSPropertyName:
				if state.pendingName != nil {
					valuePos := state.pendingName.delimiter
					result = append(result, newCSSProperty(fragment, *state.pendingName, state.before, valuePos, valuePos, valuePos, parseFrom))
					state.before = parseFrom + start
				}
				r := cssRange{start, end, delimiter}
				state.pendingName = &r
			case CSSPropertyValue:
				if state.pendingName != nil {
					result = append(result, newCSSProperty(fragment, *state.pendingName, state.before, start, end, delimiter, parseFrom))
					state.pendingName = nil
				}
				state.before = parseFrom + delimiter + 1
			}
		}
		return true
	})

	return result
}
