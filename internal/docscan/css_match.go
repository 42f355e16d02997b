package docscan

import "github.com/emmetio/py-emmet/internal/charscan"

// CSSMatchResult describes the selector or property enclosing a position.
type CSSMatchResult struct {
	Type               string // "selector" or "property"
	Start, End         int
	BodyStart, BodyEnd int
}

type cssRange struct{ start, end, delimiter int }

// CSSMatch finds the CSS selector or property that encloses pos.
func CSSMatch(source string, pos int) *CSSMatchResult {
	var stack []cssRange
	var result *CSSMatchResult
	var pendingProperty *cssRange

	ScanCSS(source, func(tokenType CSSTokenType, start, end, delimiter int) bool {
		switch tokenType {
		case CSSSelector:
			pendingProperty = nil
			stack = append(stack, cssRange{start, end, delimiter})
		case CSSBlockEnd:
			pendingProperty = nil
			if len(stack) == 0 {
				return true
			}
			parent := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if parent.start < pos && pos < end {
				result = &CSSMatchResult{Type: "selector", Start: parent.start, End: end, BodyStart: parent.delimiter + 1, BodyEnd: start}
				return false
			}
		case CSSPropertyName:
			pendingProperty = nil
			r := cssRange{start, end, delimiter}
			pendingProperty = &r
		case CSSPropertyValue:
			if pendingProperty != nil && pendingProperty.start < pos && pos < end {
				result = &CSSMatchResult{Type: "property", Start: pendingProperty.start, End: delimiter + 1, BodyStart: start, BodyEnd: end}
				return false
			}
			pendingProperty = nil
		}
		return true
	})

	return result
}

// CSSBalancedOutward returns every selector/property range that could
// match pos when expanding a selection outward.
func CSSBalancedOutward(source string, pos int) [][2]int {
	var stack []cssRange
	var result [][2]int
	var prop *cssRange

	ScanCSS(source, func(tokenType CSSTokenType, start, end, delimiter int) bool {
		stop := false
		switch tokenType {
		case CSSSelector:
			stack = append(stack, cssRange{start, end, delimiter})
		case CSSBlockEnd:
			if len(stack) > 0 {
				left := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if left.start < pos && pos < end {
					if inner, ok := innerCSSRange(source, left.delimiter+1, start); ok {
						pushRange(&result, inner)
					}
					pushRange(&result, [2]int{left.start, end})
				}
			}
			if len(stack) == 0 {
				stop = true
			}
		case CSSPropertyName:
			r := cssRange{start, end, delimiter}
			prop = &r
		case CSSPropertyValue:
			if prop != nil && prop.start < pos && pos < maxInt(delimiter, end) {
				pushRange(&result, [2]int{start, end})
				bodyEnd := end
				if delimiter != -1 {
					bodyEnd = delimiter + 1
				}
				pushRange(&result, [2]int{prop.start, bodyEnd})
			}
		}

		if tokenType != CSSPropertyName {
			prop = nil
		}
		return !stop
	})

	return result
}

type cssInwardRange struct {
	start, end, delimiter int
	firstChild            *cssInwardRange
}

// CSSBalancedInward returns every selector/property range that could
// match pos when narrowing a selection inward.
func CSSBalancedInward(source string, pos int) [][2]int {
	var stack []*cssInwardRange
	var result [][2]int
	var pendingProperty *cssInwardRange

	pushChild := func(start, end, delimiter int) {
		if len(stack) == 0 {
			return
		}
		parent := stack[len(stack)-1]
		if parent.firstChild == nil {
			parent.firstChild = &cssInwardRange{start: start, end: end, delimiter: delimiter}
		}
	}

	ScanCSS(source, func(tokenType CSSTokenType, start, end, delimiter int) bool {
		switch tokenType {
		case CSSBlockEnd:
			pendingProperty = nil
			if len(stack) == 0 {
				return true
			}
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if r.start <= pos && pos <= end {
				inner, ok := innerCSSRange(source, r.delimiter+1, start)
				pushRange(&result, [2]int{r.start, end})
				if ok {
					pushRange(&result, inner)
				}

				for r.firstChild != nil {
					child := r.firstChild
					inner2, ok2 := innerCSSRange(source, child.delimiter+1, child.end-1)
					pushRange(&result, [2]int{child.start, child.end})
					if ok2 {
						pushRange(&result, inner2)
					}
					r = child
				}
				return false
			}

			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				if parent.firstChild == nil {
					r.end = end
					parent.firstChild = r
				}
			}
		case CSSPropertyName:
			pendingProperty = &cssInwardRange{start: start, end: end, delimiter: delimiter}
			pushChild(start, end, delimiter)
		case CSSPropertyValue:
			if pendingProperty != nil {
				p := pendingProperty
				if p.start <= pos && pos <= end {
					pushRange(&result, [2]int{p.start, delimiter + 1})
					pushRange(&result, [2]int{start, end})
					pendingProperty = nil
					return false
				}
				if len(stack) > 0 {
					parent := stack[len(stack)-1]
					if parent.firstChild != nil && parent.firstChild.start == p.start {
						if delimiter != -1 {
							parent.firstChild.end = delimiter + 1
						} else {
							parent.firstChild.end = end
						}
					}
				}
				pendingProperty = nil
			}
		default:
			stack = append(stack, &cssInwardRange{start: start, end: end, delimiter: delimiter})
			pendingProperty = nil
		}
		return true
	})

	return result
}

// innerCSSRange narrows [start,end) to its first non-whitespace region.
func innerCSSRange(source string, start, end int) ([2]int, bool) {
	for start < end && charscan.IsSpace(source[start]) {
		start++
	}
	for end > start && charscan.IsSpace(source[end-1]) {
		end--
	}
	if start == end {
		return [2]int{}, false
	}
	return [2]int{start, end}, true
}
