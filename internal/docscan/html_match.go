package docscan

// MatchedTag describes a matched opening/closing tag pair (or a
// self-closing tag) enclosing a caret position.
type MatchedTag struct {
	Name       string
	Attributes []AttributeToken
	Open       [2]int
	Close      *[2]int
}

// BalancedTag is one entry of a BalancedOutward/BalancedInward chain.
type BalancedTag struct {
	Name  string
	Open  [2]int
	Close *[2]int
}

type htmlTag struct {
	name       string
	start, end int
}

// HTMLMatch finds the tag enclosing pos in an XML/HTML document.
func HTMLMatch(source string, pos int, opts ScannerOptions) *MatchedTag {
	var stack []*htmlTag
	var result *MatchedTag

	ScanHTML(source, opts.Special, func(name string, elemType ElementType, start, end int) bool {
		if elemType == ElementOpen && isSelfCloseTag(name, opts) {
			elemType = ElementSelfClose
		}

		switch elemType {
		case ElementOpen:
			stack = append(stack, &htmlTag{name, start, end})
		case ElementSelfClose:
			if start < pos && pos < end {
				result = &MatchedTag{Name: name, Attributes: getHTMLAttributes(source, start, end, name), Open: [2]int{start, end}}
				return false
			}
		default: // ElementClose
			if len(stack) == 0 {
				return true
			}
			top := stack[len(stack)-1]
			if top.name == name {
				if top.start < pos && pos < end {
					closeRange := [2]int{start, end}
					result = &MatchedTag{
						Name:       name,
						Attributes: getHTMLAttributes(source, top.start, top.end, name),
						Open:       [2]int{top.start, top.end},
						Close:      &closeRange,
					}
					return false
				}
				stack = stack[:len(stack)-1]
			}
		}
		return true
	})

	return result
}

// HTMLBalancedOutward returns every tag pair that could match pos when
// expanding a selection outward.
func HTMLBalancedOutward(source string, pos int, opts ScannerOptions) []BalancedTag {
	var stack []*htmlTag
	var result []BalancedTag

	ScanHTML(source, opts.Special, func(name string, elemType ElementType, start, end int) bool {
		switch {
		case elemType == ElementClose:
			if len(stack) == 0 {
				return true
			}
			top := stack[len(stack)-1]
			if top.name == name {
				if top.start < pos && pos < end {
					closeRange := [2]int{start, end}
					result = append(result, BalancedTag{Name: name, Open: [2]int{top.start, top.end}, Close: &closeRange})
				}
				stack = stack[:len(stack)-1]
			}
		case elemType == ElementSelfClose || isSelfCloseTag(name, opts):
			if start < pos && pos < end {
				result = append(result, BalancedTag{Name: name, Open: [2]int{start, end}})
			}
		default:
			stack = append(stack, &htmlTag{name, start, end})
		}
		return true
	})

	return result
}

type htmlInwardTag struct {
	name       string
	open       [2]int
	close      *[2]int
	firstChild *htmlInwardTag
}

// HTMLBalancedInward returns every tag pair that could match pos when
// narrowing a selection inward.
func HTMLBalancedInward(source string, pos int, opts ScannerOptions) []BalancedTag {
	var stack []*htmlInwardTag
	var result []BalancedTag

	ScanHTML(source, opts.Special, func(name string, elemType ElementType, start, end int) bool {
		switch {
		case elemType == ElementClose:
			if len(stack) == 0 {
				return true
			}
			top := stack[len(stack)-1]
			if top.name != name {
				return true
			}

			if top.open[0] <= pos && pos <= end {
				stack = stack[:len(stack)-1]
				closeRange := [2]int{start, end}
				result = append(result, BalancedTag{Name: name, Open: top.open, Close: &closeRange})

				t := top
				for t.firstChild != nil {
					child := t.firstChild
					res := BalancedTag{Name: child.name, Open: child.open}
					if child.close != nil {
						c := *child.close
						res.Close = &c
					}
					result = append(result, res)
					t = child
				}
				return false
			}

			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				if parent.firstChild == nil {
					closeRange := [2]int{start, end}
					top.close = &closeRange
					parent.firstChild = top
				}
			}
		case elemType == ElementSelfClose || isSelfCloseTag(name, opts):
			if start < pos && pos < end {
				result = append(result, BalancedTag{Name: name, Open: [2]int{start, end}})
				return false
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				if parent.firstChild == nil {
					parent.firstChild = &htmlInwardTag{name: name, open: [2]int{start, end}}
				}
			}
		default:
			stack = append(stack, &htmlInwardTag{name: name, open: [2]int{start, end}})
		}
		return true
	})

	return result
}

func isSelfCloseTag(name string, opts ScannerOptions) bool {
	if opts.XML {
		return false
	}
	for _, e := range opts.Empty {
		if e == name {
			return true
		}
	}
	return false
}

func getHTMLAttributes(source string, start, end int, name string) []AttributeToken {
	attrs := Attributes(source[start:end], name)
	for i := range attrs {
		attrs[i].NameStart += start
		attrs[i].NameEnd += start
		if attrs[i].HasValue {
			attrs[i].ValueStart += start
			attrs[i].ValueEnd += start
		}
	}
	return attrs
}
