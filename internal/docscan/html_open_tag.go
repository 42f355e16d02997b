package docscan

// ContextTag describes the tag (open, close, or self-closing) whose
// source range encloses a caret position, with parsed attributes when
// it is an opening or self-closing tag. Grounded on
// action_utils/html.py's ContextTag/get_open_tag.
type ContextTag struct {
	Name       string
	Type       ElementType
	Start, End int
	Attributes []AttributeToken
}

// OpenTagAt scans code in document order for the first tag whose range
// strictly contains pos, stopping once a tag ending after pos has been
// passed without a match.
func OpenTagAt(code string, pos int, opts ScannerOptions) (*ContextTag, bool) {
	var tag *ContextTag

	ScanHTML(code, opts.Special, func(name string, elemType ElementType, start, end int) bool {
		if start < pos && pos < end {
			tag = &ContextTag{Name: name, Type: elemType, Start: start, End: end}
			if elemType == ElementOpen || elemType == ElementSelfClose {
				tag.Attributes = getHTMLAttributes(code, start, end, name)
			}
			return false
		}
		return end <= pos
	})

	return tag, tag != nil
}
