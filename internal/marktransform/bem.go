package marktransform

import (
	"regexp"
	"strings"

	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
)

var (
	reBEMElement       = regexp.MustCompile(`(?i)^(-+)([a-z0-9]+[a-z0-9-]*)`)
	reBEMModifier      = regexp.MustCompile(`(?i)^(_+)([a-z0-9]+[a-z0-9-_]*)`)
	reBlockCandidate1  = regexp.MustCompile(`(?i)^[a-z]-`)
	reBlockCandidate2  = regexp.MustCompile(`(?i)^[a-z]`)
)

type bemData struct {
	classNames []string
	block      string
}

// BEM expands BEM shorthand class notation (`-element`, `_modifier`) into
// full `block__element`/`block--modifier`-style class names. Grounded on
// markup/addon/bem.py.
//
// The upstream get_block_name helper relies on a Python mutable default
// argument to memoize per-node BEM data across calls that don't pass a
// cache explicitly; that's a correctness accident rather than an
// intended design, so this port threads the same lookup map through
// every call instead of recreating that quirk.
func BEM(node *abbr.Node, ancestors []*abbr.Node, cfg *config.Config) {
	lookup := map[*abbr.Node]*bemData{}
	expandClassNames(node, lookup)
	expandShortNotation(node, ancestors, cfg, lookup)
}

func expandClassNames(node *abbr.Node, lookup map[*abbr.Node]*bemData) {
	data := getBEMData(node, lookup)
	var classNames []string

	for _, cl := range data.classNames {
		if ix := strings.Index(cl, "_"); ix > 0 && cl[0] != '-' {
			classNames = append(classNames, cl[:ix], cl[ix:])
		} else {
			classNames = append(classNames, cl)
		}
	}

	if len(classNames) > 0 {
		data.classNames = unique(classNames)
		data.block = findBlockName(data.classNames)
		updateClass(node, strings.Join(data.classNames, " "))
	}
}

func expandShortNotation(node *abbr.Node, ancestors []*abbr.Node, cfg *config.Config, lookup map[*abbr.Node]*bemData) {
	data := getBEMData(node, lookup)
	var classNames []string
	path := append(append([]*abbr.Node{}, ancestors...), node)

	for _, originalClass := range data.classNames {
		cl := originalClass
		prefix := ""

		if m := reBEMElement.FindStringSubmatch(cl); m != nil {
			prefix = getBlockName(path, len(m[1]), cfg, lookup) + cfg.Options.BEMElement + m[2]
			classNames = append(classNames, prefix)
			cl = cl[len(m[0]):]
		}

		if m := reBEMModifier.FindStringSubmatch(cl); m != nil {
			if prefix == "" {
				prefix = getBlockName(path, len(m[1]), cfg, lookup)
				classNames = append(classNames, prefix)
			}
			classNames = append(classNames, prefix+cfg.Options.BEMModifier+m[2])
			cl = cl[len(m[0]):]
		}

		if cl == originalClass {
			classNames = append(classNames, originalClass)
		}
	}

	if deduped := unique(classNames); len(deduped) > 0 {
		updateClass(node, strings.Join(deduped, " "))
	}
}

func getBEMData(node *abbr.Node, lookup map[*abbr.Node]*bemData) *bemData {
	if data, ok := lookup[node]; ok {
		return data
	}
	classValue := ""
	for _, attr := range node.Attributes {
		if attr.Name == "class" && len(attr.Value) > 0 {
			classValue = stringifyValue(attr.Value)
			break
		}
	}
	data := parseBEM(classValue)
	lookup[node] = data
	return data
}

func parseBEM(classValue string) *bemData {
	var classNames []string
	if classValue != "" {
		classNames = strings.Fields(classValue)
	}
	return &bemData{classNames: classNames, block: findBlockName(classNames)}
}

func getBlockName(ancestors []*abbr.Node, depth int, cfg *config.Config, lookup map[*abbr.Node]*bemData) string {
	maxParentIx := 0
	parentIx := len(ancestors) - depth
	if parentIx < maxParentIx {
		parentIx = maxParentIx
	}

	for parentIx >= maxParentIx {
		if parentIx < len(ancestors) && parentIx >= 0 {
			parent := ancestors[parentIx]
			data := getBEMData(parent, lookup)
			if data.block != "" {
				return data.block
			}
		}
		parentIx--
	}

	if cfg.Context != nil {
		classValue := cfg.Context.Attributes["class"]
		data := parseBEM(classValue)
		if data.block != "" {
			return data.block
		}
	}

	return ""
}

func findBlockName(classNames []string) string {
	if b := findClass(classNames, func(cl string) bool { return reBlockCandidate1.MatchString(cl) }); b != "" {
		return b
	}
	return findClass(classNames, func(cl string) bool { return reBlockCandidate2.MatchString(cl) })
}

func findClass(classNames []string, test func(string) bool) string {
	for _, cl := range classNames {
		if reBEMElement.MatchString(cl) || reBEMModifier.MatchString(cl) {
			break
		}
		if test(cl) {
			return cl
		}
	}
	return ""
}

func updateClass(node *abbr.Node, value string) {
	for _, attr := range node.Attributes {
		if attr.Name == "class" {
			attr.Value = []abbr.ValuePart{abbr.TextPart(value)}
			break
		}
	}
}

func stringifyValue(parts []abbr.ValuePart) string {
	var b strings.Builder
	for _, p := range parts {
		switch v := p.(type) {
		case abbr.TextPart:
			b.WriteString(string(v))
		case abbr.FieldPart:
			b.WriteString(v.Name)
		}
	}
	return b.String()
}

func unique(items []string) []string {
	seen := map[string]bool{}
	var result []string
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}
