package marktransform

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
)

var reLorem = regexp.MustCompile(`(?i)^lorem([a-z]*)(\d*)(-\d*)?$`)

// vocabulary holds a word list plus an optional leading "common" sentence
// (the classic "lorem ipsum dolor sit amet..." opener).
type vocabulary struct {
	common []string
	words  []string
}

var latinVocabulary = vocabulary{
	common: []string{"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit"},
	words: []string{
		"exercitationem", "perferendis", "perspiciatis", "laborum", "eveniet",
		"sunt", "iure", "nam", "nobis", "eum", "cum", "officiis", "excepturi",
		"odio", "consectetur", "quasi", "aut", "quisquam", "vel", "eligendi",
		"itaque", "non", "odit", "tempore", "quaerat", "dignissimos",
		"facilis", "neque", "nihil", "expedita", "vitae", "vero", "ipsum",
		"nisi", "praesentium", "voluptate", "donec", "fuga", "aliquid",
		"magnam", "dolore", "autem", "ut", "labore", "quidem", "tempora",
		"inventore", "consequatur", "alias", "nulla", "laudantium", "illo",
		"dicta", "repudiandae", "nam", "libero", "tempore", "cum", "soluta",
		"nobis", "eligendi", "optio", "cumque", "impedit", "quo", "porro",
		"quisquam", "est", "qui", "dolorem", "ipsum", "quia", "dolor", "sit",
		"amet", "consectetur", "adipisci", "velit", "sed", "quia", "non",
		"numquam", "eius", "modi", "tempora", "incidunt", "magnam",
		"quaerat", "voluptatem", "ut", "enim", "ad", "minima", "veniam",
		"quis", "nostrum", "exercitationem", "ullam", "corporis", "suscipit",
		"laboriosam", "aliquid", "ex", "ea", "commodi", "consequatur",
	},
}

var vocabularies = map[string]vocabulary{
	"latin": latinVocabulary,
}

// Lorem replaces a node whose name matches "lorem", "loremN" or
// "loremN-M" with a generated lorem-ipsum text block, erasing the node's
// name and attributes. Grounded on markup/lorem/__init__.py.
func Lorem(node *abbr.Node, ancestors []*abbr.Node, cfg *config.Config) {
	if !node.HasName {
		return
	}

	m := reLorem.FindStringSubmatch(node.Name)
	if m == nil {
		return
	}

	db, ok := vocabularies[strings.ToLower(m[1])]
	if !ok {
		db = vocabularies["latin"]
	}

	minWords := 30
	if m[2] != "" {
		if n, err := strconv.Atoi(m[2]); err == nil && n > 0 {
			minWords = n
		}
	}
	maxWords := minWords
	if m[3] != "" {
		if n, err := strconv.Atoi(strings.TrimPrefix(m[3], "-")); err == nil && n > minWords {
			maxWords = n
		}
	}
	wordCount := minWords
	if maxWords > minWords {
		wordCount = minWords + rand.Intn(maxWords-minWords+1)
	}

	repeat := node.Repeat
	if repeat == nil {
		repeat = findRepeater(ancestors)
	}

	node.HasName = false
	node.Name = ""
	node.Attributes = nil
	node.HasValue = true
	node.Value = []abbr.ValuePart{abbr.TextPart(paragraph(db, wordCount, repeat == nil || repeat.Value == 0))}

	if node.Repeat != nil && len(ancestors) > 1 {
		ResolveImplicitTag(node, ancestors, cfg)
	}
}

func sample(words []string, count int) []string {
	n := len(words)
	if count > n {
		count = n
	}
	seen := map[int]bool{}
	var result []string
	for len(result) < count {
		idx := rand.Intn(n)
		if seen[idx] {
			continue
		}
		seen[idx] = true
		result = append(result, words[idx])
	}
	return result
}

const punctuation = "?!..."

func sentence(words []string, end string) string {
	if len(words) == 0 {
		return ""
	}
	words = append([]string{}, words...)
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	if end == "" {
		end = string(punctuation[rand.Intn(len(punctuation))])
	}
	return strings.Join(words, " ") + end
}

func insertCommas(words []string) []string {
	if len(words) < 2 {
		return words
	}
	words = append([]string{}, words...)
	l := len(words)

	var totalCommas int
	switch {
	case l > 3 && l <= 6:
		totalCommas = rand.Intn(2)
	case l > 6 && l <= 12:
		totalCommas = rand.Intn(3)
	default:
		totalCommas = 1 + rand.Intn(4)
	}

	for i := 0; i < totalCommas; i++ {
		pos := rand.Intn(l - 1)
		if !strings.HasSuffix(words[pos], ",") {
			words[pos] += ","
		}
	}
	return words
}

func paragraph(db vocabulary, wordCount int, startWithCommon bool) string {
	var result []string
	totalWords := 0

	if startWithCommon && len(db.common) > 0 {
		n := wordCount
		if n > len(db.common) {
			n = len(db.common)
		}
		words := db.common[:n]
		totalWords += len(words)
		result = append(result, sentence(insertCommas(words), "."))
	}

	for totalWords < wordCount {
		n := 2 + rand.Intn(29)
		if remaining := wordCount - totalWords; n > remaining {
			n = remaining
		}
		words := sample(db.words, n)
		totalWords += len(words)
		result = append(result, sentence(insertCommas(words), ""))
	}

	return strings.Join(result, " ")
}
