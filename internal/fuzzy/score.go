// Package fuzzy implements the character-position fuzzy match emmet
// uses to resolve stylesheet abbreviations against property/keyword
// names, e.g. matching "poas" against "position". Grounded on
// stylesheet/score.py.
package fuzzy

import "strings"

// Score calculates how closely str1 matches str2, in the range [0, 1].
// Both strings must start with the same character. Characters of str1
// found earlier in str2 score higher, with a small acronym bonus for a
// match immediately following a `-`. partialMatch allows str1 to be
// longer than str2 (used when resolving a property name against an
// abbreviation that may overrun it).
func Score(str1, str2 string, partialMatch bool) float64 {
	str1 = strings.ToLower(str1)
	str2 = strings.ToLower(str2)

	if str1 == str2 {
		return 1
	}

	if str1 == "" || str2 == "" || str1[0] != str2[0] {
		return 0
	}

	str1Len := len(str1)
	str2Len := len(str2)

	if !partialMatch && str1Len > str2Len {
		return 0
	}

	minLength := str1Len
	if str2Len < minLength {
		minLength = str2Len
	}
	maxLength := str1Len
	if str2Len > maxLength {
		maxLength = str2Len
	}

	i, j := 1, 1
	score := float64(maxLength)
	found := false
	acronym := false

	for i < str1Len {
		ch1 := str1[i]
		found = false
		acronym = false

		for j < str2Len {
			ch2 := str2[j]
			if ch1 == ch2 {
				found = true
				pos := j
				if acronym {
					pos = i
				}
				score += float64(maxLength - pos)
				break
			}
			acronym = ch2 == '-'
			j++
		}

		if !found {
			if !partialMatch {
				return 0
			}
			break
		}
		i++
	}

	matchRatio := float64(i) / float64(maxLength)
	delta := maxLength - minLength
	maxScore := nSum(maxLength) - nSum(delta)
	return (score * matchRatio) / maxScore
}

func nSum(n int) float64 {
	return float64(n*(n+1)) / 2
}

// BestMatch picks the item from items whose ScoringPart best matches
// abbr, returning its index, or -1 if nothing clears minScore.
func BestMatch(abbr string, scoringPart func(i int) string, count int, minScore float64, partialMatch bool) int {
	maxScore := 0.0
	matched := -1

	for i := 0; i < count; i++ {
		score := Score(abbr, scoringPart(i), partialMatch)
		if score == 1 {
			return i
		}
		if score > 0 && score >= maxScore {
			maxScore = score
			matched = i
		}
	}

	if maxScore >= minScore {
		return matched
	}
	return -1
}

// UnmatchedPart returns the suffix of abbr that wasn't found, in order,
// as a subsequence of text. For example matching "poas" against
// "position" leaves "as" unmatched since "a" doesn't appear after "o".
func UnmatchedPart(abbr, text string) string {
	lastPos := 0
	for i := 0; i < len(abbr); i++ {
		idx := strings.IndexByte(text[lastPos:], abbr[i])
		if idx == -1 {
			return abbr[i:]
		}
		lastPos += idx + 1
	}
	return ""
}
