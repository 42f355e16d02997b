package fuzzy_test

import (
	"testing"

	"github.com/emmetio/py-emmet/internal/fuzzy"
)

func TestScoreExactMatch(t *testing.T) {
	if got := fuzzy.Score("Position", "position", false); got != 1 {
		t.Fatalf("expected 1 for a case-insensitive exact match, got %v", got)
	}
}

func TestScoreDifferentFirstCharIsZero(t *testing.T) {
	if got := fuzzy.Score("xyz", "position", false); got != 0 {
		t.Fatalf("expected 0 when first characters differ, got %v", got)
	}
}

func TestScoreTooLongWithoutPartialMatch(t *testing.T) {
	if got := fuzzy.Score("positionally", "position", false); got != 0 {
		t.Fatalf("expected 0 when query outgrows candidate and partial match is off, got %v", got)
	}
}

func TestScorePrefixBeatsScattered(t *testing.T) {
	prefix := fuzzy.Score("pos", "position", false)
	scattered := fuzzy.Score("pon", "position", false)
	if prefix <= scattered {
		t.Fatalf("expected prefix match to score higher: prefix=%v scattered=%v", prefix, scattered)
	}
}

func TestBestMatchPicksHighestScore(t *testing.T) {
	candidates := []string{"position", "padding", "poas"}
	idx := fuzzy.BestMatch("pos", func(i int) string { return candidates[i] }, len(candidates), 0, false)
	// poas scores 8*(3/4)/9 ≈ 0.667, position 21*(3/8)/21 = 0.375,
	// padding 0 (no 'o').
	if idx != 2 {
		t.Fatalf("expected index 2 (poas), got %d", idx)
	}
}

func TestBestMatchBelowMinScoreReturnsNegativeOne(t *testing.T) {
	candidates := []string{"position"}
	idx := fuzzy.BestMatch("p", func(i int) string { return candidates[i] }, len(candidates), 0.99, false)
	if idx != -1 {
		t.Fatalf("expected no match below the min score threshold, got %d", idx)
	}
}

func TestUnmatchedPart(t *testing.T) {
	if got := fuzzy.UnmatchedPart("poas", "position"); got != "as" {
		t.Fatalf("expected unmatched suffix %q, got %q", "as", got)
	}
}
