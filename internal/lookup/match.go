package lookup

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// DefaultCutoff is the minimum similarity ratio for an approximate match.
const DefaultCutoff = 0.6

// Fold normalizes s for case-insensitive comparison.
func Fold(s string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}

// closestMatch returns the candidate most similar to word whose ratio reaches cutoff.
// Equal scores are resolved in favour of the lexicographically greater candidate.
func closestMatch(word string, candidates []string, cutoff float64) (string, bool) {
	matcher := difflib.NewMatcher(nil, splitRunes(word))

	var best string
	var bestScore float64
	found := false
	for _, candidate := range candidates {
		matcher.SetSeq1(splitRunes(candidate))
		if matcher.RealQuickRatio() < cutoff || matcher.QuickRatio() < cutoff {
			continue
		}
		score := matcher.Ratio()
		if score < cutoff {
			continue
		}
		if !found || score > bestScore || (score == bestScore && candidate > best) {
			best = candidate
			bestScore = score
			found = true
		}
	}
	return best, found
}

func splitRunes(s string) []string {
	runes := []rune(s)
	elements := make([]string, len(runes))
	for i, r := range runes {
		elements[i] = string(r)
	}
	return elements
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
