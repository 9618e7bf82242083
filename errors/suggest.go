package errors

import (
	"sort"
	"strings"
)

// MaxSuggestions is the maximum number of suggestions to return.
const MaxSuggestions = 3

// Suggestion is a candidate attribute name and its edit distance from the
// name that was looked up.
type Suggestion struct {
	Value    string
	Distance int
}

// SuggestSimilar returns up to MaxSuggestions candidates close to target,
// closest first. Dunder names are only suggested for dunder targets.
func SuggestSimilar(target string, candidates []string) []Suggestion {
	if target == "" || len(candidates) == 0 {
		return nil
	}
	wantDunder := isDunder(target)
	threshold := maxDistance(target)

	var suggestions []Suggestion
	seen := make(map[string]bool, len(candidates))
	for _, candidate := range candidates {
		if candidate == "" || candidate == target || seen[candidate] || isDunder(candidate) != wantDunder {
			continue
		}
		seen[candidate] = true
		dist := levenshteinDistance(strings.ToLower(target), strings.ToLower(candidate))
		if dist <= threshold {
			suggestions = append(suggestions, Suggestion{Value: candidate, Distance: dist})
		}
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		return suggestions[i].Value < suggestions[j].Value
	})
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}

// FormatSuggestions formats suggestions as a hint. Returns "" if there are none.
func FormatSuggestions(suggestions []Suggestion) string {
	switch len(suggestions) {
	case 0:
		return ""
	case 1:
		return "Did you mean '" + suggestions[0].Value + "'?"
	}
	quoted := make([]string, len(suggestions))
	for i, s := range suggestions {
		quoted[i] = "'" + s.Value + "'"
	}
	return "Did you mean one of: " + strings.Join(quoted, ", ") + "?"
}

func isDunder(name string) bool {
	return len(name) > 4 && strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// Short names tolerate fewer edits.
func maxDistance(target string) int {
	switch n := len(target); {
	case n <= 3:
		return 1
	case n <= 5:
		return 2
	default:
		return 3
	}
}

// levenshteinDistance computes the edit distance between two strings using
// two rows instead of a full matrix.
func levenshteinDistance(a, b string) int {
	ar, br := []rune(a), []rune(b)
	if len(ar) > len(br) {
		ar, br = br, ar
	}
	prev := make([]int, len(ar)+1)
	curr := make([]int, len(ar)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(br); j++ {
		curr[0] = j
		for i := 1; i <= len(ar); i++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(ar)]
}
