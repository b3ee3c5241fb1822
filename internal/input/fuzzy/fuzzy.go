package fuzzy

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// MaxDistance is the largest edit distance accepted as a typo.
const MaxDistance = 2

// Result is a ranked candidate.
type Result struct {
	// Text is the candidate.
	Text string

	// Score is the match score (higher is better).
	Score int
}

// Match ranks every candidate that fuzzily matches query, best first, ties
// broken by text. At most limit results are returned; limit <= 0 means all.
func Match(query string, candidates []string, limit int) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	queryRunes := []rune(query)

	results := make([]Result, 0)
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		if score := scoreCandidate(queryRunes, []rune(strings.ToLower(c))); score > 0 {
			results = append(results, Result{Text: c, Score: score})
		}
	}

	slices.SortFunc(results, func(a, b Result) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return strings.Compare(a.Text, b.Text)
	})

	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results
}

// Suggest returns the texts of the best matches.
func Suggest(query string, candidates []string, limit int) []string {
	results := Match(query, candidates, limit)
	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.Text
	}
	return texts
}

// Hint formats suggestions for an error message, e.g.
// ` (did you mean "bspace"?)`, or returns "" when nothing matches.
func Hint(query string, candidates []string) string {
	s := Suggest(query, candidates, 3)
	if len(s) == 0 {
		return ""
	}
	quoted := make([]string, len(s))
	for i, t := range s {
		quoted[i] = `"` + t + `"`
	}
	return " (did you mean " + strings.Join(quoted, " or ") + "?)"
}

// scoreCandidate returns 0 for no match.
func scoreCandidate(query, text []rune) int {
	if len(text) == 0 {
		return 0
	}
	if slices.Equal(query, text) {
		return 1000
	}

	best := 0
	if matches := subsequence(query, text); matches != nil {
		best = subsequenceScore(query, text, matches)
	}

	// Only short queries could be typos of short names; a two-letter query
	// is within distance 2 of every two-letter name.
	if len(query) > MaxDistance {
		if d := levenshtein.ComputeDistance(string(query), string(text)); d <= MaxDistance {
			if s := 150 - 40*d; s > best {
				best = s
			}
		}
	}
	return best
}

// subsequence returns the indices of a greedy left-to-right match of query
// in text, or nil if some query rune is missing.
func subsequence(query, text []rune) []int {
	matches := make([]int, 0, len(query))
	qi := 0
	for i := 0; i < len(text) && qi < len(query); i++ {
		if text[i] == query[qi] {
			matches = append(matches, i)
			qi++
		}
	}
	if qi != len(query) {
		return nil
	}
	return matches
}

// subsequenceScore favors consecutive matches, a prefix match and short text,
// and penalizes gaps.
func subsequenceScore(query, text []rune, matches []int) int {
	score := 100

	for i := 1; i < len(matches); i++ {
		if matches[i] == matches[i-1]+1 {
			score += 20
		}
	}

	if matches[0] == 0 {
		score += 25
	} else {
		score -= matches[0]
	}

	if gap := matches[len(matches)-1] - matches[0] - len(matches) + 1; gap > 0 {
		score -= gap * 2
	}

	if len(text) < 20 {
		score += 20 - len(text)
	}

	if len(text) >= len(query) && slices.Equal(text[:len(query)], query) {
		score += 50
	}

	return max(score, 1)
}
