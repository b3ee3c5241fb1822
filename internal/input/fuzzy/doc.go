// Package fuzzy ranks candidate names against a misspelled query, for
// "did you mean" hints in error messages.
//
// Two signals are combined. A subsequence match (every query character
// appears in order in the candidate) is scored the way a file picker would:
// consecutive runs, a shared prefix and short candidates rank higher. A
// candidate within a small edit distance of the query also matches, which
// catches transposed or mistyped letters that break the subsequence.
//
//	fuzzy.Suggest("bspc", []string{"bspace", "space", "tab"}, 1)
//	// ["bspace"]
//
// Matching is case-insensitive and rune-aware.
package fuzzy
