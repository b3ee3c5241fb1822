package fuzzy

import (
	"slices"
	"testing"
)

func TestSuggest(t *testing.T) {
	names := []string{"bspace", "space", "tab", "lshift", "rshift", "obrack", "cbrack", "pup", "pdown"}

	tests := []struct {
		query string
		limit int
		want  []string
	}{
		{"bspc", 1, []string{"bspace"}},
		{"lshfit", 1, []string{"lshift"}}, // edit distance
		{"rshit", 1, []string{"rshift"}},  // subsequence
		{"obr", 1, []string{"obrack"}},
		{"PDOWN", 0, []string{"pdown"}},
		{"zzzz", 0, nil},
		{"", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Suggest(tt.query, names, tt.limit)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Suggest(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatchOrdering(t *testing.T) {
	results := Match("s", []string{"space", "s", "shift", "s"}, 0)

	var got []string
	for _, r := range results {
		got = append(got, r.Text)
	}
	want := []string{"s", "shift", "space"}
	if !slices.Equal(got, want) {
		t.Errorf("Match() order = %v, want %v", got, want)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted by score: %v", results)
		}
	}
}

func TestMatchLimit(t *testing.T) {
	results := Match("a", []string{"a", "ab", "abc", "abcd"}, 2)
	if len(results) != 2 {
		t.Errorf("len(Match()) = %d, want 2", len(results))
	}
}

func TestShortQueriesNeedSubsequence(t *testing.T) {
	// "xy" is within distance 2 of "ab" but shares nothing with it.
	if got := Suggest("xy", []string{"ab"}, 0); len(got) != 0 {
		t.Errorf("Suggest(xy) = %v, want none", got)
	}
}

func TestHint(t *testing.T) {
	if got, want := Hint("bspc", []string{"bspace", "tab"}), ` (did you mean "bspace"?)`; got != want {
		t.Errorf("Hint() = %q, want %q", got, want)
	}
	if got := Hint("zzzz", []string{"bspace", "tab"}); got != "" {
		t.Errorf("Hint() = %q, want empty", got)
	}
}
