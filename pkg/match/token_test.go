package match

import "testing"

func TestNextTokenStart(t *testing.T) {
	testCases := []struct {
		source      string
		from        int
		expected    int
		description string
	}{
		{"getText", 1, 3, "camelCase transition"},
		{"getText", 4, 7, "no token after camel component"},
		{"DOM.getText", 1, 1, "every uppercase letter starts a token"},
		{"DOM.getText", 3, 4, "word after dot separator"},
		{"DOM.getText", 5, 7, "camel transition after separator word"},
		{"batch_extract", 1, 6, "word after underscore"},
		{"foo-bar baz", 4, 4, "word after hyphen"},
		{"foo-bar baz", 5, 8, "word after space"},
		{"word2vec", 1, 8, "digits do not split a token"},
		{"abc", 0, 0, "start of string"},
		{"abc", 1, 3, "no further token"},
		{"...", 0, 3, "separators only"},
		{"", 0, 0, "empty source"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := nextTokenStart(tc.source, tc.from)
			if got != tc.expected {
				t.Errorf("nextTokenStart(%q, %d) = %d, want %d", tc.source, tc.from, got, tc.expected)
			}
		})
	}
}

func TestMatchToken(t *testing.T) {
	testCases := []struct {
		query       string
		source      string
		expected    []int
		description string
	}{
		{"text", "getText", []int{3, 4, 5, 6}, "suffix as whole token"},
		{"gt", "getText", []int{0, 3}, "two token starts"},
		{"text", "batchExtract", nil, "no token-start alignment"},
		{"text", "no match", nil, "characters missing"},
		{"dgt", "DOM.getText", []int{0, 4, 7}, "three tokens across separators"},
		{"TeXt", "getText", []int{3, 4, 5, 6}, "query case ignored"},
		{" te xt ", "getText", []int{3, 4, 5, 6}, "query whitespace stripped"},
		{"be", "batch_extract", []int{0, 6}, "snake case components"},
		{"getText", "getText", []int{0, 1, 2, 3, 4, 5, 6}, "full contiguous match"},
		{"gettextx", "getText", nil, "query longer than source"},
		{"", "getText", nil, "empty query is no match"},
		{"   ", "getText", nil, "whitespace-only query is no match"},
		{"a", "", nil, "empty source"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			res := MatchToken(tc.query, tc.source)
			if !equalPositions(res.Matches, tc.expected) {
				t.Errorf("MatchToken(%q, %q) matches = %v, want %v", tc.query, tc.source, res.Matches, tc.expected)
			}
			if tc.expected == nil && res.Score != 0 {
				t.Errorf("MatchToken(%q, %q) score = %v, want 0", tc.query, tc.source, res.Score)
			}
			if tc.expected != nil {
				want := Score(tc.source, tc.expected)
				if res.Score != want {
					t.Errorf("MatchToken(%q, %q) score = %v, want %v", tc.query, tc.source, res.Score, want)
				}
			}
		})
	}
}

// A mismatch mid-token must resume at the next token start, not at the
// next byte.
func TestMatchTokenResumesAtTokenStart(t *testing.T) {
	res := MatchToken("gx", "getText")
	if res.Score != 0 || len(res.Matches) != 0 {
		t.Errorf("expected no match, got %+v", res)
	}

	// "x" occurs mid-token at offset 5 but is never a token start.
	res = MatchToken("x", "getText")
	if res.Score != 0 || len(res.Matches) != 0 {
		t.Errorf("expected no match for mid-token character, got %+v", res)
	}
}

func equalPositions(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
