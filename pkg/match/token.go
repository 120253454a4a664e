package match

import "github.com/tokenpick/tokenpick/internal/utils"

// MatchToken matches every query character at or after a token start in
// source. Matching may continue contiguously once a token start has been
// matched; on a mismatch the scan jumps to the start of the next token.
// Either the whole query matches or the zero Result is returned, never a
// partial one.
func MatchToken(query, source string) Result {
	q := normalizeQuery(query)
	if q == "" {
		return Result{}
	}

	positions := make([]int, 0, len(q))
	cursor := 0
	for qi := 0; qi < len(q); {
		if cursor >= len(source) {
			return Result{}
		}
		if utils.ToLowerASCII(source[cursor]) == q[qi] {
			positions = append(positions, cursor)
			cursor++
			qi++
			continue
		}
		cursor = nextTokenStart(source, cursor+1)
	}
	return Result{Score: Score(source, positions), Matches: positions}
}

// nextTokenStart returns the offset of the first token start at or after
// from, or len(source) when no token remains. Tokens begin at camelCase
// transitions and after word boundaries, hyphens, underscores and spaces.
func nextTokenStart(source string, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(source); i++ {
		if isTokenStart(source, i) {
			return i
		}
	}
	return len(source)
}

// isTokenStart reports whether source[i] begins a token. An uppercase
// letter always does; a lowercase letter or digit does when it starts the
// string or follows a non-alphanumeric byte.
func isTokenStart(source string, i int) bool {
	b := source[i]
	if !utils.IsAlnumASCII(b) {
		return false
	}
	if utils.IsUpperASCII(b) {
		return true
	}
	return i == 0 || !utils.IsAlnumASCII(source[i-1])
}
