package match

import (
	"strings"

	"github.com/tokenpick/tokenpick/internal/utils"
)

// MatchWildcard finds each query character anywhere in source, in order,
// case-insensitively, without the token alignment constraint. It reports
// the leftmost-greedy subsequence, so positions are strictly increasing.
func MatchWildcard(query, source string) Result {
	q := normalizeQuery(query)
	if q == "" {
		return Result{}
	}

	lower := utils.LowerASCII(source)
	positions := make([]int, 0, len(q))
	from := 0
	for i := 0; i < len(q); i++ {
		idx := strings.IndexByte(lower[from:], q[i])
		if idx < 0 {
			return Result{}
		}
		positions = append(positions, from+idx)
		from += idx + 1
	}
	return Result{Score: Score(source, positions), Matches: positions}
}
