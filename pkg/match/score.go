package match

import "math"

// Score converts matched positions into a single ranking score: with n
// matched positions summing to S in a source of length L, the score is
// n / (S - n/L). Matches concentrated early in the source score higher.
// The formula is asymmetric and unbounded; it deliberately does not
// normalize across sources of different lengths.
//
// Empty positions score 0. A denominator of exactly zero (only possible
// when both bytes of a two-byte source are matched) scores +Inf, the
// tightest match the formula can express. A lone match at offset 0 yields
// a negative score, which ranks below every positive match; callers that
// want the query/source pair treated as matched must accept that ordering.
func Score(source string, positions []int) float64 {
	n := len(positions)
	if n == 0 || len(source) == 0 {
		return 0
	}
	sum := 0
	for _, p := range positions {
		sum += p
	}
	denom := float64(sum) - float64(n)/float64(len(source))
	if denom == 0 {
		return math.Inf(1)
	}
	return float64(n) / denom
}
