/*
Package match scores how well a short query matches a candidate string,
preferring matches aligned with token boundaries over arbitrary substring
matches.

Two matchers cooperate. The token matcher requires every query character to
be found at, or contiguously after, the start of a token (a word, or a
camelCase / snake_case component). The wildcard matcher is the fallback: it
greedily finds each query character anywhere in the source, in order,
case-insensitively.

Match runs the token matcher first and multiplies its score by a bias
(default 10) so token-aligned matches always outrank wildcard matches of
comparable position quality:

	res := match.Match("gt", "getText")
	// res.Matches == [0, 3], res.Score > 0

A zero score with empty Matches means no match. Scores are a ranking
heuristic, not a bounded scale: matches concentrated early in the source
score higher, and candidates of very different lengths are not normalized
against each other.

All functions are pure and safe for concurrent use. Matching is ASCII
case-insensitive and byte-oriented; reported positions are byte offsets
into the original source string.
*/
package match
