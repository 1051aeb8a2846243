package lexer

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns the registered literal tag closest to got, for
// surfacing a did-you-mean hint in lexer.Error.Suggestion when an
// expectation-filtered lex fails to find an accepting candidate (e.g. a
// keyword typo). Returns "" if literals is empty or none rank as close.
func Suggest(got string, literals []string) string {
	if len(literals) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(got, literals)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}
