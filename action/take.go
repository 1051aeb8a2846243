package action

// Take accepts iff at least n bytes remain, consuming exactly n of them.
// Value is unit. Take(0) always accepts without consuming anything, which
// makes it an identity for concatenation (spec.md §8).
//
// Grounded in original_source/src/combinator/provided/bytes/take.rs: an
// out-of-range n is an ordinary match failure, never a panic — only the
// stateful lexer's unchecked Take (lexer.StatefulLexer.Take) is fatal on
// misuse.
func Take[S, H any](n int) Action[S, H] {
	return New[S, H](func(in *Input[S, H]) (Output, bool) {
		if n < 0 || len(in.Instant.Rest()) < n {
			return Output{}, false
		}
		return Output{Digested: n, Value: nil}, true
	})
}
