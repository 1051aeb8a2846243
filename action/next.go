package action

// Next accepts the next byte iff pred reports true for it, consuming
// exactly 1 byte and producing that byte as its value. Head defaults to
// Unknown since pred is an arbitrary predicate the dispatcher can't
// statically narrow; callers who know pred is consistent with a fixed set
// should apply decorator.UncheckedHeadIn/UncheckedHeadNot to add the
// narrowing spec.md's dispatcher relies on for fast paths (e.g. digit,
// whitespace).
func Next[S, H any](pred func(b byte) bool) Action[S, H] {
	return New[S, H](func(in *Input[S, H]) (Output, bool) {
		rest := in.Instant.Rest()
		if len(rest) == 0 || !pred(rest[0]) {
			return Output{}, false
		}
		return Output{Digested: 1, Value: rest[0]}, true
	})
}
