package action

import "strings"

// Till consumes up to and including the first occurrence of pat. If pat
// never occurs, it consumes the entire rest (this can never infinite-loop
// a repeat, since it always digests at least 1 byte when rest is
// non-empty). Value is the consumed substring, pat included.
//
// Rejects only when rest is empty and pat is non-empty (nothing to
// consume); an empty pat degenerates to consuming nothing but still
// accepting, matching Eat("")'s identity behavior.
func Till[S, H any](pat string) Action[S, H] {
	return New[S, H](func(in *Input[S, H]) (Output, bool) {
		rest := in.Instant.Rest()
		if pat == "" {
			return Output{Digested: 0, Value: ""}, true
		}
		if len(rest) == 0 {
			return Output{}, false
		}
		if idx := strings.Index(rest, pat); idx >= 0 {
			n := idx + len(pat)
			return Output{Digested: n, Value: rest[:n]}, true
		}
		return Output{Digested: len(rest), Value: rest}, true
	})
}
