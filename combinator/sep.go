package combinator

import (
	"github.com/lexforge/lexforge/action"
	"github.com/lexforge/lexforge/lexerr"
)

// Sep builds A.sep(S) bounded by r: like Mul, but after the first accepted
// A the loop requires S to accept before attempting the next A. If S
// accepts but the following A rejects, the cursor is rewound to just
// before that S was tried — the dangling separator is not consumed, so
// e.g. "a,a," digests only through the second "a", and "a,," digests
// only through the first "a" (the repeated separator is never eaten).
// A leading A is never preceded by a separator attempt.
func Sep[S, H any](a, sep action.Action[S, H], r Repeat, init func() any, fold Fold[S, H]) action.Action[S, H] {
	return action.New[S, H](func(in *action.Input[S, H]) (action.Output, bool) {
		start := in.Instant
		acc := init()
		count := 0
		var errs []lexerr.Error
		for r.Max < 0 || count < r.Max {
			beforeSep := in.Instant
			var sepErrs []lexerr.Error
			if count > 0 {
				sepOut, ok := sep.Exec(in)
				if !ok {
					break
				}
				in.Instant = in.Instant.Digest(sepOut.Digested)
				sepErrs = sepOut.Errs
			}

			out, ok := a.Exec(in)
			if !ok {
				in.Instant = beforeSep
				break
			}
			acc = fold(out.Value, acc, in)
			errs = append(errs, sepErrs...)
			errs = append(errs, out.Errs...)
			in.Instant = in.Instant.Digest(out.Digested)
			count++
			if out.Digested == 0 {
				break
			}
		}
		if count < r.Min {
			in.Instant = start
			return action.Output{}, false
		}
		digested := in.Instant.Digested() - start.Digested()
		in.Instant = start
		return action.Output{Digested: digested, Value: acc, Errs: errs}, true
	})
}

// SepStar builds A.sep(S) for the common case of no custom accumulation.
func SepStar[S, H any](a, sep action.Action[S, H], r Repeat) action.Action[S, H] {
	return Sep(a, sep, r, DefaultInit, DefaultFold[S, H])
}
