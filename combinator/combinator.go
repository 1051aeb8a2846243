// Package combinator implements the composition operators spec.md's C4
// describes: Concat (+), Alt (|), Not (!), and the fold/separator
// repetition engine behind Mul (*) and Sep.
package combinator

import (
	"github.com/lexforge/lexforge/action"
	"github.com/lexforge/lexforge/head"
	"github.com/lexforge/lexforge/lexerr"
)

// mergeErrs concatenates two accepted Outputs' application-level error
// accumulators (spec.md §7 mode 2) in left-to-right order. Concat uses
// this; Mul and Sep append each repetition's Errs in the same order
// directly, so no combinator keeps just one side's Errs.
func mergeErrs(errSets ...[]lexerr.Error) []lexerr.Error {
	var merged []lexerr.Error
	for _, errs := range errSets {
		merged = append(merged, errs...)
	}
	return merged
}

// Concat builds A+B: accepts iff a accepts at the current position and b
// accepts immediately after. The combined value is a.Value ⊕ b.Value under
// action.Concat's flattening algebra; the combined head matcher is a's
// (left-biased narrowing, spec.md §4.2).
func Concat[S, H any](a, b action.Action[S, H]) action.Action[S, H] {
	return action.New[S, H](func(in *action.Input[S, H]) (action.Output, bool) {
		start := in.Instant
		outA, ok := a.Exec(in)
		if !ok {
			return action.Output{}, false
		}
		in.Instant = start.Digest(outA.Digested)
		outB, ok := b.Exec(in)
		if !ok {
			in.Instant = start
			return action.Output{}, false
		}
		in.Instant = start
		return action.Output{
			Digested: outA.Digested + outB.Digested,
			Value:    action.Concat(outA.Value, outB.Value),
			Errs:     mergeErrs(outA.Errs, outB.Errs),
		}, true
	}).WithHead(head.Concat(a.Head(), b.Head()))
}

// Alt builds A|B: accepts iff a accepts; otherwise iff b accepts. Left
// biased — a is always tried first, even when both would accept (spec.md
// §8's alt-left-bias property). Head matcher is the union when both
// operands are OneOf, else Unknown (head.Alt).
func Alt[S, H any](a, b action.Action[S, H]) action.Action[S, H] {
	return action.New[S, H](func(in *action.Input[S, H]) (action.Output, bool) {
		if out, ok := a.Exec(in); ok {
			return out, true
		}
		return b.Exec(in)
	}).WithHead(head.Alt(a.Head(), b.Head()))
}

// Not builds !A: zero-width positive-reject lookahead. Accepts with
// Digested:0 iff a rejects at the current position; rejects iff a accepts.
// !!A is positive lookahead. Always Unknown head, since acceptance here
// depends on the *absence* of a's match, which head.Matcher can't express.
func Not[S, H any](a action.Action[S, H]) action.Action[S, H] {
	return action.New[S, H](func(in *action.Input[S, H]) (action.Output, bool) {
		start := in.Instant
		_, ok := a.Exec(in)
		in.Instant = start
		if ok {
			return action.Output{}, false
		}
		return action.Output{Digested: 0, Value: nil}, true
	})
}
