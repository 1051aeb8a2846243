package combinator

import (
	"github.com/lexforge/lexforge/action"
	"github.com/lexforge/lexforge/lexerr"
)

// Repeat specifies the bounds of a repetition (spec.md §4.2): an exact
// count, a range, or an unbounded minimum/maximum. Max == -1 means
// unbounded, matching Rust's `m..` / `..` forms; the exclusive-upper-bound
// Rust range syntax (`m..n`, `..n`) is exposed via the RangeExclusive /
// AtMostExclusive constructors below, which translate it into this
// type's inclusive Max.
type Repeat struct {
	Min int
	Max int // -1 == unbounded
}

// Exactly is `n` repetitions, no more, no fewer.
func Exactly(n int) Repeat { return Repeat{Min: n, Max: n} }

// AtLeast is `m..` — m or more repetitions, unbounded above.
func AtLeast(m int) Repeat { return Repeat{Min: m, Max: -1} }

// AtMost is `..=n` — zero to n repetitions, inclusive.
func AtMost(n int) Repeat { return Repeat{Min: 0, Max: n} }

// Any is `..` — zero or more repetitions, unbounded above.
func Any() Repeat { return Repeat{Min: 0, Max: -1} }

// Between is `m..=n` — m to n repetitions, both bounds inclusive.
func Between(m, n int) Repeat { return Repeat{Min: m, Max: n} }

// RangeExclusive is `m..n` — m to n-1 repetitions, matching Rust's
// exclusive-upper-bound range syntax from spec.md's grammar examples.
func RangeExclusive(m, n int) Repeat { return Repeat{Min: m, Max: n - 1} }

// AtMostExclusive is `..n` — zero to n-1 repetitions.
func AtMostExclusive(n int) Repeat { return Repeat{Min: 0, Max: n - 1} }

// Fold folds one accepted repetition's value into the running accumulator.
// in is the same Input the repetition is executing under, letting fold
// inspect/mutate state or heap per repetition — spec.md's "inline form
// that receives the Input as a third argument to fold".
type Fold[S, H any] func(value any, acc any, in *action.Input[S, H]) any

// DefaultInit is the zero accumulator for untyped (unit-valued) repeats.
func DefaultInit() any { return nil }

// DefaultFold discards each repetition's value, producing unit overall —
// the default for A::Value = () in spec.md's terms.
func DefaultFold[S, H any](_ any, acc any, _ *action.Input[S, H]) any { return acc }

// Mul builds A*R: repeatedly invokes a, folding each accepted value into
// an accumulator seeded by init, until a rejects, a zero-digest accept
// occurs (folded once, then the loop stops to prevent looping forever),
// or r's upper bound is reached. Rejects as a whole, restoring the cursor,
// if fewer than r.Min repetitions were accepted.
func Mul[S, H any](a action.Action[S, H], r Repeat, init func() any, fold Fold[S, H]) action.Action[S, H] {
	return action.New[S, H](func(in *action.Input[S, H]) (action.Output, bool) {
		start := in.Instant
		acc := init()
		count := 0
		var errs []lexerr.Error
		for r.Max < 0 || count < r.Max {
			out, ok := a.Exec(in)
			if !ok {
				break
			}
			acc = fold(out.Value, acc, in)
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

// Star builds A*R for the common case of no custom accumulation: the
// produced value is always unit (nil).
func Star[S, H any](a action.Action[S, H], r Repeat) action.Action[S, H] {
	return Mul(a, r, DefaultInit, DefaultFold[S, H])
}
