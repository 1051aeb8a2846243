// Package action implements the recognizer contract (spec.md C3): the
// Action type, its per-call Input/Output, and the primitive recognizers
// (eat, take, next, till, wrap) that every combinator and decorator in
// this module ultimately builds on.
//
// Go has no direct equivalent of Rust's per-combinator monomorphization
// (spec.md §9, "Heterogeneous action types"): Go interface/closure calls
// already cost one indirect call regardless of how many named types exist,
// so there is no inlining win to chase by giving every primitive and every
// operator result a distinct named type. Action is therefore a single
// generic struct — a closure plus its dispatch metadata — and combinators
// are ordinary functions that return a new Action built from the operands'
// closures and metadata.
package action

import (
	"github.com/lexforge/lexforge/head"
	"github.com/lexforge/lexforge/instant"
	"github.com/lexforge/lexforge/kind"
	"github.com/lexforge/lexforge/lexerr"
)

// Input is the per-exec handle an Action receives: the current cursor plus
// mutable references to the caller's state and heap. It is short-lived —
// actions must not retain it past a single Exec call.
type Input[S, H any] struct {
	Instant instant.Instant
	State   *S
	Heap    *H
}

// Output is what an accepting Exec call reports: how many bytes of
// Input.Instant.Rest() were consumed, and the semantic value produced.
// Value is untyped (spec.md §9's tuple-flattening algebra is implemented
// over Values, see values.go) — nil represents the unit value.
//
// Errs carries application-level errors attached to this accept (spec.md
// §7 mode 2, e.g. "unterminated string") — the token is still produced,
// these just ride along with it. Ordinary match failure never populates
// this; it's the (Output, bool) reject path. decorator.Annotate is the
// only thing that appends to it; every combinator that composes two
// Outputs (Concat, Mul, Sep) must concatenate their Errs rather than
// drop either side.
type Output struct {
	Digested int
	Value    any
	Errs     []lexerr.Error
}

// Func is the shape of an Action's recognition step: inspect rest via in,
// and either accept (true) with an Output, or reject (false).
type Func[S, H any] func(in *Input[S, H]) (Output, bool)

// Action is a recognizer: a matching function plus the static dispatch
// metadata (kind, muted, head matcher, literal tag) the lexer dispatcher
// uses to narrow candidates before ever calling Exec.
type Action[S, H any] struct {
	exec       Func[S, H]
	kindID     kind.ID
	hasKind    bool
	muted      bool
	head       head.Matcher
	literal    string
	hasLiteral bool
}

// New builds an Action from a raw exec function, defaulting its head
// matcher to Any() (Unknown) and no kind/literal/mute metadata.
func New[S, H any](exec Func[S, H]) Action[S, H] {
	return Action[S, H]{exec: exec, head: head.Any()}
}

// Exec attempts to match at the current position.
func (a Action[S, H]) Exec(in *Input[S, H]) (Output, bool) {
	return a.exec(in)
}

// KindID reports the kind this action produces when accepted un-muted.
func (a Action[S, H]) KindID() (kind.ID, bool) {
	return a.kindID, a.hasKind
}

// Muted reports whether an accepted match produces no token — it only
// advances the cursor.
func (a Action[S, H]) Muted() bool {
	return a.muted
}

// Head is the dispatcher's advisory pre-filter for this action.
func (a Action[S, H]) Head() head.Matcher {
	return a.head
}

// Literal is the exact prefix this action is known to consume, if any.
func (a Action[S, H]) Literal() (string, bool) {
	return a.literal, a.hasLiteral
}

// WithHead returns a copy of a with its head matcher replaced.
func (a Action[S, H]) WithHead(h head.Matcher) Action[S, H] {
	a.head = h
	return a
}

// WithKind returns a copy of a bound to the given kind id.
func (a Action[S, H]) WithKind(id kind.ID) Action[S, H] {
	a.kindID = id
	a.hasKind = true
	return a
}

// WithoutKind returns a copy of a with no kind bound.
func (a Action[S, H]) WithoutKind() Action[S, H] {
	a.hasKind = false
	a.kindID = 0
	return a
}

// WithMuted returns a copy of a with its muted flag set.
func (a Action[S, H]) WithMuted(muted bool) Action[S, H] {
	a.muted = muted
	return a
}

// WithLiteral returns a copy of a tagged with the exact literal it consumes.
func (a Action[S, H]) WithLiteral(lit string) Action[S, H] {
	a.literal = lit
	a.hasLiteral = true
	return a
}

// WithExec returns a copy of a with its exec function replaced, preserving
// all metadata — the shape every decorator in package decorator uses to
// wrap an inner action's matching behavior without disturbing its
// dispatch metadata unless that's specifically what the decorator changes.
func (a Action[S, H]) WithExec(exec Func[S, H]) Action[S, H] {
	a.exec = exec
	return a
}
