package lexer

import (
	"github.com/lexforge/lexforge/action"
	"github.com/lexforge/lexforge/instant"
)

// Cloner is the constraint a stateful lexer's State type parameter must
// satisfy: snapshot/restore and peek all need an independent copy of
// State without touching Heap, mirroring the Rust original's `State:
// Clone` bound (Heap carries no such bound there either).
type Cloner[S any] interface {
	Clone() S
}

// Snapshot captures (instant, state) — never heap, matching the original
// implementation's Snapshot type, which has no heap field: heap is shared,
// ambient storage that survives rewinds on purpose (e.g. an interner).
type Snapshot[S any] struct {
	Instant instant.Instant
	State   S
}

// StatefulLexer owns an Instant plus the State/Heap an Action's Input
// needs, and delegates matching to a shared, immutable StatelessLexer
// (spec.md C9).
type StatefulLexer[S Cloner[S], H any] struct {
	stateless *StatelessLexer[S, H]
	instant   instant.Instant
	state     *S
	heap      *H
	trimmed   bool
}

// NewStateful wraps stateless around text, owning state and heap.
func NewStateful[S Cloner[S], H any](stateless *StatelessLexer[S, H], text string, state *S, heap *H) *StatefulLexer[S, H] {
	return &StatefulLexer[S, H]{stateless: stateless, instant: instant.New(text), state: state, heap: heap}
}

// Instant returns the lexer's current cursor.
func (l *StatefulLexer[S, H]) Instant() instant.Instant { return l.instant }

// State returns the lexer's live state pointer.
func (l *StatefulLexer[S, H]) State() *S { return l.state }

// Heap returns the lexer's live heap pointer.
func (l *StatefulLexer[S, H]) Heap() *H { return l.heap }

// Lex dispatches with no expectation restriction, advancing the cursor on
// a token (or on trailing muted consumption).
func (l *StatefulLexer[S, H]) Lex() Output {
	return l.LexWith(Options{})
}

// LexWith is Lex with an explicit Options value (expectation, fork, re-lex).
func (l *StatefulLexer[S, H]) LexWith(opts Options) Output {
	in := &action.Input[S, H]{Instant: l.instant, State: l.state, Heap: l.heap}
	out := l.stateless.Lex(in, opts)
	l.instant = in.Instant
	if out.Digested > 0 {
		l.trimmed = false
	}
	return out
}

// Peek is Lex, but against a cloned State and without advancing self —
// neither l.instant nor l.state changes.
func (l *StatefulLexer[S, H]) Peek() (Output, S) {
	return l.PeekWith(Options{})
}

// PeekWith is Peek with explicit Options.
func (l *StatefulLexer[S, H]) PeekWith(opts Options) (Output, S) {
	cloned := (*l.state).Clone()
	in := &action.Input[S, H]{Instant: l.instant, State: &cloned, Heap: l.heap}
	out := l.stateless.Lex(in, opts)
	return out, cloned
}

// Trim runs only muted actions, advancing the cursor past leading
// whitespace/comments. A second call before the cursor otherwise moves is
// a no-op (digests 0): the "trimmed" idempotence spec.md describes.
func (l *StatefulLexer[S, H]) Trim() Output {
	if l.trimmed {
		return Output{Digested: 0}
	}
	in := &action.Input[S, H]{Instant: l.instant, State: l.state, Heap: l.heap}
	out := l.stateless.Trim(in)
	l.instant = in.Instant
	l.trimmed = true
	return out
}

// Snapshot captures (instant, state) for later Restore — used around a
// fork/re-lex, or any speculative lookahead the caller wants to undo.
func (l *StatefulLexer[S, H]) Snapshot() Snapshot[S] {
	return Snapshot[S]{Instant: l.instant, State: (*l.state).Clone()}
}

// Restore rewinds to a previously captured Snapshot. Heap is untouched.
func (l *StatefulLexer[S, H]) Restore(s Snapshot[S]) {
	l.instant = s.Instant
	*l.state = s.State
	l.trimmed = false
}

// Take skips n bytes without invoking any action — an escape hatch for
// error recovery, not ordinary dispatch. Panics (via Instant.Digest) if n
// would cross the end of the input.
func (l *StatefulLexer[S, H]) Take(n int) {
	l.instant = l.instant.Digest(n)
	l.trimmed = false
}

// Reload points the lexer at newText, resetting the cursor to its start.
// The registered actions (stateless), state, and heap are kept as-is —
// only the text and the position within it change.
func (l *StatefulLexer[S, H]) Reload(newText string) {
	l.instant = instant.New(newText)
	l.trimmed = false
}
