// Package recur implements spec.md's C6 recursion primitive: a way to
// reference a grammar rule before it has been built, so cyclic grammars
// (JSON's value -> array | object | ... | value) can be expressed without
// a cyclic Go type.
package recur

import (
	"sync/atomic"

	"github.com/lexforge/lexforge/action"
	"github.com/lexforge/lexforge/lexerr"
)

// New returns a getter/setter pair sharing one initially-empty slot.
//
// get may be called any number of times during grammar construction,
// before or after set runs; each call returns a new Action that, when
// executed, dynamically dispatches to whatever action set last stored.
// Evaluating (calling Exec on) an action produced by get before set has
// been called is a programming error: it panics with lexerr.Misuse,
// per spec.md §7 mode 3.
//
// set is one-shot only in the sense the contract describes — a grammar is
// expected to call it exactly once per recur() — but nothing here
// prevents a second call; the slot just holds whatever was stored last.
func New[S, H any]() (get func() action.Action[S, H], set func(action.Action[S, H])) {
	var slot atomic.Pointer[action.Action[S, H]]

	get = func() action.Action[S, H] {
		return action.New[S, H](func(in *action.Input[S, H]) (action.Output, bool) {
			p := slot.Load()
			if p == nil {
				panic(lexerr.Misuse{Reason: "recur: slot read before set was called"})
			}
			return p.Exec(in)
		})
	}
	set = func(a action.Action[S, H]) {
		slot.Store(&a)
	}
	return get, set
}
