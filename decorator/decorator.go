// Package decorator implements the value- and metadata-transforming
// wrappers from spec.md's C5: bind, select, map/data, then, prevent,
// reject, mute, range, optional, log, and the unchecked_head_*
// family that lets a grammar author assert a head matcher by hand.
//
// Every decorator here wraps an existing action.Action, producing a new
// one via WithExec/WithHead/WithKind/WithMuted — it never mutates the
// action passed in.
package decorator

import (
	"github.com/lexforge/lexforge/action"
	"github.com/lexforge/lexforge/head"
	"github.com/lexforge/lexforge/kind"
	"github.com/lexforge/lexforge/lexerr"
)

// Bind sets a's kind to id and replaces its accepted value with a
// kind.Binding carrying id and the original value. Used to attach a
// token kind to an action that otherwise only recognizes text.
func Bind[S, H any](a action.Action[S, H], id kind.ID) action.Action[S, H] {
	return a.WithExec(func(in *action.Input[S, H]) (action.Output, bool) {
		out, ok := a.Exec(in)
		if !ok {
			return action.Output{}, false
		}
		out.Value = kind.Binding{ID: id, Value: out.Value}
		return out, true
	}).WithKind(id)
}

// SelectFunc computes a kind id from the accepted context, for actions
// whose kind depends on the matched text or state rather than being
// static.
type SelectFunc[S, H any] func(out action.Output, in *action.Input[S, H]) kind.ID

// Select is Bind but with the id computed per-match instead of fixed at
// construction. Because the id isn't known until after Exec runs, the
// resulting action carries no static KindID — lexer.StatelessLexer therefore
// never places it in a kind_head_map bucket (unless it is muted), so it is a
// candidate under ExpectAny (and ExpectLiteral, if it keeps a literal tag)
// but not under ExpectKind.
func Select[S, H any](a action.Action[S, H], fn SelectFunc[S, H]) action.Action[S, H] {
	return a.WithoutKind().WithExec(func(in *action.Input[S, H]) (action.Output, bool) {
		out, ok := a.Exec(in)
		if !ok {
			return action.Output{}, false
		}
		id := fn(out, in)
		out.Value = kind.Binding{ID: id, Value: out.Value}
		return out, true
	})
}

// MapFunc transforms an accepted value into a new one.
type MapFunc func(value any) any

// Map transforms a's accepted value via fn, leaving kind and muted status
// untouched. Also exported as Data, matching spec.md's dual naming.
func Map[S, H any](a action.Action[S, H], fn MapFunc) action.Action[S, H] {
	return a.WithExec(func(in *action.Input[S, H]) (action.Output, bool) {
		out, ok := a.Exec(in)
		if !ok {
			return action.Output{}, false
		}
		out.Value = fn(out.Value)
		return out, true
	})
}

// Data is an alias for Map.
func Data[S, H any](a action.Action[S, H], fn MapFunc) action.Action[S, H] {
	return Map(a, fn)
}

// ThenFunc runs a side effect when a accepts — typically a state mutation.
type ThenFunc[S, H any] func(out action.Output, in *action.Input[S, H])

// Then runs fn whenever a accepts, then passes the output through
// unchanged.
func Then[S, H any](a action.Action[S, H], fn ThenFunc[S, H]) action.Action[S, H] {
	return a.WithExec(func(in *action.Input[S, H]) (action.Output, bool) {
		out, ok := a.Exec(in)
		if !ok {
			return action.Output{}, false
		}
		fn(out, in)
		return out, true
	})
}

// PreventFunc decides, from the input alone, whether a should be refused
// without ever calling its exec.
type PreventFunc[S, H any] func(in *action.Input[S, H]) bool

// Prevent rejects outright, without invoking a, when fn(in) holds. The
// head matcher is preserved since rejection here is input-driven, not
// content-driven — the dispatcher's pre-filter is still valid.
func Prevent[S, H any](a action.Action[S, H], fn PreventFunc[S, H]) action.Action[S, H] {
	return a.WithExec(func(in *action.Input[S, H]) (action.Output, bool) {
		if fn(in) {
			return action.Output{}, false
		}
		return a.Exec(in)
	})
}

// RejectFunc decides, from an accepted output, whether that accept should
// be turned into a reject.
type RejectFunc[S, H any] func(out action.Output, in *action.Input[S, H]) bool

// Reject calls a, then turns its accept into a reject if fn holds over the
// accepted output. Unlike Prevent, the inner action still runs (and may
// still mutate state/heap before being vetoed) — that mutation is the
// caller's responsibility to guard against if it matters.
func Reject[S, H any](a action.Action[S, H], fn RejectFunc[S, H]) action.Action[S, H] {
	return a.WithExec(func(in *action.Input[S, H]) (action.Output, bool) {
		out, ok := a.Exec(in)
		if !ok {
			return action.Output{}, false
		}
		if fn(out, in) {
			return action.Output{}, false
		}
		return out, true
	})
}

// AnnotateFunc inspects an accepted output and optionally produces an
// application-level error to attach to it (spec.md §7 mode 2) — e.g.
// "unterminated string". Returning ok=false attaches nothing.
type AnnotateFunc[S, H any] func(out action.Output, in *action.Input[S, H]) (err lexerr.Error, ok bool)

// Annotate calls a, then — if it accepts — asks fn whether to attach an
// application-level error to the result. Unlike Reject, the accept always
// stands; the error just rides along in Output.Errs for the dispatcher's
// per-lex accumulator (lexer.Output.Errors) to collect.
func Annotate[S, H any](a action.Action[S, H], fn AnnotateFunc[S, H]) action.Action[S, H] {
	return a.WithExec(func(in *action.Input[S, H]) (action.Output, bool) {
		out, ok := a.Exec(in)
		if !ok {
			return action.Output{}, false
		}
		if err, attach := fn(out, in); attach {
			out.Errs = append(out.Errs, err)
		}
		return out, true
	})
}

// Mute marks a's accepts as producing no token — only advancing the
// cursor. Used for whitespace and comments.
func Mute[S, H any](a action.Action[S, H]) action.Action[S, H] {
	return a.WithMuted(true)
}

// Ranged is the value produced by Range: the original value plus the byte
// range it was matched from, relative to the Instant the action executed
// against.
type Ranged struct {
	Start int
	End   int
	Value any
}

// Range wraps a's accepted value into a Ranged recording [start, start+digested).
func Range[S, H any](a action.Action[S, H]) action.Action[S, H] {
	return a.WithExec(func(in *action.Input[S, H]) (action.Output, bool) {
		start := in.Instant.Digested()
		out, ok := a.Exec(in)
		if !ok {
			return action.Output{}, false
		}
		out.Value = Ranged{Start: start, End: start + out.Digested, Value: out.Value}
		return out, true
	})
}

// Optional makes a always accept: if a accepts, its output passes through;
// otherwise the result is a zero-width accept with a nil value. Since it
// accepts whatever the lookahead byte is, the result has an Unknown head
// matcher and no literal tag; a's kind and muted flag are kept.
func Optional[S, H any](a action.Action[S, H]) action.Action[S, H] {
	opt := action.New[S, H](func(in *action.Input[S, H]) (action.Output, bool) {
		if out, ok := a.Exec(in); ok {
			return out, true
		}
		return action.Output{Digested: 0, Value: nil}, true
	}).WithMuted(a.Muted())
	if id, ok := a.KindID(); ok {
		opt = opt.WithKind(id)
	}
	return opt
}

// UncheckedHeadIn overrides a's head matcher to OneOf(bs). The caller
// asserts that a only ever accepts when the lookahead byte is in bs; the
// dispatcher will trust this without verifying it, hence "unchecked".
func UncheckedHeadIn[S, H any](a action.Action[S, H], bs ...byte) action.Action[S, H] {
	return a.WithHead(head.Bytes(bs...))
}

// UncheckedHeadNot overrides a's head matcher to Not(bs), asserting a
// never accepts when the lookahead byte is in bs.
func UncheckedHeadNot[S, H any](a action.Action[S, H], bs ...byte) action.Action[S, H] {
	return a.WithHead(head.NotBytes(bs...))
}

// UncheckedHeadUnknown overrides a's head matcher to Unknown, disabling
// head-based pre-filtering for it entirely.
func UncheckedHeadUnknown[S, H any](a action.Action[S, H]) action.Action[S, H] {
	return a.WithHead(head.Any())
}
