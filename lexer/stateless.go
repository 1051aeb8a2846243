// Package lexer implements spec.md's stateless dispatcher (C8) and
// stateful lexer (C9): the head-matcher-indexed candidate tables that let
// dispatch skip actions whose head matcher can't possibly accept the
// current byte, the fork/re-lex protocol for retracting a lex decision,
// and the owning wrapper that threads an Instant/state/heap across calls.
package lexer

import (
	"github.com/lexforge/lexforge/action"
	"github.com/lexforge/lexforge/kind"
	"github.com/lexforge/lexforge/lexerr"
)

// Token is what an un-muted accept produces: the kind/value binding plus
// the byte range it was matched from.
type Token struct {
	Binding kind.Binding
	Range   [2]int
}

// ExpectationKind selects which of the dispatcher's three candidate
// tables a lex call should restrict itself to.
type ExpectationKind int

const (
	// ExpectAny uses the unrestricted head_map: any registered action is a
	// candidate, filtered only by head matcher.
	ExpectAny ExpectationKind = iota
	// ExpectKind restricts candidates to actions that can produce a given
	// kind (plus all muted actions), via kind_head_map.
	ExpectKind
	// ExpectLiteral restricts candidates to actions tagged with a given
	// literal (plus all muted actions), via literal_head_map.
	ExpectLiteral
)

// Expectation narrows dispatch to a specific kind or literal tag, or
// leaves it unrestricted.
type Expectation struct {
	Kind    ExpectationKind
	KindID  kind.ID
	Literal string
}

// ForkContext points at the first dispatch candidate after the one that
// produced a token, letting a caller retract that decision and ask the
// dispatcher to try only the remaining alternatives at the same position.
type ForkContext struct {
	Start int
	Skip  int
	Valid bool
}

// Options configures one lex call.
type Options struct {
	Expectation Expectation
	Fork        bool
	ReLex       ForkContext
}

// Output is the result of one Lex or Trim call.
//
// Errors is the per-lex error accumulator spec.md §7 mode 2 describes:
// application-level errors attached (via decorator.Annotate) to any
// action that ran during this call — muted skips included, not just the
// action that produced Token — collected here for the caller to inspect.
// The token is still emitted; these never turn an accept into a reject.
type Output struct {
	Token    *Token
	Digested int
	Fork     *ForkContext
	Errors   []lexerr.Error
}

type headBuckets [256][]int

func buildHeadBuckets[S, H any](actions []action.Action[S, H], include func(a action.Action[S, H]) bool) *headBuckets {
	var hb headBuckets
	for b := 0; b < 256; b++ {
		var bucket []int
		for i, a := range actions {
			if include(a) && a.Head().Matches(byte(b)) {
				bucket = append(bucket, i)
			}
		}
		hb[b] = bucket
	}
	return &hb
}

// StatelessLexer is immutable after construction and safe to share across
// goroutines: all its dispatch tables are built once, up front, from a
// fixed list of registered actions (spec.md C8).
type StatelessLexer[S, H any] struct {
	actions        []action.Action[S, H]
	headMap        *headBuckets
	mutedMap       *headBuckets
	kindHeadMap    map[kind.ID]*headBuckets
	literalHeadMap map[string]*headBuckets
}

// NewStateless builds a StatelessLexer from actions, in registration
// order — the tie-break rule the dispatcher uses when more than one
// candidate in a bucket could accept: first registered, first tried.
func NewStateless[S, H any](actions []action.Action[S, H]) *StatelessLexer[S, H] {
	l := &StatelessLexer[S, H]{
		actions:        actions,
		kindHeadMap:    make(map[kind.ID]*headBuckets),
		literalHeadMap: make(map[string]*headBuckets),
	}
	l.headMap = buildHeadBuckets(actions, func(action.Action[S, H]) bool { return true })
	l.mutedMap = buildHeadBuckets(actions, func(a action.Action[S, H]) bool { return a.Muted() })

	kindIDs := map[kind.ID]bool{}
	literals := map[string]bool{}
	for _, a := range actions {
		if id, ok := a.KindID(); ok {
			kindIDs[id] = true
		}
		if lit, ok := a.Literal(); ok {
			literals[lit] = true
		}
	}
	for id := range kindIDs {
		l.kindHeadMap[id] = buildHeadBuckets(actions, func(a action.Action[S, H]) bool {
			if a.Muted() {
				return true
			}
			aid, ok := a.KindID()
			return ok && aid == id
		})
	}
	for lit := range literals {
		lit := lit
		l.literalHeadMap[lit] = buildHeadBuckets(actions, func(a action.Action[S, H]) bool {
			if a.Muted() {
				return true
			}
			alit, ok := a.Literal()
			return ok && alit == lit
		})
	}
	return l
}

func (l *StatelessLexer[S, H]) bucketFor(e Expectation, c byte) []int {
	switch e.Kind {
	case ExpectKind:
		if hb, ok := l.kindHeadMap[e.KindID]; ok {
			return hb[c]
		}
		return nil
	case ExpectLiteral:
		if hb, ok := l.literalHeadMap[e.Literal]; ok {
			return hb[c]
		}
		return nil
	default:
		return l.headMap[c]
	}
}

// Lex runs the dispatch algorithm against in, mutating in.Instant as it
// consumes muted actions and, on an un-muted accept, the matched bytes.
func (l *StatelessLexer[S, H]) Lex(in *action.Input[S, H], opts Options) Output {
	totalMuted := 0
	var errs []lexerr.Error
	for {
		rest := in.Instant.Rest()
		if len(rest) == 0 {
			return Output{Digested: totalMuted, Errors: errs}
		}
		c := rest[0]
		bucket := l.bucketFor(opts.Expectation, c)
		skip := 0
		if opts.ReLex.Valid && in.Instant.Digested() == opts.ReLex.Start {
			skip = opts.ReLex.Skip
		}

		advanced := false
		for idx := skip; idx < len(bucket); idx++ {
			a := l.actions[bucket[idx]]
			out, ok := a.Exec(in)
			if !ok {
				continue
			}
			if a.Muted() {
				in.Instant = in.Instant.Digest(out.Digested)
				totalMuted += out.Digested
				errs = append(errs, out.Errs...)
				advanced = true
				if out.Digested == 0 {
					// Zero-width muted accept: looping back to step 1
					// would just re-select the same bucket at the same
					// offset forever.
					return Output{Digested: totalMuted, Errors: errs}
				}
				break
			}

			start := in.Instant.Digested()
			binding, ok := out.Value.(kind.Binding)
			if !ok {
				// Action carries a static kind but never went through
				// decorator.Bind/Select, so its value isn't pre-wrapped.
				id, _ := a.KindID()
				binding = kind.Binding{ID: id, Value: out.Value}
			}
			token := &Token{
				Binding: binding,
				Range:   [2]int{start, start + out.Digested},
			}
			errs = append(errs, out.Errs...)
			in.Instant = in.Instant.Digest(out.Digested)
			result := Output{Token: token, Digested: totalMuted + out.Digested, Errors: errs}
			if opts.Fork && idx+1 < len(bucket) {
				result.Fork = &ForkContext{Start: start, Skip: idx + 1, Valid: true}
			}
			return result
		}
		if !advanced {
			return Output{Digested: totalMuted, Errors: errs}
		}
	}
}

// Trim consumes only muted actions, stopping at the first position none
// of them match — spec.md's description of the dispatcher's comment/
// whitespace-skipping entry point.
func (l *StatelessLexer[S, H]) Trim(in *action.Input[S, H]) Output {
	total := 0
	var errs []lexerr.Error
	for {
		rest := in.Instant.Rest()
		if len(rest) == 0 {
			return Output{Digested: total, Errors: errs}
		}
		c := rest[0]
		bucket := l.mutedMap[c]
		matched := false
		for _, ai := range bucket {
			a := l.actions[ai]
			out, ok := a.Exec(in)
			if !ok {
				continue
			}
			in.Instant = in.Instant.Digest(out.Digested)
			total += out.Digested
			errs = append(errs, out.Errs...)
			matched = true
			if out.Digested == 0 {
				return Output{Digested: total, Errors: errs}
			}
			break
		}
		if !matched {
			return Output{Digested: total, Errors: errs}
		}
	}
}
