package action

import (
	"strings"

	"github.com/lexforge/lexforge/head"
)

// Eat accepts when Rest() has literal as a prefix. Value is unit (nil); the
// usual way to give it meaning is decorator.Bind or decorator.Map.
//
// An empty literal always accepts with Digested: 0 — this is the identity
// element used by the concat-identity test property ((A + Eat("")).Exec(s)
// matches A.Exec(s) modulo value shape: a non-unit value comes back as a
// 1-tuple).
func Eat[S, H any](literal string) Action[S, H] {
	a := New[S, H](func(in *Input[S, H]) (Output, bool) {
		if !strings.HasPrefix(in.Instant.Rest(), literal) {
			return Output{}, false
		}
		return Output{Digested: len(literal), Value: nil}, true
	})
	if literal != "" {
		a = a.WithHead(head.Bytes(literal[0])).WithLiteral(literal)
	}
	return a
}

// EatByte accepts a single exact byte. Equivalent to Eat(string(b)) but
// avoids the string allocation on the hot path.
func EatByte[S, H any](b byte) Action[S, H] {
	return New[S, H](func(in *Input[S, H]) (Output, bool) {
		rest := in.Instant.Rest()
		if len(rest) == 0 || rest[0] != b {
			return Output{}, false
		}
		return Output{Digested: 1, Value: nil}, true
	}).WithHead(head.Bytes(b)).WithLiteral(string(b))
}
