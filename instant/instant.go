// Package instant implements the cursor that tracks how much of an input
// text has been consumed by a lex or parse session.
package instant

// Instant is an immutable-ish cursor over an input text. A new Instant is
// created once per lex session and only ever moves forward: Digest returns
// a new Instant further into the text, it never mutates the receiver.
type Instant struct {
	text     string
	digested int
}

// New creates an Instant at the start of text.
func New(text string) Instant {
	return Instant{text: text, digested: 0}
}

// Text is the whole input this cursor was created over. It never changes
// across the lifetime of a lex session.
func (i Instant) Text() string {
	return i.text
}

// Rest is the undigested suffix of Text. May be empty.
func (i Instant) Rest() string {
	return i.text[i.digested:]
}

// Digested is the number of bytes already consumed. Invariant:
// 0 <= Digested() <= len(Text()).
func (i Instant) Digested() int {
	return i.digested
}

// Digest returns a new Instant advanced by n bytes of Rest. Panics if n is
// negative or exceeds len(Rest()) — callers (combinators, the stateful
// lexer) are responsible for only ever digesting what an Action reported,
// which is always in range by construction.
func (i Instant) Digest(n int) Instant {
	if n < 0 || n > len(i.Rest()) {
		panic("instant: digest out of range")
	}
	return Instant{text: i.text, digested: i.digested + n}
}
