// Package head implements the dispatcher's advisory pre-filter: a cheap
// predicate over the next input byte, used to prune candidate actions
// before any exec is attempted.
package head

// Kind discriminates the shape of a Matcher.
type Kind int

const (
	// Unknown matches every byte; it is the fallback for actions whose
	// first byte can't be statically narrowed (take, next(pred), wrap).
	Unknown Kind = iota
	// OneOf matches only bytes in Set.
	OneOf
	// Not matches every byte except those in Set.
	Not
)

// Matcher is a tagged choice over the lookahead byte. It is advisory: a
// well-formed OneOf/Not matcher is a contract that the wrapped action will
// reject whenever Matches returns false, so the dispatcher can skip exec
// entirely and stay correct.
type Matcher struct {
	kind Kind
	set  [256]bool
}

// Any is the Unknown matcher — always a candidate.
func Any() Matcher {
	return Matcher{kind: Unknown}
}

// Bytes builds a OneOf matcher over the given bytes.
func Bytes(bs ...byte) Matcher {
	m := Matcher{kind: OneOf}
	for _, b := range bs {
		m.set[b] = true
	}
	return m
}

// NotBytes builds a Not matcher excluding the given bytes.
func NotBytes(bs ...byte) Matcher {
	m := Matcher{kind: Not}
	for _, b := range bs {
		m.set[b] = true
	}
	return m
}

// Kind reports the matcher's discriminant.
func (m Matcher) Kind() Kind {
	return m.kind
}

// Matches reports whether b is a candidate byte under m.
func (m Matcher) Matches(b byte) bool {
	switch m.kind {
	case OneOf:
		return m.set[b]
	case Not:
		return !m.set[b]
	default:
		return true
	}
}

// Set returns the bytes explicitly named in a OneOf/Not matcher, in
// ascending order. Empty for Unknown.
func (m Matcher) Set() []byte {
	if m.kind == Unknown {
		return nil
	}
	out := make([]byte, 0, 8)
	for b := 0; b < 256; b++ {
		if m.set[byte(b)] {
			out = append(out, byte(b))
		}
	}
	return out
}

// Concat computes the head matcher of A+B: left-biased narrowing, per
// spec — the combined matcher is simply A's.
func Concat(a, _ Matcher) Matcher {
	return a
}

// Alt computes the head matcher of A|B: OneOf(Sa ∪ Sb) when both operands
// are OneOf, else Unknown (a Not or Unknown operand can't be narrowed by
// union without risking excluding a byte one side would have accepted).
func Alt(a, b Matcher) Matcher {
	if a.kind == OneOf && b.kind == OneOf {
		m := Matcher{kind: OneOf}
		for i := 0; i < 256; i++ {
			if a.set[byte(i)] || b.set[byte(i)] {
				m.set[byte(i)] = true
			}
		}
		return m
	}
	return Any()
}

// Disjoint reports whether a and b can be statically proven to never both
// match the same byte — used by the alt-commutativity test property, only
// meaningful for two OneOf matchers.
func Disjoint(a, b Matcher) bool {
	if a.kind != OneOf || b.kind != OneOf {
		return false
	}
	for i := 0; i < 256; i++ {
		if a.set[byte(i)] && b.set[byte(i)] {
			return false
		}
	}
	return true
}
