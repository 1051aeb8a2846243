package action

// Values is the runtime representation of spec.md's value-tuple-flattening
// algebra (§4.2, §9): the composite value type of A+B is "the left value
// type concatenated with the right, where unit is the identity of
// concatenation". nil stands for unit; any other single value is an
// implicit 1-tuple; Values is an explicit tuple (Concat also returns
// 1-tuples as a Values of length 1).
type Values []any

// AsValues normalizes v into its Values form: nil becomes the empty tuple,
// an existing Values passes through, anything else becomes a 1-tuple.
func AsValues(v any) Values {
	switch vv := v.(type) {
	case nil:
		return Values{}
	case Values:
		return vv
	default:
		return Values{v}
	}
}

// Concat implements +'s value composition: flatten-and-append, with unit
// absorbed on either side. The result is nil (unit) only if both operands
// were unit; a single non-unit operand becomes a 1-tuple (a Values of
// length 1), matching spec.md's "a single scalar becomes a 1-tuple" rule
// even when nothing on the other side contributed anything.
func Concat(a, b any) any {
	left := AsValues(a)
	right := AsValues(b)
	if len(left) == 0 && len(right) == 0 {
		return nil
	}
	out := make(Values, 0, len(left)+len(right))
	out = append(out, left...)
	out = append(out, right...)
	return out
}
