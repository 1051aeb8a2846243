package lexer

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/lexforge/lexforge/action"
	"github.com/lexforge/lexforge/kind"
	"github.com/lexforge/lexforge/lexerr"
)

// tokenWire is Token's CBOR-stable shape — kind.ID and the byte range are
// plain integers, so no custom field codec is needed beyond struct tags.
type tokenWire struct {
	KindID int    `cbor:"k"`
	Value  any    `cbor:"v"`
	Start  int    `cbor:"s"`
	End    int    `cbor:"e"`
}

// MarshalBinary CBOR-encodes t, for hosts that snapshot lexer output
// across a process boundary (e.g. a cached parse tree on disk).
func (t Token) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(tokenWire{
		KindID: int(t.Binding.ID),
		Value:  t.Binding.Value,
		Start:  t.Range[0],
		End:    t.Range[1],
	})
}

// UnmarshalBinary decodes a Token previously produced by MarshalBinary.
func (t *Token) UnmarshalBinary(data []byte) error {
	var w tokenWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}
	t.Binding = kind.Binding{ID: kind.ID(w.KindID), Value: w.Value}
	t.Range = [2]int{w.Start, w.End}
	return nil
}

// errWire is lexerr.Error's CBOR-stable shape.
type errWire struct {
	Message    string `cbor:"m"`
	Offset     int    `cbor:"o"`
	Suggestion string `cbor:"s"`
}

// outputWire mirrors action.Output for binary snapshotting.
type outputWire struct {
	Digested int       `cbor:"d"`
	Value    any       `cbor:"v"`
	Errs     []errWire `cbor:"errs,omitempty"`
}

// MarshalOutput CBOR-encodes an action.Output, including its
// application-level error accumulator. Exported as a free function
// rather than a method since action.Output lives in a package that
// intentionally carries no encoding dependency of its own.
func MarshalOutput(out action.Output) ([]byte, error) {
	w := outputWire{Digested: out.Digested, Value: out.Value}
	for _, e := range out.Errs {
		w.Errs = append(w.Errs, errWire{Message: e.Message, Offset: e.Offset, Suggestion: e.Suggestion})
	}
	return cbor.Marshal(w)
}

// UnmarshalOutput decodes a value produced by MarshalOutput.
func UnmarshalOutput(data []byte) (action.Output, error) {
	var w outputWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return action.Output{}, err
	}
	out := action.Output{Digested: w.Digested, Value: w.Value}
	for _, e := range w.Errs {
		out.Errs = append(out.Errs, lexerr.Error{Message: e.Message, Offset: e.Offset, Suggestion: e.Suggestion})
	}
	return out, nil
}
