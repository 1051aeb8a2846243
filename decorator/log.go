package decorator

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/lexforge/lexforge/action"
)

// logIndent is a package-level indent counter shared by every Log-wrapped
// action in the process. This is deliberately not synchronized: the log
// decorator is documented instrumentation, not something safe to exercise
// from more than one goroutine at a time.
var logIndent int

// LogEvent is one CBOR-encodable trace record emitted by a Log-wrapped
// action when a Sink is installed.
type LogEvent struct {
	Name     string `cbor:"name"`
	Depth    int    `cbor:"depth"`
	Offset   int    `cbor:"offset"`
	Accepted bool   `cbor:"accepted"`
	Digested int    `cbor:"digested,omitempty"`
}

// Sink receives LogEvents instead of the default stderr text trace. Sinks
// that want to forward binary frames to another process can use
// LogEvent.Encode to get an event's CBOR-encoded form.
type Sink interface {
	Emit(LogEvent)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(LogEvent)

func (f SinkFunc) Emit(e LogEvent) { f(e) }

// Encode CBOR-encodes a LogEvent, for sinks that forward raw bytes.
func (e LogEvent) Encode() ([]byte, error) {
	return cbor.Marshal(e)
}

// Log wraps a with tracing instrumentation: after every Exec call returns it
// prints (or, with sink installed, emits as a structured LogEvent) one record
// of the outcome, indented by the shared package-level depth counter as it
// stood when the call began. name identifies the wrapped action in the
// trace. A nil sink falls back to a one-line stderr message per call.
func Log[S, H any](a action.Action[S, H], name string, sink Sink) action.Action[S, H] {
	return a.WithExec(func(in *action.Input[S, H]) (action.Output, bool) {
		depth := logIndent
		offset := in.Instant.Digested()
		logIndent++
		out, ok := a.Exec(in)
		logIndent--

		event := LogEvent{Name: name, Depth: depth, Offset: offset, Accepted: ok}
		if ok {
			event.Digested = out.Digested
		}
		if sink != nil {
			sink.Emit(event)
		} else {
			indent := ""
			for i := 0; i < depth; i++ {
				indent += "  "
			}
			if ok {
				fmt.Fprintf(os.Stderr, "%s%s @%d accept digested=%d\n", indent, name, offset, out.Digested)
			} else {
				fmt.Fprintf(os.Stderr, "%s%s @%d reject\n", indent, name, offset)
			}
		}
		return out, ok
	})
}
