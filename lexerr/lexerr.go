// Package lexerr defines the two error shapes spec.md's §7 distinguishes:
// ordinary match failure (never an error — it's the (Output, bool) return
// every Action already has) and the two exceptional conditions a caller
// cannot recover a sensible value from: an application-level error
// attached to an otherwise-accepted token, and a fatal misuse panic.
//
// This lives in its own package, rather than inside package lexer
// directly, so that recur (which needs to panic with the same typed
// value when its slot is read before being set) does not have to import
// the whole lexer dispatcher package to do so. Package lexer re-exports
// both names.
package lexerr

import "fmt"

// Error is an application-level error attached to an accepted token (spec.md
// §7 mode 2) — e.g. "unterminated string". The lexer still emits the
// token; Error accompanies it in the per-lex error accumulator rather than
// aborting the lex.
type Error struct {
	Message    string
	Offset     int
	Suggestion string // nearest registered literal tag, if any (lexer.Suggest)
}

func (e Error) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (at offset %d; did you mean %q?)", e.Message, e.Offset, e.Suggestion)
	}
	return fmt.Sprintf("%s (at offset %d)", e.Message, e.Offset)
}

// Misuse is panicked for fatal programming errors (spec.md §7 mode 3):
// an unset recur() slot read before its setter ran. These are never
// recoverable match outcomes — the grammar itself is malformed. Cursor
// offsets are plain byte offsets: no operation checks UTF-8 boundaries,
// and an out-of-range instant.Digest panics with a plain string, not a
// Misuse.
type Misuse struct {
	Reason string
}

func (m Misuse) Error() string {
	return "lexforge: misuse: " + m.Reason
}
