package lexer

import (
	"testing"

	"github.com/lexforge/lexforge/action"
	"github.com/lexforge/lexforge/decorator"
	"github.com/lexforge/lexforge/kind"
)

func newStatefulLexer(t *testing.T, text string) (*StatefulLexer[cloneableState, noHeap], kind.ID) {
	t.Helper()
	reg := kind.NewRegistry()
	id := reg.Register("x")
	actions := []action.Action[cloneableState, noHeap]{
		decorator.Mute(action.Eat[cloneableState, noHeap](" ")),
		decorator.Bind(action.Eat[cloneableState, noHeap]("x"), id),
	}
	stateless := NewStateless(actions)
	return NewStateful(stateless, text, new(cloneableState), new(noHeap)), id
}

func TestStatefulLexAdvancesInstant(t *testing.T) {
	l, id := newStatefulLexer(t, "x x")
	out := l.Lex()
	if out.Token == nil || out.Token.Binding.ID != id {
		t.Fatalf("expected first token, got %+v", out)
	}
	if l.Instant().Digested() != 1 {
		t.Fatalf("expected cursor at 1, got %d", l.Instant().Digested())
	}
	out = l.Lex()
	if out.Token == nil || out.Digested != 2 {
		t.Fatalf("expected second token after consuming the separating space, got %+v", out)
	}
}

func TestStatefulPeekDoesNotAdvance(t *testing.T) {
	l, _ := newStatefulLexer(t, "x")
	before := l.Instant()
	out, _ := l.Peek()
	if out.Token == nil {
		t.Fatalf("expected peek to see the token")
	}
	if l.Instant() != before {
		t.Fatalf("peek must not advance the lexer's own cursor")
	}
}

func TestStatefulTrimIsIdempotentUntilCursorMoves(t *testing.T) {
	l, _ := newStatefulLexer(t, "   x")
	out := l.Trim()
	if out.Digested != 3 {
		t.Fatalf("expected to trim 3 bytes, got %+v", out)
	}
	out = l.Trim()
	if out.Digested != 0 {
		t.Fatalf("expected idempotent no-op trim, got %+v", out)
	}
}

func TestStatefulSnapshotRestoreRewindsInstantAndState(t *testing.T) {
	l, _ := newStatefulLexer(t, "x x")
	snap := l.Snapshot()
	l.Lex()
	if l.Instant().Digested() == snap.Instant.Digested() {
		t.Fatalf("expected cursor to have moved before restore")
	}
	l.Restore(snap)
	if l.Instant() != snap.Instant {
		t.Fatalf("expected restore to rewind the cursor")
	}
}

func TestStatefulTakeSkipsWithoutInvokingAction(t *testing.T) {
	l, _ := newStatefulLexer(t, "xx")
	l.Take(1)
	if l.Instant().Digested() != 1 {
		t.Fatalf("expected cursor at 1 after Take(1), got %d", l.Instant().Digested())
	}
}

func TestStatefulReloadResetsCursorKeepingActions(t *testing.T) {
	l, id := newStatefulLexer(t, "x")
	l.Lex()
	if l.Instant().Digested() != 1 {
		t.Fatalf("expected cursor at 1 before reload, got %d", l.Instant().Digested())
	}
	l.Trim()

	l.Reload("  x")
	if l.Instant().Digested() != 0 {
		t.Fatalf("expected cursor reset to 0 after reload, got %d", l.Instant().Digested())
	}
	out := l.Lex()
	if out.Token == nil || out.Token.Binding.ID != id || out.Digested != 3 {
		t.Fatalf("expected reloaded text to lex with the same actions, got %+v", out)
	}
}
