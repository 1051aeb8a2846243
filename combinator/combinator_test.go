package combinator

import (
	"testing"

	"github.com/lexforge/lexforge/action"
	"github.com/lexforge/lexforge/instant"
)

type noState struct{}
type noHeap struct{}

func exec(a action.Action[noState, noHeap], text string) (action.Output, bool) {
	in := &action.Input[noState, noHeap]{Instant: instant.New(text), State: new(noState), Heap: new(noHeap)}
	return a.Exec(in)
}

func execAt(a action.Action[noState, noHeap], text string, digested int) (action.Output, bool) {
	in := &action.Input[noState, noHeap]{Instant: instant.New(text).Digest(digested), State: new(noState), Heap: new(noHeap)}
	return a.Exec(in)
}

func TestConcatAcceptsBothInOrder(t *testing.T) {
	a := action.Eat[noState, noHeap]("a")
	b := action.Eat[noState, noHeap]("b")
	out, ok := exec(Concat(a, b), "abc")
	if !ok || out.Digested != 2 {
		t.Fatalf("expected accept digesting 2, got %+v ok=%v", out, ok)
	}
}

func TestConcatRejectsWhenSecondFails(t *testing.T) {
	a := action.Eat[noState, noHeap]("a")
	b := action.Eat[noState, noHeap]("b")
	_, ok := exec(Concat(a, b), "ac")
	if ok {
		t.Fatalf("expected reject when second operand fails")
	}
}

func TestConcatDoesNotPermanentlyAdvanceInstant(t *testing.T) {
	a := action.Eat[noState, noHeap]("a")
	b := action.Eat[noState, noHeap]("b")
	in := &action.Input[noState, noHeap]{Instant: instant.New("abc"), State: new(noState), Heap: new(noHeap)}
	start := in.Instant
	Concat(a, b).Exec(in)
	if in.Instant != start {
		t.Fatalf("Concat must leave in.Instant as it found it; got digested=%d", in.Instant.Digested())
	}
}

func TestAltTriesLeftFirst(t *testing.T) {
	a := action.Eat[noState, noHeap]("a")
	b := action.Eat[noState, noHeap]("ab")
	out, ok := exec(Alt(a, b), "ab")
	if !ok || out.Digested != 1 {
		t.Fatalf("expected left-biased match digesting 1, got %+v ok=%v", out, ok)
	}
}

func TestAltFallsBackToRight(t *testing.T) {
	a := action.Eat[noState, noHeap]("x")
	b := action.Eat[noState, noHeap]("y")
	out, ok := exec(Alt(a, b), "y")
	if !ok || out.Digested != 1 {
		t.Fatalf("expected fallback match, got %+v ok=%v", out, ok)
	}
}

func TestAltRejectsWhenBothFail(t *testing.T) {
	a := action.Eat[noState, noHeap]("x")
	b := action.Eat[noState, noHeap]("y")
	_, ok := exec(Alt(a, b), "z")
	if ok {
		t.Fatalf("expected reject when both operands fail")
	}
}

func TestNotAcceptsWhenInnerRejects(t *testing.T) {
	a := action.Eat[noState, noHeap]("a")
	out, ok := exec(Not(a), "b")
	if !ok || out.Digested != 0 {
		t.Fatalf("expected zero-width accept, got %+v ok=%v", out, ok)
	}
}

func TestNotRejectsWhenInnerAccepts(t *testing.T) {
	a := action.Eat[noState, noHeap]("a")
	_, ok := exec(Not(a), "a")
	if ok {
		t.Fatalf("expected reject when inner action accepts")
	}
}

// Negative lookahead + take, spec.md §8 scenario 4.
func TestNegativeLookaheadThenTake(t *testing.T) {
	a := Concat(Not(action.Eat[noState, noHeap]("a")), action.Take[noState, noHeap](1))
	out, ok := exec(a, "b")
	if !ok || out.Digested != 1 {
		t.Fatalf("expected digested=1 on 'b', got %+v ok=%v", out, ok)
	}
	_, ok = exec(a, "a")
	if ok {
		t.Fatalf("expected reject on 'a'")
	}
	_, ok = exec(a, "")
	if ok {
		t.Fatalf("expected reject on empty input (take(1) fails)")
	}
}

func TestNotRestoresInstantRegardlessOfOutcome(t *testing.T) {
	a := action.Eat[noState, noHeap]("a")
	in := &action.Input[noState, noHeap]{Instant: instant.New("a"), State: new(noState), Heap: new(noHeap)}
	Not(a).Exec(in)
	if in.Instant.Digested() != 0 {
		t.Fatalf("Not must restore cursor even on reject, got digested=%d", in.Instant.Digested())
	}
}
