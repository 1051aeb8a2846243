package combinator

import (
	"testing"

	"github.com/lexforge/lexforge/action"
	"github.com/lexforge/lexforge/instant"
)

func TestMulExactCount(t *testing.T) {
	a := action.Eat[noState, noHeap]("a")
	rep := Star(a, Exactly(3))
	out, ok := exec(rep, "aaaa")
	if !ok || out.Digested != 3 {
		t.Fatalf("expected exactly 3 digested, got %+v ok=%v", out, ok)
	}
}

func TestMulExactCountRejectsWhenShort(t *testing.T) {
	a := action.Eat[noState, noHeap]("a")
	rep := Star(a, Exactly(3))
	_, ok := exec(rep, "aa")
	if ok {
		t.Fatalf("expected reject: only 2 of 3 required repetitions available")
	}
}

func TestMulAtLeastOneAcceptsMany(t *testing.T) {
	a := action.Eat[noState, noHeap]("a")
	rep := Star(a, AtLeast(1))
	out, ok := exec(rep, "aaaaa")
	if !ok || out.Digested != 5 {
		t.Fatalf("expected to digest all 5, got %+v ok=%v", out, ok)
	}
}

func TestMulAtLeastOneRejectsOnZeroMatches(t *testing.T) {
	a := action.Eat[noState, noHeap]("a")
	rep := Star(a, AtLeast(1))
	_, ok := exec(rep, "bbb")
	if ok {
		t.Fatalf("expected reject: zero matches below minimum of 1")
	}
}

func TestMulAnyAcceptsZeroMatches(t *testing.T) {
	a := action.Eat[noState, noHeap]("a")
	rep := Star(a, Any())
	out, ok := exec(rep, "bbb")
	if !ok || out.Digested != 0 {
		t.Fatalf("expected zero-width accept, got %+v ok=%v", out, ok)
	}
}

func TestMulRestoresCursorOnReject(t *testing.T) {
	a := action.Eat[noState, noHeap]("a")
	in := &action.Input[noState, noHeap]{Instant: instant.New("aa"), State: new(noState), Heap: new(noHeap)}
	Star(a, Exactly(3)).Exec(in)
	if in.Instant.Digested() != 0 {
		t.Fatalf("expected cursor restored on reject, got digested=%d", in.Instant.Digested())
	}
}

func TestMulFoldsValuesInOrder(t *testing.T) {
	digit := action.Next[noState, noHeap](func(b byte) bool { return b >= '0' && b <= '9' })
	rep := Mul(digit, AtLeast(1),
		func() any { return []byte{} },
		func(v any, acc any, _ *action.Input[noState, noHeap]) any {
			return append(acc.([]byte), v.(byte))
		})
	out, ok := exec(rep, "123x")
	if !ok || out.Digested != 3 {
		t.Fatalf("expected to digest 3 digits, got %+v ok=%v", out, ok)
	}
	got := string(out.Value.([]byte))
	if got != "123" {
		t.Fatalf("expected folded value %q, got %q", "123", got)
	}
}

func TestMulZeroDigestStopsRepeat(t *testing.T) {
	// An action that always accepts without consuming anything must not
	// loop forever; Mul folds it once and stops.
	zeroWidth := action.Wrap[noState, noHeap](func(in *action.Input[noState, noHeap]) (action.Output, bool) {
		return action.Output{Digested: 0, Value: nil}, true
	})
	rep := Star(zeroWidth, Any())
	out, ok := exec(rep, "anything")
	if !ok || out.Digested != 0 {
		t.Fatalf("expected single zero-width fold then stop, got %+v ok=%v", out, ok)
	}
}
