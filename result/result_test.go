package result

import (
	"testing"

	"github.com/ava12/comb"
	"github.com/ava12/comb/internal/deque"
)

func TestQueueResult(t *testing.T) {
	q := NewQueue[rune, string]()
	q.Push('a')
	q.Push('b')

	if v, ok := q.NextValue(); ok {
		t.Fatalf("expected no values, got %q", v)
	}

	r, ok := q.NextRemaining()
	if !ok || r != 'a' {
		t.Fatalf("expected 'a', got %q, %v", r, ok)
	}
	r, ok = q.NextRemaining()
	if !ok || r != 'b' {
		t.Fatalf("expected 'b', got %q, %v", r, ok)
	}
	if _, ok = q.NextRemaining(); ok {
		t.Fatalf("expected queue to be exhausted")
	}
}

func TestAggregatedDrainsValuesFIFOThenFinal(t *testing.T) {
	final := NewQueue[rune, string]()
	final.Push('z') // final has a remaining token but no values

	values := deque.New[string]("a", "bb")
	agg := NewAggregated[rune, string](nil, final, values)

	var got []string
	for {
		v, ok := agg.NextValue()
		if !ok {
			break
		}
		got = append(got, v)
	}

	if len(got) != 2 || got[0] != "a" || got[1] != "bb" {
		t.Fatalf("expected [a bb], got %v", got)
	}
}

func TestAggregatedRemainingDrainsFinalThenLIFO(t *testing.T) {
	bottom := NewQueue[rune, string]()
	bottom.Push('1')
	bottom.Push('2')

	middle := NewQueue[rune, string]()
	middle.Push('3')

	final := NewQueue[rune, string]()
	final.Push('4')
	final.Push('5')

	prior := []comb.Result[rune, string]{bottom, middle}
	agg := NewAggregated[rune, string](prior, final, deque.New[string]())

	var got []rune
	for {
		v, ok := agg.NextRemaining()
		if !ok {
			break
		}
		got = append(got, v)
	}

	want := []rune{'4', '5', '3', '1', '2'}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", string(want), string(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", string(want), string(got))
		}
	}
}
