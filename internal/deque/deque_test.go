package deque

import (
	"fmt"
	"testing"
)

func TestComputeSize(t *testing.T) {
	for i := 0; i <= 33; i++ {
		name := fmt.Sprintf("%d elements", i)
		t.Run(name, func(t *testing.T) {
			size := computeSize(i)
			if size < minSize {
				t.Fatalf("expecting at least %d, got %d", minSize, size)
			}
			if size&(size+1) != 0 {
				t.Fatalf("expecting 2^n - 1, got %b", size)
			}
			if size < i {
				t.Fatalf("expecting size >= %d, got %d", i, size)
			}
			if size > minSize && (size>>1) >= i {
				t.Fatalf("expecting size/2 < %d, got size %d", i, size)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	q := New[int]()
	if len(q.items) != minSize+1 || q.head != 0 || q.tail != 0 || q.size != minSize {
		t.Fatalf("unexpected fresh queue state: %+v", q)
	}
}

func TestPrefilled(t *testing.T) {
	items := make([]int, minSize+1)
	for i := range items {
		items[i] = i
	}

	q := New[int](items[:minSize]...)
	if q.head != 0 || q.tail != minSize || q.size != minSize || len(q.items) != minSize+1 {
		t.Fatalf("unexpected state: %+v", q)
	}
	for i := range items[:minSize] {
		if q.items[i] != i {
			t.Fatalf("item %d: expected %d, got %d", i, i, q.items[i])
		}
	}

	q = New[int](items...)
	if q.head != 0 || q.tail != minSize+1 {
		t.Fatalf("unexpected head/tail: %d/%d", q.head, q.tail)
	}
	if q.size != (minSize<<1)+1 || len(q.items) != (minSize<<1)+2 {
		t.Fatalf("unexpected grown size: %d/%d", q.size, len(q.items))
	}
	for i := range items {
		if q.items[i] != i {
			t.Fatalf("item %d: expected %d, got %d", i, i, q.items[i])
		}
	}
}

func TestGrow(t *testing.T) {
	items := make([]int, minSize)
	q := New[int](items...)
	if q.size != minSize {
		t.Fatalf("expected size %d, got %d", minSize, q.size)
	}

	q.Append(1)
	newSize := (minSize << 1) + 1
	if q.size != newSize {
		t.Fatalf("expected grown size %d, got %d", newSize, q.size)
	}
	for i := 0; i < minSize; i++ {
		q.Append(i)
		if q.size != newSize {
			t.Fatalf("expected size to stay %d, got %d", newSize, q.size)
		}
	}
	q.Append(1)
	if q.size != (newSize<<1)+1 {
		t.Fatalf("expected second growth to %d, got %d", (newSize<<1)+1, q.size)
	}
}

func TestIsEmpty(t *testing.T) {
	q := New[int]()
	if !q.IsEmpty() {
		t.Fatalf("expected fresh queue to be empty")
	}
	q.Append(1)
	if q.IsEmpty() {
		t.Fatalf("expected non-empty after Append")
	}
	q.First()
	if !q.IsEmpty() {
		t.Fatalf("expected empty after draining the only item")
	}
	q = New[int](1)
	if q.IsEmpty() {
		t.Fatalf("expected prefilled queue to be non-empty")
	}
}

func TestLen(t *testing.T) {
	l := (minSize << 1) + 2
	samples := []struct {
		head, tail, l int
	}{
		{0, 1, 1},
		{1, 1, 0},
		{l - 2, 1, 3},
	}

	items := make([]int, l-1)
	q := New[int](items...)
	for i, s := range samples {
		name := fmt.Sprintf("sample #%d", i)
		t.Run(name, func(t *testing.T) {
			q.head = s.head
			q.tail = s.tail
			if got := q.Len(); got != s.l {
				t.Fatalf("expected Len %d, got %d", s.l, got)
			}
		})
	}
}

func TestAppendAndPrepend(t *testing.T) {
	q := New[int]()

	q.Append(11)
	if q.head != 0 || q.tail != 1 || q.items[0] != 11 {
		t.Fatalf("unexpected state after first Append: %+v", q)
	}

	q.Append(12)
	if q.tail != 2 || q.items[1] != 12 {
		t.Fatalf("unexpected state after second Append: %+v", q)
	}

	q = New[int]()
	q.Prepend(11)
	if q.head != minSize || q.tail != 0 || q.items[minSize] != 11 {
		t.Fatalf("unexpected state after Prepend: %+v", q)
	}
}

func TestFirstAndLast(t *testing.T) {
	q := New[int]()
	q.Append(1)
	q.Append(2)
	q.Append(3)

	v, ok := q.First()
	if !ok || v != 1 {
		t.Fatalf("expected (1, true), got (%d, %v)", v, ok)
	}

	v, ok = q.Last()
	if !ok || v != 3 {
		t.Fatalf("expected (3, true), got (%d, %v)", v, ok)
	}

	v, ok = q.First()
	if !ok || v != 2 {
		t.Fatalf("expected (2, true), got (%d, %v)", v, ok)
	}

	_, ok = q.First()
	if ok {
		t.Fatalf("expected drained queue to report empty")
	}
	_, ok = q.Last()
	if ok {
		t.Fatalf("expected drained queue to report empty")
	}
}
