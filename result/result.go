// Package result provides the two helper Result shapes the engine's
// combinators compose their output from: a bare token buffer (Queue)
// and a composite of prior results, a final result, and buffered values
// (Aggregated).
package result

import (
	"github.com/ava12/comb"
	"github.com/ava12/comb/internal/deque"
)

// Queue is a FIFO-token result: it never produces a value, and drains
// unconsumed tokens front-to-back. Sequence, TakeTill and Alternate use
// it to hand back, in their decided result, the tokens they received
// but did not consume.
type Queue[S, T any] struct {
	tokens *deque.Queue[S]
}

// NewQueue creates an empty Queue result.
func NewQueue[S, T any]() *Queue[S, T] {
	return &Queue[S, T]{tokens: deque.New[S]()}
}

// Push buffers one more token at the back of the queue.
func (q *Queue[S, T]) Push(tok S) {
	q.tokens.Append(tok)
}

// NextValue always reports exhausted: a Queue result never carries values.
func (q *Queue[S, T]) NextValue() (T, bool) {
	var zero T
	return zero, false
}

// NextRemaining pops and returns the oldest buffered token.
func (q *Queue[S, T]) NextRemaining() (S, bool) {
	return q.tokens.First()
}

var _ comb.Result[rune, string] = (*Queue[rune, string])(nil)

// Aggregated composes a LIFO of prior inner results, a final inner
// result, and a FIFO of values already drained from earlier results.
// NextValue drains the FIFO first, then the final result. NextRemaining
// drains the final result, then pops the LIFO top and drains it, then
// the next, and so on — the most recently produced remaining tokens are
// those "closest" to the unread input, so they surface first.
type Aggregated[S, T any] struct {
	prior  []comb.Result[S, T]
	final  comb.Result[S, T]
	values *deque.Queue[T]
}

// NewAggregated assembles an Aggregated result. prior is the LIFO of
// results to fall back on once final is exhausted, ordered bottom-first
// (its last element is the top of the stack). values is the FIFO of
// already-emitted output values to drain before final's own values.
func NewAggregated[S, T any](prior []comb.Result[S, T], final comb.Result[S, T], values *deque.Queue[T]) *Aggregated[S, T] {
	return &Aggregated[S, T]{prior: prior, final: final, values: values}
}

// NextValue drains the buffered-value FIFO, then the final result's own values.
func (a *Aggregated[S, T]) NextValue() (T, bool) {
	if v, ok := a.values.First(); ok {
		return v, true
	}
	return a.final.NextValue()
}

// NextRemaining drains the final result's remaining tokens, then pops
// and drains the LIFO of prior results, top first.
func (a *Aggregated[S, T]) NextRemaining() (S, bool) {
	for {
		if v, ok := a.final.NextRemaining(); ok {
			return v, true
		}
		if len(a.prior) == 0 {
			var zero S
			return zero, false
		}
		a.final = a.prior[len(a.prior)-1]
		a.prior = a.prior[:len(a.prior)-1]
	}
}

var _ comb.Result[rune, string] = (*Aggregated[rune, string])(nil)
