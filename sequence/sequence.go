// Package sequence provides the Sequence combinator: an ordered chain
// of child parsers, each fed from the tail of whatever the previous
// child spilled back plus whatever tokens have not yet been handed to
// any child.
package sequence

import (
	"github.com/ava12/comb"
	"github.com/ava12/comb/internal/deque"
	"github.com/ava12/comb/result"
)

// Parser threads tokens through a fixed, ordered list of children. A
// child that completes mid-sequence may spill tokens it did not
// consume; those are delivered to the next child before any token the
// caller has not yet fed.
type Parser[S, T any] struct {
	name     string
	children []comb.Parser[S, T]

	idx     int
	pending *deque.Queue[S]
	values  *deque.Queue[T]
}

// New builds a Sequence over the given children, evaluated in order.
func New[S, T any](name string, children ...comb.Parser[S, T]) *Parser[S, T] {
	p := &Parser[S, T]{name: name, children: children}
	p.Reset()
	return p
}

// Name returns the combinator's diagnostic name.
func (p *Parser[S, T]) Name() string {
	return p.name
}

// Reset returns every child, and this combinator, to the fresh state.
func (p *Parser[S, T]) Reset() {
	p.idx = 0
	p.pending = deque.New[S]()
	p.values = deque.New[T]()
	for _, child := range p.children {
		child.Reset()
	}
}

// Clone returns a fresh Sequence over clones of every child.
func (p *Parser[S, T]) Clone() comb.Parser[S, T] {
	cloned := make([]comb.Parser[S, T], len(p.children))
	for i, child := range p.children {
		cloned[i] = child.Clone()
	}
	return New(p.name, cloned...)
}

// Feed queues tok for delivery to the current child and drives the
// sequence forward as far as it will go without further input.
func (p *Parser[S, T]) Feed(tok S) comb.Step[S, T] {
	p.pending.Append(tok)
	return p.drive(false)
}

// Finish signals end of input and drives the sequence to a decision.
func (p *Parser[S, T]) Finish() comb.Step[S, T] {
	return p.drive(true)
}

func (p *Parser[S, T]) drive(finishing bool) comb.Step[S, T] {
	for {
		if p.idx >= len(p.children) {
			remaining := result.NewQueue[S, T]()
			for {
				tok, ok := p.pending.First()
				if !ok {
					break
				}
				remaining.Push(tok)
			}
			r := result.NewAggregated[S, T](nil, remaining, p.values)
			p.Reset()
			return comb.Success[S, T](r)
		}

		child := p.children[p.idx]

		var step comb.Step[S, T]
		var fedFinish bool
		switch {
		case !p.pending.IsEmpty():
			tok, _ := p.pending.First()
			step = child.Feed(tok)
		case finishing:
			step = child.Finish()
			fedFinish = true
		default:
			return comb.Pending[S, T]()
		}

		if step.IsPending() && fedFinish {
			err := comb.NewError("Insufficient tokens").Propagate(p.name)
			p.Reset()
			return comb.Failure[S, T](err)
		}

		switch {
		case step.IsPending():
			continue
		case step.IsFailure():
			err := step.Err().Propagate(p.name)
			p.Reset()
			return comb.Failure[S, T](err)
		case step.IsSuccess():
			p.absorb(step.Result())
			p.idx++
		}
	}
}

// absorb drains a completed child's result into the sequence's own
// accumulated values, and re-queues whatever the child spilled so the
// next child sees it first.
func (p *Parser[S, T]) absorb(r comb.Result[S, T]) {
	for {
		v, ok := r.NextValue()
		if !ok {
			break
		}
		p.values.Append(v)
	}

	var spilled []S
	for {
		tok, ok := r.NextRemaining()
		if !ok {
			break
		}
		spilled = append(spilled, tok)
	}
	for i := len(spilled) - 1; i >= 0; i-- {
		p.pending.Prepend(spilled[i])
	}
}

var _ comb.Parser[rune, string] = (*Parser[rune, string])(nil)
