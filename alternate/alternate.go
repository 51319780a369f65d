// Package alternate provides the Alternate combinator: a greedy
// longest-match union that runs every branch in parallel on each token
// and keeps the branch that completes last as its winner.
package alternate

import (
	"github.com/ava12/comb"
	"github.com/ava12/comb/internal/deque"
	"github.com/ava12/comb/result"
)

// Parser runs a fixed set of branch parsers against the same token
// stream and, once every branch has decided, picks the one that
// completed last — which is the longest match, since a shorter match
// decides earlier under the assumption that branches consume tokens at
// the same rate.
type Parser[S, T any] struct {
	name    string
	parsers []comb.Parser[S, T]

	completed    []bool
	winner       int
	winnerResult comb.Result[S, T]
	spill        *deque.Queue[S]
	lastErr      *comb.Error
}

// New builds an Alternate over the given branches, evaluated in the
// order given. That order decides ties: among branches that complete on
// the very same token, the last one listed to report success wins.
func New[S, T any](name string, parsers ...comb.Parser[S, T]) *Parser[S, T] {
	p := &Parser[S, T]{name: name, parsers: parsers}
	p.Reset()
	return p
}

// Name returns the combinator's diagnostic name.
func (p *Parser[S, T]) Name() string {
	return p.name
}

// Reset returns every branch, and this combinator, to the fresh state.
func (p *Parser[S, T]) Reset() {
	p.completed = make([]bool, len(p.parsers))
	p.winner = -1
	p.winnerResult = nil
	p.spill = deque.New[S]()
	p.lastErr = nil
	for _, inner := range p.parsers {
		inner.Reset()
	}
}

// Clone returns a fresh Alternate over clones of every branch.
func (p *Parser[S, T]) Clone() comb.Parser[S, T] {
	cloned := make([]comb.Parser[S, T], len(p.parsers))
	for i, inner := range p.parsers {
		cloned[i] = inner.Clone()
	}
	return New(p.name, cloned...)
}

// Feed delivers tok to every branch that has not yet decided.
func (p *Parser[S, T]) Feed(tok S) comb.Step[S, T] {
	return p.advance(&tok)
}

// Finish delivers end-of-input to every branch that has not yet decided.
func (p *Parser[S, T]) Finish() comb.Step[S, T] {
	return p.advance(nil)
}

func (p *Parser[S, T]) advance(tok *S) comb.Step[S, T] {
	if p.winner >= 0 && tok != nil {
		p.spill.Append(*tok)
	}

	for i, inner := range p.parsers {
		if p.completed[i] {
			continue
		}

		var step comb.Step[S, T]
		if tok != nil {
			step = inner.Feed(*tok)
		} else {
			step = inner.Finish()
		}

		switch {
		case step.IsSuccess():
			p.completed[i] = true
			p.winner = i
			p.winnerResult = step.Result()
			p.spill = deque.New[S]() // a new winner discards tokens spilled for the old one
		case step.IsFailure():
			p.completed[i] = true
			p.lastErr = step.Err()
		}
	}

	for _, done := range p.completed {
		if !done {
			return comb.Pending[S, T]()
		}
	}

	if p.winner >= 0 {
		values := deque.New[T]()
		for {
			v, ok := p.winnerResult.NextValue()
			if !ok {
				break
			}
			values.Append(v)
		}

		spillQueue := result.NewQueue[S, T]()
		for {
			tok, ok := p.spill.First()
			if !ok {
				break
			}
			spillQueue.Push(tok)
		}

		r := result.NewAggregated[S, T]([]comb.Result[S, T]{p.winnerResult}, spillQueue, values)
		p.Reset()
		return comb.Success[S, T](r)
	}

	err := p.lastErr
	if err == nil {
		err = comb.NewError("Insufficient tokens")
	}
	err = err.Propagate(p.name)
	p.Reset()
	return comb.Failure[S, T](err)
}

var _ comb.Parser[rune, string] = (*Parser[rune, string])(nil)
