// Package taketill provides the TakeTill combinator: repeat a body
// parser over tokens until a terminator parser matches, consuming the
// terminator but not including it in the produced values.
//
// Because the terminator can start matching at any token position, and
// a body unit can span several tokens, TakeTill cannot commit a token
// to the body the instant it arrives — the terminator might still claim
// it as part of a longer match starting earlier. It instead runs one
// terminator clone per token position that could still be a terminator
// start ("a suffix pool"), and only hands a token to the body once
// every live clone that could still claim it has failed.
package taketill

import (
	"github.com/ava12/comb"
	"github.com/ava12/comb/internal/deque"
	"github.com/ava12/comb/result"
)

// Parser repeats body, tracking every offset a terminator match could
// still start at, until one of those candidates succeeds.
type Parser[S, T any] struct {
	name       string
	bodyProto  comb.Parser[S, T]
	termProto  comb.Parser[S, T]
	body       comb.Parser[S, T]

	buffer      *deque.Queue[S]
	bufferFrom  int
	totalFed    int
	pool        []candidate[S, T]
	values      *deque.Queue[T]
	bodyPending bool
}

type candidate[S, T any] struct {
	offset int
	clone  comb.Parser[S, T]
}

// New builds a TakeTill over the given body and terminator. Both are
// used only through Clone/Reset; the instances passed in are never fed
// directly.
func New[S, T any](name string, body, terminator comb.Parser[S, T]) *Parser[S, T] {
	p := &Parser[S, T]{name: name, bodyProto: body, termProto: terminator}
	p.Reset()
	return p
}

// Name returns the combinator's diagnostic name.
func (p *Parser[S, T]) Name() string {
	return p.name
}

// Reset discards every in-flight candidate and body progress.
func (p *Parser[S, T]) Reset() {
	p.body = p.bodyProto.Clone()
	p.buffer = deque.New[S]()
	p.bufferFrom = 0
	p.totalFed = 0
	p.pool = nil
	p.values = deque.New[T]()
	p.bodyPending = false
}

// Clone returns a fresh TakeTill over clones of body and terminator.
func (p *Parser[S, T]) Clone() comb.Parser[S, T] {
	return New(p.name, p.bodyProto.Clone(), p.termProto.Clone())
}

// Feed delivers tok to every live terminator candidate and to a brand
// new one started at tok's position, then commits whatever tokens are
// now provably body-bound.
func (p *Parser[S, T]) Feed(tok S) comb.Step[S, T] {
	offset := p.totalFed
	p.buffer.Append(tok)
	p.totalFed++
	p.pool = append(p.pool, candidate[S, T]{offset: offset, clone: p.termProto.Clone()})

	matched := -1
	var matchResult comb.Result[S, T]
	live := p.pool[:0]
	for _, c := range p.pool {
		step := c.clone.Feed(tok)
		switch {
		case step.IsSuccess():
			if matched == -1 || c.offset < matched {
				matched = c.offset
				matchResult = step.Result()
			}
		case step.IsFailure():
			// dropped
		default:
			live = append(live, c)
		}
	}
	p.pool = live

	if matched >= 0 {
		return p.finishMatch(matched, matchResult)
	}

	if err := p.commitSafeTokens(); err != nil {
		e := err.Propagate(p.name)
		p.Reset()
		return comb.Failure[S, T](e)
	}

	return comb.Pending[S, T]()
}

// Finish asks every live candidate whether it completes right at
// end-of-input; if none does, the terminator was never found.
func (p *Parser[S, T]) Finish() comb.Step[S, T] {
	matched := -1
	var matchResult comb.Result[S, T]
	for _, c := range p.pool {
		step := c.clone.Finish()
		if step.IsSuccess() && (matched == -1 || c.offset < matched) {
			matched = c.offset
			matchResult = step.Result()
		}
	}

	if matched >= 0 {
		return p.finishMatch(matched, matchResult)
	}

	e := comb.NewError("Insufficient tokens").Propagate(p.name)
	p.Reset()
	return comb.Failure[S, T](e)
}

// commitSafeTokens feeds the body every buffered token that no live
// candidate could still claim — that is, every token before the oldest
// surviving candidate's start offset.
func (p *Parser[S, T]) commitSafeTokens() *comb.Error {
	bound := p.totalFed
	if len(p.pool) > 0 {
		bound = p.pool[0].offset
	}

	for p.bufferFrom < bound {
		tok, _ := p.buffer.First()
		p.bufferFrom++

		if err := p.feedBody(tok); err != nil {
			return err
		}
	}
	return nil
}

// feedBody delivers tok to the body and tracks whether the body is left
// mid-parse: bodyPending stays set for as long as the body keeps
// returning pending, and clears the moment it decides.
func (p *Parser[S, T]) feedBody(tok S) *comb.Error {
	step := p.body.Feed(tok)
	switch {
	case step.IsFailure():
		p.bodyPending = false
		return step.Err()
	case step.IsSuccess():
		p.bodyPending = false
		p.drainBody(step.Result())
	default:
		p.bodyPending = true
	}
	return nil
}

// drainBody appends a completed body unit's value to the output FIFO
// and gives back, uncommitted, any token the body spilled.
func (p *Parser[S, T]) drainBody(r comb.Result[S, T]) {
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
		p.buffer.Prepend(spilled[i])
		p.bufferFrom--
	}
}

// finishMatch commits everything before the winning offset to the
// body, then — if that left the body mid-parse rather than freshly
// decided — asks it to finish its current run before the match is
// allowed to stand, mirroring the original suffix-match handling: a
// terminator winning does not excuse an incomplete body unit.
func (p *Parser[S, T]) finishMatch(offset int, winner comb.Result[S, T]) comb.Step[S, T] {
	for p.bufferFrom < offset {
		tok, _ := p.buffer.First()
		p.bufferFrom++
		if err := p.feedBody(tok); err != nil {
			e := err.Propagate(p.name)
			p.Reset()
			return comb.Failure[S, T](e)
		}
	}

	if p.bodyPending {
		step := p.body.Finish()
		p.bodyPending = false
		switch {
		case step.IsFailure():
			e := step.Err().Propagate(p.name)
			p.Reset()
			return comb.Failure[S, T](e)
		case step.IsSuccess():
			p.drainBody(step.Result())
		}
	}

	for p.bufferFrom < p.totalFed {
		p.buffer.First()
		p.bufferFrom++
	}

	remaining := result.NewQueue[S, T]()
	for {
		tok, ok := winner.NextRemaining()
		if !ok {
			break
		}
		remaining.Push(tok)
	}

	r := result.NewAggregated[S, T](nil, remaining, p.values)
	p.Reset()
	return comb.Success[S, T](r)
}

var _ comb.Parser[rune, string] = (*Parser[rune, string])(nil)
