// Package predicate provides the Predicate parser: the engine's only
// leaf. It matches a single token, or a quantified run of tokens,
// against a stateful predicate, aggregating matched tokens into a value
// via a caller-supplied convert/fold pair.
package predicate

import "github.com/ava12/comb"

// Predicate is a stateful test of one token. Predicates are produced by
// a Factory rather than stored directly, since the predicate itself may
// carry state (an index, a counter) that must be reconstructible on reset.
type Predicate[S any] func(tok S) bool

// Factory produces a fresh Predicate. Factories must be pure — calling
// one must have no externally visible side effect beyond the closure it
// returns — and idempotent: repeated calls yield equivalent fresh state.
type Factory[S any] func() Predicate[S]

// Convert turns one matched token into one output value.
type Convert[S, T any] func(tok S) T

// Fold combines two output values, associatively, into one.
type Fold[T any] func(a, b T) T

// Parser is the leaf combinator: it feeds tokens to a predicate obtained
// from its Factory, aggregating matches with Convert and Fold until its
// Quantifier is satisfied or violated.
type Parser[S, T any] struct {
	name    string
	factory Factory[S]
	quant   comb.Quantifier
	convert Convert[S, T]
	fold    Fold[T]

	pred     Predicate[S]
	count    int
	hasValue bool
	value    T
}

// New builds a Predicate parser. name identifies it in diagnostics and
// error stacks; factory produces the predicate each token is tested
// against; quant governs how many matches are required and accepted;
// convert maps a matched token to a value, and fold combines
// successive values.
func New[S, T any](name string, factory Factory[S], quant comb.Quantifier, convert Convert[S, T], fold Fold[T]) *Parser[S, T] {
	p := &Parser[S, T]{name: name, factory: factory, quant: quant, convert: convert, fold: fold}
	p.Reset()
	return p
}

// Name returns the parser's diagnostic name.
func (p *Parser[S, T]) Name() string {
	return p.name
}

// Reset regenerates the predicate from its factory and clears all
// matched-so-far state.
func (p *Parser[S, T]) Reset() {
	p.pred = p.factory()
	p.count = 0
	p.hasValue = false
	var zero T
	p.value = zero
}

// Clone returns a fresh Predicate parser with the same name, factory,
// quantifier, and convert/fold functions. It shares no mutable state
// with p.
func (p *Parser[S, T]) Clone() comb.Parser[S, T] {
	return New(p.name, p.factory, p.quant, p.convert, p.fold)
}

func (p *Parser[S, T]) accept(tok S) {
	v := p.convert(tok)
	if p.hasValue {
		p.value = p.fold(p.value, v)
	} else {
		p.value = v
		p.hasValue = true
	}
	p.count++
}

// Feed evaluates the predicate against tok and advances the match count
// accordingly, deciding once the quantifier is satisfied, violated, or
// a mismatch is seen. See spec §4.2 for the exact quantifier table.
func (p *Parser[S, T]) Feed(tok S) comb.Step[S, T] {
	if p.pred(tok) {
		p.accept(tok)

		if p.quant == comb.None {
			e := comb.NewError("Unexpected %v", p.convert(tok)).Propagate(p.name)
			p.Reset()
			return comb.Failure[S, T](e)
		}

		if p.quant.Reached(p.count) {
			r := p.result(false, tok)
			p.Reset()
			return comb.Success[S, T](r)
		}

		return comb.Pending[S, T]()
	}

	if !p.quant.Met(p.count) {
		e := comb.NewError("Insufficient tokens").Propagate(p.name)
		p.Reset()
		return comb.Failure[S, T](e)
	}

	r := p.result(true, tok)
	p.Reset()
	return comb.Success[S, T](r)
}

// Finish signals end of input: it behaves like a rejecting Feed with no
// token, so the returned result (on success) never carries a remaining token.
func (p *Parser[S, T]) Finish() comb.Step[S, T] {
	if !p.quant.Met(p.count) {
		e := comb.NewError("Insufficient tokens").Propagate(p.name)
		p.Reset()
		return comb.Failure[S, T](e)
	}

	var zero S
	r := p.result(false, zero)
	p.Reset()
	return comb.Success[S, T](r)
}

func (p *Parser[S, T]) result(spill bool, tok S) *leafResult[S, T] {
	r := &leafResult[S, T]{value: p.value, hasValue: p.hasValue}
	if spill {
		r.remaining = tok
		r.hasRemaining = true
	}
	return r
}

// leafResult is the Predicate parser's own Result: at most one produced
// value and at most one spilled remaining token.
type leafResult[S, T any] struct {
	value        T
	hasValue     bool
	remaining    S
	hasRemaining bool
}

func (r *leafResult[S, T]) NextValue() (T, bool) {
	if r.hasValue {
		r.hasValue = false
		return r.value, true
	}
	var zero T
	return zero, false
}

func (r *leafResult[S, T]) NextRemaining() (S, bool) {
	if r.hasRemaining {
		r.hasRemaining = false
		return r.remaining, true
	}
	var zero S
	return zero, false
}

var _ comb.Result[rune, string] = (*leafResult[rune, string])(nil)
var _ comb.Parser[rune, string] = (*Parser[rune, string])(nil)
