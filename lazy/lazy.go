// Package lazy provides the Lazy combinator: a forward reference that
// lets a combinator graph describe itself recursively despite Go's
// initialization order rules. A Lazy is built with just a name, then
// Bind is called once construction of the cyclic graph is complete.
package lazy

import "github.com/ava12/comb"

// Parser is a non-owning handle to a referent parser, resolved after
// construction by Bind. Each decision cycle clones the referent once,
// on first use, and discards that clone as soon as the cycle decides —
// so recursive use (the referent's graph containing this very Lazy)
// only ever instantiates as deep as the input actually nests.
type Parser[S, T any] struct {
	name     string
	referent comb.Parser[S, T]
	owned    comb.Parser[S, T]
}

// New builds an unbound Lazy. Bind must be called before it is fed.
func New[S, T any](name string) *Parser[S, T] {
	return &Parser[S, T]{name: name}
}

// Bind resolves what this Lazy stands for. It is not part of the
// Parser interface: it is called once, after the referent (and
// anything it recursively contains) has been constructed.
func (p *Parser[S, T]) Bind(referent comb.Parser[S, T]) {
	p.referent = referent
}

// Name returns the Lazy's own diagnostic name.
func (p *Parser[S, T]) Name() string {
	return p.name
}

// Reset discards this cycle's owned clone, if any. The referent itself
// is untouched — it is not this Lazy's to reset.
func (p *Parser[S, T]) Reset() {
	p.owned = nil
}

// Clone returns a fresh Lazy bound to the same referent. It does not
// clone the referent eagerly, which is what keeps a recursive referent
// from recursing at construction time.
func (p *Parser[S, T]) Clone() comb.Parser[S, T] {
	return &Parser[S, T]{name: p.name, referent: p.referent}
}

func (p *Parser[S, T]) instance() comb.Parser[S, T] {
	if p.owned == nil {
		p.owned = p.referent.Clone()
	}
	return p.owned
}

// Feed delegates to this cycle's owned clone of the referent,
// instantiating it on first use.
func (p *Parser[S, T]) Feed(tok S) comb.Step[S, T] {
	step := p.instance().Feed(tok)
	if !step.IsPending() {
		p.owned = nil
	}
	return step
}

// Finish delegates to this cycle's owned clone of the referent,
// instantiating it on first use.
func (p *Parser[S, T]) Finish() comb.Step[S, T] {
	step := p.instance().Finish()
	if !step.IsPending() {
		p.owned = nil
	}
	return step
}

var _ comb.Parser[rune, string] = (*Parser[rune, string])(nil)
