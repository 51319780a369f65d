package predicate

import "github.com/ava12/comb"

// Literal builds a Predicate parser that matches a fixed sequence of
// tokens exactly, in order, producing the fold of each matched token's
// converted value. It is the general form of the "string predicate"
// builder: the predicate factory returned is a closure that accepts a
// token iff it equals seq[i] and then increments i, with quantifier
// Exactly(len(seq)), or Once for a one-token sequence.
func Literal[S comparable, T any](name string, seq []S, convert Convert[S, T], fold Fold[T]) *Parser[S, T] {
	if len(seq) == 0 {
		panic("comb/predicate: Literal requires a non-empty sequence")
	}

	tokens := append([]S(nil), seq...)
	factory := func() Predicate[S] {
		i := 0
		return func(tok S) bool {
			if i >= len(tokens) || tok != tokens[i] {
				return false
			}
			i++
			return true
		}
	}

	quant := comb.Once
	if len(tokens) > 1 {
		quant = comb.Exactly(len(tokens))
	}

	return New(name, factory, quant, convert, fold)
}

// String builds a Predicate parser matching the given string exactly,
// rune by rune, producing the concatenation of the runes it consumed.
// This is the convenience instance of Literal the engine's examples and
// tests actually exercise.
func String(name, s string) *Parser[rune, string] {
	runes := []rune(s)
	convert := func(tok rune) string { return string(tok) }
	fold := func(a, b string) string { return a + b }
	return Literal(name, runes, convert, fold)
}
