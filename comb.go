/*
Package comb is a streaming, incremental parser-combinator engine.

Unlike a classical combinator library that operates on a materialised
input slice with backtracking via index rewind, parsers built from this
package are fed tokens one at a time through Parser.Feed and are told
when input ends through Parser.Finish. A parser answers each call with
a Step that is pending (it needs more input to decide), successful (it
produced a Result), or an error.

Consists of subpackages:
  - predicate: leaf parser matching single tokens against a quantified predicate;
  - alternate: greedy longest-match union of parsers;
  - sequence: concatenation of parsers, threading spilled lookahead between them;
  - taketill: repetition of a body parser until a terminator parser matches;
  - lazy: deferred instantiation, enabling recursive combinator graphs;
  - result: the two helper Result shapes (Queue and Aggregated) combinators
    compose their output from.

Typical usage is to assemble a tree of Parser values (a leaf built with
predicate.New or predicate.String, combined with alternate.New,
sequence.New, and taketill.New, with lazy.Parser standing in wherever the
tree would otherwise need to refer to itself) and then drive the root
with a loop of Feed calls followed by a final Finish call.
*/
package comb

// Parser is the contract every combinator and leaf in the engine
// implements. S is the input token type, T is the output value type.
type Parser[S, T any] interface {
	// Feed delivers one token to the parser and returns its decision.
	Feed(tok S) Step[S, T]

	// Finish signals end of input. A parser that can legally end here
	// (an empty match, an unbounded repetition, ...) returns success;
	// otherwise it returns an error.
	Finish() Step[S, T]

	// Reset returns the parser to its fresh state, as if newly constructed.
	Reset()

	// Clone returns a parser with the same topology in the fresh state.
	// Clone must not share mutable state with the original.
	Clone() Parser[S, T]

	// Name identifies the parser for diagnostics and error stacks.
	Name() string
}

// Result is a pair of independent, finite, destructive drains: one over
// produced output values, one over unconsumed input tokens. Once
// returned to a caller a Result owns everything it can yield; the
// parser that produced it keeps no reference to it.
type Result[S, T any] interface {
	// NextValue returns the next produced value, or false once exhausted.
	NextValue() (T, bool)

	// NextRemaining returns the next unconsumed input token spilled by
	// the parser, or false once exhausted.
	NextRemaining() (S, bool)
}

// DrainValues exhausts r's value drain into a slice, in order. It is a
// convenience for callers and tests that want the whole output at once.
func DrainValues[S, T any](r Result[S, T]) []T {
	var values []T
	for {
		v, ok := r.NextValue()
		if !ok {
			return values
		}
		values = append(values, v)
	}
}

// DrainRemaining exhausts r's remaining-token drain into a slice, in order.
func DrainRemaining[S, T any](r Result[S, T]) []S {
	var remaining []S
	for {
		v, ok := r.NextRemaining()
		if !ok {
			return remaining
		}
		remaining = append(remaining, v)
	}
}
