// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package parsec implements a small parser-combinator toolkit over strings.
//
// A Parser consumes a prefix of its input and returns the unconsumed
// remainder along with a typed value, or it fails and returns the input
// at the point where it gave up. Failures carry no message; they exist
// so that callers (and combinators like Either) can backtrack.
//
// Grammars are built by composing the primitives in this package:
//
//	color := Join(OneOrMoreUntil(Left(Word(), Space1()), Literal("bag")), " ")
//	r := color.Parse("pale turquoise bags contain ...")
//	// r.OK == true, r.Value == "pale turquoise", r.Rest == "bags contain ..."
//
// Parsers hold no mutable state. The same parser value may be used from
// multiple goroutines at the same time.
package parsec

// Parser is implemented by anything that can parse a prefix of input.
type Parser[T any] interface {
	Parse(input string) Result[T]
}

// Func adapts an ordinary function to the Parser interface.
type Func[T any] func(input string) Result[T]

// Parse implements Parser.
func (fn Func[T]) Parse(input string) Result[T] {
	return fn(input)
}

// Result is the outcome of a single parse.
//
// When OK is true, Rest is the unconsumed suffix of the input and Value
// holds the parsed value. When OK is false, Rest is the input at the point
// where parsing was abandoned and Value is the zero value.
//
// Rest is always a suffix of the string handed to the outermost parser,
// so Consumed can recover the offset of a failure.
type Result[T any] struct {
	Rest  string
	Value T
	OK    bool
}

// Success returns a successful result.
func Success[T any](rest string, value T) Result[T] {
	return Result[T]{Rest: rest, Value: value, OK: true}
}

// Failure returns a failed result with the given context.
func Failure[T any](context string) Result[T] {
	return Result[T]{Rest: context}
}

// fail converts a failed result to a failed result of another type,
// keeping the failure context.
func fail[B, A any](r Result[A]) Result[B] {
	return Failure[B](r.Rest)
}

// Unit is the value of parsers that only recognize input.
type Unit = struct{}

// Pair holds the values of two parsers run in sequence.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// Consumed returns the number of bytes of input that precede rest.
// rest must be a remainder or failure context returned by a parser
// that was given input.
func Consumed(input, rest string) int {
	return len(input) - len(rest)
}
