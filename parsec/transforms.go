// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package parsec

import "strings"

// Map applies fn to the value of a successful parse.
// Failures pass through unchanged.
func Map[A, B any](p Parser[A], fn func(A) B) Parser[B] {
	return Func[B](func(input string) Result[B] {
		r := p.Parse(input)
		if !r.OK {
			return fail[B](r)
		}
		return Success(r.Rest, fn(r.Value))
	})
}

// MapOpt applies fn to the value of a successful parse.
// When fn rejects the value, the parse fails with the original input,
// as if p had never matched. This lets an enclosing Either try its
// next alternative.
func MapOpt[A, B any](p Parser[A], fn func(A) (B, bool)) Parser[B] {
	return Func[B](func(input string) Result[B] {
		r := p.Parse(input)
		if !r.OK {
			return fail[B](r)
		}
		v, ok := fn(r.Value)
		if !ok {
			return Failure[B](input)
		}
		return Success(r.Rest, v)
	})
}

// Join concatenates the strings produced by p, with sep between them.
func Join(p Parser[[]string], sep string) Parser[string] {
	return Map(p, func(words []string) string {
		return strings.Join(words, sep)
	})
}
