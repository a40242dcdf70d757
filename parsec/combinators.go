// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package parsec

// Sequence runs p1, then p2 on the remainder of p1.
// It fails with the context of whichever parser failed first.
func Sequence[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Pair[A, B]] {
	return Func[Pair[A, B]](func(input string) Result[Pair[A, B]] {
		r1 := p1.Parse(input)
		if !r1.OK {
			return fail[Pair[A, B]](r1)
		}
		r2 := p2.Parse(r1.Rest)
		if !r2.OK {
			return fail[Pair[A, B]](r2)
		}
		return Success(r2.Rest, Pair[A, B]{Left: r1.Value, Right: r2.Value})
	})
}

// Either is ordered choice: it tries p1 and, only if p1 fails, tries p2
// against the same input. When both fail, the result is p2's failure.
func Either[T any](p1, p2 Parser[T]) Parser[T] {
	return Func[T](func(input string) Result[T] {
		if r := p1.Parse(input); r.OK {
			return r
		}
		return p2.Parse(input)
	})
}

// Left runs p1 then p2 and keeps the value of p1.
func Left[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return Map(Sequence(p1, p2), func(pair Pair[A, B]) A {
		return pair.Left
	})
}

// Right runs p1 then p2 and keeps the value of p2.
func Right[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return Map(Sequence(p1, p2), func(pair Pair[A, B]) B {
		return pair.Right
	})
}

// repeat applies p to rest until it fails, appending each value to values.
// A match that consumes nothing is kept but ends the loop, otherwise
// the loop would never terminate.
func repeat[T any](p Parser[T], rest string, values []T) (string, []T) {
	for {
		r := p.Parse(rest)
		if !r.OK {
			return rest, values
		}
		values = append(values, r.Value)
		if len(r.Rest) == len(rest) {
			return rest, values
		}
		rest = r.Rest
	}
}

// ZeroOrMore applies p as many times as it matches. It never fails.
// The remainder is the input after the last successful match.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return Func[[]T](func(input string) Result[[]T] {
		rest, values := repeat(p, input, []T{})
		return Success(rest, values)
	})
}

// OneOrMore is ZeroOrMore, but fails with the original input when
// the first application of p fails.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return Func[[]T](func(input string) Result[[]T] {
		first := p.Parse(input)
		if !first.OK {
			return Failure[[]T](input)
		}
		if len(first.Rest) == len(input) {
			return Success(input, []T{first.Value})
		}
		rest, values := repeat(p, first.Rest, []T{first.Value})
		return Success(rest, values)
	})
}

// ZeroOrMoreUntil applies p until the terminator would match.
// The terminator is only tested, never consumed.
//
// If p fails before the terminator matches, the whole repetition fails
// with p's failure context and the items already parsed are discarded.
// It also fails if p matches without consuming input, since the
// terminator could then never be reached.
func ZeroOrMoreUntil[T, D any](p Parser[T], terminator Parser[D]) Parser[[]T] {
	return Func[[]T](func(input string) Result[[]T] {
		cursor, values := input, []T{}
		for !terminator.Parse(cursor).OK {
			r := p.Parse(cursor)
			if !r.OK {
				return fail[[]T](r)
			}
			if len(r.Rest) == len(cursor) {
				return Failure[[]T](cursor)
			}
			values = append(values, r.Value)
			cursor = r.Rest
		}
		return Success(cursor, values)
	})
}

// OneOrMoreUntil is ZeroOrMoreUntil, but fails with the original input
// when the terminator matches before any item is parsed.
func OneOrMoreUntil[T, D any](p Parser[T], terminator Parser[D]) Parser[[]T] {
	items := ZeroOrMoreUntil(p, terminator)
	return Func[[]T](func(input string) Result[[]T] {
		if terminator.Parse(input).OK {
			return Failure[[]T](input)
		}
		return items.Parse(input)
	})
}
