// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package parsec

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

// Literal matches expected exactly, byte for byte.
// On a mismatch it fails with the original input.
func Literal(expected string) Parser[Unit] {
	return Func[Unit](func(input string) Result[Unit] {
		if !strings.HasPrefix(input, expected) {
			return Failure[Unit](input)
		}
		return Success(input[len(expected):], Unit{})
	})
}

// AnyChar consumes a single rune. It fails only on empty input.
// An invalid UTF-8 byte is consumed as utf8.RuneError.
func AnyChar() Parser[rune] {
	return Func[rune](func(input string) Result[rune] {
		if input == "" {
			return Failure[rune](input)
		}
		r, w := utf8.DecodeRuneInString(input)
		return Success(input[w:], r)
	})
}

// Pred succeeds when p succeeds and test accepts the value.
// A rejected value fails with the input p was given, not with p's remainder.
func Pred[T any](p Parser[T], test func(T) bool) Parser[T] {
	return Func[T](func(input string) Result[T] {
		r := p.Parse(input)
		if !r.OK {
			return r
		}
		if !test(r.Value) {
			return Failure[T](input)
		}
		return r
	})
}

// digits matches one or more decimal digits.
func digits() Parser[string] {
	return Map(OneOrMore(Pred(AnyChar(), unicode.IsDigit)), func(rs []rune) string {
		return string(rs)
	})
}

// Unsigned matches one or more decimal digits and converts them to T.
// It fails with the original input when the digits do not fit in T.
func Unsigned[T constraints.Unsigned]() Parser[T] {
	return MapOpt(digits(), func(s string) (T, bool) {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, false
		}
		v := T(n)
		if uint64(v) != n {
			return 0, false
		}
		return v, true
	})
}

// Number matches an unsigned 32-bit decimal number.
func Number() Parser[uint32] {
	return Unsigned[uint32]()
}

// Word matches one or more letters.
func Word() Parser[string] {
	return Map(OneOrMore(Pred(AnyChar(), unicode.IsLetter)), func(rs []rune) string {
		return string(rs)
	})
}

// WhitespaceChar matches a single whitespace rune.
func WhitespaceChar() Parser[rune] {
	return Pred(AnyChar(), unicode.IsSpace)
}

// Space1 matches one or more whitespace runes.
func Space1() Parser[[]rune] {
	return OneOrMore(WhitespaceChar())
}

// Space0 matches zero or more whitespace runes.
func Space0() Parser[[]rune] {
	return ZeroOrMore(WhitespaceChar())
}

// Identifier matches a letter followed by any number of letters,
// digits, hyphens, or underscores.
func Identifier() Parser[string] {
	return Func[string](func(input string) Result[string] {
		head, w := utf8.DecodeRuneInString(input)
		if w == 0 || !unicode.IsLetter(head) {
			return Failure[string](input)
		}
		end := w
		for end < len(input) {
			r, n := utf8.DecodeRuneInString(input[end:])
			if !(unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '_') {
				break
			}
			end += n
		}
		return Success(input[end:], input[:end])
	})
}

// QuotedString matches the text between two double quotes.
// There are no escape sequences; the value is the text between the quotes.
func QuotedString() Parser[string] {
	notQuote := Pred(AnyChar(), func(r rune) bool { return r != '"' })
	return Map(
		Right(Literal(`"`), Left(ZeroOrMore(notQuote), Literal(`"`))),
		func(rs []rune) string { return string(rs) },
	)
}
