// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package days

import (
	"strings"
	"unicode"

	"github.com/mdhender/aoc2020/parsec"
	"github.com/samber/lo"
)

// Passwords checks password database entries against their policies.
type Passwords struct {
	entries []passwordEntry
}

// passwordEntry is one line like "1-3 a: abcde".
type passwordEntry struct {
	Lo, Hi   int
	Letter   rune
	Password string
}

func passwordEntryParser() parsec.Parser[passwordEntry] {
	bounds := parsec.Sequence(
		parsec.Left(parsec.Number(), parsec.Literal("-")),
		parsec.Left(parsec.Number(), parsec.Space1()),
	)
	letter := parsec.Left(parsec.AnyChar(), parsec.Sequence(parsec.Literal(":"), parsec.Space0()))
	password := parsec.Map(
		parsec.OneOrMore(parsec.Pred(parsec.AnyChar(), func(r rune) bool { return !unicode.IsSpace(r) })),
		func(rs []rune) string { return string(rs) },
	)
	return parsec.Complete(parsec.MapOpt(
		parsec.Sequence(bounds, parsec.Sequence(letter, password)),
		func(p parsec.Pair[parsec.Pair[uint32, uint32], parsec.Pair[rune, string]]) (passwordEntry, bool) {
			e := passwordEntry{
				Lo:       int(p.Left.Left),
				Hi:       int(p.Left.Right),
				Letter:   p.Right.Left,
				Password: p.Right.Right,
			}
			return e, 0 < e.Lo && e.Lo <= e.Hi
		},
	))
}

func (d *Passwords) Parse(input string) {
	d.entries = parsec.Lines(passwordEntryParser(), input)
}

// Part1 counts passwords where the letter occurs between Lo and Hi times.
func (d *Passwords) Part1() (int, error) {
	return lo.CountBy(d.entries, func(e passwordEntry) bool {
		n := strings.Count(e.Password, string(e.Letter))
		return e.Lo <= n && n <= e.Hi
	}), nil
}

// Part2 counts passwords where exactly one of the 1-based positions
// Lo and Hi holds the letter.
func (d *Passwords) Part2() (int, error) {
	return lo.CountBy(d.entries, func(e passwordEntry) bool {
		rs := []rune(e.Password)
		at := func(pos int) bool {
			return pos <= len(rs) && rs[pos-1] == e.Letter
		}
		return at(e.Lo) != at(e.Hi)
	}), nil
}
