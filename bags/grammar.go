// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package bags parses and evaluates luggage rules of the form
//
//	pale turquoise bags contain 3 muted cyan bags, 5 striped teal bags.
//	faded blue bags contain no other bags.
package bags

import (
	"github.com/mdhender/aoc2020/parsec"
)

// Child is one entry in the contents of a bag.
type Child struct {
	Count uint32 `json:"count"`
	Color string `json:"color"`
}

// Rule is one parsed line: a bag color and what it must contain.
type Rule struct {
	Color    string  `json:"color"`
	Contents []Child `json:"contents"`
}

// ColorParser matches the space separated words of a color up to the
// word "bag" and returns them joined by single spaces. It does not
// consume the "bag" or "bags" that follows.
func ColorParser() parsec.Parser[string] {
	return parsec.Join(
		parsec.OneOrMoreUntil(
			parsec.Left(parsec.Word(), parsec.Space1()),
			parsec.Literal("bag"),
		),
		" ",
	)
}

// ChildParser matches a count and a color, e.g. "5 striped teal".
func ChildParser() parsec.Parser[Child] {
	return parsec.Map(
		parsec.Sequence(parsec.Left(parsec.Number(), parsec.Space1()), ColorParser()),
		func(p parsec.Pair[uint32, string]) Child {
			return Child{Count: p.Left, Color: p.Right}
		},
	)
}

// ChildrenParser matches a comma separated list of children ending with a period.
func ChildrenParser() parsec.Parser[[]Child] {
	// "bags" must be tried first because "bag" is a prefix of it
	noun := parsec.Either(parsec.Literal("bags"), parsec.Literal("bag"))
	item := parsec.Left(ChildParser(), noun)
	list := parsec.Map(
		parsec.Sequence(item, parsec.ZeroOrMore(parsec.Right(parsec.Literal(", "), item))),
		func(p parsec.Pair[Child, []Child]) []Child {
			return append([]Child{p.Left}, p.Right...)
		},
	)
	return parsec.Left(list, parsec.Literal("."))
}

// ContentsParser matches either "no other bags." or a list of children.
func ContentsParser() parsec.Parser[[]Child] {
	empty := parsec.Map(parsec.Literal("no other bags."), func(parsec.Unit) []Child {
		return []Child{}
	})
	return parsec.Either(empty, ChildrenParser())
}

// RuleParser matches a complete rule line.
func RuleParser() parsec.Parser[Rule] {
	return parsec.Map(
		parsec.Sequence(
			parsec.Left(ColorParser(), parsec.Literal("bags contain ")),
			ContentsParser(),
		),
		func(p parsec.Pair[string, []Child]) Rule {
			return Rule{Color: p.Left, Contents: p.Right}
		},
	)
}

var ruleLine = parsec.Complete(RuleParser())

// ParseRule parses a single line. It reports false if the line is not a rule.
func ParseRule(line string) (Rule, bool) {
	r := ruleLine.Parse(line)
	return r.Value, r.OK
}

// ParseRules parses every line of text, skipping lines that are not rules.
func ParseRules(text string) []Rule {
	return parsec.Lines(ruleLine, text)
}
