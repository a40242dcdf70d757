// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package days

import (
	"strings"
	"unicode"

	"github.com/mdhender/aoc2020/parsec"
	"github.com/samber/lo"
)

// Passports validates passport records. Records are separated by blank
// lines and hold space separated "key:value" fields.
type Passports struct {
	passports []map[string]string
}

// cid is optional, everything else is required.
var requiredPassportFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

var eyeColors = []string{"amb", "blu", "brn", "gry", "grn", "hzl", "oth"}

// passportFieldParser matches one "key:value" token.
func passportFieldParser() parsec.Parser[parsec.Pair[string, string]] {
	value := parsec.Map(
		parsec.OneOrMore(parsec.Pred(parsec.AnyChar(), func(r rune) bool { return !unicode.IsSpace(r) })),
		func(rs []rune) string { return string(rs) },
	)
	return parsec.Complete(parsec.Sequence(parsec.Left(parsec.Word(), parsec.Literal(":")), value))
}

// Parse keeps every passport. A token that is not a field, like "cid:"
// with no value, is skipped and the rest of the passport is kept.
func (d *Passports) Parse(input string) {
	field := passportFieldParser()
	d.passports = nil
	for _, group := range GroupByEmptyLines(input) {
		passport := map[string]string{}
		for _, token := range strings.Fields(strings.Join(group, " ")) {
			if r := field.Parse(token); r.OK {
				passport[r.Value.Left] = r.Value.Right
			}
		}
		d.passports = append(d.passports, passport)
	}
}

// Part1 counts passports that have every required field.
func (d *Passports) Part1() (int, error) {
	return lo.CountBy(d.passports, func(p map[string]string) bool {
		return lo.EveryBy(requiredPassportFields, func(key string) bool {
			_, ok := p[key]
			return ok
		})
	}), nil
}

// Part2 counts passports that have every required field with a valid value.
func (d *Passports) Part2() (int, error) {
	return lo.CountBy(d.passports, func(p map[string]string) bool {
		return lo.EveryBy(requiredPassportFields, func(key string) bool {
			value, ok := p[key]
			return ok && validPassportField(key, value)
		})
	}), nil
}

var (
	yearParser   = parsec.Complete(parsec.Number())
	heightParser = parsec.Complete(parsec.Sequence(
		parsec.Number(),
		parsec.Either(
			parsec.Map(parsec.Literal("cm"), func(parsec.Unit) string { return "cm" }),
			parsec.Map(parsec.Literal("in"), func(parsec.Unit) string { return "in" }),
		),
	))
	hairColorParser = parsec.Complete(parsec.Right(
		parsec.Literal("#"),
		parsec.OneOrMore(parsec.Pred(parsec.AnyChar(), func(r rune) bool {
			return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f')
		})),
	))
	passportIDParser = parsec.Complete(parsec.OneOrMore(parsec.Pred(parsec.AnyChar(), func(r rune) bool {
		return '0' <= r && r <= '9'
	})))
)

func validYear(value string, from, to uint32) bool {
	r := yearParser.Parse(value)
	return r.OK && len(value) == 4 && from <= r.Value && r.Value <= to
}

func validPassportField(key, value string) bool {
	switch key {
	case "byr":
		return validYear(value, 1920, 2002)
	case "iyr":
		return validYear(value, 2010, 2020)
	case "eyr":
		return validYear(value, 2020, 2030)
	case "hgt":
		r := heightParser.Parse(value)
		if !r.OK {
			return false
		}
		height, unit := r.Value.Left, r.Value.Right
		if unit == "cm" {
			return 150 <= height && height <= 193
		}
		return 59 <= height && height <= 76
	case "hcl":
		r := hairColorParser.Parse(value)
		return r.OK && len(r.Value) == 6
	case "ecl":
		return lo.Contains(eyeColors, value)
	case "pid":
		r := passportIDParser.Parse(value)
		return r.OK && len(r.Value) == 9
	}
	return true
}
