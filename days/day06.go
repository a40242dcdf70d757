// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package days

import (
	"strings"

	"github.com/samber/lo"
)

// Customs tallies the yes-answers on customs declarations.
// Each group is a block of lines, one line per person.
type Customs struct {
	groups [][]string
}

func (d *Customs) Parse(input string) {
	d.groups = GroupByEmptyLines(input)
}

// Part1 sums, per group, the questions anyone answered.
func (d *Customs) Part1() (int, error) {
	return lo.SumBy(d.groups, func(group []string) int {
		return len(lo.Uniq([]rune(strings.Join(group, ""))))
	}), nil
}

// Part2 sums, per group, the questions everyone answered.
func (d *Customs) Part2() (int, error) {
	return lo.SumBy(d.groups, func(group []string) int {
		return lo.CountBy(lo.Uniq([]rune(group[0])), func(question rune) bool {
			return lo.EveryBy(group, func(person string) bool {
				return strings.ContainsRune(person, question)
			})
		})
	}), nil
}
