// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package days

import (
	"github.com/mdhender/aoc2020/parsec"
	"github.com/samber/lo"
)

const expenseTarget = 2020

// ExpenseReport finds the entries that sum to 2020.
type ExpenseReport struct {
	entries []int
}

func (d *ExpenseReport) Parse(input string) {
	entry := parsec.Complete(parsec.Right(parsec.Space0(), parsec.Left(parsec.Number(), parsec.Space0())))
	d.entries = lo.Map(parsec.Lines(entry, input), func(n uint32, _ int) int {
		return int(n)
	})
}

// Part1 returns the product of the two entries that sum to 2020.
func (d *ExpenseReport) Part1() (int, error) {
	a, b, ok := findPair(d.entries, expenseTarget, -1)
	if !ok {
		return 0, ErrNoSolution
	}
	return a * b, nil
}

// Part2 returns the product of the three entries that sum to 2020.
func (d *ExpenseReport) Part2() (int, error) {
	for i, a := range d.entries {
		if b, c, ok := findPair(d.entries, expenseTarget-a, i); ok {
			return a * b * c, nil
		}
	}
	return 0, ErrNoSolution
}

// findPair returns two entries, at distinct indexes other than skip,
// that sum to target.
func findPair(entries []int, target, skip int) (int, int, bool) {
	seen := map[int]int{} // value -> count
	for i, n := range entries {
		if i == skip {
			continue
		}
		if seen[target-n] > 0 {
			return target - n, n, true
		}
		seen[n]++
	}
	return 0, 0, false
}
