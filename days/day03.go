// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package days

import (
	"github.com/mdhender/aoc2020/parsec"
)

// Toboggan counts the trees hit while sledding down a map that repeats
// to the right.
type Toboggan struct {
	rows [][]bool // true is a tree
}

type slope struct {
	right, down int
}

func (d *Toboggan) Parse(input string) {
	open := parsec.Map(parsec.Literal("."), func(parsec.Unit) bool { return false })
	tree := parsec.Map(parsec.Literal("#"), func(parsec.Unit) bool { return true })
	row := parsec.Complete(parsec.Right(parsec.Space0(), parsec.Left(
		parsec.OneOrMore(parsec.Either(open, tree)),
		parsec.Space0(),
	)))
	d.rows = nil
	for _, r := range parsec.Lines(row, input) {
		// the map must be rectangular for the wrap-around to make sense
		if len(d.rows) != 0 && len(r) != len(d.rows[0]) {
			continue
		}
		d.rows = append(d.rows, r)
	}
}

func (d *Toboggan) trees(s slope) int {
	count := 0
	for x, y := 0, 0; y < len(d.rows); x, y = x+s.right, y+s.down {
		row := d.rows[y]
		if row[x%len(row)] {
			count++
		}
	}
	return count
}

func (d *Toboggan) Part1() (int, error) {
	if len(d.rows) == 0 {
		return 0, ErrNoSolution
	}
	return d.trees(slope{right: 3, down: 1}), nil
}

// Part2 returns the product of the trees hit on each of the five slopes.
func (d *Toboggan) Part2() (int, error) {
	if len(d.rows) == 0 {
		return 0, ErrNoSolution
	}
	product := 1
	for _, s := range []slope{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}} {
		product *= d.trees(s)
	}
	return product, nil
}
