// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package days

import (
	"sort"

	"github.com/mdhender/aoc2020/parsec"
	"github.com/samber/lo"
)

// BoardingPasses decodes binary space partitioned seats like "FBFBBFFRLR".
//
// The first seven characters pick the row (F is the lower half, B the
// upper) and the last three pick the column (L lower, R upper). The seat
// ID is row*8+column, which is the same as reading all ten characters
// as a binary number with B and R as ones.
type BoardingPasses struct {
	ids []int
}

func seatIDParser() parsec.Parser[int] {
	bit := func(half string, value int) parsec.Parser[int] {
		return parsec.Map(parsec.Literal(half), func(parsec.Unit) int { return value })
	}
	rowBit := parsec.Either(bit("F", 0), bit("B", 1))
	colBit := parsec.Either(bit("L", 0), bit("R", 1))
	bits := func(p parsec.Parser[int], n int) parsec.Parser[int] {
		return parsec.MapOpt(parsec.OneOrMore(p), func(bs []int) (int, bool) {
			v := 0
			for _, b := range bs {
				v = v<<1 | b
			}
			return v, len(bs) == n
		})
	}
	return parsec.Complete(parsec.Map(
		parsec.Sequence(bits(rowBit, 7), bits(colBit, 3)),
		func(p parsec.Pair[int, int]) int { return p.Left*8 + p.Right },
	))
}

func (d *BoardingPasses) Parse(input string) {
	d.ids = parsec.Lines(seatIDParser(), input)
}

// Part1 returns the highest seat ID.
func (d *BoardingPasses) Part1() (int, error) {
	if len(d.ids) == 0 {
		return 0, ErrNoSolution
	}
	return lo.Max(d.ids), nil
}

// Part2 returns the missing seat whose neighbors are both taken.
func (d *BoardingPasses) Part2() (int, error) {
	ids := append([]int(nil), d.ids...)
	sort.Ints(ids)
	for i := 1; i < len(ids); i++ {
		if ids[i]-ids[i-1] == 2 {
			return ids[i-1] + 1, nil
		}
	}
	return 0, ErrNoSolution
}
