// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package days

import (
	"github.com/mdhender/aoc2020/bags"
)

// Haversacks answers questions about the bag rules for the Target color.
type Haversacks struct {
	Target string
	rules  bags.Rules
}

func (d *Haversacks) Parse(input string) {
	d.rules = bags.NewRules(bags.ParseRules(input))
}

// Part1 counts the colors that can eventually contain the target.
func (d *Haversacks) Part1() (int, error) {
	containers, err := d.rules.Containers(d.Target)
	if err != nil {
		return 0, err
	}
	return len(containers), nil
}

// Part2 counts the bags required inside the target.
func (d *Haversacks) Part2() (int, error) {
	return d.rules.CountInside(d.Target)
}

// SetTarget changes the bag color the puzzle asks about.
func (d *Haversacks) SetTarget(color string) {
	d.Target = color
}
